package leave

import (
	"testing"
	"time"

	"github.com/corestack-app/corestack-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBusinessDays(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  float64
	}{
		// 2026-08-24 is a Monday
		{"single weekday", date(2026, 8, 24), date(2026, 8, 24), 1},
		{"full work week", date(2026, 8, 24), date(2026, 8, 28), 5},
		{"week including weekend", date(2026, 8, 24), date(2026, 8, 30), 5},
		{"saturday only", date(2026, 8, 29), date(2026, 8, 29), 0},
		{"weekend only", date(2026, 8, 29), date(2026, 8, 30), 0},
		{"two weeks spanning weekend", date(2026, 8, 24), date(2026, 9, 4), 10},
		{"friday to monday", date(2026, 8, 28), date(2026, 8, 31), 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, BusinessDays(c.start, c.end))
		})
	}
}

func TestEntitlement(t *testing.T) {
	cases := []struct {
		name      string
		leaveType leave.Type
		years     int
		want      float64
	}{
		{"annual new hire", leave.TypeAnnual, 0, 20},
		{"annual five years", leave.TypeAnnual, 5, 25},
		{"annual capped at thirty", leave.TypeAnnual, 15, 30},
		{"annual at cap boundary", leave.TypeAnnual, 10, 30},
		{"sick fixed", leave.TypeSick, 7, 15},
		{"personal fixed", leave.TypePersonal, 7, 3},
		{"untracked type", leave.TypeUnpaid, 3, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Entitlement(c.leaveType, c.years))
		})
	}
}

func TestYearsOfService(t *testing.T) {
	now := date(2026, 8, 29)

	cases := []struct {
		name    string
		joining time.Time
		want    int
	}{
		{"joined today", now, 0},
		{"joined six months ago", date(2026, 2, 15), 0},
		{"anniversary passed this year", date(2020, 3, 1), 6},
		{"anniversary not yet reached", date(2020, 11, 1), 5},
		{"anniversary today", date(2020, 8, 29), 6},
		{"future joining date", date(2027, 1, 1), 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, YearsOfService(c.joining, now))
		})
	}
}
