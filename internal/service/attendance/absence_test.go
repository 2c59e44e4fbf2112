package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPreviousWorkday(t *testing.T) {
	cases := []struct {
		name string
		ref  time.Time
		want time.Time
	}{
		// 2026-08-25 is a Tuesday
		{
			"tuesday yields monday",
			time.Date(2026, 8, 25, 9, 30, 0, 0, time.UTC),
			time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			"monday skips the weekend",
			time.Date(2026, 8, 24, 0, 15, 0, 0, time.UTC),
			time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC),
		},
		{
			"sunday yields friday",
			time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			"saturday yields friday",
			time.Date(2026, 8, 29, 23, 59, 0, 0, time.UTC),
			time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, previousWorkday(c.ref))
		})
	}
}
