package project

import (
	"time"

	"github.com/shopspring/decimal"
)

type Project struct {
	ID          string
	Name        string
	Description *string
	Status      Status
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      *decimal.Decimal
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Status string

const (
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in_progress"
	StatusOnHold     Status = "on_hold"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

type Member struct {
	ID         string
	ProjectID  string
	EmployeeID string
	Role       MemberRole
	JoinedAt   time.Time
}

type MemberRole string

const (
	MemberRoleProjectManager MemberRole = "project_manager"
	MemberRoleTeamLead       MemberRole = "team_lead"
	MemberRoleMember         MemberRole = "member"
)

// MemberWithEmployee carries display fields for member listings.
type MemberWithEmployee struct {
	Member
	EmployeeCode string
	EmployeeName string
	Position     *string
}

// TaskStats aggregates a project's tasks by status.
type TaskStats struct {
	Total      int
	Completed  int
	InProgress int
	Overdue    int
}

// CompletionRate returns completed/total as a percentage, two decimals.
func (s TaskStats) CompletionRate() float64 {
	if s.Total == 0 {
		return 0
	}
	rate := float64(s.Completed) / float64(s.Total) * 100
	return float64(int(rate*100+0.5)) / 100
}

// ProjectWithDetails joins creator name and task stats for list/detail views.
type ProjectWithDetails struct {
	Project
	CreatorName string
	MemberCount int
	Stats       TaskStats
}
