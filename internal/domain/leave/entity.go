package leave

import "time"

type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       Type
	StartDate  time.Time
	EndDate    time.Time
	Days       float64
	Reason     *string
	Status     Status
	ReviewedBy *string
	ReviewedAt *time.Time
	ReviewNote *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Type string

const (
	TypeAnnual      Type = "annual"
	TypeSick        Type = "sick"
	TypePersonal    Type = "personal"
	TypeMaternity   Type = "maternity"
	TypePaternity   Type = "paternity"
	TypeBereavement Type = "bereavement"
	TypeUnpaid      Type = "unpaid"
	TypeOther       Type = "other"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// LeaveRequestWithEmployee carries names for list views.
type LeaveRequestWithEmployee struct {
	LeaveRequest
	EmployeeName string
	ReviewerName *string
}

// Balance is the per-type entitlement view for one employee and year.
type Balance struct {
	Type     Type
	Entitled float64
	Taken    float64
	Pending  float64
}

func (b Balance) Remaining() float64 {
	return b.Entitled - b.Taken
}
