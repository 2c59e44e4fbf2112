package leave

import "context"

type LeaveService interface {
	// ListRequests returns requests visible to the caller: employees see
	// their own, managers their team plus their own, admin/hr everything.
	ListRequests(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)

	// GetRequest returns a single request (owner, their manager, or admin/hr).
	GetRequest(ctx context.Context, id string) (LeaveResponse, error)

	// CreateRequest validates dates and overlap and files a pending request.
	CreateRequest(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)

	// UpdateRequest edits a pending request (owner only).
	UpdateRequest(ctx context.Context, req UpdateLeaveRequest) (LeaveResponse, error)

	// CancelRequest cancels a pending or approved request (owner only).
	CancelRequest(ctx context.Context, id string) (LeaveResponse, error)

	// Action approves or rejects a pending request (admin/hr any,
	// manager for direct reports).
	Action(ctx context.Context, req ActionRequest) (LeaveResponse, error)

	// Balance computes entitlements and usage for the current year.
	Balance(ctx context.Context, employeeID string) (BalanceResponse, error)
}
