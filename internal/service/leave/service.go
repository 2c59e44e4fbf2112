package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/corestack-app/corestack-backend-go/internal/domain/employee"
	"github.com/corestack-app/corestack-backend-go/internal/domain/leave"
	"github.com/corestack-app/corestack-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employee.EmployeeRepository
}

func NewLeaveService(
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository:    leaveRepo,
		EmployeeRepository: employeeRepo,
	}
}

type actor struct {
	UserID     string
	EmployeeID string
	Role       user.Role
}

func actorFromContext(ctx context.Context) (actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return actor{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	a := actor{}
	a.UserID, _ = claims["user_id"].(string)
	a.EmployeeID, _ = claims["employee_id"].(string)
	roleStr, _ := claims["role"].(string)
	a.Role = user.Role(roleStr)

	return a, nil
}

// BusinessDays counts weekdays between start and end inclusive.
func BusinessDays(start, end time.Time) float64 {
	days := 0.0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Saturday && d.Weekday() != time.Sunday {
			days++
		}
	}
	return days
}

// Entitlement returns the yearly allowance for a leave type. Annual leave
// grows by one day per year of service up to 30 days.
func Entitlement(leaveType leave.Type, yearsOfService int) float64 {
	switch leaveType {
	case leave.TypeAnnual:
		entitled := 20.0 + float64(yearsOfService)
		if entitled > 30 {
			entitled = 30
		}
		return entitled
	case leave.TypeSick:
		return 15
	case leave.TypePersonal:
		return 3
	default:
		return 0
	}
}

// YearsOfService counts full years since the joining date.
func YearsOfService(dateOfJoining time.Time, now time.Time) int {
	years := now.Year() - dateOfJoining.Year()
	anniversary := dateOfJoining.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}

// ListRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListRequests(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	caller, err := actorFromContext(ctx)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	var scope []string
	switch {
	case user.IsElevated(caller.Role):
		// Everything.
	case caller.Role == user.RoleManager:
		team, err := s.EmployeeRepository.ListByManagerID(ctx, caller.EmployeeID)
		if err != nil {
			return leave.ListLeaveResponse{}, fmt.Errorf("failed to list team: %w", err)
		}
		scope = []string{caller.EmployeeID}
		for _, e := range team {
			scope = append(scope, e.ID)
		}
	default:
		if caller.EmployeeID == "" {
			return leave.ListLeaveResponse{}, employee.ErrProfileNotFound
		}
		scope = []string{caller.EmployeeID}
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	requests, total, err := s.LeaveRepository.List(ctx, filter, scope)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, lr := range requests {
		responses = append(responses, toLeaveResponse(lr))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return leave.ListLeaveResponse{
		Requests:   responses,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

// GetRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) GetRequest(ctx context.Context, id string) (leave.LeaveResponse, error) {
	caller, err := actorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	found, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if err := s.canView(ctx, caller, found.EmployeeID); err != nil {
		return leave.LeaveResponse{}, err
	}

	return toLeaveResponse(found), nil
}

// CreateRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	caller, err := actorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if caller.EmployeeID == "" {
		return leave.LeaveResponse{}, employee.ErrProfileNotFound
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	if start.After(end) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}
	todayDate := time.Now().UTC().Truncate(24 * time.Hour)
	if start.Before(todayDate) {
		return leave.LeaveResponse{}, leave.ErrPastStartDate
	}

	overlaps, err := s.LeaveRepository.HasOverlap(ctx, caller.EmployeeID, start, end, "")
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to check overlap: %w", err)
	}
	if overlaps {
		return leave.LeaveResponse{}, leave.ErrOverlappingRequest
	}

	days := req.Days
	if days == 0 {
		days = BusinessDays(start, end)
	}

	created, err := s.LeaveRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID: caller.EmployeeID,
		Type:       leave.Type(req.Type),
		StartDate:  start,
		EndDate:    end,
		Days:       days,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return s.GetRequest(ctx, created.ID)
}

// UpdateRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateRequest(ctx context.Context, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	caller, err := actorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	found, err := s.LeaveRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if found.EmployeeID != caller.EmployeeID {
		return leave.LeaveResponse{}, leave.ErrUnauthorized
	}
	if found.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrAlreadyProcessed
	}

	current := found.LeaveRequest
	datesChanged := false

	if req.Type != nil {
		current.Type = leave.Type(*req.Type)
	}
	if req.StartDate != nil {
		current.StartDate, _ = time.Parse("2006-01-02", *req.StartDate)
		datesChanged = true
	}
	if req.EndDate != nil {
		current.EndDate, _ = time.Parse("2006-01-02", *req.EndDate)
		datesChanged = true
	}
	if req.Reason != nil {
		current.Reason = req.Reason
	}

	if current.StartDate.After(current.EndDate) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}

	if datesChanged {
		todayDate := time.Now().UTC().Truncate(24 * time.Hour)
		if current.StartDate.Before(todayDate) {
			return leave.LeaveResponse{}, leave.ErrPastStartDate
		}

		overlaps, err := s.LeaveRepository.HasOverlap(ctx, current.EmployeeID, current.StartDate, current.EndDate, current.ID)
		if err != nil {
			return leave.LeaveResponse{}, fmt.Errorf("failed to check overlap: %w", err)
		}
		if overlaps {
			return leave.LeaveResponse{}, leave.ErrOverlappingRequest
		}
	}

	switch {
	case req.Days != nil:
		current.Days = *req.Days
	case datesChanged:
		current.Days = BusinessDays(current.StartDate, current.EndDate)
	}

	if err := s.LeaveRepository.Update(ctx, current); err != nil {
		return leave.LeaveResponse{}, err
	}

	return s.GetRequest(ctx, current.ID)
}

// CancelRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CancelRequest(ctx context.Context, id string) (leave.LeaveResponse, error) {
	caller, err := actorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	found, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if found.EmployeeID != caller.EmployeeID {
		return leave.LeaveResponse{}, leave.ErrUnauthorized
	}
	if found.Status != leave.StatusPending && found.Status != leave.StatusApproved {
		return leave.LeaveResponse{}, leave.ErrNotCancellable
	}

	current := found.LeaveRequest
	current.Status = leave.StatusCancelled

	if err := s.LeaveRepository.Update(ctx, current); err != nil {
		return leave.LeaveResponse{}, err
	}

	return s.GetRequest(ctx, id)
}

// Action implements leave.LeaveService.
func (s *LeaveServiceImpl) Action(ctx context.Context, req leave.ActionRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	caller, err := actorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	found, err := s.LeaveRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if found.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrAlreadyProcessed
	}

	if !user.IsElevated(caller.Role) {
		if caller.Role != user.RoleManager {
			return leave.LeaveResponse{}, leave.ErrUnauthorized
		}
		isManager, err := s.EmployeeRepository.IsManagerOf(ctx, caller.EmployeeID, found.EmployeeID)
		if err != nil {
			return leave.LeaveResponse{}, fmt.Errorf("failed to check manager relation: %w", err)
		}
		if !isManager {
			return leave.LeaveResponse{}, leave.ErrUnauthorized
		}
	}

	current := found.LeaveRequest
	if req.Action == "approve" {
		current.Status = leave.StatusApproved
	} else {
		current.Status = leave.StatusRejected
	}

	now := time.Now().UTC()
	current.ReviewedAt = &now
	current.ReviewNote = req.Note
	if caller.EmployeeID != "" {
		reviewer := caller.EmployeeID
		current.ReviewedBy = &reviewer
	}

	if err := s.LeaveRepository.Update(ctx, current); err != nil {
		return leave.LeaveResponse{}, err
	}

	return s.GetRequest(ctx, req.ID)
}

// Balance implements leave.LeaveService.
func (s *LeaveServiceImpl) Balance(ctx context.Context, employeeID string) (leave.BalanceResponse, error) {
	caller, err := actorFromContext(ctx)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	if employeeID == "" {
		employeeID = caller.EmployeeID
	}
	if employeeID == "" {
		return leave.BalanceResponse{}, employee.ErrProfileNotFound
	}

	if err := s.canView(ctx, caller, employeeID); err != nil {
		return leave.BalanceResponse{}, err
	}

	profile, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	now := time.Now().UTC()
	years := YearsOfService(profile.DateOfJoining, now)

	tracked := []leave.Type{leave.TypeAnnual, leave.TypeSick, leave.TypePersonal}
	entries := make([]leave.BalanceEntry, 0, len(tracked))
	for _, t := range tracked {
		taken, err := s.LeaveRepository.SumDays(ctx, employeeID, t, leave.StatusApproved, now.Year())
		if err != nil {
			return leave.BalanceResponse{}, fmt.Errorf("failed to sum taken days: %w", err)
		}
		pending, err := s.LeaveRepository.SumDays(ctx, employeeID, t, leave.StatusPending, now.Year())
		if err != nil {
			return leave.BalanceResponse{}, fmt.Errorf("failed to sum pending days: %w", err)
		}

		b := leave.Balance{
			Type:     t,
			Entitled: Entitlement(t, years),
			Taken:    taken,
			Pending:  pending,
		}
		entries = append(entries, leave.BalanceEntry{
			Type:     string(b.Type),
			Entitled: b.Entitled,
			Taken:    b.Taken,
			Pending:  b.Pending,
			Balance:  b.Remaining(),
			Unit:     "days",
		})
	}

	return leave.BalanceResponse{
		EmployeeID:     employeeID,
		EmployeeName:   profile.FullName(),
		YearsOfService: years,
		Balances:       entries,
	}, nil
}

// canView allows the owner, their manager, and admin/hr.
func (s *LeaveServiceImpl) canView(ctx context.Context, caller actor, ownerID string) error {
	if user.IsElevated(caller.Role) || caller.EmployeeID == ownerID {
		return nil
	}
	if caller.Role == user.RoleManager && caller.EmployeeID != "" {
		isManager, err := s.EmployeeRepository.IsManagerOf(ctx, caller.EmployeeID, ownerID)
		if err != nil {
			return fmt.Errorf("failed to check manager relation: %w", err)
		}
		if isManager {
			return nil
		}
	}
	return leave.ErrUnauthorized
}

func toLeaveResponse(lr leave.LeaveRequestWithEmployee) leave.LeaveResponse {
	resp := leave.LeaveResponse{
		ID:           lr.ID,
		EmployeeID:   lr.EmployeeID,
		EmployeeName: lr.EmployeeName,
		Type:         string(lr.Type),
		StartDate:    lr.StartDate.Format("2006-01-02"),
		EndDate:      lr.EndDate.Format("2006-01-02"),
		Days:         lr.Days,
		Reason:       lr.Reason,
		Status:       string(lr.Status),
		ReviewedBy:   lr.ReviewedBy,
		ReviewerName: lr.ReviewerName,
		ReviewNote:   lr.ReviewNote,
		CreatedAt:    lr.CreatedAt.Format(time.RFC3339),
	}
	if lr.ReviewedAt != nil {
		reviewedAt := lr.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &reviewedAt
	}
	return resp
}
