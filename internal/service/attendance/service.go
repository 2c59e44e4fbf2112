package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/corestack-app/corestack-backend-go/internal/domain/attendance"
	"github.com/corestack-app/corestack-backend-go/internal/domain/employee"
	"github.com/corestack-app/corestack-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
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

// today returns midnight UTC for the current date.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	caller, err := actorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if caller.EmployeeID == "" {
		return attendance.AttendanceResponse{}, employee.ErrProfileNotFound
	}

	date := today()
	_, err = s.AttendanceRepository.GetByEmployeeAndDate(ctx, caller.EmployeeID, date)
	if err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's record: %w", err)
	}

	workFrom := attendance.WorkFromOffice
	if req.WorkFrom != "" {
		workFrom = attendance.WorkFrom(req.WorkFrom)
	}

	now := time.Now().UTC()
	created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID: caller.EmployeeID,
		Date:       date,
		ClockIn:    &now,
		Status:     attendance.StatusPresent,
		WorkFrom:   workFrom,
		Notes:      req.Notes,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to clock in: %w", err)
	}

	return toAttendanceResponse(created, ""), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	caller, err := actorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if caller.EmployeeID == "" {
		return attendance.AttendanceResponse{}, employee.ErrProfileNotFound
	}

	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, caller.EmployeeID, today())
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load today's record: %w", err)
	}

	if record.ClockIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}
	if record.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	now := time.Now().UTC()
	record.ClockOut = &now
	if req.Notes != nil {
		if record.Notes != nil && *record.Notes != "" {
			merged := *record.Notes + "\n" + *req.Notes
			record.Notes = &merged
		} else {
			record.Notes = req.Notes
		}
	}

	if err := s.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to clock out: %w", err)
	}

	return toAttendanceResponse(record, ""), nil
}

// Status implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Status(ctx context.Context) (attendance.StatusResponse, error) {
	caller, err := actorFromContext(ctx)
	if err != nil {
		return attendance.StatusResponse{}, err
	}
	if caller.EmployeeID == "" {
		return attendance.StatusResponse{}, employee.ErrProfileNotFound
	}

	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, caller.EmployeeID, today())
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.StatusResponse{}, nil
		}
		return attendance.StatusResponse{}, fmt.Errorf("failed to load today's record: %w", err)
	}

	resp := toAttendanceResponse(record, "")
	return attendance.StatusResponse{
		ClockedIn:  record.ClockIn != nil,
		ClockedOut: record.ClockOut != nil,
		Attendance: &resp,
	}, nil
}

// History implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) History(ctx context.Context, filter attendance.HistoryFilter) (attendance.ListAttendanceResponse, error) {
	caller, err := actorFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	switch {
	case user.IsElevated(caller.Role):
		// Any employee, or everyone when the filter is empty.
	case caller.Role == user.RoleManager:
		if filter.EmployeeID == "" {
			filter.EmployeeID = caller.EmployeeID
		} else if filter.EmployeeID != caller.EmployeeID {
			isManager, err := s.EmployeeRepository.IsManagerOf(ctx, caller.EmployeeID, filter.EmployeeID)
			if err != nil {
				return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to check manager relation: %w", err)
			}
			if !isManager {
				return attendance.ListAttendanceResponse{}, attendance.ErrUnauthorized
			}
		}
	default:
		if filter.EmployeeID != "" && filter.EmployeeID != caller.EmployeeID {
			return attendance.ListAttendanceResponse{}, attendance.ErrUnauthorized
		}
		filter.EmployeeID = caller.EmployeeID
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, total, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, toAttendanceResponse(r.Attendance, r.EmployeeName))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return attendance.ListAttendanceResponse{
		Records:    responses,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

// Record implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Record(ctx context.Context, req attendance.RecordRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	_, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrRecordExists
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing record: %w", err)
	}

	workFrom := attendance.WorkFromOffice
	if req.WorkFrom != "" {
		workFrom = attendance.WorkFrom(req.WorkFrom)
	}

	record := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     attendance.Status(req.Status),
		WorkFrom:   workFrom,
		Notes:      req.Notes,
	}
	if req.ClockIn != nil {
		clockIn, _ := time.Parse(time.RFC3339, *req.ClockIn)
		record.ClockIn = &clockIn
	}
	if req.ClockOut != nil {
		clockOut, _ := time.Parse(time.RFC3339, *req.ClockOut)
		record.ClockOut = &clockOut
	}

	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return toAttendanceResponse(created, ""), nil
}

// UpdateRecord implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateRecord(ctx context.Context, req attendance.UpdateRecordRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.ClockIn != nil {
		clockIn, _ := time.Parse(time.RFC3339, *req.ClockIn)
		record.ClockIn = &clockIn
	}
	if req.ClockOut != nil {
		clockOut, _ := time.Parse(time.RFC3339, *req.ClockOut)
		record.ClockOut = &clockOut
	}
	if req.Status != nil {
		record.Status = attendance.Status(*req.Status)
	}
	if req.WorkFrom != nil {
		record.WorkFrom = attendance.WorkFrom(*req.WorkFrom)
	}
	if req.Notes != nil {
		record.Notes = req.Notes
	}

	// The merged record must keep clock_out after clock_in.
	if record.ClockOut != nil && (record.ClockIn == nil || !record.ClockOut.After(*record.ClockIn)) {
		return attendance.AttendanceResponse{}, attendance.ErrClockOutBeforeClockIn
	}

	if err := s.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(record, ""), nil
}

// DeleteRecord implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	return s.AttendanceRepository.Delete(ctx, id)
}

// Report implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Report(ctx context.Context, filter attendance.ReportFilter) (attendance.ReportResponse, error) {
	caller, err := actorFromContext(ctx)
	if err != nil {
		return attendance.ReportResponse{}, err
	}

	employeeIDs, err := s.reportScope(ctx, caller, filter.EmployeeID)
	if err != nil {
		return attendance.ReportResponse{}, err
	}

	// Default range is the current month.
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	if filter.StartDate != "" {
		start, _ = time.Parse("2006-01-02", filter.StartDate)
	}
	if filter.EndDate != "" {
		end, _ = time.Parse("2006-01-02", filter.EndDate)
	}

	summaries, err := s.AttendanceRepository.Summarize(ctx, employeeIDs, start, end)
	if err != nil {
		return attendance.ReportResponse{}, fmt.Errorf("failed to summarize attendance: %w", err)
	}

	responses := make([]attendance.SummaryResponse, 0, len(summaries))
	for _, sum := range summaries {
		responses = append(responses, attendance.SummaryResponse{
			EmployeeID:   sum.EmployeeID,
			EmployeeName: sum.EmployeeName,
			PresentDays:  sum.PresentDays,
			AbsentDays:   sum.AbsentDays,
			HalfDays:     sum.HalfDays,
			TotalHours:   sum.TotalHours,
		})
	}

	return attendance.ReportResponse{
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
		Summaries: responses,
	}, nil
}

// reportScope resolves which employees the caller may report on.
func (s *AttendanceServiceImpl) reportScope(ctx context.Context, caller actor, requested string) ([]string, error) {
	if user.IsElevated(caller.Role) {
		if requested != "" {
			return []string{requested}, nil
		}
		all, err := s.EmployeeRepository.ListActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list employees: %w", err)
		}
		ids := make([]string, 0, len(all))
		for _, e := range all {
			ids = append(ids, e.ID)
		}
		return ids, nil
	}

	if caller.EmployeeID == "" {
		return nil, employee.ErrProfileNotFound
	}

	if caller.Role == user.RoleManager {
		team, err := s.EmployeeRepository.ListByManagerID(ctx, caller.EmployeeID)
		if err != nil {
			return nil, fmt.Errorf("failed to list team: %w", err)
		}
		ids := []string{caller.EmployeeID}
		for _, e := range team {
			ids = append(ids, e.ID)
		}
		if requested != "" {
			for _, id := range ids {
				if id == requested {
					return []string{requested}, nil
				}
			}
			return nil, attendance.ErrUnauthorized
		}
		return ids, nil
	}

	if requested != "" && requested != caller.EmployeeID {
		return nil, attendance.ErrUnauthorized
	}
	return []string{caller.EmployeeID}, nil
}

func toAttendanceResponse(a attendance.Attendance, employeeName string) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: employeeName,
		Date:         a.Date.Format("2006-01-02"),
		Status:       string(a.Status),
		WorkFrom:     string(a.WorkFrom),
		Notes:        a.Notes,
		HoursWorked:  a.HoursWorked(),
	}
	if a.ClockIn != nil {
		clockIn := a.ClockIn.Format(time.RFC3339)
		resp.ClockIn = &clockIn
	}
	if a.ClockOut != nil {
		clockOut := a.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &clockOut
	}
	return resp
}
