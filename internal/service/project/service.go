package project

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/corestack-app/corestack-backend-go/internal/domain/employee"
	"github.com/corestack-app/corestack-backend-go/internal/domain/project"
	"github.com/corestack-app/corestack-backend-go/internal/domain/user"
	"github.com/corestack-app/corestack-backend-go/internal/pkg/database"
	"github.com/corestack-app/corestack-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type ProjectServiceImpl struct {
	db *database.DB
	project.ProjectRepository
	project.MemberRepository
	employee.EmployeeRepository
}

func NewProjectService(
	db *database.DB,
	projectRepo project.ProjectRepository,
	memberRepo project.MemberRepository,
	employeeRepo employee.EmployeeRepository,
) project.ProjectService {
	return &ProjectServiceImpl{
		db:                 db,
		ProjectRepository:  projectRepo,
		MemberRepository:   memberRepo,
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

// ListProjects implements project.ProjectService.
func (s *ProjectServiceImpl) ListProjects(ctx context.Context, filter project.ProjectFilter) (project.ListProjectResponse, error) {
	caller, err := actorFromContext(ctx)
	if err != nil {
		return project.ListProjectResponse{}, err
	}

	visibleTo := ""
	if !user.IsElevated(caller.Role) {
		if caller.EmployeeID == "" {
			return project.ListProjectResponse{}, employee.ErrProfileNotFound
		}
		visibleTo = caller.EmployeeID
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	projects, total, err := s.ProjectRepository.List(ctx, filter, visibleTo)
	if err != nil {
		return project.ListProjectResponse{}, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, toProjectResponse(p, nil))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return project.ListProjectResponse{
		Projects:   responses,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

// GetProject implements project.ProjectService.
func (s *ProjectServiceImpl) GetProject(ctx context.Context, id string) (project.ProjectResponse, error) {
	caller, err := actorFromContext(ctx)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	found, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	if err := s.canView(ctx, caller, found); err != nil {
		return project.ProjectResponse{}, err
	}

	members, err := s.MemberRepository.ListMembers(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, fmt.Errorf("failed to list members: %w", err)
	}

	return toProjectResponse(found, members), nil
}

// CreateProject implements project.ProjectService.
func (s *ProjectServiceImpl) CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	caller, err := actorFromContext(ctx)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	if caller.EmployeeID == "" {
		return project.ProjectResponse{}, employee.ErrProfileNotFound
	}

	status := project.StatusPlanning
	if req.Status != "" {
		status = project.Status(req.Status)
	}

	newProject := project.Project{
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
		CreatedBy:   caller.EmployeeID,
	}
	if req.StartDate != nil {
		start, _ := time.Parse("2006-01-02", *req.StartDate)
		newProject.StartDate = &start
	}
	if req.EndDate != nil {
		end, _ := time.Parse("2006-01-02", *req.EndDate)
		newProject.EndDate = &end
	}
	if req.Budget != nil {
		budget, err := decimal.NewFromString(*req.Budget)
		if err != nil {
			return project.ProjectResponse{}, fmt.Errorf("invalid budget: %w", err)
		}
		newProject.Budget = &budget
	}

	for _, memberID := range req.MemberIDs {
		if _, err := s.EmployeeRepository.GetByID(ctx, memberID); err != nil {
			return project.ProjectResponse{}, err
		}
	}

	var created project.Project
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = s.ProjectRepository.Create(txCtx, newProject)
		if err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}

		_, err = s.MemberRepository.AddMember(txCtx, project.Member{
			ProjectID:  created.ID,
			EmployeeID: caller.EmployeeID,
			Role:       project.MemberRoleProjectManager,
		})
		if err != nil {
			return fmt.Errorf("failed to add creator as project manager: %w", err)
		}

		for _, memberID := range req.MemberIDs {
			if memberID == caller.EmployeeID {
				continue
			}
			_, err = s.MemberRepository.AddMember(txCtx, project.Member{
				ProjectID:  created.ID,
				EmployeeID: memberID,
				Role:       project.MemberRoleMember,
			})
			if err != nil && !errors.Is(err, project.ErrMemberExists) {
				return fmt.Errorf("failed to add member: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return s.GetProject(ctx, created.ID)
}

// UpdateProject implements project.ProjectService.
func (s *ProjectServiceImpl) UpdateProject(ctx context.Context, req project.UpdateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	caller, err := actorFromContext(ctx)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	found, err := s.ProjectRepository.GetByID(ctx, req.ID)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	if err := s.canManage(ctx, caller, found); err != nil {
		return project.ProjectResponse{}, err
	}

	if req.Budget != nil {
		if _, err := decimal.NewFromString(*req.Budget); err != nil {
			return project.ProjectResponse{}, fmt.Errorf("invalid budget: %w", err)
		}
	}

	if err := s.ProjectRepository.Update(ctx, req.ID, req); err != nil {
		return project.ProjectResponse{}, err
	}

	return s.GetProject(ctx, req.ID)
}

// DeleteProject implements project.ProjectService.
func (s *ProjectServiceImpl) DeleteProject(ctx context.Context, id string) error {
	caller, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	found, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !user.IsElevated(caller.Role) && found.CreatedBy != caller.EmployeeID {
		return project.ErrUnauthorized
	}

	return s.ProjectRepository.Delete(ctx, id)
}

// ListMembers implements project.ProjectService.
func (s *ProjectServiceImpl) ListMembers(ctx context.Context, projectID string) ([]project.MemberResponse, error) {
	caller, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	found, err := s.ProjectRepository.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if err := s.canView(ctx, caller, found); err != nil {
		return nil, err
	}

	members, err := s.MemberRepository.ListMembers(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	responses := make([]project.MemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, toMemberResponse(m))
	}

	return responses, nil
}

// AddMember implements project.ProjectService.
func (s *ProjectServiceImpl) AddMember(ctx context.Context, req project.AddMemberRequest) (project.MemberResponse, error) {
	if err := req.Validate(); err != nil {
		return project.MemberResponse{}, err
	}

	caller, err := actorFromContext(ctx)
	if err != nil {
		return project.MemberResponse{}, err
	}

	found, err := s.ProjectRepository.GetByID(ctx, req.ProjectID)
	if err != nil {
		return project.MemberResponse{}, err
	}

	if err := s.canManage(ctx, caller, found); err != nil {
		return project.MemberResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return project.MemberResponse{}, err
	}

	role := project.MemberRoleMember
	if req.Role != "" {
		role = project.MemberRole(req.Role)
	}

	added, err := s.MemberRepository.AddMember(ctx, project.Member{
		ProjectID:  req.ProjectID,
		EmployeeID: req.EmployeeID,
		Role:       role,
	})
	if err != nil {
		return project.MemberResponse{}, err
	}

	profile, err := s.EmployeeRepository.GetByID(ctx, added.EmployeeID)
	if err != nil {
		return project.MemberResponse{}, err
	}

	return project.MemberResponse{
		EmployeeID:   added.EmployeeID,
		EmployeeCode: profile.EmployeeCode,
		EmployeeName: profile.FullName(),
		Position:     profile.Position,
		Role:         string(added.Role),
		JoinedAt:     added.JoinedAt.Format(time.RFC3339),
	}, nil
}

// UpdateMemberRole implements project.ProjectService.
func (s *ProjectServiceImpl) UpdateMemberRole(ctx context.Context, req project.UpdateMemberRoleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	caller, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	found, err := s.ProjectRepository.GetByID(ctx, req.ProjectID)
	if err != nil {
		return err
	}

	if err := s.canManage(ctx, caller, found); err != nil {
		return err
	}

	return s.MemberRepository.UpdateMemberRole(ctx, req.ProjectID, req.EmployeeID, project.MemberRole(req.Role))
}

// RemoveMember implements project.ProjectService.
func (s *ProjectServiceImpl) RemoveMember(ctx context.Context, projectID, employeeID string) error {
	caller, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	found, err := s.ProjectRepository.GetByID(ctx, projectID)
	if err != nil {
		return err
	}

	if err := s.canManage(ctx, caller, found); err != nil {
		return err
	}

	return s.MemberRepository.RemoveMember(ctx, projectID, employeeID)
}

// canView allows admin/hr, the creator and project members.
func (s *ProjectServiceImpl) canView(ctx context.Context, caller actor, p project.ProjectWithDetails) error {
	if user.IsElevated(caller.Role) || p.CreatedBy == caller.EmployeeID {
		return nil
	}
	if caller.EmployeeID == "" {
		return project.ErrUnauthorized
	}
	isMember, err := s.MemberRepository.IsMember(ctx, p.ID, caller.EmployeeID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return project.ErrUnauthorized
	}
	return nil
}

// canManage allows admin/hr, the creator and members holding project_manager.
func (s *ProjectServiceImpl) canManage(ctx context.Context, caller actor, p project.ProjectWithDetails) error {
	if user.IsElevated(caller.Role) || p.CreatedBy == caller.EmployeeID {
		return nil
	}
	if caller.EmployeeID == "" {
		return project.ErrUnauthorized
	}
	isPM, err := s.MemberRepository.HasRole(ctx, p.ID, caller.EmployeeID, project.MemberRoleProjectManager)
	if err != nil {
		return fmt.Errorf("failed to check project role: %w", err)
	}
	if !isPM {
		return project.ErrUnauthorized
	}
	return nil
}

func toProjectResponse(p project.ProjectWithDetails, members []project.MemberWithEmployee) project.ProjectResponse {
	resp := project.ProjectResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Status:         string(p.Status),
		CreatedBy:      p.CreatedBy,
		CreatorName:    p.CreatorName,
		MemberCount:    p.MemberCount,
		TaskCount:      p.Stats.Total,
		CompletionRate: p.Stats.CompletionRate(),
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.Format(time.RFC3339),
	}
	if p.StartDate != nil {
		start := p.StartDate.Format("2006-01-02")
		resp.StartDate = &start
	}
	if p.EndDate != nil {
		end := p.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	if p.Budget != nil {
		budget := p.Budget.String()
		resp.Budget = &budget
	}
	for _, m := range members {
		resp.Members = append(resp.Members, toMemberResponse(m))
	}
	return resp
}

func toMemberResponse(m project.MemberWithEmployee) project.MemberResponse {
	return project.MemberResponse{
		EmployeeID:   m.EmployeeID,
		EmployeeCode: m.EmployeeCode,
		EmployeeName: m.EmployeeName,
		Position:     m.Position,
		Role:         string(m.Role),
		JoinedAt:     m.JoinedAt.Format(time.RFC3339),
	}
}
