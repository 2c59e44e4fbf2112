package project

import "context"

type ProjectService interface {
	// ListProjects lists projects; non-elevated callers only see projects
	// they created or belong to.
	ListProjects(ctx context.Context, filter ProjectFilter) (ListProjectResponse, error)

	// GetProject returns project detail with members and task stats.
	GetProject(ctx context.Context, id string) (ProjectResponse, error)

	// CreateProject creates a project; the creator joins as project_manager.
	CreateProject(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)

	// UpdateProject updates fields (admin/hr, creator, or project_manager).
	UpdateProject(ctx context.Context, req UpdateProjectRequest) (ProjectResponse, error)

	// DeleteProject removes the project with members and tasks (admin/hr or creator).
	DeleteProject(ctx context.Context, id string) error

	// ListMembers lists project members.
	ListMembers(ctx context.Context, projectID string) ([]MemberResponse, error)

	// AddMember adds an employee to the project.
	AddMember(ctx context.Context, req AddMemberRequest) (MemberResponse, error)

	// UpdateMemberRole changes a member's project role.
	UpdateMemberRole(ctx context.Context, req UpdateMemberRoleRequest) error

	// RemoveMember removes an employee from the project.
	RemoveMember(ctx context.Context, projectID, employeeID string) error
}
