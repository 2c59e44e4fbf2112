package project

import "context"

type ProjectRepository interface {
	GetByID(ctx context.Context, id string) (ProjectWithDetails, error)
	Create(ctx context.Context, p Project) (Project, error)
	Update(ctx context.Context, id string, req UpdateProjectRequest) error
	Delete(ctx context.Context, id string) error
	// List returns projects matching the filter. When visibleTo is non-empty
	// only projects created by or shared with that employee are returned.
	List(ctx context.Context, filter ProjectFilter, visibleTo string) ([]ProjectWithDetails, int64, error)
}

type MemberRepository interface {
	GetMember(ctx context.Context, projectID, employeeID string) (Member, error)
	ListMembers(ctx context.Context, projectID string) ([]MemberWithEmployee, error)
	AddMember(ctx context.Context, m Member) (Member, error)
	UpdateMemberRole(ctx context.Context, projectID, employeeID string, role MemberRole) error
	RemoveMember(ctx context.Context, projectID, employeeID string) error
	IsMember(ctx context.Context, projectID, employeeID string) (bool, error)
	// HasRole reports whether the employee holds the given role on the project.
	HasRole(ctx context.Context, projectID, employeeID string, role MemberRole) (bool, error)
}
