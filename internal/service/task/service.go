package task

import (
	"context"
	"fmt"
	"time"

	"github.com/corestack-app/corestack-backend-go/internal/domain/employee"
	"github.com/corestack-app/corestack-backend-go/internal/domain/project"
	"github.com/corestack-app/corestack-backend-go/internal/domain/task"
	"github.com/corestack-app/corestack-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

type TaskServiceImpl struct {
	task.TaskRepository
	task.CommentRepository
	project.ProjectRepository
	project.MemberRepository
}

func NewTaskService(
	taskRepo task.TaskRepository,
	commentRepo task.CommentRepository,
	projectRepo project.ProjectRepository,
	memberRepo project.MemberRepository,
) task.TaskService {
	return &TaskServiceImpl{
		TaskRepository:    taskRepo,
		CommentRepository: commentRepo,
		ProjectRepository: projectRepo,
		MemberRepository:  memberRepo,
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

// editLevel is the outcome of the task permission cascade.
type editLevel int

const (
	editNone editLevel = iota
	editAssignee
	editFull
)

// ListTasks implements task.TaskService.
func (s *TaskServiceImpl) ListTasks(ctx context.Context, filter task.TaskFilter) (task.ListTaskResponse, error) {
	caller, err := actorFromContext(ctx)
	if err != nil {
		return task.ListTaskResponse{}, err
	}

	visibleTo := ""
	if !user.IsElevated(caller.Role) {
		if caller.EmployeeID == "" {
			return task.ListTaskResponse{}, employee.ErrProfileNotFound
		}
		visibleTo = caller.EmployeeID
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	tasks, total, err := s.TaskRepository.List(ctx, filter, visibleTo)
	if err != nil {
		return task.ListTaskResponse{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	responses := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, toTaskResponse(t))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return task.ListTaskResponse{
		Tasks:      responses,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

// Board implements task.TaskService.
func (s *TaskServiceImpl) Board(ctx context.Context, projectID string) (task.BoardResponse, error) {
	caller, err := actorFromContext(ctx)
	if err != nil {
		return task.BoardResponse{}, err
	}

	p, err := s.ProjectRepository.GetByID(ctx, projectID)
	if err != nil {
		return task.BoardResponse{}, err
	}

	if err := s.canViewProject(ctx, caller, p); err != nil {
		return task.BoardResponse{}, err
	}

	tasks, err := s.TaskRepository.ListByProject(ctx, projectID)
	if err != nil {
		return task.BoardResponse{}, fmt.Errorf("failed to list project tasks: %w", err)
	}

	byStatus := make(map[task.Status][]task.TaskResponse)
	for _, t := range tasks {
		byStatus[t.Status] = append(byStatus[t.Status], toTaskResponse(t))
	}

	columns := make([]task.BoardColumn, 0, len(task.BoardColumns))
	for _, status := range task.BoardColumns {
		col := task.BoardColumn{Status: string(status), Tasks: byStatus[status]}
		if col.Tasks == nil {
			col.Tasks = []task.TaskResponse{}
		}
		columns = append(columns, col)
	}

	return task.BoardResponse{
		ProjectID: projectID,
		Columns:   columns,
	}, nil
}

// GetTask implements task.TaskService.
func (s *TaskServiceImpl) GetTask(ctx context.Context, id string) (task.TaskResponse, error) {
	caller, err := actorFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	found, err := s.TaskRepository.GetByID(ctx, id)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if err := s.canViewTask(ctx, caller, found); err != nil {
		return task.TaskResponse{}, err
	}

	return toTaskResponse(found), nil
}

// CreateTask implements task.TaskService.
func (s *TaskServiceImpl) CreateTask(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	caller, err := actorFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}
	if caller.EmployeeID == "" {
		return task.TaskResponse{}, employee.ErrProfileNotFound
	}

	p, err := s.ProjectRepository.GetByID(ctx, req.ProjectID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if err := s.canViewProject(ctx, caller, p); err != nil {
		return task.TaskResponse{}, err
	}

	if req.AssigneeID != nil {
		isMember, err := s.MemberRepository.IsMember(ctx, req.ProjectID, *req.AssigneeID)
		if err != nil {
			return task.TaskResponse{}, fmt.Errorf("failed to check assignee membership: %w", err)
		}
		if !isMember && *req.AssigneeID != p.CreatedBy {
			return task.TaskResponse{}, task.ErrAssigneeNotMember
		}
	}

	status := task.StatusTodo
	if req.Status != "" {
		status = task.Status(req.Status)
	}
	priority := task.PriorityMedium
	if req.Priority != "" {
		priority = task.Priority(req.Priority)
	}

	newTask := task.Task{
		ProjectID:      req.ProjectID,
		AssigneeID:     req.AssigneeID,
		CreatedBy:      caller.EmployeeID,
		Title:          req.Title,
		Description:    req.Description,
		Status:         status,
		Priority:       priority,
		Progress:       req.Progress,
		EstimatedHours: req.EstimatedHours,
	}
	if req.DueDate != nil {
		due, _ := time.Parse("2006-01-02", *req.DueDate)
		newTask.DueDate = &due
	}
	if status == task.StatusCompleted {
		now := time.Now().UTC()
		newTask.CompletedAt = &now
		newTask.Progress = 100
	}

	created, err := s.TaskRepository.Create(ctx, newTask)
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to create task: %w", err)
	}

	found, err := s.TaskRepository.GetByID(ctx, created.ID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	return toTaskResponse(found), nil
}

// UpdateTask implements task.TaskService.
func (s *TaskServiceImpl) UpdateTask(ctx context.Context, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	caller, err := actorFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	found, err := s.TaskRepository.GetByID(ctx, req.ID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	level, err := s.editLevelFor(ctx, caller, found)
	if err != nil {
		return task.TaskResponse{}, err
	}

	switch level {
	case editNone:
		return task.TaskResponse{}, task.ErrUnauthorized
	case editAssignee:
		req.RestrictToAssigneeFields()
	}

	current := found.Task

	if req.Title != nil {
		current.Title = *req.Title
	}
	if req.Description != nil {
		current.Description = req.Description
	}
	if req.AssigneeID != nil {
		isMember, err := s.MemberRepository.IsMember(ctx, current.ProjectID, *req.AssigneeID)
		if err != nil {
			return task.TaskResponse{}, fmt.Errorf("failed to check assignee membership: %w", err)
		}
		if !isMember {
			// The project creator is assignable without a membership row.
			p, err := s.ProjectRepository.GetByID(ctx, current.ProjectID)
			if err != nil {
				return task.TaskResponse{}, err
			}
			if *req.AssigneeID != p.CreatedBy {
				return task.TaskResponse{}, task.ErrAssigneeNotMember
			}
		}
		current.AssigneeID = req.AssigneeID
	}
	if req.Priority != nil {
		current.Priority = task.Priority(*req.Priority)
	}
	if req.Progress != nil {
		current.Progress = *req.Progress
	}
	if req.EstimatedHours != nil {
		current.EstimatedHours = req.EstimatedHours
	}
	if req.DueDate != nil {
		due, _ := time.Parse("2006-01-02", *req.DueDate)
		current.DueDate = &due
	}
	if req.Status != nil {
		newStatus := task.Status(*req.Status)
		if newStatus == task.StatusCompleted && current.Status != task.StatusCompleted {
			now := time.Now().UTC()
			current.CompletedAt = &now
			current.Progress = 100
		}
		if newStatus != task.StatusCompleted {
			current.CompletedAt = nil
		}
		current.Status = newStatus
	}

	if err := s.TaskRepository.Update(ctx, current); err != nil {
		return task.TaskResponse{}, err
	}

	updated, err := s.TaskRepository.GetByID(ctx, req.ID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	return toTaskResponse(updated), nil
}

// DeleteTask implements task.TaskService.
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id string) error {
	caller, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	found, err := s.TaskRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	level, err := s.editLevelFor(ctx, caller, found)
	if err != nil {
		return err
	}
	if level != editFull {
		return task.ErrUnauthorized
	}

	return s.TaskRepository.Delete(ctx, id)
}

// ListComments implements task.TaskService.
func (s *TaskServiceImpl) ListComments(ctx context.Context, taskID string) ([]task.CommentResponse, error) {
	caller, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	found, err := s.TaskRepository.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.canViewTask(ctx, caller, found); err != nil {
		return nil, err
	}

	comments, err := s.CommentRepository.ListComments(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	responses := make([]task.CommentResponse, 0, len(comments))
	for _, c := range comments {
		responses = append(responses, toCommentResponse(c.Comment, c.AuthorName))
	}

	return responses, nil
}

// AddComment implements task.TaskService.
func (s *TaskServiceImpl) AddComment(ctx context.Context, req task.CommentRequest) (task.CommentResponse, error) {
	if err := req.Validate(); err != nil {
		return task.CommentResponse{}, err
	}

	caller, err := actorFromContext(ctx)
	if err != nil {
		return task.CommentResponse{}, err
	}
	if caller.EmployeeID == "" {
		return task.CommentResponse{}, employee.ErrProfileNotFound
	}

	found, err := s.TaskRepository.GetByID(ctx, req.TaskID)
	if err != nil {
		return task.CommentResponse{}, err
	}

	if err := s.canViewTask(ctx, caller, found); err != nil {
		return task.CommentResponse{}, err
	}

	created, err := s.CommentRepository.CreateComment(ctx, task.Comment{
		TaskID:     req.TaskID,
		EmployeeID: caller.EmployeeID,
		Comment:    req.Comment,
	})
	if err != nil {
		return task.CommentResponse{}, fmt.Errorf("failed to create comment: %w", err)
	}

	return toCommentResponse(created, ""), nil
}

// UpdateComment implements task.TaskService.
func (s *TaskServiceImpl) UpdateComment(ctx context.Context, req task.CommentRequest) (task.CommentResponse, error) {
	if err := req.Validate(); err != nil {
		return task.CommentResponse{}, err
	}

	caller, err := actorFromContext(ctx)
	if err != nil {
		return task.CommentResponse{}, err
	}

	found, err := s.CommentRepository.GetComment(ctx, req.CommentID)
	if err != nil {
		return task.CommentResponse{}, err
	}
	if found.TaskID != req.TaskID {
		return task.CommentResponse{}, task.ErrCommentNotFound
	}

	if found.EmployeeID != caller.EmployeeID {
		return task.CommentResponse{}, task.ErrUnauthorized
	}

	if err := s.CommentRepository.UpdateComment(ctx, req.CommentID, req.Comment); err != nil {
		return task.CommentResponse{}, err
	}

	updated, err := s.CommentRepository.GetComment(ctx, req.CommentID)
	if err != nil {
		return task.CommentResponse{}, err
	}

	return toCommentResponse(updated, ""), nil
}

// DeleteComment implements task.TaskService.
func (s *TaskServiceImpl) DeleteComment(ctx context.Context, taskID, commentID string) error {
	caller, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	found, err := s.CommentRepository.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if found.TaskID != taskID {
		return task.ErrCommentNotFound
	}

	if found.EmployeeID != caller.EmployeeID && !user.IsElevated(caller.Role) {
		return task.ErrUnauthorized
	}

	return s.CommentRepository.DeleteComment(ctx, commentID)
}

// canViewProject allows admin/hr, the project creator and members.
func (s *TaskServiceImpl) canViewProject(ctx context.Context, caller actor, p project.ProjectWithDetails) error {
	if user.IsElevated(caller.Role) || p.CreatedBy == caller.EmployeeID {
		return nil
	}
	if caller.EmployeeID == "" {
		return task.ErrUnauthorized
	}
	isMember, err := s.MemberRepository.IsMember(ctx, p.ID, caller.EmployeeID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return task.ErrUnauthorized
	}
	return nil
}

func (s *TaskServiceImpl) canViewTask(ctx context.Context, caller actor, t task.TaskWithDetails) error {
	p, err := s.ProjectRepository.GetByID(ctx, t.ProjectID)
	if err != nil {
		return err
	}
	return s.canViewProject(ctx, caller, p)
}

// editLevelFor walks the permission cascade: admin/hr, project manager,
// project creator and task creator get full edit; the assignee may only
// move status, progress and estimated hours.
func (s *TaskServiceImpl) editLevelFor(ctx context.Context, caller actor, t task.TaskWithDetails) (editLevel, error) {
	if user.IsElevated(caller.Role) {
		return editFull, nil
	}
	if caller.EmployeeID == "" {
		return editNone, nil
	}

	isPM, err := s.MemberRepository.HasRole(ctx, t.ProjectID, caller.EmployeeID, project.MemberRoleProjectManager)
	if err != nil {
		return editNone, fmt.Errorf("failed to check project role: %w", err)
	}
	if isPM {
		return editFull, nil
	}

	p, err := s.ProjectRepository.GetByID(ctx, t.ProjectID)
	if err != nil {
		return editNone, err
	}
	if p.CreatedBy == caller.EmployeeID {
		return editFull, nil
	}

	if t.CreatedBy == caller.EmployeeID {
		return editFull, nil
	}

	if t.AssigneeID != nil && *t.AssigneeID == caller.EmployeeID {
		return editAssignee, nil
	}

	return editNone, nil
}

func toTaskResponse(t task.TaskWithDetails) task.TaskResponse {
	resp := task.TaskResponse{
		ID:             t.ID,
		ProjectID:      t.ProjectID,
		ProjectName:    t.ProjectName,
		Title:          t.Title,
		Description:    t.Description,
		AssigneeID:     t.AssigneeID,
		AssigneeName:   t.AssigneeName,
		CreatedBy:      t.CreatedBy,
		CreatorName:    t.CreatorName,
		Status:         string(t.Status),
		Priority:       string(t.Priority),
		Progress:       t.Progress,
		EstimatedHours: t.EstimatedHours,
		CreatedAt:      t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      t.UpdatedAt.Format(time.RFC3339),
	}
	if t.DueDate != nil {
		due := t.DueDate.Format("2006-01-02")
		resp.DueDate = &due
	}
	if t.CompletedAt != nil {
		completedAt := t.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &completedAt
	}
	return resp
}

func toCommentResponse(c task.Comment, authorName string) task.CommentResponse {
	return task.CommentResponse{
		ID:         c.ID,
		TaskID:     c.TaskID,
		EmployeeID: c.EmployeeID,
		AuthorName: authorName,
		Comment:    c.Comment,
		CreatedAt:  c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  c.UpdatedAt.Format(time.RFC3339),
	}
}
