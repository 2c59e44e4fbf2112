package http

import (
	"encoding/json"
	"net/http"

	"github.com/corestack-app/corestack-backend-go/internal/domain/task"
	"github.com/corestack-app/corestack-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TaskHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Board(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListComments(w http.ResponseWriter, r *http.Request)
	AddComment(w http.ResponseWriter, r *http.Request)
	UpdateComment(w http.ResponseWriter, r *http.Request)
	DeleteComment(w http.ResponseWriter, r *http.Request)
}

type taskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &taskHandlerImpl{taskService: taskService}
}

// List implements TaskHandler.
func (h *taskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := task.TaskFilter{
		ProjectID:  r.URL.Query().Get("project_id"),
		AssigneeID: r.URL.Query().Get("assignee_id"),
		Status:     r.URL.Query().Get("status"),
		Priority:   r.URL.Query().Get("priority"),
		Search:     r.URL.Query().Get("search"),
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", 20),
	}

	result, err := h.taskService.ListTasks(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Tasks, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	})
}

// Board implements TaskHandler.
func (h *taskHandlerImpl) Board(w http.ResponseWriter, r *http.Request) {
	projectID := r.URL.Query().Get("project_id")
	if projectID == "" {
		response.BadRequest(w, "project_id is required", nil)
		return
	}

	result, err := h.taskService.Board(r.Context(), projectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements TaskHandler.
func (h *taskHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.taskService.GetTask(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create implements TaskHandler.
func (h *taskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req task.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.taskService.CreateTask(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task created", result)
}

// Update implements TaskHandler.
func (h *taskHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req task.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.taskService.UpdateTask(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task updated", result)
}

// Delete implements TaskHandler.
func (h *taskHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.taskService.DeleteTask(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task deleted", nil)
}

// ListComments implements TaskHandler.
func (h *taskHandlerImpl) ListComments(w http.ResponseWriter, r *http.Request) {
	result, err := h.taskService.ListComments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AddComment implements TaskHandler.
func (h *taskHandlerImpl) AddComment(w http.ResponseWriter, r *http.Request) {
	var req task.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.TaskID = chi.URLParam(r, "id")

	result, err := h.taskService.AddComment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Comment added", result)
}

// UpdateComment implements TaskHandler.
func (h *taskHandlerImpl) UpdateComment(w http.ResponseWriter, r *http.Request) {
	var req task.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.TaskID = chi.URLParam(r, "id")
	req.CommentID = chi.URLParam(r, "commentID")

	result, err := h.taskService.UpdateComment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Comment updated", result)
}

// DeleteComment implements TaskHandler.
func (h *taskHandlerImpl) DeleteComment(w http.ResponseWriter, r *http.Request) {
	err := h.taskService.DeleteComment(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "commentID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Comment deleted", nil)
}
