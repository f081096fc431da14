package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripbook/internal/domain"
	"tripbook/internal/service"
)

// TaskHandler handles HTTP requests for checklist items.
type TaskHandler struct {
	taskService *service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// TaskRequest is the HTTP request body for a task or subtask.
type TaskRequest struct {
	Text string `json:"text"`
}

// TaskListResponse is a checklist with its progress.
type TaskListResponse struct {
	ListResponse[domain.Task]
	Done int `json:"done"`
}

func taskList(tasks []domain.Task) TaskListResponse {
	done, _ := service.Progress(tasks)
	return TaskListResponse{ListResponse: newListResponse(tasks), Done: done}
}

// GetAll handles GET /v1/tasks
func (h *TaskHandler) GetAll(c *gin.Context) {
	respondJSON(c, http.StatusOK, taskList(h.taskService.List(c.Request.Context())))
}

// GetByTrip handles GET /v1/trips/:id/tasks
func (h *TaskHandler) GetByTrip(c *gin.Context) {
	respondJSON(c, http.StatusOK, taskList(h.taskService.ListByTrip(c.Request.Context(), c.Param("id"))))
}

// CreateTask handles POST /v1/trips/:id/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req TaskRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.taskService.Create(c.Request.Context(), c.Param("id"), req.Text)
	respondMutation(c, http.StatusCreated, res, err)
}

// ToggleTask handles POST /v1/tasks/:id/toggle
func (h *TaskHandler) ToggleTask(c *gin.Context) {
	res, err := h.taskService.Toggle(c.Request.Context(), c.Param("id"))
	respondMutation(c, http.StatusOK, res, err)
}

// DeleteTask handles DELETE /v1/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	list, err := h.taskService.Delete(c.Request.Context(), c.Param("id"))
	respondList(c, list, err)
}

// AddSubtask handles POST /v1/tasks/:id/subtasks
func (h *TaskHandler) AddSubtask(c *gin.Context) {
	var req TaskRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.taskService.AddSubtask(c.Request.Context(), c.Param("id"), req.Text)
	respondMutation(c, http.StatusCreated, res, err)
}

// ToggleSubtask handles POST /v1/tasks/:id/subtasks/:subId/toggle
func (h *TaskHandler) ToggleSubtask(c *gin.Context) {
	res, err := h.taskService.ToggleSubtask(c.Request.Context(), c.Param("id"), c.Param("subId"))
	respondMutation(c, http.StatusOK, res, err)
}

// DeleteSubtask handles DELETE /v1/tasks/:id/subtasks/:subId
func (h *TaskHandler) DeleteSubtask(c *gin.Context) {
	res, err := h.taskService.DeleteSubtask(c.Request.Context(), c.Param("id"), c.Param("subId"))
	respondMutation(c, http.StatusOK, res, err)
}
