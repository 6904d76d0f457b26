package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hero-task-tracker/internal/dto"
	apierrors "github.com/yukikurage/hero-task-tracker/internal/errors"
	"github.com/yukikurage/hero-task-tracker/internal/models"
	"github.com/yukikurage/hero-task-tracker/internal/services"
)

// TaskHandler serves the caller's own task board.
type TaskHandler struct {
	tasks       *services.TaskService
	assignments *services.AssignmentService
	suggestions *services.SuggestionService
}

// NewTaskHandler creates a new TaskHandler. suggestions may be nil when AI
// is not configured.
func NewTaskHandler(tasks *services.TaskService, assignments *services.AssignmentService, suggestions *services.SuggestionService) *TaskHandler {
	return &TaskHandler{
		tasks:       tasks,
		assignments: assignments,
		suggestions: suggestions,
	}
}

type taskRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Priority    models.TaskPriority `json:"priority"`
	Status      models.TaskStatus   `json:"status"`
	Column      models.TaskColumn   `json:"column"`
}

func (r taskRequest) input() services.TaskInput {
	return services.TaskInput{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Status:      r.Status,
		Column:      r.Column,
	}
}

// ListTasks returns the caller's tasks, newest first
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.ListForOwner(c.Request.Context(), userID)
	if err != nil {
		apierrors.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskDTOs(tasks)})
}

// CreateTask creates a task for the caller, or for user_id when the caller
// is an admin.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	type CreateTaskRequest struct {
		taskRequest
		UserID *uint64 `json:"user_id"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.assignments.CreateFor(c.Request.Context(), userID, role, req.UserID, req.input())
	if err != nil {
		apierrors.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask replaces the editable fields of a task owned by the caller
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), taskID, userID, req.input())
	if err != nil {
		apierrors.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask deletes a task owned by the caller
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), taskID, userID); err != nil {
		apierrors.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// SuggestTasks extracts task suggestions from free text. Nothing is stored.
func (h *TaskHandler) SuggestTasks(c *gin.Context) {
	if _, _, ok := currentUser(c); !ok {
		return
	}

	type SuggestTasksRequest struct {
		Text string `json:"text" binding:"required"`
	}

	var req SuggestTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	suggestions, err := h.suggestions.Suggest(c.Request.Context(), req.Text)
	if err != nil {
		apierrors.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToSuggestedTaskDTOs(suggestions)})
}
