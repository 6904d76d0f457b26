package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hero-task-tracker/internal/dto"
	apierrors "github.com/yukikurage/hero-task-tracker/internal/errors"
	"github.com/yukikurage/hero-task-tracker/internal/models"
	"github.com/yukikurage/hero-task-tracker/internal/services"
)

// AdminHandler serves user management and the cross-user task view.
type AdminHandler struct {
	users       *services.UserService
	tasks       *services.TaskService
	assignments *services.AssignmentService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(users *services.UserService, tasks *services.TaskService, assignments *services.AssignmentService) *AdminHandler {
	return &AdminHandler{
		users:       users,
		tasks:       tasks,
		assignments: assignments,
	}
}

// ListUsers returns every account
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		apierrors.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": dto.ToUserDTOs(users)})
}

// CreateUser creates an account with an explicit role
func (h *AdminHandler) CreateUser(c *gin.Context) {
	type CreateUserRequest struct {
		Username    string      `json:"username" binding:"required,max=50"`
		Password    string      `json:"password" binding:"required"`
		DisplayName string      `json:"display_name" binding:"max=100"`
		Role        models.Role `json:"role"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), services.CreateUserInput{
		Username:    req.Username,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Role:        req.Role,
	})
	if err != nil {
		apierrors.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// DeleteUser removes an account that owns no tasks
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	_, role, ok := currentUser(c)
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.users.DeleteUser(c.Request.Context(), role, userID); err != nil {
		apierrors.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// ListAllTasks returns every task with owner and assigner names
func (h *AdminHandler) ListAllTasks(c *gin.Context) {
	tasks, err := h.tasks.ListAll(c.Request.Context())
	if err != nil {
		apierrors.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToAdminTaskDTOs(tasks)})
}

// ReassignTask moves a task to another user
func (h *AdminHandler) ReassignTask(c *gin.Context) {
	callerID, role, ok := currentUser(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type ReassignRequest struct {
		UserID uint64 `json:"user_id"`
	}

	var req ReassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	ctx := c.Request.Context()
	if err := h.assignments.Reassign(ctx, taskID, req.UserID, callerID, role); err != nil {
		apierrors.RespondServiceError(c, err)
		return
	}

	task, err := h.tasks.GetTask(ctx, taskID)
	if err != nil {
		apierrors.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}
