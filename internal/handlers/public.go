package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/hero-task-tracker/internal/errors"
	"github.com/yukikurage/hero-task-tracker/internal/models"
	"github.com/yukikurage/hero-task-tracker/internal/services"
)

// PublicHandler accepts task requests from people without an account.
type PublicHandler struct {
	intake *services.IntakeService
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(intake *services.IntakeService) *PublicHandler {
	return &PublicHandler{intake: intake}
}

// SubmitTask queues a request for the default administrator
func (h *PublicHandler) SubmitTask(c *gin.Context) {
	type SubmitTaskRequest struct {
		SubmitterName    string              `json:"submitter_name"`
		SubmitterContact string              `json:"submitter_contact"`
		Title            string              `json:"title"`
		Description      string              `json:"description"`
		Priority         models.TaskPriority `json:"priority"`
		Deadline         string              `json:"deadline"`
	}

	var req SubmitTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.intake.Submit(c.Request.Context(), services.SubmitInput{
		SubmitterName:    req.SubmitterName,
		SubmitterContact: req.SubmitterContact,
		Title:            req.Title,
		Description:      req.Description,
		Priority:         req.Priority,
		Deadline:         req.Deadline,
	})
	if err != nil {
		apierrors.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      task.ID,
		"message": "Task submitted successfully",
	})
}
