package dto

import (
	"time"

	"github.com/yukikurage/hero-task-tracker/internal/models"
	"github.com/yukikurage/hero-task-tracker/internal/services"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID           uint64              `json:"id"`
	OwnerID      uint64              `json:"owner_id"`
	AssignedByID *uint64             `json:"assigned_by_id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Priority     models.TaskPriority `json:"priority"`
	Status       models.TaskStatus   `json:"status"`
	Column       models.TaskColumn   `json:"column"`
	CreatedAt    time.Time           `json:"created_at"`
	CompletedAt  *time.Time          `json:"completed_at"`
}

// AdminTaskDTO is a task with its owner and assigner resolved, for the
// admin task list.
type AdminTaskDTO struct {
	TaskDTO
	OwnerUsername         string `json:"owner_username"`
	OwnerDisplayName      string `json:"owner_display_name"`
	AssignedByUsername    string `json:"assigned_by_username,omitempty"`
	AssignedByDisplayName string `json:"assigned_by_display_name,omitempty"`
}

// SuggestedTaskDTO is an AI suggestion. It has no id because it is not stored.
type SuggestedTaskDTO struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Priority    models.TaskPriority `json:"priority"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:           task.ID,
		OwnerID:      task.OwnerID,
		AssignedByID: task.AssignedByID,
		Title:        task.Title,
		Description:  task.Description,
		Priority:     task.Priority,
		Status:       task.Status,
		Column:       task.Column,
		CreatedAt:    task.CreatedAt,
		CompletedAt:  task.CompletedAt,
	}
}

// ToTaskDTOs converts a slice of tasks, never returning nil
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, 0, len(tasks))
	for _, task := range tasks {
		dtos = append(dtos, ToTaskDTO(task))
	}
	return dtos
}

// ToAdminTaskDTOs converts tasks loaded with Owner and AssignedBy joined
func ToAdminTaskDTOs(tasks []models.Task) []AdminTaskDTO {
	dtos := make([]AdminTaskDTO, 0, len(tasks))
	for _, task := range tasks {
		item := AdminTaskDTO{
			TaskDTO:          ToTaskDTO(task),
			OwnerUsername:    task.Owner.Username,
			OwnerDisplayName: task.Owner.DisplayName,
		}
		if task.AssignedByID != nil {
			item.AssignedByUsername = task.AssignedBy.Username
			item.AssignedByDisplayName = task.AssignedBy.DisplayName
		}
		dtos = append(dtos, item)
	}
	return dtos
}

// ToSuggestedTaskDTOs converts suggestions from the suggestion service
func ToSuggestedTaskDTOs(tasks []services.SuggestedTask) []SuggestedTaskDTO {
	dtos := make([]SuggestedTaskDTO, 0, len(tasks))
	for _, task := range tasks {
		dtos = append(dtos, SuggestedTaskDTO(task))
	}
	return dtos
}
