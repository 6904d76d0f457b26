package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/yukikurage/hero-task-tracker/internal/models"
	"github.com/yukikurage/hero-task-tracker/internal/repository"
	"gorm.io/gorm"
)

// TaskService handles owner-scoped task operations.
type TaskService struct {
	taskRepo repository.TaskRepository
	now      func() time.Time
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		now:      time.Now,
	}
}

// TaskInput represents the editable fields of a task. Empty enum values take
// their defaults.
type TaskInput struct {
	Title       string
	Description string
	Priority    models.TaskPriority
	Status      models.TaskStatus
	Column      models.TaskColumn
}

// normalize trims the input, fills defaults and validates enum values.
func (in TaskInput) normalize() (TaskInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return in, ErrTitleRequired
	}
	if in.Priority == "" {
		in.Priority = models.PriorityMedium
	}
	if in.Status == "" {
		in.Status = models.TaskStatusPending
	}
	if in.Column == "" {
		in.Column = models.ColumnTodo
	}
	if !in.Priority.Valid() {
		return in, ErrInvalidPriority
	}
	if !in.Status.Valid() {
		return in, ErrInvalidStatus
	}
	if !in.Column.Valid() {
		return in, ErrInvalidColumn
	}
	return in, nil
}

// ListForOwner returns the caller's own tasks, newest first
func (s *TaskService) ListForOwner(ctx context.Context, ownerID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListAll returns every task with owner and assigner details
func (s *TaskService) ListAll(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list all tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns a task by ID
func (s *TaskService) GetTask(ctx context.Context, taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// Create stores a new task for ownerID. assignedByID is nil for self-created
// and publicly submitted tasks.
func (s *TaskService) Create(ctx context.Context, ownerID uint64, assignedByID *uint64, input TaskInput) (*models.Task, error) {
	input, err := input.normalize()
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		OwnerID:      ownerID,
		AssignedByID: assignedByID,
		Title:        input.Title,
		Description:  input.Description,
		Priority:     input.Priority,
		Status:       input.Status,
		Column:       input.Column,
		CompletedAt:  models.CompletionTime(input.Status, s.now()),
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	slog.InfoContext(ctx, "task created", "task_id", task.ID, "owner_id", ownerID)
	return task, nil
}

// Update overwrites a task owned by callerID. Tasks owned by anyone else are
// reported as not found, whatever the caller's role.
func (s *TaskService) Update(ctx context.Context, taskID, callerID uint64, input TaskInput) (*models.Task, error) {
	input, err := input.normalize()
	if err != nil {
		return nil, err
	}

	fields := repository.TaskFields{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      input.Status,
		Column:      input.Column,
		CompletedAt: models.CompletionTime(input.Status, s.now()),
	}

	if err := s.taskRepo.UpdateOwned(ctx, taskID, callerID, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.GetTask(ctx, taskID)
}

// Delete removes a task owned by callerID
func (s *TaskService) Delete(ctx context.Context, taskID, callerID uint64) error {
	if err := s.taskRepo.DeleteOwned(ctx, taskID, callerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	slog.InfoContext(ctx, "task deleted", "task_id", taskID, "owner_id", callerID)
	return nil
}
