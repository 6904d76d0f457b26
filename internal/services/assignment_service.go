package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/yukikurage/hero-task-tracker/internal/models"
	"github.com/yukikurage/hero-task-tracker/internal/repository"
	"gorm.io/gorm"
)

// AssignmentService creates tasks across ownership boundaries and transfers
// ownership between users.
type AssignmentService struct {
	tasks    *TaskService
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(tasks *TaskService, taskRepo repository.TaskRepository, userRepo repository.UserRepository) *AssignmentService {
	return &AssignmentService{
		tasks:    tasks,
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// CreateFor creates a task for the caller, or for targetUserID when given.
// Targeting another user is restricted to admins and records the caller as
// the assigner.
func (s *AssignmentService) CreateFor(ctx context.Context, callerID uint64, callerRole models.Role, targetUserID *uint64, input TaskInput) (*models.Task, error) {
	if targetUserID == nil {
		if err := s.ensureUserExists(ctx, callerID); err != nil {
			if errors.Is(err, ErrAssigneeNotFound) {
				return nil, ErrAccountRemoved
			}
			return nil, err
		}
		return s.tasks.Create(ctx, callerID, nil, input)
	}

	if callerRole != models.RoleAdmin {
		return nil, ErrAdminRequired
	}
	if err := s.ensureUserExists(ctx, *targetUserID); err != nil {
		return nil, err
	}

	assigner := callerID
	return s.tasks.Create(ctx, *targetUserID, &assigner, input)
}

// Reassign hands a task to newOwnerID. Only owner_id and assigned_by_id
// change; concurrent writers are not coordinated.
func (s *AssignmentService) Reassign(ctx context.Context, taskID, newOwnerID, callerID uint64, callerRole models.Role) error {
	if callerRole != models.RoleAdmin {
		return ErrAdminRequired
	}
	if newOwnerID == 0 {
		return ErrAssigneeRequired
	}
	if err := s.ensureUserExists(ctx, newOwnerID); err != nil {
		return err
	}

	if err := s.taskRepo.Reassign(ctx, taskID, newOwnerID, callerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to reassign task: %w", err)
	}

	slog.InfoContext(ctx, "task reassigned", "task_id", taskID, "owner_id", newOwnerID, "assigned_by", callerID)
	return nil
}

func (s *AssignmentService) ensureUserExists(ctx context.Context, userID uint64) error {
	if userID == 0 {
		return ErrAssigneeRequired
	}
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssigneeNotFound
		}
		return fmt.Errorf("failed to verify user: %w", err)
	}
	return nil
}
