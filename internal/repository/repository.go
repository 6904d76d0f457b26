package repository

import (
	"context"
	"time"

	"github.com/yukikurage/hero-task-tracker/internal/models"
)

// TaskRepository defines the interface for task data access.
//
// Mutations that act on behalf of a caller carry the caller in the write
// predicate; a row outside that scope is reported as gorm.ErrRecordNotFound.
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *models.Task) error

	// FindByID finds a task by ID
	FindByID(ctx context.Context, id uint64) (*models.Task, error)

	// ListByOwner lists the tasks of one owner, newest first
	ListByOwner(ctx context.Context, ownerID uint64) ([]models.Task, error)

	// ListAll lists every task with owner and assigner joined in, newest first
	ListAll(ctx context.Context) ([]models.Task, error)

	// UpdateOwned overwrites the editable fields of a task owned by ownerID
	UpdateOwned(ctx context.Context, taskID, ownerID uint64, fields TaskFields) error

	// DeleteOwned deletes a task owned by ownerID
	DeleteOwned(ctx context.Context, taskID, ownerID uint64) error

	// Reassign transfers a task to newOwnerID and records the assigner
	Reassign(ctx context.Context, taskID, newOwnerID, assignedByID uint64) error
}

// TaskFields holds the owner-editable columns of a task.
type TaskFields struct {
	Title       string
	Description string
	Priority    models.TaskPriority
	Status      models.TaskStatus
	Column      models.TaskColumn
	CompletedAt *time.Time
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// CreateIfAbsent inserts user with its preset ID unless a row with that
	// ID already exists. It reports whether a row was inserted.
	CreateIfAbsent(ctx context.Context, user *models.User) (bool, error)

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// List lists all users, newest first
	List(ctx context.Context) ([]models.User, error)

	// UpdateRole changes the role of a user
	UpdateRole(ctx context.Context, id uint64, role models.Role) error

	// DeleteIfNoTasks deletes a user that owns no tasks in a single
	// conditional statement and clears it as the assigner of any task.
	// It returns gorm.ErrRecordNotFound when no row was deleted.
	DeleteIfNoTasks(ctx context.Context, id uint64) error
}

// StatsRepository defines the read-only aggregate queries.
type StatsRepository interface {
	// CompletedSince returns tasks completed at or after since, newest first
	CompletedSince(ctx context.Context, since time.Time) ([]CompletedTask, error)

	// CountsByUser returns task counts for every user with role "user"
	CountsByUser(ctx context.Context) ([]UserTaskCounts, error)
}

// CompletedTask is a projection of a completed task.
type CompletedTask struct {
	ID          uint64
	Title       string
	CompletedAt time.Time
}

// UserTaskCounts is one row of the per-user aggregate.
type UserTaskCounts struct {
	UserID         uint64
	Username       string
	DisplayName    string
	PendingCount   int64
	CompletedCount int64
	TotalCount     int64
}
