package repository

import (
	"context"

	"github.com/yukikurage/hero-task-tracker/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(ctx context.Context, id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByOwner lists the tasks of one owner, newest first
func (r *GormTaskRepository) ListByOwner(ctx context.Context, ownerID uint64) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListAll lists every task joined with its owner and assigner
func (r *GormTaskRepository) ListAll(ctx context.Context) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := r.db.WithContext(ctx).
		Joins("Owner").
		Joins("AssignedBy").
		Order("tasks.created_at DESC, tasks.id DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateOwned overwrites the editable fields of a task owned by ownerID.
// A completion time already on the row is kept while the task stays
// completed.
func (r *GormTaskRepository) UpdateOwned(ctx context.Context, taskID, ownerID uint64, fields TaskFields) error {
	var completedAt interface{}
	if fields.CompletedAt != nil {
		completedAt = gorm.Expr("COALESCE(completed_at, ?)", *fields.CompletedAt)
	}

	result := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("id = ? AND owner_id = ?", taskID, ownerID).
		Updates(map[string]interface{}{
			"title":        fields.Title,
			"description":  fields.Description,
			"priority":     fields.Priority,
			"status":       fields.Status,
			"column_type":  fields.Column,
			"completed_at": completedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteOwned deletes a task owned by ownerID
func (r *GormTaskRepository) DeleteOwned(ctx context.Context, taskID, ownerID uint64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", taskID, ownerID).
		Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Reassign transfers a task to newOwnerID and records the assigner
func (r *GormTaskRepository) Reassign(ctx context.Context, taskID, newOwnerID, assignedByID uint64) error {
	result := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("id = ?", taskID).
		Updates(map[string]interface{}{
			"owner_id":       newOwnerID,
			"assigned_by_id": assignedByID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
