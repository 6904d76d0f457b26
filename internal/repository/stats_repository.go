package repository

import (
	"context"
	"time"

	"github.com/yukikurage/hero-task-tracker/internal/models"
	"gorm.io/gorm"
)

// GormStatsRepository is a GORM implementation of StatsRepository
type GormStatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &GormStatsRepository{db: db}
}

// CompletedSince returns tasks completed at or after since, newest first
func (r *GormStatsRepository) CompletedSince(ctx context.Context, since time.Time) ([]CompletedTask, error) {
	rows := []CompletedTask{}
	err := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Select("id, title, completed_at").
		Where("completed_at IS NOT NULL AND completed_at >= ?", since).
		Order("completed_at DESC, id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountsByUser returns task counts for every user with role "user",
// including users that own no tasks.
func (r *GormStatsRepository) CountsByUser(ctx context.Context) ([]UserTaskCounts, error) {
	rows := []UserTaskCounts{}
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select(`users.id AS user_id, users.username AS username, users.display_name AS display_name,
			COALESCE(SUM(CASE WHEN tasks.id IS NOT NULL AND tasks.status <> ? THEN 1 ELSE 0 END), 0) AS pending_count,
			COALESCE(SUM(CASE WHEN tasks.status = ? THEN 1 ELSE 0 END), 0) AS completed_count,
			COUNT(tasks.id) AS total_count`,
			models.TaskStatusCompleted, models.TaskStatusCompleted).
		Joins("LEFT JOIN tasks ON tasks.owner_id = users.id").
		Where("users.role = ?", models.RoleUser).
		Group("users.id, users.username, users.display_name").
		Order("pending_count DESC, users.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
