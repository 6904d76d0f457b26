package repository

import (
	"context"
	"fmt"

	"github.com/yukikurage/hero-task-tracker/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// CreateIfAbsent inserts a user with a preset ID, leaving any existing row alone.
func (r *GormUserRepository) CreateIfAbsent(ctx context.Context, user *models.User) (bool, error) {
	var inserted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(user)
		if result.Error != nil {
			return result.Error
		}
		inserted = result.RowsAffected > 0
		if !inserted || tx.Dialector.Name() != "postgres" {
			return nil
		}

		// An explicit id does not advance the postgres sequence.
		if err := tx.Exec("SELECT setval(pg_get_serial_sequence('users', 'id'), (SELECT MAX(id) FROM users))").Error; err != nil {
			return fmt.Errorf("failed to reset users id sequence: %w", err)
		}
		return nil
	})
	return inserted, err
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List lists all users, newest first
func (r *GormUserRepository) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateRole changes the role of a user
func (r *GormUserRepository) UpdateRole(ctx context.Context, id uint64, role models.Role) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteIfNoTasks deletes a user unless it still owns tasks. Tasks the user
// assigned keep their owner and lose the assigner reference.
func (r *GormUserRepository) DeleteIfNoTasks(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("id = ? AND NOT EXISTS (SELECT 1 FROM tasks WHERE tasks.owner_id = ?)", id, id).
			Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(&models.Task{}).
			Where("assigned_by_id = ?", id).
			Update("assigned_by_id", nil).Error
	})
}
