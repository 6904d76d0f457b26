// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/hero-task-tracker/internal/database"
	"github.com/yukikurage/hero-task-tracker/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a migrated in-memory SQLite database. The pool is pinned to a
// single connection because every ":memory:" connection is its own database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), database.GormConfig(logger.Silent))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.Migrate(db))
	return db
}

// CreateUser inserts a user directly, bypassing validation and hashing.
func CreateUser(t *testing.T, db *gorm.DB, username string, role models.Role) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		PasswordHash: "hashedpassword",
		DisplayName:  username + " display",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateAdmin inserts the protected administrator with id 1.
func CreateAdmin(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	admin := &models.User{
		ID:           1,
		Username:     "admin",
		PasswordHash: "hashedpassword",
		DisplayName:  "System Administrator",
		Role:         models.RoleAdmin,
	}
	require.NoError(t, db.Create(admin).Error)
	return admin
}

// CreateTask inserts a pending todo task owned by ownerID.
func CreateTask(t *testing.T, db *gorm.DB, title string, ownerID uint64) *models.Task {
	t.Helper()

	task := &models.Task{
		OwnerID:     ownerID,
		Title:       title,
		Description: "Test Description",
		Priority:    models.PriorityMedium,
		Status:      models.TaskStatusPending,
		Column:      models.ColumnTodo,
	}
	require.NoError(t, db.Create(task).Error)
	return task
}

// CreateCompletedTask inserts a task completed at completedAt.
func CreateCompletedTask(t *testing.T, db *gorm.DB, title string, ownerID uint64, completedAt time.Time) *models.Task {
	t.Helper()

	task := &models.Task{
		OwnerID:     ownerID,
		Title:       title,
		Priority:    models.PriorityMedium,
		Status:      models.TaskStatusCompleted,
		Column:      models.ColumnCompleted,
		CompletedAt: &completedAt,
	}
	require.NoError(t, db.Create(task).Error)
	return task
}
