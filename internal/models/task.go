package models

import (
	"time"
)

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	return s == TaskStatusPending || s == TaskStatusCompleted
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// TaskColumn is the workflow stage shown on the board. It is tracked
// independently of TaskStatus.
type TaskColumn string

const (
	ColumnTodo      TaskColumn = "todo"
	ColumnProgress  TaskColumn = "progress"
	ColumnCompleted TaskColumn = "completed"
)

func (c TaskColumn) Valid() bool {
	switch c {
	case ColumnTodo, ColumnProgress, ColumnCompleted:
		return true
	}
	return false
}

type Task struct {
	ID           uint64       `gorm:"primarykey" json:"id"`
	OwnerID      uint64       `gorm:"not null;index" json:"owner_id"`
	AssignedByID *uint64      `json:"assigned_by_id"`
	Title        string       `gorm:"type:varchar(255);not null" json:"title"`
	Description  string       `gorm:"type:text" json:"description"`
	Priority     TaskPriority `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	Status       TaskStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Column       TaskColumn   `gorm:"column:column_type;type:varchar(20);not null;default:'todo'" json:"column"`
	CreatedAt    time.Time    `json:"created_at"`
	CompletedAt  *time.Time   `json:"completed_at"`

	// Relations
	Owner      User `gorm:"foreignKey:OwnerID" json:"-"`
	AssignedBy User `gorm:"foreignKey:AssignedByID" json:"-"`
}

// CompletionTime returns the completed_at value that matches status.
func CompletionTime(status TaskStatus, now time.Time) *time.Time {
	if status != TaskStatusCompleted {
		return nil
	}
	return &now
}
