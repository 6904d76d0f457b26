package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yukikurage/hero-task-tracker/internal/models"
)

var (
	ErrSubmitterNameRequired    = kindError(ErrValidation, "submitter name is required")
	ErrSubmitterContactRequired = kindError(ErrValidation, "submitter contact is required")
	ErrDescriptionRequired      = kindError(ErrValidation, "description is required")
)

// IntakeService accepts task requests from unauthenticated submitters and
// queues them for the default administrator.
type IntakeService struct {
	tasks *TaskService
}

// NewIntakeService creates a new IntakeService
func NewIntakeService(tasks *TaskService) *IntakeService {
	return &IntakeService{tasks: tasks}
}

// SubmitInput is a public task request.
type SubmitInput struct {
	SubmitterName    string
	SubmitterContact string
	Title            string
	Description      string
	Priority         models.TaskPriority
	Deadline         string
}

// Submit creates a pending todo task owned by the default administrator.
func (s *IntakeService) Submit(ctx context.Context, input SubmitInput) (*models.Task, error) {
	name := strings.TrimSpace(input.SubmitterName)
	contact := strings.TrimSpace(input.SubmitterContact)
	description := strings.TrimSpace(input.Description)

	switch {
	case name == "":
		return nil, ErrSubmitterNameRequired
	case contact == "":
		return nil, ErrSubmitterContactRequired
	case strings.TrimSpace(input.Title) == "":
		return nil, ErrTitleRequired
	case description == "":
		return nil, ErrDescriptionRequired
	}

	priority := input.Priority
	if !priority.Valid() {
		priority = models.PriorityMedium
	}

	task, err := s.tasks.Create(ctx, models.ProtectedAdminID(), nil, TaskInput{
		Title:       input.Title,
		Description: FormatSubmission(name, contact, strings.TrimSpace(input.Deadline), description),
		Priority:    priority,
		Status:      models.TaskStatusPending,
		Column:      models.ColumnTodo,
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "public task submitted", "task_id", task.ID, "submitter", name)
	return task, nil
}

// FormatSubmission renders the plain-text description stored for a public
// submission: contact block, optional deadline, then the request itself.
func FormatSubmission(name, contact, deadline, description string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[Contact] %s\n", name)
	fmt.Fprintf(&b, "[Contact Info] %s\n", contact)
	if deadline != "" {
		fmt.Fprintf(&b, "[Deadline] %s\n", deadline)
	}
	b.WriteString("\n[Task Details]\n")
	b.WriteString(description)
	return b.String()
}
