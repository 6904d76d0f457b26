package services

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a service either wraps exactly one of
// these or is an unexpected storage failure.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrConflict        = errors.New("conflict")
)

func kindError(kind error, message string) error {
	return fmt.Errorf("%w: %s", kind, message)
}

var (
	ErrTaskNotFound      = kindError(ErrNotFound, "task not found")
	ErrUserNotFound      = kindError(ErrNotFound, "user not found")
	ErrTitleRequired     = kindError(ErrValidation, "title is required")
	ErrInvalidPriority   = kindError(ErrValidation, "invalid priority")
	ErrInvalidStatus     = kindError(ErrValidation, "invalid status")
	ErrInvalidColumn     = kindError(ErrValidation, "invalid column")
	ErrInvalidRole       = kindError(ErrValidation, "invalid role")
	ErrAssigneeRequired  = kindError(ErrValidation, "target user is required")
	ErrAssigneeNotFound  = kindError(ErrValidation, "target user does not exist")
	ErrInvalidStatsRange = kindError(ErrValidation, "days must be a positive number")
	ErrAdminRequired     = kindError(ErrForbidden, "admin role required")
	ErrProtectedAdmin    = kindError(ErrForbidden, "the default administrator cannot be deleted")
	ErrUserHasTasks      = kindError(ErrConflict, "user still owns tasks; reassign them first")
	ErrAccountRemoved    = kindError(ErrUnauthenticated, "account no longer exists")
)
