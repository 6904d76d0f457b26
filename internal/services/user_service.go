package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yukikurage/hero-task-tracker/internal/constants"
	"github.com/yukikurage/hero-task-tracker/internal/models"
	"github.com/yukikurage/hero-task-tracker/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameRequired = kindError(ErrValidation, "username is required")
	ErrPasswordTooShort = kindError(ErrValidation, "password too short")
	ErrUsernameTaken    = kindError(ErrConflict, "username already exists")
)

// UserService is the user directory: account creation, listing, deletion and
// the seeded default administrator.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// CreateUserInput represents a new account.
type CreateUserInput struct {
	Username    string
	Password    string
	DisplayName string
	Role        models.Role
}

// EnsureAdmin seeds the default administrator with the protected ID. It is
// safe to call on every start: an existing account keeps its credentials but
// is forced back to the admin role.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &models.User{
		ID:           models.ProtectedAdminID(),
		Username:     username,
		PasswordHash: hash,
		DisplayName:  "System Administrator",
		Role:         models.RoleAdmin,
	}

	inserted, err := s.userRepo.CreateIfAbsent(ctx, admin)
	if err != nil {
		return nil, fmt.Errorf("failed to seed admin: %w", err)
	}
	if inserted {
		slog.InfoContext(ctx, "default administrator created", "username", username)
		return admin, nil
	}

	existing, err := s.userRepo.FindByID(ctx, models.ProtectedAdminID())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to seed admin: username %q is taken by another account", username)
		}
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}
	if existing.Role != models.RoleAdmin {
		if err := s.userRepo.UpdateRole(ctx, existing.ID, models.RoleAdmin); err != nil {
			return nil, fmt.Errorf("failed to restore admin role: %w", err)
		}
		existing.Role = models.RoleAdmin
		slog.WarnContext(ctx, "default administrator role restored", "user_id", existing.ID)
	}
	return existing, nil
}

// ListUsers returns every account, newest first
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CreateUser validates and stores a new account. Role defaults to user.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	role := input.Role
	if role == "" {
		role = models.RoleUser
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		DisplayName:  strings.TrimSpace(input.DisplayName),
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.InfoContext(ctx, "user created", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// DeleteUser removes an account. Only admins may delete, the default
// administrator never can be, and users that still own tasks are refused.
// Tasks the user had assigned to others lose their assigner.
func (s *UserService) DeleteUser(ctx context.Context, callerRole models.Role, userID uint64) error {
	if callerRole != models.RoleAdmin {
		return ErrAdminRequired
	}
	if models.IsProtectedAdmin(userID) {
		return ErrProtectedAdmin
	}

	if err := s.userRepo.DeleteIfNoTasks(ctx, userID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		// nothing deleted: either the user is gone or it still owns tasks
		if _, err := s.GetUser(ctx, userID); err != nil {
			return err
		}
		return ErrUserHasTasks
	}

	slog.InfoContext(ctx, "user deleted", "user_id", userID)
	return nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
