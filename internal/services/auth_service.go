package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/hero-task-tracker/internal/models"
	"github.com/yukikurage/hero-task-tracker/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = kindError(ErrUnauthenticated, "invalid username or password")

// AuthService handles authentication related business logic.
type AuthService struct {
	userRepo repository.UserRepository
	users    *UserService
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, users *UserService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		users:    users,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Username    string
	Password    string
	DisplayName string
}

// Register creates a new account. Self-registration always yields the user
// role; admins are created through the user directory.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	return s.users.CreateUser(ctx, CreateUserInput{
		Username:    input.Username,
		Password:    input.Password,
		DisplayName: input.DisplayName,
		Role:        models.RoleUser,
	})
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns the authenticated user.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(ctx context.Context, id uint64) (*models.User, error) {
	return s.users.GetUser(ctx, id)
}
