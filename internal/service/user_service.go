package service

import (
	"context"
	"errors"
	"strings"

	"github.com/michalina-sz/exercise-tracker/internal/domain"
	"github.com/michalina-sz/exercise-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrUsernameRequired  = errors.New("username is required")
	ErrDuplicateUsername = errors.New("username must be unique")
	ErrUserNotFound      = errors.New("User not found")
)

// UserService handles user registration and listing.
type UserService interface {
	Create(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// userService implements the UserService interface.
type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

// Create registers a new user. The username is trimmed of surrounding
// whitespace and must be non-empty and unique.
func (s *userService) Create(ctx context.Context, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	user := &domain.User{Username: username}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	user.ID = userID

	return user, nil
}

// List returns every registered user.
func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// resolveUser looks up a user by the hex id taken from the request path.
// An id that is not valid ObjectID hex cannot reference any user, so it
// maps to ErrUserNotFound like any other missing user.
func resolveUser(ctx context.Context, userRepo repository.UserRepository, id string) (*domain.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user, err := userRepo.GetByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
