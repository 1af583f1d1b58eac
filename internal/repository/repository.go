package repository

import (
	"context"
	"time"

	"github.com/michalina-sz/exercise-tracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
}

// ExerciseFilter selects a user's exercises within an optional date window.
// From and To are inclusive bounds. A nil Limit means "no limit"; a Limit of
// zero means zero rows (Count is unaffected by Limit either way).
type ExerciseFilter struct {
	UserID primitive.ObjectID
	From   *time.Time
	To     *time.Time
	Limit  *int64
}

// ExerciseRepository defines the interface for interacting with exercise data.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	Find(ctx context.Context, filter ExerciseFilter) ([]domain.Exercise, error)
	Count(ctx context.Context, filter ExerciseFilter) (int64, error)
}
