package service_test

import (
	"context"
	"sort"

	"github.com/michalina-sz/exercise-tracker/internal/domain"
	"github.com/michalina-sz/exercise-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUserRepo is an in-memory repository.UserRepository.
type fakeUserRepo struct {
	users map[primitive.ObjectID]domain.User
	err   error // forced failure for every call when set
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]domain.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	r.users[user.ID] = *user
	return user.ID, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) GetAll(ctx context.Context) ([]domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	users := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

// fakeExerciseRepo is an in-memory repository.ExerciseRepository with the
// same filter semantics as the Mongo implementation.
type fakeExerciseRepo struct {
	exercises []domain.Exercise
	err       error
}

func (r *fakeExerciseRepo) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	exercise.ID = primitive.NewObjectID()
	r.exercises = append(r.exercises, *exercise)
	return exercise.ID, nil
}

func (r *fakeExerciseRepo) Find(ctx context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error) {
	if r.err != nil {
		return nil, r.err
	}
	if filter.Limit != nil && *filter.Limit == 0 {
		return []domain.Exercise{}, nil
	}
	matched := r.matching(filter)
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date.Before(matched[j].Date)
	})
	if filter.Limit != nil && int64(len(matched)) > *filter.Limit {
		matched = matched[:*filter.Limit]
	}
	return matched, nil
}

func (r *fakeExerciseRepo) Count(ctx context.Context, filter repository.ExerciseFilter) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.matching(filter))), nil
}

func (r *fakeExerciseRepo) matching(filter repository.ExerciseFilter) []domain.Exercise {
	matched := []domain.Exercise{}
	for _, exercise := range r.exercises {
		if exercise.UserID != filter.UserID {
			continue
		}
		if filter.From != nil && exercise.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && exercise.Date.After(*filter.To) {
			continue
		}
		matched = append(matched, exercise)
	}
	return matched
}
