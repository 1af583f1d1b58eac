package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/michalina-sz/exercise-tracker/internal/domain"
	"github.com/michalina-sz/exercise-tracker/internal/repository"
)

// --- Error Definitions ---
var (
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidDuration     = errors.New("duration must be an integer and greater than zero")
	ErrInvalidDate         = errors.New("date must be YYYY-MM-DD")
	ErrInvalidLimit        = errors.New("limit must be a non-negative integer")
)

// ExerciseLog is the result of a log query: the full filtered count plus the
// (possibly limit-truncated) entries, sorted by date ascending.
type ExerciseLog struct {
	User    *domain.User
	Count   int64
	Entries []domain.Exercise
}

// ExerciseService handles logging exercises and querying a user's log.
// Inputs arrive as the raw strings taken from the request; all parsing and
// validation happens here so it is testable without a database.
type ExerciseService interface {
	Add(ctx context.Context, userID, description, duration, date string) (*domain.User, *domain.Exercise, error)
	Log(ctx context.Context, userID, from, to, limit string) (*ExerciseLog, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(userRepo repository.UserRepository, exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
	}
}

// Add validates and persists one exercise against an existing user.
// Validation order: description, duration, date, then user existence.
func (s *exerciseService) Add(ctx context.Context, userID, description, duration, date string) (*domain.User, *domain.Exercise, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, nil, ErrDescriptionRequired
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(duration))
	if err != nil || minutes <= 0 {
		return nil, nil, ErrInvalidDuration
	}

	exerciseDate := domain.Today()
	if strings.TrimSpace(date) != "" {
		exerciseDate, err = domain.ParseDate(strings.TrimSpace(date))
		if err != nil {
			return nil, nil, ErrInvalidDate
		}
	}

	user, err := resolveUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, nil, err
	}

	exercise := &domain.Exercise{
		UserID:      user.ID,
		Description: description,
		Duration:    minutes,
		Date:        exerciseDate,
	}

	exerciseID, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, nil, err
	}
	exercise.ID = exerciseID

	return user, exercise, nil
}

// Log returns a user's exercises filtered by the optional from/to date window
// (inclusive bounds) and truncated to limit entries. Count always reflects the
// full filtered set; a limit of zero yields zero entries.
func (s *exerciseService) Log(ctx context.Context, userID, from, to, limit string) (*ExerciseLog, error) {
	user, err := resolveUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}

	filter := repository.ExerciseFilter{UserID: user.ID}

	if from != "" {
		fromDate, err := domain.ParseDate(from)
		if err != nil {
			return nil, ErrInvalidDate
		}
		filter.From = &fromDate
	}
	if to != "" {
		toDate, err := domain.ParseDate(to)
		if err != nil {
			return nil, ErrInvalidDate
		}
		filter.To = &toDate
	}
	if limit != "" {
		n, err := strconv.ParseInt(limit, 10, 64)
		if err != nil || n < 0 {
			return nil, ErrInvalidLimit
		}
		filter.Limit = &n
	}

	count, err := s.exerciseRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	entries, err := s.exerciseRepo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ExerciseLog{
		User:    user,
		Count:   count,
		Entries: entries,
	}, nil
}
