package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/michalina-sz/exercise-tracker/internal/domain"
	"github.com/michalina-sz/exercise-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository
type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates a new Exercise repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
	}
}

// Create inserts a new exercise into the database.
func (r *mongoExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if exercise.UserID == primitive.NilObjectID || exercise.Description == "" {
		return primitive.NilObjectID, errors.New("exercise user ID and description are required")
	}

	exercise.ID = primitive.NewObjectID()
	exercise.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, exercise)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// Find retrieves the exercises matching the filter, sorted by date ascending.
func (r *mongoExerciseRepository) Find(ctx context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error) {
	// The driver treats a limit of 0 as "no limit", but the contract here is
	// "zero rows", so short-circuit before hitting the database.
	if filter.Limit != nil && *filter.Limit == 0 {
		return []domain.Exercise{}, nil
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	if filter.Limit != nil {
		findOptions.SetLimit(*filter.Limit)
	}

	var exercises []domain.Exercise
	cursor, err := r.collection.Find(ctx, buildExerciseQuery(filter), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}

	if err = cursor.Err(); err != nil {
		return nil, err
	}

	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	return exercises, nil
}

// Count returns the size of the full filtered set, ignoring any limit.
func (r *mongoExerciseRepository) Count(ctx context.Context, filter repository.ExerciseFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, buildExerciseQuery(filter))
}

// buildExerciseQuery translates an ExerciseFilter into a bson filter document.
// Date bounds are inclusive on both ends.
func buildExerciseQuery(filter repository.ExerciseFilter) bson.M {
	query := bson.M{"userId": filter.UserID}

	dateRange := bson.M{}
	if filter.From != nil {
		dateRange["$gte"] = *filter.From
	}
	if filter.To != nil {
		dateRange["$lte"] = *filter.To
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}

	return query
}

// EnsureExerciseIndexes creates necessary indexes for the exercises collection.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// Log queries filter by user and sort by date.
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
