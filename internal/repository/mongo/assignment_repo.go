package mongo

import (
	"context"
	"errors"
	"time"

	"fitcoach/coach-app/internal/domain"
	"fitcoach/coach-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const assignmentCollectionName = "assignments"

// mongoAssignmentRepository implements repository.AssignmentRepository
type mongoAssignmentRepository struct {
	collection *mongo.Collection
}

// NewMongoAssignmentRepository creates a new Assignment repository backed by MongoDB.
func NewMongoAssignmentRepository(db *mongo.Database) repository.AssignmentRepository {
	return &mongoAssignmentRepository{
		collection: db.Collection(assignmentCollectionName),
	}
}

// Create inserts an assignment with its full frozen workout copy in a
// single write. The embedded structure makes the multi-row create atomic.
func (r *mongoAssignmentRepository) Create(ctx context.Context, assignment *domain.Assignment) (primitive.ObjectID, error) {
	if assignment.ClientID == primitive.NilObjectID || assignment.ProgramID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("client ID and program ID are required")
	}

	assignment.ID = primitive.NewObjectID()
	assignment.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, assignment)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves an assignment with its frozen workout copy.
func (r *mongoAssignmentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Assignment, error) {
	var assignment domain.Assignment

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&assignment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

// List returns all assignments, newest first.
func (r *mongoAssignmentRepository) List(ctx context.Context) ([]domain.Assignment, error) {
	return r.find(ctx, bson.M{})
}

// GetByClientID returns a client's assignments, newest first.
func (r *mongoAssignmentRepository) GetByClientID(ctx context.Context, clientID primitive.ObjectID) ([]domain.Assignment, error) {
	return r.find(ctx, bson.M{"clientId": clientID})
}

// GetByExercise returns assignments whose frozen copies contain the matched
// exercise. The id match is tried first; the name fallback exists because
// older copies may predate the denormalized exerciseId (renaming an
// exercise breaks name continuity, a known weakness kept for compatibility).
func (r *mongoAssignmentRepository) GetByExercise(ctx context.Context, matcher repository.ExerciseMatcher) ([]domain.Assignment, error) {
	if matcher.ExerciseID != primitive.NilObjectID {
		assignments, err := r.find(ctx, bson.M{"workouts.exercises.exerciseId": matcher.ExerciseID})
		if err != nil {
			return nil, err
		}
		if len(assignments) > 0 {
			return assignments, nil
		}
	}
	if matcher.Name == "" {
		return nil, nil
	}
	return r.find(ctx, bson.M{"workouts.exercises.name": matcher.Name})
}

func (r *mongoAssignmentRepository) find(ctx context.Context, filter bson.M) ([]domain.Assignment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assignments []domain.Assignment
	if err = cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// Delete removes one assignment. Cascading its session logs is the service
// layer's job.
func (r *mongoAssignmentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteByClientID removes all of a client's assignments and returns the
// removed ids so the caller can cascade to session logs.
func (r *mongoAssignmentRepository) DeleteByClientID(ctx context.Context, clientID primitive.ObjectID) ([]primitive.ObjectID, error) {
	assignments, err := r.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.ID)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	if _, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}}); err != nil {
		return nil, err
	}
	return ids, nil
}

// EnsureAssignmentIndexes creates the indexes for the assignments collection.
func EnsureAssignmentIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "clientId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "workouts.exercises.exerciseId", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
