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

const sessionLogCollectionName = "session_logs"

// mongoSessionLogRepository implements repository.SessionLogRepository
type mongoSessionLogRepository struct {
	collection *mongo.Collection
}

// NewMongoSessionLogRepository creates a new SessionLog repository backed by MongoDB.
func NewMongoSessionLogRepository(db *mongo.Database) repository.SessionLogRepository {
	return &mongoSessionLogRepository{
		collection: db.Collection(sessionLogCollectionName),
	}
}

// Create inserts a session log with all nested exercises and set details in
// one write. Either the whole log lands or none of it does.
func (r *mongoSessionLogRepository) Create(ctx context.Context, log *domain.SessionLog) (primitive.ObjectID, error) {
	if log.AssignmentID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("assignment ID is required")
	}

	log.ID = primitive.NewObjectID()
	log.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, log)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves one session log.
func (r *mongoSessionLogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.SessionLog, error) {
	var log domain.SessionLog

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

// List returns every session log, newest first.
func (r *mongoSessionLogRepository) List(ctx context.Context) ([]domain.SessionLog, error) {
	return r.find(ctx, bson.M{})
}

// GetByAssignmentIDs returns the logs recorded against the given
// assignments, newest first.
func (r *mongoSessionLogRepository) GetByAssignmentIDs(ctx context.Context, assignmentIDs []primitive.ObjectID) ([]domain.SessionLog, error) {
	if len(assignmentIDs) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"assignmentId": bson.M{"$in": assignmentIDs}})
}

func (r *mongoSessionLogRepository) find(ctx context.Context, filter bson.M) ([]domain.SessionLog, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []domain.SessionLog
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// DeleteByAssignmentID removes every log recorded against one assignment.
func (r *mongoSessionLogRepository) DeleteByAssignmentID(ctx context.Context, assignmentID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"assignmentId": assignmentID})
	return err
}

// DeleteByAssignmentIDs removes every log recorded against any of the given
// assignments.
func (r *mongoSessionLogRepository) DeleteByAssignmentIDs(ctx context.Context, assignmentIDs []primitive.ObjectID) error {
	if len(assignmentIDs) == 0 {
		return nil
	}
	_, err := r.collection.DeleteMany(ctx, bson.M{"assignmentId": bson.M{"$in": assignmentIDs}})
	return err
}

// EnsureSessionLogIndexes creates the indexes for the session_logs collection.
func EnsureSessionLogIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "assignmentId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "date", Value: -1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
