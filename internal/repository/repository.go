package repository

import (
	"context"

	"fitcoach/coach-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// CoachRepository persists coach accounts.
type CoachRepository interface {
	Create(ctx context.Context, coach *domain.Coach) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.Coach, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Coach, error)
}

// ExerciseRepository persists the exercise catalog.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	// List returns the whole catalog, seeded exercises first, then by name.
	List(ctx context.Context) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// ProgramRepository persists program templates. Workouts are embedded, so
// Create and Update are single-document (atomic) writes.
type ProgramRepository interface {
	Create(ctx context.Context, program *domain.Program) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Program, error)
	List(ctx context.Context) ([]domain.Program, error)
	Update(ctx context.Context, program *domain.Program) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ExerciseMatcher selects assignments containing a given exercise in any of
// their frozen workout copies. Matching is by denormalized exerciseId first,
// falling back to exact name equality when the id yields nothing.
type ExerciseMatcher struct {
	ExerciseID primitive.ObjectID
	Name       string
}

// AssignmentRepository persists assignments (frozen program copies).
// Creating an assignment inserts the document with all embedded workout and
// exercise copies in one write; no partially populated assignment is ever
// observable.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.Assignment) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Assignment, error)
	List(ctx context.Context) ([]domain.Assignment, error)
	GetByClientID(ctx context.Context, clientID primitive.ObjectID) ([]domain.Assignment, error)
	GetByExercise(ctx context.Context, matcher ExerciseMatcher) ([]domain.Assignment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// DeleteByClientID removes all of a client's assignments and returns the
	// ids of the removed documents so dependent logs can be cleaned up.
	DeleteByClientID(ctx context.Context, clientID primitive.ObjectID) ([]primitive.ObjectID, error)
}

// SessionLogRepository persists committed session logs. A log embeds its
// session exercises and set details, so Create is one atomic write.
type SessionLogRepository interface {
	Create(ctx context.Context, log *domain.SessionLog) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.SessionLog, error)
	// List returns all logs, newest first.
	List(ctx context.Context) ([]domain.SessionLog, error)
	// GetByAssignmentIDs returns logs for the given assignments, newest first.
	GetByAssignmentIDs(ctx context.Context, assignmentIDs []primitive.ObjectID) ([]domain.SessionLog, error)
	DeleteByAssignmentID(ctx context.Context, assignmentID primitive.ObjectID) error
	DeleteByAssignmentIDs(ctx context.Context, assignmentIDs []primitive.ObjectID) error
}

// ClientRepository persists client profiles.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Client, error)
	// List returns all clients ordered by name.
	List(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MeasurementRepository persists body-measurement time series.
type MeasurementRepository interface {
	Create(ctx context.Context, m *domain.Measurement) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Measurement, error)
	// GetByClientID returns the client's measurements ordered newest first.
	GetByClientID(ctx context.Context, clientID primitive.ObjectID) ([]domain.Measurement, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByClientID(ctx context.Context, clientID primitive.ObjectID) error
}
