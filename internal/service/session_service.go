package service

import (
	"context"
	"errors"

	"fitcoach/coach-app/internal/domain"
	"fitcoach/coach-app/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrWorkoutIndexRange = errors.New("workout index out of range for assignment")
)

// SessionService is the terminal half of the session recorder: it takes a
// composed session log and persists it as one immutable record.
type SessionService interface {
	// CommitSession persists the log atomically. If the underlying
	// assignment was deleted concurrently it fails with
	// ErrAssignmentNotFound and writes nothing; the caller keeps the
	// in-progress state for retry.
	CommitSession(ctx context.Context, log *domain.SessionLog) (*domain.SessionLog, error)
	GetSessionLogsForClient(ctx context.Context, clientID primitive.ObjectID) ([]domain.SessionLog, error)
}

type sessionService struct {
	assignmentRepo repository.AssignmentRepository
	sessionRepo    repository.SessionLogRepository
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(assignmentRepo repository.AssignmentRepository, sessionRepo repository.SessionLogRepository) SessionService {
	return &sessionService{
		assignmentRepo: assignmentRepo,
		sessionRepo:    sessionRepo,
	}
}

func (s *sessionService) CommitSession(ctx context.Context, log *domain.SessionLog) (*domain.SessionLog, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, log.AssignmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	if log.WorkoutIndex < 0 || log.WorkoutIndex >= len(assignment.Workouts) {
		return nil, ErrWorkoutIndexRange
	}

	id, err := s.sessionRepo.Create(ctx, log)
	if err != nil {
		return nil, err
	}
	log.ID = id

	logrus.WithFields(logrus.Fields{
		"sessionLogId": id.Hex(),
		"assignmentId": log.AssignmentID.Hex(),
		"workoutIndex": log.WorkoutIndex,
		"exercises":    len(log.Exercises),
	}).Info("session committed")

	return log, nil
}

// GetSessionLogsForClient returns all logs recorded against any of the
// client's assignments, newest first.
func (s *sessionService) GetSessionLogsForClient(ctx context.Context, clientID primitive.ObjectID) ([]domain.SessionLog, error) {
	assignments, err := s.assignmentRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.ID)
	}
	return s.sessionRepo.GetByAssignmentIDs(ctx, ids)
}
