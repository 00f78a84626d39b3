package service

import (
	"context"
	"errors"
	"time"

	"fitcoach/coach-app/internal/domain"
	"fitcoach/coach-app/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrAssignmentNotFound = errors.New("assignment not found")
)

// AssignmentService freezes program templates into client-owned
// assignments. The copy taken at assignment time is the whole contract:
// after AssignProgram returns, nothing ever propagates program edits into
// the assignment.
type AssignmentService interface {
	AssignProgram(ctx context.Context, clientID, programID primitive.ObjectID, name string, startDate *time.Time) (*domain.Assignment, error)
	GetAssignment(ctx context.Context, id primitive.ObjectID) (*domain.Assignment, error)
	GetAssignmentsForClient(ctx context.Context, clientID primitive.ObjectID) ([]domain.Assignment, error)
	// DeleteAssignment removes the assignment and its session logs. The
	// source program is not touched.
	DeleteAssignment(ctx context.Context, id primitive.ObjectID) error
}

type assignmentService struct {
	programRepo    repository.ProgramRepository
	exerciseRepo   repository.ExerciseRepository
	assignmentRepo repository.AssignmentRepository
	sessionRepo    repository.SessionLogRepository
}

// NewAssignmentService creates a new instance of assignmentService.
func NewAssignmentService(
	programRepo repository.ProgramRepository,
	exerciseRepo repository.ExerciseRepository,
	assignmentRepo repository.AssignmentRepository,
	sessionRepo repository.SessionLogRepository,
) AssignmentService {
	return &assignmentService{
		programRepo:    programRepo,
		exerciseRepo:   exerciseRepo,
		assignmentRepo: assignmentRepo,
		sessionRepo:    sessionRepo,
	}
}

// AssignProgram reads the program and constructs a deep, newly-identified
// copy of its workout structure, denormalizing each exercise's current
// catalog name/type/category into the copy. The whole assignment is
// persisted in one atomic write. Client existence is not validated here;
// an invalid clientId surfaces as a persistence error.
func (s *assignmentService) AssignProgram(ctx context.Context, clientID, programID primitive.ObjectID, name string, startDate *time.Time) (*domain.Assignment, error) {
	program, err := s.programRepo.GetByID(ctx, programID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	if name == "" {
		name = program.Name
	}

	catalog, err := s.resolveCatalog(ctx, program)
	if err != nil {
		return nil, err
	}

	assignment := &domain.Assignment{
		ClientID:  clientID,
		ProgramID: programID,
		Name:      name,
		StartDate: startDate,
		Workouts:  make([]domain.AssignedWorkout, len(program.Workouts)),
	}

	for i, w := range program.Workouts {
		copied := domain.AssignedWorkout{
			ID:        primitive.NewObjectID(),
			Name:      w.Name,
			Order:     w.Order,
			Exercises: make([]domain.AssignedExercise, len(w.Exercises)),
		}
		for j, pe := range w.Exercises {
			ex, ok := catalog[pe.ExerciseID]
			if !ok {
				return nil, ErrExerciseNotFound
			}
			copied.Exercises[j] = domain.AssignedExercise{
				ID:         primitive.NewObjectID(),
				ExerciseID: pe.ExerciseID,
				Name:       ex.Name,
				Type:       ex.Type,
				Category:   ex.Category,
				Order:      pe.Order,
				Sets:       pe.Sets,
				Reps:       pe.Reps,
				Weight:     pe.Weight,
				Duration:   pe.Duration,
				Distance:   pe.Distance,
				Rest:       pe.Rest,
				Notes:      pe.Notes,
			}
		}
		assignment.Workouts[i] = copied
	}

	id, err := s.assignmentRepo.Create(ctx, assignment)
	if err != nil {
		return nil, err
	}
	assignment.ID = id

	logrus.WithFields(logrus.Fields{
		"assignmentId": id.Hex(),
		"programId":    programID.Hex(),
		"clientId":     clientID.Hex(),
		"workouts":     len(assignment.Workouts),
	}).Info("program assigned")

	return assignment, nil
}

// resolveCatalog fetches every catalog entry the program references, once.
func (s *assignmentService) resolveCatalog(ctx context.Context, program *domain.Program) (map[primitive.ObjectID]*domain.Exercise, error) {
	catalog := make(map[primitive.ObjectID]*domain.Exercise)
	for _, w := range program.Workouts {
		for _, pe := range w.Exercises {
			if _, ok := catalog[pe.ExerciseID]; ok {
				continue
			}
			ex, err := s.exerciseRepo.GetByID(ctx, pe.ExerciseID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return nil, ErrExerciseNotFound
				}
				return nil, err
			}
			catalog[pe.ExerciseID] = ex
		}
	}
	return catalog, nil
}

func (s *assignmentService) GetAssignment(ctx context.Context, id primitive.ObjectID) (*domain.Assignment, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return assignment, nil
}

func (s *assignmentService) GetAssignmentsForClient(ctx context.Context, clientID primitive.ObjectID) ([]domain.Assignment, error) {
	return s.assignmentRepo.GetByClientID(ctx, clientID)
}

func (s *assignmentService) DeleteAssignment(ctx context.Context, id primitive.ObjectID) error {
	if err := s.assignmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAssignmentNotFound
		}
		return err
	}
	// Logs recorded against the assignment are unreachable without it.
	return s.sessionRepo.DeleteByAssignmentID(ctx, id)
}
