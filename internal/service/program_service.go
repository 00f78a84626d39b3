package service

import (
	"context"
	"errors"

	"fitcoach/coach-app/internal/domain"
	"fitcoach/coach-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrProgramNotFound = errors.New("program not found")
)

// WorkoutInput is one workout as submitted by the program editor. Order is
// taken from slice position, never from the client.
type WorkoutInput struct {
	Name      string
	Exercises []ProgramExerciseInput
}

type ProgramExerciseInput struct {
	ExerciseID primitive.ObjectID
	Sets       int
	Reps       int
	Weight     float64
	Duration   float64
	Distance   float64
	Rest       int
	Notes      string
}

// ProgramService manages reusable program templates. Template edits never
// touch assignments copied from them.
type ProgramService interface {
	CreateProgram(ctx context.Context, name, description string, workouts []WorkoutInput) (*domain.Program, error)
	GetProgram(ctx context.Context, id primitive.ObjectID) (*domain.Program, error)
	ListPrograms(ctx context.Context) ([]domain.Program, error)
	UpdateProgram(ctx context.Context, id primitive.ObjectID, name, description string, workouts []WorkoutInput) (*domain.Program, error)
	DeleteProgram(ctx context.Context, id primitive.ObjectID) error
	// DuplicateProgram creates an independent structural copy named
	// "<name> (Copy)".
	DuplicateProgram(ctx context.Context, id primitive.ObjectID) (*domain.Program, error)
}

type programService struct {
	programRepo repository.ProgramRepository
}

// NewProgramService creates a new instance of programService.
func NewProgramService(programRepo repository.ProgramRepository) ProgramService {
	return &programService{programRepo: programRepo}
}

func (s *programService) CreateProgram(ctx context.Context, name, description string, workouts []WorkoutInput) (*domain.Program, error) {
	if name == "" {
		return nil, ErrValidationFailed
	}

	program := &domain.Program{
		Name:        name,
		Description: description,
		Workouts:    buildWorkouts(workouts),
	}

	id, err := s.programRepo.Create(ctx, program)
	if err != nil {
		return nil, err
	}
	program.ID = id
	return program, nil
}

func (s *programService) GetProgram(ctx context.Context, id primitive.ObjectID) (*domain.Program, error) {
	program, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return program, nil
}

func (s *programService) ListPrograms(ctx context.Context) ([]domain.Program, error) {
	return s.programRepo.List(ctx)
}

// UpdateProgram replaces the template's workout structure wholesale.
// Existing assignments keep their frozen copies untouched.
func (s *programService) UpdateProgram(ctx context.Context, id primitive.ObjectID, name, description string, workouts []WorkoutInput) (*domain.Program, error) {
	if name == "" {
		return nil, ErrValidationFailed
	}

	program, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}

	program.Name = name
	program.Description = description
	program.Workouts = buildWorkouts(workouts)

	if err := s.programRepo.Update(ctx, program); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return program, nil
}

// DeleteProgram removes the template only. Assignments created from it are
// independent copies and must never cascade.
func (s *programService) DeleteProgram(ctx context.Context, id primitive.ObjectID) error {
	if err := s.programRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProgramNotFound
		}
		return err
	}
	return nil
}

func (s *programService) DuplicateProgram(ctx context.Context, id primitive.ObjectID) (*domain.Program, error) {
	original, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}

	copyProgram := &domain.Program{
		Name:        original.Name + " (Copy)",
		Description: original.Description,
		Workouts:    make([]domain.Workout, len(original.Workouts)),
	}
	for i, w := range original.Workouts {
		exercises := make([]domain.ProgramExercise, len(w.Exercises))
		for j, e := range w.Exercises {
			exercises[j] = e
			exercises[j].ID = primitive.NewObjectID()
		}
		copyProgram.Workouts[i] = domain.Workout{
			ID:        primitive.NewObjectID(),
			Name:      w.Name,
			Order:     w.Order,
			Exercises: exercises,
		}
	}

	copyID, err := s.programRepo.Create(ctx, copyProgram)
	if err != nil {
		return nil, err
	}
	copyProgram.ID = copyID
	return copyProgram, nil
}

// buildWorkouts converts editor input into embedded workout documents with
// fresh ids and dense 0..N-1 order derived from slice position.
func buildWorkouts(inputs []WorkoutInput) []domain.Workout {
	workouts := make([]domain.Workout, len(inputs))
	for i, w := range inputs {
		exercises := make([]domain.ProgramExercise, len(w.Exercises))
		for j, e := range w.Exercises {
			exercises[j] = domain.ProgramExercise{
				ID:         primitive.NewObjectID(),
				ExerciseID: e.ExerciseID,
				Order:      j,
				Sets:       e.Sets,
				Reps:       e.Reps,
				Weight:     e.Weight,
				Duration:   e.Duration,
				Distance:   e.Distance,
				Rest:       e.Rest,
				Notes:      e.Notes,
			}
		}
		workouts[i] = domain.Workout{
			ID:        primitive.NewObjectID(),
			Name:      w.Name,
			Order:     i,
			Exercises: exercises,
		}
	}
	return workouts
}
