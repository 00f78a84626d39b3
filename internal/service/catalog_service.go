package service

import (
	"context"
	"errors"
	"fmt"

	"fitcoach/coach-app/internal/domain"
	"fitcoach/coach-app/internal/repository"
	"fitcoach/coach-app/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound    = errors.New("exercise not found")
	ErrExerciseNotCustom   = errors.New("seeded exercises cannot be deleted")
	ErrValidationFailed    = errors.New("validation failed")
	ErrImageUploadDisabled = errors.New("image storage is not configured")
)

// ExerciseInput carries the editable fields of a catalog entry.
type ExerciseInput struct {
	Name         string
	Category     string
	Type         domain.ExerciseType
	Equipment    string
	Muscles      []string
	Instructions string
	Tips         string
}

// CatalogService manages the exercise catalog and its images.
type CatalogService interface {
	CreateExercise(ctx context.Context, input ExerciseInput) (*domain.Exercise, error)
	GetExercise(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
	UpdateExercise(ctx context.Context, id primitive.ObjectID, input ExerciseInput) (*domain.Exercise, error)
	// DeleteExercise removes a custom catalog entry. Seeded entries are
	// refused here, not in the repository.
	DeleteExercise(ctx context.Context, id primitive.ObjectID) error
	// RequestImageUpload assigns a fresh object key to the exercise and
	// returns a presigned PUT URL for it.
	RequestImageUpload(ctx context.Context, id primitive.ObjectID, contentType string) (string, error)
	// ImageURL returns a presigned GET URL for the exercise's image, or ""
	// when it has none.
	ImageURL(ctx context.Context, exercise *domain.Exercise) (string, error)
	// SeedDefaults loads the built-in catalog when the collection is empty.
	SeedDefaults(ctx context.Context) error
}

type catalogService struct {
	exerciseRepo repository.ExerciseRepository
	fileStorage  storage.FileStorage
}

// NewCatalogService creates a new instance of catalogService. fileStorage
// may be nil; image operations then fail with ErrImageUploadDisabled.
func NewCatalogService(exerciseRepo repository.ExerciseRepository, fileStorage storage.FileStorage) CatalogService {
	return &catalogService{
		exerciseRepo: exerciseRepo,
		fileStorage:  fileStorage,
	}
}

func (s *catalogService) CreateExercise(ctx context.Context, input ExerciseInput) (*domain.Exercise, error) {
	if input.Name == "" || input.Category == "" || input.Type == "" {
		return nil, ErrValidationFailed
	}

	exercise := &domain.Exercise{
		Name:         input.Name,
		Category:     input.Category,
		Type:         input.Type,
		Equipment:    input.Equipment,
		Muscles:      input.Muscles,
		Instructions: input.Instructions,
		Tips:         input.Tips,
		Custom:       true,
	}

	id, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, err
	}
	exercise.ID = id
	return exercise, nil
}

func (s *catalogService) GetExercise(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

func (s *catalogService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.List(ctx)
}

func (s *catalogService) UpdateExercise(ctx context.Context, id primitive.ObjectID, input ExerciseInput) (*domain.Exercise, error) {
	if input.Name == "" {
		return nil, ErrValidationFailed
	}

	existing, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	existing.Name = input.Name
	existing.Category = input.Category
	existing.Type = input.Type
	existing.Equipment = input.Equipment
	existing.Muscles = input.Muscles
	existing.Instructions = input.Instructions
	existing.Tips = input.Tips

	if err := s.exerciseRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return existing, nil
}

func (s *catalogService) DeleteExercise(ctx context.Context, id primitive.ObjectID) error {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	if !exercise.Custom {
		return ErrExerciseNotCustom
	}

	if err := s.exerciseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}

	if exercise.ImageKey != "" && s.fileStorage != nil {
		if err := s.fileStorage.DeleteObject(ctx, exercise.ImageKey); err != nil {
			// The catalog entry is already gone; an orphaned object is not
			// worth failing the delete over.
			logrus.WithError(err).WithField("objectKey", exercise.ImageKey).
				Warn("failed to delete exercise image")
		}
	}
	return nil
}

func (s *catalogService) RequestImageUpload(ctx context.Context, id primitive.ObjectID, contentType string) (string, error) {
	if s.fileStorage == nil {
		return "", ErrImageUploadDisabled
	}

	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrExerciseNotFound
		}
		return "", err
	}

	objectKey := fmt.Sprintf("exercises/%s/%s", exercise.ID.Hex(), uuid.NewString())
	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", err
	}

	exercise.ImageKey = objectKey
	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		return "", err
	}
	return uploadURL, nil
}

func (s *catalogService) ImageURL(ctx context.Context, exercise *domain.Exercise) (string, error) {
	if exercise.ImageKey == "" || s.fileStorage == nil {
		return "", nil
	}
	return s.fileStorage.GeneratePresignedDownloadURL(ctx, exercise.ImageKey, storage.DefaultPresignedURLExpiry)
}

// SeedDefaults inserts the built-in exercise catalog on first run.
func (s *catalogService) SeedDefaults(ctx context.Context) error {
	count, err := s.exerciseRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := range defaultExercises {
		exercise := defaultExercises[i]
		if _, err := s.exerciseRepo.Create(ctx, &exercise); err != nil {
			return err
		}
	}
	logrus.WithField("count", len(defaultExercises)).Info("seeded default exercise catalog")
	return nil
}
