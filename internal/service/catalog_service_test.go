package service

import (
	"context"
	"testing"
	"time"

	"fitcoach/coach-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeFileStorage struct {
	deleted []string
	lastKey string
}

func (f *fakeFileStorage) GeneratePresignedUploadURL(_ context.Context, objectKey, _ string, _ time.Duration) (string, error) {
	f.lastKey = objectKey
	return "https://storage.test/upload/" + objectKey, nil
}

func (f *fakeFileStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://storage.test/get/" + objectKey, nil
}

func (f *fakeFileStorage) DeleteObject(_ context.Context, objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func TestCreateExerciseValidation(t *testing.T) {
	svc := NewCatalogService(newFakeExerciseRepo(), nil)
	ctx := context.Background()

	_, err := svc.CreateExercise(ctx, ExerciseInput{Name: "Squat"})
	assert.ErrorIs(t, err, ErrValidationFailed)

	ex, err := svc.CreateExercise(ctx, ExerciseInput{
		Name: "Squat", Category: domain.CategoryStrength, Type: domain.TypeWeight,
	})
	require.NoError(t, err)
	assert.True(t, ex.Custom)
	assert.False(t, ex.ID.IsZero())
}

func TestDeleteExerciseRefusesSeeded(t *testing.T) {
	repo := newFakeExerciseRepo()
	svc := NewCatalogService(repo, nil)
	ctx := context.Background()

	seededID, err := repo.Create(ctx, &domain.Exercise{
		Name: "Deadlift", Category: domain.CategoryStrength, Type: domain.TypeWeight, Custom: false,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteExercise(ctx, seededID), ErrExerciseNotCustom)

	custom, err := svc.CreateExercise(ctx, ExerciseInput{
		Name: "Sandbag Carry", Category: domain.CategoryStrength, Type: domain.TypeWeight,
	})
	require.NoError(t, err)
	assert.NoError(t, svc.DeleteExercise(ctx, custom.ID))
	assert.ErrorIs(t, svc.DeleteExercise(ctx, custom.ID), ErrExerciseNotFound)
}

func TestDeleteExerciseRemovesImage(t *testing.T) {
	repo := newFakeExerciseRepo()
	fs := &fakeFileStorage{}
	svc := NewCatalogService(repo, fs)
	ctx := context.Background()

	id, err := repo.Create(ctx, &domain.Exercise{
		Name: "Box Jump", Category: domain.CategoryStrength, Type: domain.TypeWeight,
		Custom: true, ImageKey: "exercises/abc/img",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteExercise(ctx, id))
	assert.Equal(t, []string{"exercises/abc/img"}, fs.deleted)
}

func TestRequestImageUpload(t *testing.T) {
	repo := newFakeExerciseRepo()
	fs := &fakeFileStorage{}
	svc := NewCatalogService(repo, fs)
	ctx := context.Background()

	ex, err := svc.CreateExercise(ctx, ExerciseInput{
		Name: "Squat", Category: domain.CategoryStrength, Type: domain.TypeWeight,
	})
	require.NoError(t, err)

	url, err := svc.RequestImageUpload(ctx, ex.ID, "image/png")
	require.NoError(t, err)
	assert.Contains(t, url, fs.lastKey)

	stored, err := repo.GetByID(ctx, ex.ID)
	require.NoError(t, err)
	assert.Equal(t, fs.lastKey, stored.ImageKey)
}

func TestRequestImageUploadDisabledWithoutStorage(t *testing.T) {
	svc := NewCatalogService(newFakeExerciseRepo(), nil)

	_, err := svc.RequestImageUpload(context.Background(), primitive.NewObjectID(), "image/png")
	assert.ErrorIs(t, err, ErrImageUploadDisabled)
}

func TestImageURLEmptyWithoutKey(t *testing.T) {
	svc := NewCatalogService(newFakeExerciseRepo(), &fakeFileStorage{})

	url, err := svc.ImageURL(context.Background(), &domain.Exercise{})
	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestSeedDefaultsOnlyOnEmptyCatalog(t *testing.T) {
	repo := newFakeExerciseRepo()
	svc := NewCatalogService(repo, nil)
	ctx := context.Background()

	require.NoError(t, svc.SeedDefaults(ctx))
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(defaultExercises)), count)

	exercises, err := svc.ListExercises(ctx)
	require.NoError(t, err)
	for _, ex := range exercises {
		assert.False(t, ex.Custom)
	}

	// A second run is a no-op.
	require.NoError(t, svc.SeedDefaults(ctx))
	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(defaultExercises)), count)
}
