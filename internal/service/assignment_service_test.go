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

type assignmentFixture struct {
	programRepo    *fakeProgramRepo
	exerciseRepo   *fakeExerciseRepo
	assignmentRepo *fakeAssignmentRepo
	sessionRepo    *fakeSessionLogRepo

	programSvc    ProgramService
	assignmentSvc AssignmentService
}

func newAssignmentFixture() *assignmentFixture {
	f := &assignmentFixture{
		programRepo:    newFakeProgramRepo(),
		exerciseRepo:   newFakeExerciseRepo(),
		assignmentRepo: newFakeAssignmentRepo(),
		sessionRepo:    newFakeSessionLogRepo(),
	}
	f.programSvc = NewProgramService(f.programRepo)
	f.assignmentSvc = NewAssignmentService(f.programRepo, f.exerciseRepo, f.assignmentRepo, f.sessionRepo)
	return f
}

func TestAssignProgramFreezesCopy(t *testing.T) {
	f := newAssignmentFixture()
	ctx := context.Background()

	benchID, err := f.exerciseRepo.Create(ctx, catalogExercise("Bench Press", domain.TypeWeight))
	require.NoError(t, err)
	program, err := f.programSvc.CreateProgram(ctx, "Push Block", "", []WorkoutInput{
		{Name: "Push", Exercises: []ProgramExerciseInput{
			{ExerciseID: benchID, Sets: 3, Reps: 5, Weight: 80, Rest: 120},
		}},
	})
	require.NoError(t, err)

	clientID := primitive.NewObjectID()
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	assignment, err := f.assignmentSvc.AssignProgram(ctx, clientID, program.ID, "Spring block", &start)
	require.NoError(t, err)

	assert.Equal(t, clientID, assignment.ClientID)
	assert.Equal(t, program.ID, assignment.ProgramID)
	assert.Equal(t, "Spring block", assignment.Name)
	require.Len(t, assignment.Workouts, 1)

	copied := assignment.Workouts[0].Exercises[0]
	assert.Equal(t, "Bench Press", copied.Name)
	assert.Equal(t, domain.TypeWeight, copied.Type)
	assert.Equal(t, domain.CategoryStrength, copied.Category)
	assert.Equal(t, 80.0, copied.Weight)
	assert.Equal(t, 120, copied.Rest)

	// The embedded copies get their own identities.
	assert.NotEqual(t, program.Workouts[0].ID, assignment.Workouts[0].ID)
	assert.NotEqual(t, program.Workouts[0].Exercises[0].ID, copied.ID)
	assert.Equal(t, benchID, copied.ExerciseID)
}

func TestAssignProgramNameDefaultsToProgramName(t *testing.T) {
	f := newAssignmentFixture()
	ctx := context.Background()

	program, err := f.programSvc.CreateProgram(ctx, "Base Strength", "", nil)
	require.NoError(t, err)

	assignment, err := f.assignmentSvc.AssignProgram(ctx, primitive.NewObjectID(), program.ID, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "Base Strength", assignment.Name)
	assert.Nil(t, assignment.StartDate)
}

func TestAssignProgramUnknownProgram(t *testing.T) {
	f := newAssignmentFixture()

	_, err := f.assignmentSvc.AssignProgram(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), "", nil)
	assert.ErrorIs(t, err, ErrProgramNotFound)
}

func TestAssignProgramUnknownExercise(t *testing.T) {
	f := newAssignmentFixture()
	ctx := context.Background()

	// The program references an exercise that was never created.
	program, err := f.programSvc.CreateProgram(ctx, "Broken", "", []WorkoutInput{
		{Name: "Day", Exercises: []ProgramExerciseInput{{ExerciseID: primitive.NewObjectID()}}},
	})
	require.NoError(t, err)

	_, err = f.assignmentSvc.AssignProgram(ctx, primitive.NewObjectID(), program.ID, "", nil)
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestProgramEditsNeverReachAssignments(t *testing.T) {
	f := newAssignmentFixture()
	ctx := context.Background()

	rowID, err := f.exerciseRepo.Create(ctx, catalogExercise("Barbell Row", domain.TypeWeight))
	require.NoError(t, err)
	program, err := f.programSvc.CreateProgram(ctx, "Pull Block", "", []WorkoutInput{
		{Name: "Pull", Exercises: []ProgramExerciseInput{{ExerciseID: rowID, Sets: 3, Reps: 8, Weight: 60}}},
	})
	require.NoError(t, err)

	assignment, err := f.assignmentSvc.AssignProgram(ctx, primitive.NewObjectID(), program.ID, "", nil)
	require.NoError(t, err)

	_, err = f.programSvc.UpdateProgram(ctx, program.ID, "Pull Block", "", []WorkoutInput{
		{Name: "Pull", Exercises: []ProgramExerciseInput{{ExerciseID: rowID, Sets: 5, Reps: 5, Weight: 80}}},
		{Name: "Extra Day"},
	})
	require.NoError(t, err)

	frozen, err := f.assignmentSvc.GetAssignment(ctx, assignment.ID)
	require.NoError(t, err)
	require.Len(t, frozen.Workouts, 1)
	assert.Equal(t, 3, frozen.Workouts[0].Exercises[0].Sets)
	assert.Equal(t, 60.0, frozen.Workouts[0].Exercises[0].Weight)
}

func TestCatalogEditsNeverReachAssignments(t *testing.T) {
	f := newAssignmentFixture()
	ctx := context.Background()
	catalogSvc := NewCatalogService(f.exerciseRepo, nil)

	curlID, err := f.exerciseRepo.Create(ctx, catalogExercise("Dumbbell Curl", domain.TypeWeight))
	require.NoError(t, err)
	program, err := f.programSvc.CreateProgram(ctx, "Arms", "", []WorkoutInput{
		{Name: "Arms", Exercises: []ProgramExerciseInput{{ExerciseID: curlID, Sets: 3, Reps: 12}}},
	})
	require.NoError(t, err)

	assignment, err := f.assignmentSvc.AssignProgram(ctx, primitive.NewObjectID(), program.ID, "", nil)
	require.NoError(t, err)

	_, err = catalogSvc.UpdateExercise(ctx, curlID, ExerciseInput{
		Name: "Hammer Curl", Category: domain.CategoryStrength, Type: domain.TypeWeight,
	})
	require.NoError(t, err)

	frozen, err := f.assignmentSvc.GetAssignment(ctx, assignment.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dumbbell Curl", frozen.Workouts[0].Exercises[0].Name)
}

func TestDeleteAssignmentRemovesItsLogsOnly(t *testing.T) {
	f := newAssignmentFixture()
	ctx := context.Background()

	program, err := f.programSvc.CreateProgram(ctx, "Block", "", []WorkoutInput{{Name: "Day"}})
	require.NoError(t, err)

	first, err := f.assignmentSvc.AssignProgram(ctx, primitive.NewObjectID(), program.ID, "", nil)
	require.NoError(t, err)
	second, err := f.assignmentSvc.AssignProgram(ctx, primitive.NewObjectID(), program.ID, "", nil)
	require.NoError(t, err)

	_, err = f.sessionRepo.Create(ctx, &domain.SessionLog{AssignmentID: first.ID, Date: time.Now()})
	require.NoError(t, err)
	keptID, err := f.sessionRepo.Create(ctx, &domain.SessionLog{AssignmentID: second.ID, Date: time.Now()})
	require.NoError(t, err)

	require.NoError(t, f.assignmentSvc.DeleteAssignment(ctx, first.ID))

	_, err = f.assignmentSvc.GetAssignment(ctx, first.ID)
	assert.ErrorIs(t, err, ErrAssignmentNotFound)
	logs, err := f.sessionRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, keptID, logs[0].ID)

	// The source program is untouched.
	_, err = f.programSvc.GetProgram(ctx, program.ID)
	assert.NoError(t, err)
}
