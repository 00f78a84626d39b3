package live

import (
	"testing"
	"time"

	"fitcoach/coach-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testAssignment() *domain.Assignment {
	return &domain.Assignment{
		ID: primitive.NewObjectID(),
		Workouts: []domain.AssignedWorkout{
			{
				Name: "Day A",
				Exercises: []domain.AssignedExercise{
					{Name: "Squat", Type: domain.TypeWeight, Sets: 3, Reps: 5, Weight: 100, Rest: 90},
					{Name: "Run", Type: domain.TypeCardio, Duration: 20, Distance: 2.5},
					{Name: "Plank", Type: domain.TypeTimed, Duration: 1},
				},
			},
			{Name: "Day B"},
		},
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestStartRejectsBadWorkoutIndex(t *testing.T) {
	a := testAssignment()

	_, err := Start(a, -1)
	assert.ErrorIs(t, err, ErrNoWorkout)
	_, err = Start(a, 2)
	assert.ErrorIs(t, err, ErrNoWorkout)

	s, err := Start(a, 0)
	require.NoError(t, err)
	assert.Len(t, s.Exercises(), 3)
}

func TestAddSetSeedsFromPrescription(t *testing.T) {
	s, err := Start(testAssignment(), 0)
	require.NoError(t, err)

	s.AddSet()
	sets := s.Sets()
	require.Len(t, sets, 1)
	assert.Equal(t, 5, sets[0].Reps)
	assert.Equal(t, 100.0, sets[0].Weight)

	// The second set carries the first set's recorded weight, not the plan.
	require.NoError(t, s.UpdateSet(0, FieldWeight, 105))
	s.AddSet()
	sets = s.Sets()
	require.Len(t, sets, 2)
	assert.Equal(t, 105.0, sets[1].Weight)

	// A zeroed weight falls back to the prescription.
	require.NoError(t, s.UpdateSet(1, FieldWeight, 0))
	s.AddSet()
	assert.Equal(t, 100.0, s.Sets()[2].Weight)
}

func TestAddSetCardioAndTimedDefaults(t *testing.T) {
	s, err := Start(testAssignment(), 0)
	require.NoError(t, err)

	require.NoError(t, s.Goto(1))
	s.AddSet()
	set := s.Sets()[0]
	assert.Equal(t, 20.0, set.Duration)
	assert.Equal(t, 2.5, set.Distance)
	assert.Zero(t, set.Reps)

	require.NoError(t, s.Goto(2))
	s.AddSet()
	set = s.Sets()[0]
	assert.Equal(t, 1.0, set.Duration)
	assert.Zero(t, set.Distance)
}

func TestUpdateAndRemoveSetBounds(t *testing.T) {
	s, err := Start(testAssignment(), 0)
	require.NoError(t, err)

	assert.ErrorIs(t, s.UpdateSet(0, FieldReps, 5), ErrSetRange)
	assert.ErrorIs(t, s.RemoveSet(0), ErrSetRange)

	s.AddSet()
	s.AddSet()
	require.NoError(t, s.UpdateSet(1, FieldReps, 3))
	assert.Equal(t, 3, s.Sets()[1].Reps)

	require.NoError(t, s.RemoveSet(0))
	require.Len(t, s.Sets(), 1)
	assert.Equal(t, 3, s.Sets()[0].Reps)
}

func TestNavigationCancelsRest(t *testing.T) {
	s, err := Start(testAssignment(), 0)
	require.NoError(t, err)

	s.StartRest(90)
	assert.Equal(t, PhaseResting, s.Phase())
	assert.Equal(t, 90, s.RestRemaining())

	s.Next()
	assert.Equal(t, 1, s.Current())
	assert.Equal(t, PhaseExercise, s.Phase())
	assert.Zero(t, s.RestRemaining())

	s.StartRest(30)
	s.Prev()
	assert.Equal(t, 0, s.Current())
	assert.Equal(t, PhaseExercise, s.Phase())

	// Navigation past the ends is a no-op and leaves state alone.
	s.Prev()
	assert.Equal(t, 0, s.Current())
	require.NoError(t, s.Goto(2))
	s.Next()
	assert.Equal(t, 2, s.Current())

	assert.ErrorIs(t, s.Goto(3), ErrSlotRange)
}

func TestRestCountdown(t *testing.T) {
	s, err := Start(testAssignment(), 0)
	require.NoError(t, err)

	s.StartRest(2)
	s.Tick()
	assert.Equal(t, PhaseResting, s.Phase())
	assert.Equal(t, 1, s.RestRemaining())
	s.Tick()
	assert.Equal(t, PhaseExercise, s.Phase())
	assert.Zero(t, s.RestRemaining())

	// Ticks outside of rest do nothing.
	s.Tick()
	assert.Equal(t, PhaseExercise, s.Phase())

	s.StartRest(60)
	s.SkipRest()
	assert.Equal(t, PhaseExercise, s.Phase())
	assert.Zero(t, s.RestRemaining())

	// Non-positive rest never starts a countdown.
	s.StartRest(0)
	assert.Equal(t, PhaseExercise, s.Phase())
}

func TestComposeSummaries(t *testing.T) {
	start := time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC)
	clock := start
	s, err := StartAt(testAssignment(), 0, func() time.Time { return clock })
	require.NoError(t, err)

	// Three squat sets: 5x100, 3x110, 8x90.
	s.AddSet()
	s.AddSet()
	require.NoError(t, s.UpdateSet(1, FieldReps, 3))
	require.NoError(t, s.UpdateSet(1, FieldWeight, 110))
	s.AddSet()
	require.NoError(t, s.UpdateSet(2, FieldReps, 8))
	require.NoError(t, s.UpdateSet(2, FieldWeight, 90))
	s.SetNotes("solid")

	clock = start.Add(42*time.Minute + 40*time.Second)
	log := s.Compose()

	require.Len(t, log.Exercises, 1)
	ex := log.Exercises[0]
	assert.Equal(t, 0, ex.ExerciseIndex)
	require.NotNil(t, ex.Sets)
	assert.Equal(t, 3, *ex.Sets)
	require.NotNil(t, ex.Reps)
	assert.Equal(t, 5, *ex.Reps) // first set's reps
	require.NotNil(t, ex.Weight)
	assert.Equal(t, 110.0, *ex.Weight) // max across sets
	assert.Equal(t, "solid", ex.Notes)

	require.Len(t, ex.SetDetails, 3)
	assert.Equal(t, 1, ex.SetDetails[0].SetNumber)
	assert.Equal(t, 2, ex.SetDetails[1].SetNumber)
	assert.Equal(t, 3, ex.SetDetails[2].SetNumber)
	assert.Equal(t, 110.0, *ex.SetDetails[1].Weight)

	require.NotNil(t, log.Duration)
	assert.Equal(t, 43, *log.Duration) // rounded, not truncated
	assert.Equal(t, clock, log.Date)
}

func TestComposeCardioSums(t *testing.T) {
	s, err := StartAt(testAssignment(), 0, fixedClock(time.Now()))
	require.NoError(t, err)

	require.NoError(t, s.Goto(1))
	s.AddSet() // 20 min / 2.5 mi from the prescription
	s.AddSet()
	require.NoError(t, s.UpdateSet(1, FieldDuration, 10))
	require.NoError(t, s.UpdateSet(1, FieldDistance, 1.5))

	log := s.Compose()
	require.Len(t, log.Exercises, 1)
	ex := log.Exercises[0]
	assert.Equal(t, 1, ex.ExerciseIndex)
	assert.Equal(t, 30.0, *ex.Duration)
	assert.Equal(t, 4.0, *ex.Distance)
}

func TestComposeOmitsEmptySlots(t *testing.T) {
	s, err := StartAt(testAssignment(), 0, fixedClock(time.Now()))
	require.NoError(t, err)

	require.NoError(t, s.Goto(2))
	s.SetNotes("knee acting up, skipped everything else")

	log := s.Compose()
	require.Len(t, log.Exercises, 1)
	ex := log.Exercises[0]
	assert.Equal(t, 2, ex.ExerciseIndex)
	assert.Equal(t, "knee acting up, skipped everything else", ex.Notes)
	require.NotNil(t, ex.Sets)
	assert.Zero(t, *ex.Sets)
	assert.Empty(t, ex.SetDetails)
}

func TestComposeStripsZeroDetails(t *testing.T) {
	s, err := StartAt(testAssignment(), 0, fixedClock(time.Now()))
	require.NoError(t, err)

	s.AddSet()
	require.NoError(t, s.UpdateSet(0, FieldReps, 0))
	require.NoError(t, s.UpdateSet(0, FieldWeight, 0))

	log := s.Compose()
	require.Len(t, log.Exercises, 1)
	sd := log.Exercises[0].SetDetails[0]
	assert.Nil(t, sd.Reps)
	assert.Nil(t, sd.Weight)
	assert.Nil(t, sd.Duration)
	assert.Nil(t, sd.Distance)

	// Summaries stay present even when everything recorded was zero.
	assert.Equal(t, 0, *log.Exercises[0].Reps)
	assert.Equal(t, 0.0, *log.Exercises[0].Weight)
}

func TestComposeLeavesStateIntact(t *testing.T) {
	s, err := StartAt(testAssignment(), 0, fixedClock(time.Now()))
	require.NoError(t, err)

	s.AddSet()
	s.SetSessionNotes("first attempt")

	first := s.Compose()
	second := s.Compose()
	assert.Equal(t, first.Exercises, second.Exercises)
	assert.Equal(t, "first attempt", second.SessionNotes)
	assert.Len(t, s.Sets(), 1)
}
