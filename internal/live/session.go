// Package live holds the in-progress state of one workout session being
// run against an assignment. Nothing here touches persistence: the state
// is client-held until it is composed into a session log and committed,
// and it survives a failed commit so the coach can retry.
package live

import (
	"errors"
	"math"
	"time"

	"fitcoach/coach-app/internal/domain"
)

var (
	ErrNoWorkout    = errors.New("assignment has no workout at that index")
	ErrSlotRange    = errors.New("exercise slot out of range")
	ErrSetRange     = errors.New("set index out of range")
	ErrUnknownField = errors.New("unknown set field")
)

// Target is the prescription for one exercise slot, shaped by the
// exercise's type so only the meaningful fields are representable.
type Target interface {
	isTarget()
}

// WeightTarget prescribes sets x reps at a weight, with rest between sets.
type WeightTarget struct {
	Sets   int
	Reps   int
	Weight float64
	Rest   int
}

// CardioTarget prescribes a duration and distance.
type CardioTarget struct {
	Duration float64
	Distance float64
}

// TimedTarget prescribes a duration only.
type TimedTarget struct {
	Duration float64
}

func (WeightTarget) isTarget() {}
func (CardioTarget) isTarget() {}
func (TimedTarget) isTarget()  {}

// TargetFor extracts the typed prescription from a frozen exercise copy.
// Unknown types fall back to a weight target, the dominant case.
func TargetFor(ex domain.AssignedExercise) Target {
	switch ex.Type {
	case domain.TypeCardio:
		return CardioTarget{Duration: ex.Duration, Distance: ex.Distance}
	case domain.TypeTimed:
		return TimedTarget{Duration: ex.Duration}
	default:
		return WeightTarget{Sets: ex.Sets, Reps: ex.Reps, Weight: ex.Weight, Rest: ex.Rest}
	}
}

// RecordedSet is one set as entered during the session. Zero values mean
// "not recorded" and are persisted as absent on commit.
type RecordedSet struct {
	Reps     int
	Weight   float64
	Duration float64
	Distance float64
}

// SetField names a RecordedSet field for in-place updates.
type SetField int

const (
	FieldReps SetField = iota
	FieldWeight
	FieldDuration
	FieldDistance
)

// Phase is the session's timer state. Switching exercise slots always
// returns to PhaseExercise; the rest timer is cancelled, never paused.
type Phase int

const (
	PhaseExercise Phase = iota
	PhaseResting
)

type slot struct {
	sets  []RecordedSet
	notes string
}

// Session is the mutable in-progress state of one live workout. The slot
// list is fixed at start to the assigned workout's exercise list; only sets
// within a slot can be added or removed.
type Session struct {
	assignment   *domain.Assignment
	workoutIndex int
	exercises    []domain.AssignedExercise

	slots        []slot
	current      int
	sessionNotes string

	phase         Phase
	restRemaining int

	startedAt time.Time
	now       func() time.Time
}

// Start opens a live session against one workout of an assignment.
func Start(assignment *domain.Assignment, workoutIndex int) (*Session, error) {
	return StartAt(assignment, workoutIndex, time.Now)
}

// StartAt is Start with an injectable clock.
func StartAt(assignment *domain.Assignment, workoutIndex int, now func() time.Time) (*Session, error) {
	if workoutIndex < 0 || workoutIndex >= len(assignment.Workouts) {
		return nil, ErrNoWorkout
	}
	exercises := assignment.Workouts[workoutIndex].Exercises
	return &Session{
		assignment:   assignment,
		workoutIndex: workoutIndex,
		exercises:    exercises,
		slots:        make([]slot, len(exercises)),
		startedAt:    now(),
		now:          now,
	}, nil
}

// Exercises returns the fixed slot prescriptions.
func (s *Session) Exercises() []domain.AssignedExercise { return s.exercises }

// Current returns the active exercise slot index.
func (s *Session) Current() int { return s.current }

// CurrentExercise returns the prescription of the active slot.
func (s *Session) CurrentExercise() domain.AssignedExercise { return s.exercises[s.current] }

// Goto switches the active slot. Navigation is free in both directions and
// never mutates recorded data, but it cancels any running rest timer.
func (s *Session) Goto(idx int) error {
	if idx < 0 || idx >= len(s.slots) {
		return ErrSlotRange
	}
	s.current = idx
	s.stopRest()
	return nil
}

// Next advances to the following slot if there is one.
func (s *Session) Next() {
	if s.current < len(s.slots)-1 {
		_ = s.Goto(s.current + 1)
	}
}

// Prev moves back one slot if possible.
func (s *Session) Prev() {
	if s.current > 0 {
		_ = s.Goto(s.current - 1)
	}
}

// AddSet appends a set to the active slot, seeded from the prescription:
// weight-type sets take the target reps and carry the previous set's weight
// forward (what the client actually lifted beats the static plan); cardio
// and timed sets take the target duration/distance.
func (s *Session) AddSet() {
	sl := &s.slots[s.current]

	var set RecordedSet
	switch target := TargetFor(s.exercises[s.current]).(type) {
	case WeightTarget:
		set.Reps = target.Reps
		set.Weight = target.Weight
		if n := len(sl.sets); n > 0 && sl.sets[n-1].Weight != 0 {
			set.Weight = sl.sets[n-1].Weight
		}
	case CardioTarget:
		set.Duration = target.Duration
		set.Distance = target.Distance
	case TimedTarget:
		set.Duration = target.Duration
	}

	sl.sets = append(sl.sets, set)
}

// UpdateSet writes one field of a recorded set in place. Values are only
// coerced numerically; implausible entries (zero, negative) are accepted.
func (s *Session) UpdateSet(setIdx int, field SetField, value float64) error {
	sl := &s.slots[s.current]
	if setIdx < 0 || setIdx >= len(sl.sets) {
		return ErrSetRange
	}
	switch field {
	case FieldReps:
		sl.sets[setIdx].Reps = int(value)
	case FieldWeight:
		sl.sets[setIdx].Weight = value
	case FieldDuration:
		sl.sets[setIdx].Duration = value
	case FieldDistance:
		sl.sets[setIdx].Distance = value
	default:
		return ErrUnknownField
	}
	return nil
}

// RemoveSet deletes a recorded set from the active slot.
func (s *Session) RemoveSet(setIdx int) error {
	sl := &s.slots[s.current]
	if setIdx < 0 || setIdx >= len(sl.sets) {
		return ErrSetRange
	}
	sl.sets = append(sl.sets[:setIdx], sl.sets[setIdx+1:]...)
	return nil
}

// Sets returns the recorded sets of the active slot.
func (s *Session) Sets() []RecordedSet { return s.slots[s.current].sets }

// SetNotes replaces the active slot's free-text notes.
func (s *Session) SetNotes(notes string) { s.slots[s.current].notes = notes }

// SetSessionNotes replaces the overall session notes.
func (s *Session) SetSessionNotes(notes string) { s.sessionNotes = notes }

// StartRest begins a countdown of the given number of seconds.
func (s *Session) StartRest(seconds int) {
	if seconds <= 0 {
		return
	}
	s.restRemaining = seconds
	s.phase = PhaseResting
}

// Tick is the single external clock input: one call per second while
// resting. The countdown auto-stops at zero.
func (s *Session) Tick() {
	if s.phase != PhaseResting {
		return
	}
	if s.restRemaining > 0 {
		s.restRemaining--
	}
	if s.restRemaining == 0 {
		s.phase = PhaseExercise
	}
}

// SkipRest cancels the countdown immediately.
func (s *Session) SkipRest() { s.stopRest() }

func (s *Session) stopRest() {
	s.restRemaining = 0
	s.phase = PhaseExercise
}

// Phase reports whether the session is mid-rest.
func (s *Session) Phase() Phase { return s.phase }

// RestRemaining reports the countdown in seconds.
func (s *Session) RestRemaining() int { return s.restRemaining }

// Elapsed is the wall-clock time since the session started.
func (s *Session) Elapsed() time.Duration { return s.now().Sub(s.startedAt) }

// Compose turns the in-progress state into a session log ready to persist.
// Slots with no sets and no notes are omitted entirely. For slots with
// per-set detail the summary fields are derived: sets = count, reps = first
// set's reps, weight = max across sets (floored at 0), duration and
// distance = sums. Zero-valued recorded fields become absent set details.
// Compose does not consume the session; the state survives a failed commit.
func (s *Session) Compose() *domain.SessionLog {
	now := s.now()
	duration := int(math.Round(now.Sub(s.startedAt).Minutes()))

	var exercises []domain.SessionExercise
	for idx, sl := range s.slots {
		if len(sl.sets) == 0 && sl.notes == "" {
			continue
		}

		maxWeight := 0.0
		totalDuration := 0.0
		totalDistance := 0.0
		firstReps := 0
		for i, set := range sl.sets {
			if i == 0 {
				firstReps = set.Reps
			}
			if set.Weight > maxWeight {
				maxWeight = set.Weight
			}
			totalDuration += set.Duration
			totalDistance += set.Distance
		}

		details := make([]domain.SetDetail, len(sl.sets))
		for i, set := range sl.sets {
			details[i] = domain.SetDetail{
				SetNumber: i + 1,
				Reps:      intOrNil(set.Reps),
				Weight:    floatOrNil(set.Weight),
				Duration:  floatOrNil(set.Duration),
				Distance:  floatOrNil(set.Distance),
			}
		}

		setCount := len(sl.sets)
		exercises = append(exercises, domain.SessionExercise{
			ExerciseIndex: idx,
			Sets:          &setCount,
			Reps:          intPtr(firstReps),
			Weight:        floatPtr(maxWeight),
			Duration:      floatPtr(totalDuration),
			Distance:      floatPtr(totalDistance),
			Notes:         sl.notes,
			SetDetails:    details,
		})
	}

	return &domain.SessionLog{
		AssignmentID: s.assignment.ID,
		WorkoutIndex: s.workoutIndex,
		Date:         now,
		Duration:     &duration,
		SessionNotes: s.sessionNotes,
		Exercises:    exercises,
	}
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func intOrNil(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}

func floatOrNil(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}
