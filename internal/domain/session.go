package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionLog is the persisted record of one completed live workout.
// WorkoutIndex is a positional index into the assignment's frozen workout
// copy, not a foreign key — the copy is never reordered after creation,
// so the ordinal is stable.
type SessionLog struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AssignmentID primitive.ObjectID `bson:"assignmentId" json:"assignmentId"`
	WorkoutIndex int                `bson:"workoutIndex" json:"workoutIndex"`
	Date         time.Time          `bson:"date" json:"date"`
	Duration     *int               `bson:"duration,omitempty" json:"duration,omitempty"` // whole minutes
	SessionNotes string             `bson:"sessionNotes,omitempty" json:"sessionNotes,omitempty"`
	Exercises    []SessionExercise  `bson:"exercises" json:"exercises"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// SessionExercise records one exercise slot of a session. ExerciseIndex is
// positional into the assigned workout's exercise list. The summary fields
// (Sets/Reps/Weight/Duration/Distance) are denormalized aggregates; when
// SetDetails are present those are the source of truth.
type SessionExercise struct {
	ExerciseIndex int         `bson:"exerciseIndex" json:"exerciseIndex"`
	Sets          *int        `bson:"sets,omitempty" json:"sets,omitempty"`
	Reps          *int        `bson:"reps,omitempty" json:"reps,omitempty"`
	Weight        *float64    `bson:"weight,omitempty" json:"weight,omitempty"`
	Duration      *float64    `bson:"duration,omitempty" json:"duration,omitempty"`
	Distance      *float64    `bson:"distance,omitempty" json:"distance,omitempty"`
	Notes         string      `bson:"notes,omitempty" json:"notes,omitempty"`
	SetDetails    []SetDetail `bson:"setDetails,omitempty" json:"setDetails,omitempty"`
}

// SetDetail is one recorded set. Fields are pointers because a zero value
// is stored as absent; aggregations must distinguish "not recorded" from 0.
type SetDetail struct {
	SetNumber int      `bson:"setNumber" json:"setNumber"` // 1-based
	Reps      *int     `bson:"reps,omitempty" json:"reps,omitempty"`
	Weight    *float64 `bson:"weight,omitempty" json:"weight,omitempty"`
	Duration  *float64 `bson:"duration,omitempty" json:"duration,omitempty"`
	Distance  *float64 `bson:"distance,omitempty" json:"distance,omitempty"`
}
