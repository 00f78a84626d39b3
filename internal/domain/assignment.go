package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Assignment is a client-specific deep copy of a Program taken at
// assignment time. It only keeps ProgramID as a provenance link; editing
// or deleting the source program never touches an existing assignment.
type Assignment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID  primitive.ObjectID `bson:"clientId" json:"clientId"`
	ProgramID primitive.ObjectID `bson:"programId" json:"programId"`
	Name      string             `bson:"name" json:"name"`
	StartDate *time.Time         `bson:"startDate,omitempty" json:"startDate,omitempty"`
	Workouts  []AssignedWorkout  `bson:"workouts" json:"workouts"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// AssignedWorkout mirrors Workout but belongs exclusively to one assignment.
// The workout list is never reordered or resized after creation; session
// logs reference workouts by position.
type AssignedWorkout struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Order     int                `bson:"order" json:"order"`
	Exercises []AssignedExercise `bson:"exercises" json:"exercises"`
}

// AssignedExercise is a frozen prescription copy. Name, Type and Category
// are denormalized from the catalog at assignment time so history stays
// interpretable even if the catalog entry is later edited or removed.
type AssignedExercise struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	ExerciseID primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	Name       string             `bson:"name" json:"name"`
	Type       ExerciseType       `bson:"type" json:"type"`
	Category   string             `bson:"category" json:"category"`
	Order      int                `bson:"order" json:"order"`
	Sets       int                `bson:"sets" json:"sets"`
	Reps       int                `bson:"reps" json:"reps"`
	Weight     float64            `bson:"weight" json:"weight"`
	Duration   float64            `bson:"duration" json:"duration"`
	Distance   float64            `bson:"distance" json:"distance"`
	Rest       int                `bson:"rest" json:"rest"`
	Notes      string             `bson:"notes,omitempty" json:"notes,omitempty"`
}
