package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Program is a reusable workout template, independent of any client.
// Workouts are embedded so a program is read and replaced as one document.
type Program struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Workouts    []Workout          `bson:"workouts" json:"workouts"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Workout is an ordered group of exercise prescriptions within a program.
// Order is dense 0..N-1, recomputed from slice position on every save.
type Workout struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Order     int                `bson:"order" json:"order"`
	Exercises []ProgramExercise  `bson:"exercises" json:"exercises"`
}

// ProgramExercise is one prescription inside a workout. Which numeric
// targets are meaningful depends on the referenced exercise's type.
type ProgramExercise struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	ExerciseID primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	Order      int                `bson:"order" json:"order"`
	Sets       int                `bson:"sets" json:"sets"`
	Reps       int                `bson:"reps" json:"reps"`
	Weight     float64            `bson:"weight" json:"weight"`
	Duration   float64            `bson:"duration" json:"duration"` // minutes
	Distance   float64            `bson:"distance" json:"distance"` // miles
	Rest       int                `bson:"rest" json:"rest"`         // seconds
	Notes      string             `bson:"notes,omitempty" json:"notes,omitempty"`
}
