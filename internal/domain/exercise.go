package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseType determines which numeric fields of a prescription are meaningful.
type ExerciseType string

const (
	TypeWeight ExerciseType = "weight" // sets/reps/weight/rest
	TypeCardio ExerciseType = "cardio" // duration/distance
	TypeTimed  ExerciseType = "timed"  // duration only
)

// Exercise categories as used by the catalog.
const (
	CategoryStrength    = "Strength"
	CategoryCardio      = "Cardio"
	CategoryCore        = "Core"
	CategoryFlexibility = "Flexibility"
)

// Exercise is one entry in the exercise catalog. Seeded exercises have
// Custom=false; only custom exercises are deletable at the API surface.
type Exercise struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Category     string             `bson:"category" json:"category"`
	Type         ExerciseType       `bson:"type" json:"type"`
	Equipment    string             `bson:"equipment,omitempty" json:"equipment,omitempty"`
	Muscles      []string           `bson:"muscles,omitempty" json:"muscles,omitempty"`
	Instructions string             `bson:"instructions,omitempty" json:"instructions,omitempty"`
	Tips         string             `bson:"tips,omitempty" json:"tips,omitempty"`
	ImageKey     string             `bson:"imageKey,omitempty" json:"-"` // object key in S3, presigned on read
	Custom       bool               `bson:"custom" json:"custom"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
