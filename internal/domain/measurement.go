package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Measurement is a dated body-metric reading for a client, independent of
// sessions. Every metric is optional; trend computations skip absent values
// rather than treating them as zero.
type Measurement struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID  primitive.ObjectID `bson:"clientId" json:"clientId"`
	Date      time.Time          `bson:"date" json:"date"`
	Weight    *float64           `bson:"weight,omitempty" json:"weight,omitempty"`
	BodyFat   *float64           `bson:"bodyFat,omitempty" json:"bodyFat,omitempty"`
	Chest     *float64           `bson:"chest,omitempty" json:"chest,omitempty"`
	Waist     *float64           `bson:"waist,omitempty" json:"waist,omitempty"`
	Hips      *float64           `bson:"hips,omitempty" json:"hips,omitempty"`
	Arms      *float64           `bson:"arms,omitempty" json:"arms,omitempty"`
	Thighs    *float64           `bson:"thighs,omitempty" json:"thighs,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
