package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client is a person being coached. Deleting a client cascades to their
// assignments (and those assignments' session logs) and measurements.
type Client struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	Email            string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone            string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Goals            string             `bson:"goals,omitempty" json:"goals,omitempty"`
	HealthConditions string             `bson:"healthConditions,omitempty" json:"healthConditions,omitempty"`
	Notes            string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Active           bool               `bson:"active" json:"active"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}
