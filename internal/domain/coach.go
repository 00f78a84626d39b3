package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Coach is the account that owns the whole workspace. The app is
// single-tenant: every client, program and log belongs to the coach.
type Coach struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"` // unique
	PasswordHash string             `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
