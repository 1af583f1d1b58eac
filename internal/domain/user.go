package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account that exercises are logged against.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"` // Unique, case-sensitive
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
