package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is one record in the append-only payment ledger.
type Payment struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email     string             `json:"email,omitempty" bson:"email,omitempty"`
	SessionID string             `json:"sessionId,omitempty" bson:"sessionId,omitempty"`
	Price     float64            `json:"price" bson:"price"`
	Date      time.Time          `json:"date" bson:"date"`
}
