package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Material is supplementary content a tutor attaches to a session.
// One record per (email, sessionId) pair, enforced by a unique index.
type Material struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Email     string             `json:"email" bson:"email"`
	SessionID string             `json:"sessionId" bson:"sessionId"`
	Doc       string             `json:"doc" bson:"doc"`
	Image     string             `json:"image" bson:"image"`
}
