package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is an append-only freeform rating left by a student.
type Review struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	SessionID   string             `json:"sessionId,omitempty" bson:"sessionId,omitempty"`
	StudentName string             `json:"studentName,omitempty" bson:"studentName,omitempty"`
	Rating      float64            `json:"rating,omitempty" bson:"rating,omitempty"`
	Comment     string             `json:"comment,omitempty" bson:"comment,omitempty"`
}
