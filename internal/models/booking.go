package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookedSession is a student's claim on a session, unique per
// (email, sessionId) via an index on the bookedSessions collection.
type BookedSession struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email"`
	SessionID    string             `json:"sessionId" bson:"sessionId"`
	SessionTitle string             `json:"sessionTitle,omitempty" bson:"sessionTitle,omitempty"`
	TutorEmail   string             `json:"tutorEmail,omitempty" bson:"tutorEmail,omitempty"`
	Price        float64            `json:"price,omitempty" bson:"price,omitempty"`
}
