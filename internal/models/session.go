package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SessionStatus string

const (
	SessionPending  SessionStatus = "pending"
	SessionSuccess  SessionStatus = "success"
	SessionRejected SessionStatus = "rejected"
)

// Session is a tutor-offered paid course record. Only sessions with
// status "success" are visible in the public listing.
type Session struct {
	ID                primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title             string             `json:"title" bson:"title"`
	TutorName         string             `json:"tutorName" bson:"tutorName"`
	TutorEmail        string             `json:"tutorEmail" bson:"tutorEmail"`
	Description       string             `json:"description" bson:"description"`
	RegistrationStart string             `json:"registrationStart,omitempty" bson:"registrationStart,omitempty"`
	RegistrationEnd   string             `json:"registrationEnd,omitempty" bson:"registrationEnd,omitempty"`
	ClassStart        string             `json:"classStart,omitempty" bson:"classStart,omitempty"`
	ClassEnd          string             `json:"classEnd,omitempty" bson:"classEnd,omitempty"`
	Duration          string             `json:"duration,omitempty" bson:"duration,omitempty"`
	Price             float64            `json:"price" bson:"price"`
	Status            SessionStatus      `json:"status" bson:"status"`
	Feedback          string             `json:"feedback,omitempty" bson:"feedback,omitempty"`
}
