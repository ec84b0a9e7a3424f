package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note is a freeform study note owned by a student.
type Note struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email       string             `json:"email" bson:"email"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
}
