package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleStudent UserRole = "Student"
	RoleTutor   UserRole = "Tutor"
	RoleAdmin   UserRole = "Admin"
)

// User is a registered account. Email is the logical key; uniqueness is
// enforced by an index on the users collection, not by this type.
type User struct {
	ID    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email" bson:"email"`
	Photo string             `json:"photo,omitempty" bson:"photo,omitempty"`
	Role  UserRole           `json:"role" bson:"role"`
}
