package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleLearner  Role = "learner"
	RoleEducator Role = "educator"
)

// Valid reports whether the role belongs to the closed set. Unrecognized
// values are rejected at the decode boundary and never reach the store.
func (r Role) Valid() bool {
	switch r {
	case RoleLearner, RoleEducator:
		return true
	}
	return false
}

// User is the account aggregate: identity, credential, role and the embedded
// enrollment collection the progress reconciler operates on. The ObjectID and
// the credential are storage-only; neither is ever serialized to a client.
type User struct {
	ID           primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Username     string             `json:"username" bson:"username"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	Password     string             `json:"-" bson:"password"`
	Role         Role               `json:"role" bson:"role"`
	CourseDetail []EnrollmentRecord `json:"course_detail" bson:"course_detail"`
}
