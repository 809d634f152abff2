package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a declared schema only; no endpoint in this service writes or
// reads the user collection.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name" validate:"required"`
	Email    string             `bson:"email" json:"email" validate:"required,email"`
	Address  *string            `bson:"address,omitempty" json:"address"`
	Phone    *string            `bson:"phone,omitempty" json:"phone"`
	IsActive *bool              `bson:"is_active" json:"is_active"`
}

func (u *User) ApplyDefaults() {
	if u.IsActive == nil {
		active := true
		u.IsActive = &active
	}
}
