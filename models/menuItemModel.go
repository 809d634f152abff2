package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Description *string            `bson:"description,omitempty" json:"description"`
	Price       *float64           `bson:"price" json:"price" validate:"required,gte=0"`
	Image       *string            `bson:"image,omitempty" json:"image"`
	Category    string             `bson:"category" json:"category"`
	Available   *bool              `bson:"available" json:"available"`
}

// ApplyDefaults fills fields the caller omitted. Runs before validation
// so a defaulted record always passes the schema checks.
func (m *MenuItem) ApplyDefaults() {
	if m.Category == "" {
		m.Category = "General"
	}
	if m.Available == nil {
		available := true
		m.Available = &available
	}
}
