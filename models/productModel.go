package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a declared schema only, like User.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Description *string            `bson:"description,omitempty" json:"description"`
	Price       *float64           `bson:"price" json:"price" validate:"required,gte=0"`
	Category    string             `bson:"category" json:"category" validate:"required"`
	InStock     *bool              `bson:"in_stock" json:"in_stock"`
}

func (p *Product) ApplyDefaults() {
	if p.InStock == nil {
		inStock := true
		p.InStock = &inStock
	}
}
