package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is one line of an order. It is embedded in the order
// document, never stored on its own.
type OrderItem struct {
	ItemID   string `bson:"item_id" json:"item_id" validate:"required"`
	Quantity *int   `bson:"quantity" json:"quantity" validate:"required,gte=1"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CustomerName    string             `bson:"customer_name" json:"customer_name" validate:"required"`
	CustomerPhone   string             `bson:"customer_phone" json:"customer_phone" validate:"required"`
	CustomerAddress string             `bson:"customer_address" json:"customer_address" validate:"required"`
	Items           []OrderItem        `bson:"items" json:"items" validate:"required,min=1,dive"`
	Subtotal        *float64           `bson:"subtotal" json:"subtotal" validate:"required,gte=0"`
	DeliveryFee     *float64           `bson:"delivery_fee" json:"delivery_fee" validate:"omitempty,gte=0"`
	Total           *float64           `bson:"total" json:"total" validate:"required,gte=0"`
	// Status is stored as free text. Known values are pending, confirmed,
	// delivered and cancelled, but the enumeration is not enforced.
	Status string `bson:"status" json:"status"`
}

func (o *Order) ApplyDefaults() {
	if o.DeliveryFee == nil {
		fee := 0.0
		o.DeliveryFee = &fee
	}
	if o.Status == "" {
		o.Status = "pending"
	}
	for i := range o.Items {
		if o.Items[i].Quantity == nil {
			quantity := 1
			o.Items[i].Quantity = &quantity
		}
	}
}
