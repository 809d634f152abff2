package models

import (
	"testing"
)

func TestMenuItemApplyDefaults(t *testing.T) {
	price := 9.5
	item := MenuItem{Name: "Margherita", Price: &price}
	item.ApplyDefaults()

	if item.Category != "General" {
		t.Errorf("category = %q, want General", item.Category)
	}
	if item.Available == nil || !*item.Available {
		t.Error("available should default to true")
	}
}

func TestMenuItemApplyDefaultsKeepsExplicitValues(t *testing.T) {
	price := 4.0
	available := false
	item := MenuItem{Name: "Cola", Price: &price, Category: "Drinks", Available: &available}
	item.ApplyDefaults()

	if item.Category != "Drinks" {
		t.Errorf("category = %q, want Drinks", item.Category)
	}
	if *item.Available {
		t.Error("explicit available=false was overwritten")
	}
}

func TestOrderApplyDefaults(t *testing.T) {
	subtotal, total := 19.0, 19.0
	order := Order{
		CustomerName:    "A",
		CustomerPhone:   "555",
		CustomerAddress: "X",
		Items:           []OrderItem{{ItemID: "abc"}},
		Subtotal:        &subtotal,
		Total:           &total,
	}
	order.ApplyDefaults()

	if order.Status != "pending" {
		t.Errorf("status = %q, want pending", order.Status)
	}
	if order.DeliveryFee == nil || *order.DeliveryFee != 0 {
		t.Error("delivery_fee should default to 0")
	}
	if order.Items[0].Quantity == nil || *order.Items[0].Quantity != 1 {
		t.Error("quantity should default to 1")
	}
}

func TestOrderApplyDefaultsKeepsStatus(t *testing.T) {
	order := Order{Status: "confirmed"}
	order.ApplyDefaults()
	if order.Status != "confirmed" {
		t.Errorf("status = %q, want confirmed", order.Status)
	}
}
