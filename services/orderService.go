package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/flamesResource6/food-ordering-backend/database"
	"github.com/flamesResource6/food-ordering-backend/models"
)

var (
	// ErrInvalidItemID means an item_id is not a well-formed identifier.
	ErrInvalidItemID = errors.New("invalid item IDs")
	// ErrUnknownMenuItem means at least one referenced menu item does not exist.
	ErrUnknownMenuItem = errors.New("one or more menu items not found")
)

// CheckMenuItemRefs confirms every item_id on an order resolves to an
// existing menu item. Duplicate line items are legal, so ids are
// de-duplicated before the existence check. The check runs before any
// write; it is not atomic against a concurrent menu item delete.
func CheckMenuItemRefs(ctx context.Context, store database.Store, items []models.OrderItem) error {
	seen := make(map[primitive.ObjectID]struct{}, len(items))
	ids := make([]primitive.ObjectID, 0, len(items))

	for _, item := range items {
		id, err := primitive.ObjectIDFromHex(item.ItemID)
		if err != nil {
			return ErrInvalidItemID
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	ok, err := store.ExistsAll(ctx, models.CollectionFor(models.KindMenuItem), ids)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnknownMenuItem
	}
	return nil
}
