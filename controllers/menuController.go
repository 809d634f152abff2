package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/flamesResource6/food-ordering-backend/database"
	"github.com/flamesResource6/food-ordering-backend/helper"
	"github.com/flamesResource6/food-ordering-backend/models"
)

const requestTimeout = 10 * time.Second

type MenuController struct {
	Store database.Store
}

func NewMenuController(store database.Store) *MenuController {
	return &MenuController{Store: store}
}

// GetMenu lists menu items projected into the caller-facing shape.
func (c *MenuController) GetMenu(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if c.Store == nil {
		helper.RespondError(w, http.StatusServiceUnavailable, "Database not available")
		return
	}

	docs, err := c.Store.List(ctx, models.CollectionFor(models.KindMenuItem), database.DefaultListLimit)
	if err != nil {
		if errors.Is(err, database.ErrNotConnected) {
			helper.RespondError(w, http.StatusServiceUnavailable, "Database not available")
			return
		}
		helper.RespondError(w, http.StatusInternalServerError, "Error occurred while listing the menu items")
		return
	}

	items := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		items = append(items, menuItemView(doc))
	}

	helper.RespondJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

// CreateMenuItem validates and persists one menu item.
func (c *MenuController) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item.ApplyDefaults()
	if err := helper.ValidateStruct(&item); err != nil {
		var verr *helper.ValidationError
		if errors.As(err, &verr) {
			helper.RespondValidationError(w, verr)
			return
		}
		helper.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if c.Store == nil {
		helper.RespondError(w, http.StatusServiceUnavailable, "Database not available")
		return
	}

	id, err := c.Store.Create(ctx, models.CollectionFor(models.KindMenuItem), item)
	if err != nil {
		if errors.Is(err, database.ErrNotConnected) {
			helper.RespondError(w, http.StatusServiceUnavailable, "Database not available")
			return
		}
		helper.RespondError(w, http.StatusInternalServerError, "Menu item was not created")
		return
	}

	helper.RespondJSON(w, http.StatusCreated, map[string]interface{}{"id": id})
}

// menuItemView projects a stored document into the menu response shape.
// Category and available defaults are re-applied on read in case the
// document predates validation.
func menuItemView(doc bson.M) map[string]interface{} {
	view := map[string]interface{}{
		"id":          idHex(doc["_id"]),
		"name":        doc["name"],
		"description": doc["description"],
		"price":       toFloat(doc["price"]),
		"image":       doc["image"],
		"category":    "General",
		"available":   true,
	}
	if category, ok := doc["category"].(string); ok && category != "" {
		view["category"] = category
	}
	if available, ok := doc["available"].(bool); ok {
		view["available"] = available
	}
	return view
}

func idHex(v interface{}) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	}
	return ""
}

// toFloat coerces the numeric types the store may hand back.
func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}
