package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/flamesResource6/food-ordering-backend/database"
	"github.com/flamesResource6/food-ordering-backend/helper"
	"github.com/flamesResource6/food-ordering-backend/models"
	"github.com/flamesResource6/food-ordering-backend/services"
)

type OrderController struct {
	Store database.Store
}

func NewOrderController(store database.Store) *OrderController {
	return &OrderController{Store: store}
}

// CreateOrder validates the payload, confirms every referenced menu
// item exists, then persists. Nothing is written on any failure.
func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order.ApplyDefaults()
	if err := helper.ValidateStruct(&order); err != nil {
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

	if err := services.CheckMenuItemRefs(ctx, c.Store, order.Items); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidItemID):
			helper.RespondError(w, http.StatusBadRequest, "Invalid item IDs")
		case errors.Is(err, services.ErrUnknownMenuItem):
			helper.RespondError(w, http.StatusBadRequest, "One or more menu items not found")
		case errors.Is(err, database.ErrNotConnected):
			helper.RespondError(w, http.StatusServiceUnavailable, "Database not available")
		default:
			helper.RespondError(w, http.StatusInternalServerError, "Error verifying menu items")
		}
		return
	}

	id, err := c.Store.Create(ctx, models.CollectionFor(models.KindOrder), order)
	if err != nil {
		if errors.Is(err, database.ErrNotConnected) {
			helper.RespondError(w, http.StatusServiceUnavailable, "Database not available")
			return
		}
		helper.RespondError(w, http.StatusInternalServerError, "Order was not created")
		return
	}

	helper.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"id":     id,
		"status": "received",
	})
}

// GetOrders lists stored orders with identifiers normalized to their
// transport-safe hex form.
func (c *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	limit, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	if err != nil || limit < 1 {
		limit = database.DefaultListLimit
	}

	if c.Store == nil {
		helper.RespondError(w, http.StatusServiceUnavailable, "Database not available")
		return
	}

	docs, err := c.Store.List(ctx, models.CollectionFor(models.KindOrder), limit)
	if err != nil {
		if errors.Is(err, database.ErrNotConnected) {
			helper.RespondError(w, http.StatusServiceUnavailable, "Database not available")
			return
		}
		helper.RespondError(w, http.StatusInternalServerError, "Error occurred while listing orders")
		return
	}

	for _, doc := range docs {
		if oid, ok := doc["_id"].(primitive.ObjectID); ok {
			doc["_id"] = oid.Hex()
		}
	}

	helper.RespondJSON(w, http.StatusOK, map[string]interface{}{"orders": docs})
}
