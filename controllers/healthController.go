package controller

import (
	"context"
	"net/http"

	"github.com/flamesResource6/food-ordering-backend/config"
	"github.com/flamesResource6/food-ordering-backend/database"
	"github.com/flamesResource6/food-ordering-backend/helper"
	"github.com/flamesResource6/food-ordering-backend/models"
)

type HealthController struct {
	Store database.Store
	Cfg   *config.Config
}

func NewHealthController(store database.Store, cfg *config.Config) *HealthController {
	return &HealthController{Store: store, Cfg: cfg}
}

func (c *HealthController) Root(w http.ResponseWriter, r *http.Request) {
	helper.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Food Ordering Backend Running",
	})
}

func (c *HealthController) Hello(w http.ResponseWriter, r *http.Request) {
	helper.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Hello from the backend API!",
	})
}

// Test reports store connectivity. It never fails outward: every
// internal failure degrades the status strings instead of propagating.
func (c *HealthController) Test(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response := map[string]interface{}{
		"backend":           "running",
		"database":          "not available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if c.Store != nil {
		response["database"] = "available"
		response["database_url"] = "not set"
		if c.Cfg != nil && c.Cfg.DatabaseURL != "" {
			response["database_url"] = "set"
		}
		response["database_name"] = c.Store.Name()
		response["connection_status"] = "connected"

		names, err := c.Store.CollectionNames(ctx)
		if err != nil {
			response["database"] = "connected but degraded: " + truncate(err.Error(), 50)
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			response["collections"] = names
			response["database"] = "connected"
		}
	}

	helper.RespondJSON(w, http.StatusOK, response)
}

// Schema exposes the declared record schemas for external viewers.
func (c *HealthController) Schema(w http.ResponseWriter, r *http.Request) {
	helper.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"schemas": models.Registry(),
	})
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
