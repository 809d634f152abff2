package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/flamesResource6/food-ordering-backend/config"
	controller "github.com/flamesResource6/food-ordering-backend/controllers"
	"github.com/flamesResource6/food-ordering-backend/database"
	"github.com/flamesResource6/food-ordering-backend/logger"
	middleware "github.com/flamesResource6/food-ordering-backend/middlewares"
	"github.com/flamesResource6/food-ordering-backend/routes"
)

func main() {
	cfg := config.Load()
	appLogger := logger.NewLogger("food-ordering-backend")

	// The store handle stays nil when no database is reachable; the
	// service still starts and the diagnostic endpoint reports the state.
	var store database.Store
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		mongoStore, err := database.Connect(ctx, cfg.DatabaseURL, cfg.DatabaseName)
		cancel()
		if err != nil {
			appLogger.Error("db_connect", "", "continuing without a database connection", err)
		} else {
			appLogger.Info("db_connect", "", "connected to database "+mongoStore.Name())
			store = mongoStore
		}
	} else {
		appLogger.Info("db_connect", "", "DATABASE_URL not set, starting without a database connection")
	}

	router := mux.NewRouter()
	router.Use(middleware.RequestLogger(appLogger))

	routes.HealthRoutes(router, controller.NewHealthController(store, cfg))
	routes.MenuRoutes(router, controller.NewMenuController(store))
	routes.OrderRoutes(router, controller.NewOrderController(store))

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "X-Request-ID"}),
		handlers.AllowCredentials(),
	)

	appLogger.Info("startup", "", "server listening on port "+cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, cors(router)); err != nil {
		log.Fatal(err)
	}
}
