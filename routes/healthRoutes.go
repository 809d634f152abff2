package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/flamesResource6/food-ordering-backend/controllers"
)

func HealthRoutes(router *mux.Router, c *controller.HealthController) {
	router.HandleFunc("/", c.Root).Methods(http.MethodGet)
	router.HandleFunc("/api/hello", c.Hello).Methods(http.MethodGet)
	router.HandleFunc("/test", c.Test).Methods(http.MethodGet)
	router.HandleFunc("/schema", c.Schema).Methods(http.MethodGet)
}
