package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/flamesResource6/food-ordering-backend/controllers"
)

func OrderRoutes(router *mux.Router, c *controller.OrderController) {
	router.HandleFunc("/orders", c.GetOrders).Methods(http.MethodGet)
	router.HandleFunc("/orders", c.CreateOrder).Methods(http.MethodPost)
}
