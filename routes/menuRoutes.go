package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/flamesResource6/food-ordering-backend/controllers"
)

func MenuRoutes(router *mux.Router, c *controller.MenuController) {
	router.HandleFunc("/menu", c.GetMenu).Methods(http.MethodGet)
	router.HandleFunc("/menu", c.CreateMenuItem).Methods(http.MethodPost)
}
