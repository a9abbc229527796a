package routes

import (
	"net/http"

	controller "github.com/Lunch-Booking-System/LunchBookingSystem/controllers"

	"github.com/gorilla/mux"
)

func ItemProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/items", controller.GetItems).Methods(http.MethodGet)
	router.HandleFunc("/items", controller.CreateItem).Methods(http.MethodPost)

	router.HandleFunc("/items/vendor/{vendor_id}", controller.GetVendorItems).Methods(http.MethodGet)

	router.HandleFunc("/items/{item_id}", controller.GetItem).Methods(http.MethodGet)
	router.HandleFunc("/items/{item_id}", controller.UpdateItem).Methods(http.MethodPatch)
	router.HandleFunc("/items/{item_id}/availability", controller.UpdateItemAvailability).Methods(http.MethodPatch)
}
