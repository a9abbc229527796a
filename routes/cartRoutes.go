package routes

import (
	"net/http"

	controller "github.com/Lunch-Booking-System/LunchBookingSystem/controllers"

	"github.com/gorilla/mux"
)

func CartProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/cart/{customer_id}", controller.GetCart).Methods(http.MethodGet)
	router.HandleFunc("/cart/{customer_id}", controller.ClearCart).Methods(http.MethodDelete)
	router.HandleFunc("/cart/{customer_id}/items", controller.AddCartItem).Methods(http.MethodPost)
	router.HandleFunc("/cart/{customer_id}/items/{item_id}/decrease", controller.DecreaseCartItem).Methods(http.MethodPost)
	router.HandleFunc("/cart/{customer_id}/checkout", controller.CheckoutCart).Methods(http.MethodPost)
}
