package routes

import (
	"net/http"

	controller "github.com/Lunch-Booking-System/LunchBookingSystem/controllers"

	"github.com/gorilla/mux"
)

func PaymentProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/payment/create", controller.CreatePayment).Methods(http.MethodPost)
	router.HandleFunc("/payment/verify", controller.VerifyPayment).Methods(http.MethodPost)
}
