package routes

import (
	controller "github.com/Lunch-Booking-System/LunchBookingSystem/controllers"

	"github.com/gorilla/mux"
)

func PublicRoutes(router *mux.Router) {
	router.HandleFunc("/customer/signup", controller.CustomerSignUp).Methods("POST")
	router.HandleFunc("/customer/login", controller.CustomerLogin).Methods("POST")
	router.HandleFunc("/vendor/signup", controller.VendorSignUp).Methods("POST")
	router.HandleFunc("/vendor/login", controller.VendorLogin).Methods("POST")
	router.HandleFunc("/vendor/exists", controller.VendorExists).Methods("GET")
}

func VendorProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/vendors", controller.ListVendors).Methods("GET")
}
