package routes

import (
	"net/http"

	controller "github.com/Lunch-Booking-System/LunchBookingSystem/controllers"

	"github.com/gorilla/mux"
)

func OrderProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/orders", controller.CreateOrder).Methods(http.MethodPost)

	router.HandleFunc("/orders/vendor/{vendor_id}", controller.GetVendorOrders).Methods(http.MethodGet)
	router.HandleFunc("/orders/customer/{customer_id}", controller.GetCustomerOrders).Methods(http.MethodGet)

	router.HandleFunc("/orders/{order_id}", controller.GetOrderById).Methods(http.MethodGet)
	router.HandleFunc("/orders/{order_id}/status", controller.UpdateOrderStatus).Methods(http.MethodPatch)
	router.HandleFunc("/orders/{order_id}/coupon", controller.ApplyOrderCoupon).Methods(http.MethodPost)
}
