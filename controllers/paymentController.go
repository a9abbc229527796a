package controller

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/Lunch-Booking-System/LunchBookingSystem/gateway"
	"github.com/Lunch-Booking-System/LunchBookingSystem/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var gatewayClient *gateway.Client = gateway.NewClientFromEnv()

// CreatePayment registers a gateway order for the payable amount of an
// unpaid order. The client opens the checkout widget with the returned
// descriptor and the public key id.
func CreatePayment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var requestBody struct {
		Order_id string `json:"order_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil || requestBody.Order_id == "" {
		http.Error(w, `{"success": false, "message": "Order ID is required"}`, http.StatusBadRequest)
		return
	}

	var order models.Order
	err := orderCollection.FindOne(ctx, bson.M{"order_id": requestBody.Order_id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving order"}`, http.StatusInternalServerError)
		return
	}

	if order.PaymentStatus == models.PaymentPaid {
		http.Error(w, `{"success": false, "message": "Order is already paid"}`, http.StatusBadRequest)
		return
	}

	// Rupees to minor units. The discount, if any, comes off here; the
	// recorded total_amount stays pre-discount.
	amountMinor := int64(math.Round(models.PayableAmount(&order) * 100))

	gatewayOrder, err := gatewayClient.CreateOrder(ctx, amountMinor, order.Order_id)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Payment gateway order creation failed"}`, http.StatusBadGateway)
		return
	}

	update := bson.M{
		"$set": bson.M{
			"gateway_order_id": gatewayOrder.ID,
			"updated_at":       time.Now(),
		},
	}
	if _, err := orderCollection.UpdateOne(ctx, bson.M{"order_id": order.Order_id}, update); err != nil {
		http.Error(w, `{"success": false, "message": "Failed to record gateway order"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Gateway order created successfully",
		"data":    gatewayOrder,
		"key_id":  gatewayClient.KeyID,
	})
}

// VerifyPayment checks the checkout widget's signed callback. It fails
// closed: any mismatch leaves payment_status untouched and answers
// isOk=false. A valid signature flips Pending to Paid exactly once;
// re-verifying a paid order is a no-op success.
func VerifyPayment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var requestBody struct {
		Order_id           string `json:"order_id"`
		Gateway_order_id   string `json:"gateway_order_id"`
		Gateway_payment_id string `json:"gateway_payment_id"`
		Signature          string `json:"signature"`
	}

	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if requestBody.Order_id == "" || requestBody.Gateway_order_id == "" ||
		requestBody.Gateway_payment_id == "" || requestBody.Signature == "" {
		http.Error(w, `{"success": false, "message": "Missing verification fields"}`, http.StatusBadRequest)
		return
	}

	var order models.Order
	err := orderCollection.FindOne(ctx, bson.M{"order_id": requestBody.Order_id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving order"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if order.PaymentStatus == models.PaymentPaid {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"isOk":    true,
			"message": "Payment already verified",
		})
		return
	}

	// The callback must reference the gateway order this order was sent
	// to checkout with.
	if order.Gateway_order_id == "" || order.Gateway_order_id != requestBody.Gateway_order_id {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"isOk":    false,
			"message": "Gateway order mismatch",
		})
		return
	}

	if !gateway.VerifySignature(requestBody.Gateway_order_id, requestBody.Gateway_payment_id, requestBody.Signature, gatewayClient.KeySecret) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"isOk":    false,
			"message": "Signature verification failed",
		})
		return
	}

	// Conditional on payment_status so concurrent verifies settle the
	// transition once.
	update := bson.M{
		"$set": bson.M{
			"payment_status":     models.PaymentPaid,
			"gateway_payment_id": requestBody.Gateway_payment_id,
			"updated_at":         time.Now(),
		},
	}

	result, err := orderCollection.UpdateOne(ctx,
		bson.M{"order_id": order.Order_id, "payment_status": models.PaymentPending}, update)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Failed to update payment status"}`, http.StatusInternalServerError)
		return
	}

	if result.MatchedCount == 0 {
		// Another verify got there first; payment is settled either way.
		json.NewEncoder(w).Encode(map[string]interface{}{
			"isOk":    true,
			"message": "Payment already verified",
		})
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"isOk":    true,
		"message": "Payment verified successfully",
	})
}
