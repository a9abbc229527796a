package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	database "github.com/Lunch-Booking-System/LunchBookingSystem/config"
	"github.com/Lunch-Booking-System/LunchBookingSystem/helper"
	"github.com/Lunch-Booking-System/LunchBookingSystem/models"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var orderCollection *mongo.Collection = database.OpenCollection(database.Client, "order")

// Window in which a replayed idempotency key returns the original order
// instead of inserting a duplicate.
const idempotencyWindow = 15 * time.Minute

func idempotencyKey(token string) string {
	return "idemp:order:" + token
}

// persistOrder stamps timestamps, dates and defaults onto a validated order
// and inserts it. When the idempotency key was already claimed, the order it
// previously produced is returned instead and replayed is true.
func persistOrder(ctx context.Context, order *models.Order) (*models.Order, bool, error) {
	if err := models.CheckNewOrder(order); err != nil {
		return nil, false, err
	}

	now := time.Now()
	order.ID = primitive.NewObjectID()
	order.Order_id = order.ID.Hex()
	order.Order_Date = models.NewOrderDate(now)
	order.Order_day = models.OrderDay(now)
	order.Status = models.StatusPending
	order.PaymentStatus = models.PaymentPending
	order.Created_at = now
	order.Updated_at = now

	if order.Idempotency_key == "" {
		order.Idempotency_key = uuid.NewString()
	}

	key := idempotencyKey(order.Idempotency_key)
	claimed, err := database.RedisClient.SetNX(ctx, key, order.Order_id, idempotencyWindow).Result()
	if err != nil {
		return nil, false, err
	}

	if !claimed {
		existingId, err := database.RedisClient.Get(ctx, key).Result()
		if err != nil {
			return nil, false, err
		}
		var existing models.Order
		if err := orderCollection.FindOne(ctx, bson.M{"order_id": existingId}).Decode(&existing); err != nil {
			return nil, false, err
		}
		return &existing, true, nil
	}

	if _, err := orderCollection.InsertOne(ctx, order); err != nil {
		// Release the key so the client can retry.
		database.RedisClient.Del(ctx, key)
		return nil, false, err
	}

	return order, false, nil
}

// CreateOrder persists an order built from an explicit payload. The item
// snapshot, the single-vendor rule and the client-computed total are all
// checked before anything is written.
func CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := models.CheckNewOrder(&order); err != nil {
		http.Error(w, fmt.Sprintf(`{"success": false, "message": "%s"}`, err.Error()), http.StatusBadRequest)
		return
	}

	// The item snapshot must be single-vendor; the order's vendor field
	// must agree with it, so a forged payload cannot route an order to
	// the wrong vendor.
	for _, it := range order.Items {
		var item models.Item
		err := itemCollection.FindOne(ctx, bson.M{"item_id": it.Item_id}).Decode(&item)
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.Error(w, `{"success": false, "message": "Order references an unknown item"}`, http.StatusBadRequest)
			return
		} else if err != nil {
			http.Error(w, `{"success": false, "message": "Error validating order items"}`, http.StatusInternalServerError)
			return
		}
		if err := models.CheckItemVendor(&order, &item); err != nil {
			http.Error(w, fmt.Sprintf(`{"success": false, "message": "%s"}`, err.Error()), http.StatusBadRequest)
			return
		}
	}

	persisted, replayed, err := persistOrder(ctx, &order)
	if err != nil {
		if errors.Is(err, models.ErrTotalMismatch) {
			http.Error(w, fmt.Sprintf(`{"success": false, "message": "%s"}`, err.Error()), http.StatusBadRequest)
			return
		}
		http.Error(w, `{"success": false, "message": "Order creation failed"}`, http.StatusInternalServerError)
		return
	}

	status, message := helper.OrderCreationResponse(replayed)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": message,
		"data":    persisted,
	})
}

func GetOrderById(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	orderId := mux.Vars(r)["order_id"]
	if orderId == "" {
		http.Error(w, `{"success": false, "message": "Invalid order ID"}`, http.StatusBadRequest)
		return
	}

	var order models.Order
	err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving order"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Order retrieved successfully",
		"data":    order,
	})
}

// GetCustomerOrders lists a customer's own orders, newest first.
func GetCustomerOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	customerId := mux.Vars(r)["customer_id"]
	if customerId == "" {
		http.Error(w, `{"success": false, "message": "Invalid customer ID"}`, http.StatusBadRequest)
		return
	}

	matchStage := bson.D{{Key: "$match", Value: bson.D{{Key: "customer_id", Value: customerId}}}}
	sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}}

	cursor, err := orderCollection.Aggregate(ctx, mongo.Pipeline{matchStage, sortStage})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving orders"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding orders data"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Orders retrieved successfully",
		"data":    orders,
	})
}

// mealMatches applies the vendor dashboard's meal filter against the
// order's item snapshot.
func mealMatches(order models.Order, meal string) bool {
	switch meal {
	case "", "all":
		return true
	case "breakfast":
		for _, it := range order.Items {
			if it.Category == models.CategoryBreakFast {
				return true
			}
		}
	case "snacks":
		for _, it := range order.Items {
			if it.ItemType == models.ItemTypeSnack {
				return true
			}
		}
	}
	return false
}

// GetVendorOrders lists a vendor's paid orders for one calendar date.
// The date is compared against the UTC-midnight order_day stamped at
// creation, so repeated polls for the same date are stable.
func GetVendorOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	vendorId := mux.Vars(r)["vendor_id"]
	if vendorId == "" {
		http.Error(w, `{"success": false, "message": "Invalid vendor ID"}`, http.StatusBadRequest)
		return
	}

	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		http.Error(w, `{"success": false, "message": "Date is required (YYYY-MM-DD)"}`, http.StatusBadRequest)
		return
	}

	day, err := time.ParseInLocation("2006-01-02", dateParam, time.UTC)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Invalid date, expected YYYY-MM-DD"}`, http.StatusBadRequest)
		return
	}

	meal := r.URL.Query().Get("meal")
	switch meal {
	case "", "all", "breakfast", "snacks":
	default:
		http.Error(w, `{"success": false, "message": "Invalid meal filter"}`, http.StatusBadRequest)
		return
	}

	filter := bson.M{
		"vendor_id":      vendorId,
		"order_day":      day,
		"payment_status": models.PaymentPaid,
	}

	cursor, err := orderCollection.Find(ctx, filter)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving orders"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding orders data"}`, http.StatusInternalServerError)
		return
	}

	filtered := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if mealMatches(order, meal) {
			filtered = append(filtered, order)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Orders retrieved successfully",
		"data":    filtered,
	})
}

// UpdateOrderStatus progresses fulfillment along the allowed transitions
// only: Pending -> Ready -> Shipped -> Delivered, with Cancelled reachable
// from any non-terminal state.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	orderId := mux.Vars(r)["order_id"]

	var requestBody struct {
		Status string `json:"status" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if !models.ValidStatus(requestBody.Status) {
		http.Error(w, `{"success": false, "message": "Invalid order status"}`, http.StatusBadRequest)
		return
	}

	var order models.Order
	err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving order"}`, http.StatusInternalServerError)
		return
	}

	if !models.CanTransition(order.Status, requestBody.Status) {
		http.Error(w, fmt.Sprintf(`{"success": false, "message": "Cannot move order from %s to %s"}`, order.Status, requestBody.Status), http.StatusBadRequest)
		return
	}

	// The status filter makes the write conditional: a concurrent update
	// that already moved the order on simply misses, last writer does
	// not win.
	update := bson.M{
		"$set": bson.M{
			"status":     requestBody.Status,
			"updated_at": time.Now(),
		},
	}

	result, err := orderCollection.UpdateOne(ctx, bson.M{"order_id": orderId, "status": order.Status}, update)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Failed to update order status"}`, http.StatusInternalServerError)
		return
	}

	if result.MatchedCount == 0 {
		http.Error(w, `{"success": false, "message": "Order status changed concurrently, retry"}`, http.StatusConflict)
		return
	}

	if err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order); err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving updated order"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Order status updated successfully",
		"data":    order,
	})
}

// ApplyOrderCoupon records the flat discount on an unpaid order, at most
// once. The order's total_amount stays pre-discount; the payable amount is
// derived when the payment is created.
func ApplyOrderCoupon(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	orderId := mux.Vars(r)["order_id"]

	var order models.Order
	err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving order"}`, http.StatusInternalServerError)
		return
	}

	discount, err := models.ApplyCoupon(&order)
	if err != nil {
		http.Error(w, fmt.Sprintf(`{"success": false, "message": "%s"}`, err.Error()), http.StatusBadRequest)
		return
	}

	// coupon_applied:false in the filter makes the second concurrent
	// apply miss instead of stacking discounts.
	update := bson.M{
		"$set": bson.M{
			"discount":       discount,
			"coupon_applied": true,
			"updated_at":     time.Now(),
		},
	}

	result, err := orderCollection.UpdateOne(ctx, bson.M{"order_id": orderId, "coupon_applied": false}, update)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Failed to apply coupon"}`, http.StatusInternalServerError)
		return
	}

	if result.MatchedCount == 0 {
		http.Error(w, `{"success": false, "message": "Coupon already applied"}`, http.StatusBadRequest)
		return
	}

	if err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order); err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving updated order"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Coupon applied successfully",
		"data":    order,
		"payable": models.PayableAmount(&order),
	})
}
