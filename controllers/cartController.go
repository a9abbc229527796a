package controller

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	database "github.com/Lunch-Booking-System/LunchBookingSystem/config"
	"github.com/Lunch-Booking-System/LunchBookingSystem/helper"
	"github.com/Lunch-Booking-System/LunchBookingSystem/models"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Carts live in Redis, one key per customer, and expire after a day of
// inactivity. Checkout snapshots the cart and clears it only on success.
const cartTTL = 24 * time.Hour

func cartKey(customerId string) string {
	return "cart:" + customerId
}

func loadCart(ctx context.Context, customerId string) (*models.Cart, error) {
	raw, err := database.RedisClient.Get(ctx, cartKey(customerId)).Result()
	if errors.Is(err, redis.Nil) {
		return &models.Cart{Customer_id: customerId}, nil
	}
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func saveCart(ctx context.Context, cart *models.Cart) error {
	cart.Updated_at = time.Now()
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return database.RedisClient.Set(ctx, cartKey(cart.Customer_id), raw, cartTTL).Err()
}

// GetCart returns the customer's cart with its computed total.
func GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	customerId := mux.Vars(r)["customer_id"]

	cart, err := loadCart(ctx, customerId)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving cart"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Cart retrieved successfully",
		"data":    cart,
		"total":   cart.Total(),
	})
}

// AddCartItem looks the item up in the catalog, rejects unavailable items
// and cross-vendor adds, and stores a price snapshot in the cart.
func AddCartItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	customerId := mux.Vars(r)["customer_id"]

	var requestBody struct {
		Item_id  string `json:"item_id" validate:"required"`
		Quantity int    `json:"quantity" validate:"required,gte=1"`
	}

	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if requestBody.Item_id == "" || requestBody.Quantity < 1 {
		http.Error(w, `{"success": false, "message": "Item ID and a quantity of at least 1 are required"}`, http.StatusBadRequest)
		return
	}

	var item models.Item
	err := itemCollection.FindOne(ctx, bson.M{"item_id": requestBody.Item_id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, `{"success": false, "message": "Item not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving item"}`, http.StatusInternalServerError)
		return
	}

	if !item.Available || !item.IsActive {
		http.Error(w, `{"success": false, "message": "Item is currently unavailable"}`, http.StatusBadRequest)
		return
	}

	cart, err := loadCart(ctx, customerId)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving cart"}`, http.StatusInternalServerError)
		return
	}

	// The cart is single-vendor; the first add pins it.
	if cart.Vendor_id != "" && cart.Vendor_id != *item.Vendor_id {
		http.Error(w, `{"success": false, "message": "Cart already holds items from another vendor"}`, http.StatusBadRequest)
		return
	}
	cart.Vendor_id = *item.Vendor_id

	cart.AddItem(models.CartItem{
		Item_id:  item.Item_id,
		ItemType: *item.ItemType,
		Category: *item.Category,
		ItemName: *item.ItemName,
		Price:    *item.Price,
	}, requestBody.Quantity)

	if err := saveCart(ctx, cart); err != nil {
		http.Error(w, `{"success": false, "message": "Error saving cart"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Item added to cart",
		"data":    cart,
		"total":   cart.Total(),
	})
}

// DecreaseCartItem decrements an entry by one, dropping it at zero.
func DecreaseCartItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	params := mux.Vars(r)
	customerId := params["customer_id"]
	itemId := params["item_id"]

	cart, err := loadCart(ctx, customerId)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving cart"}`, http.StatusInternalServerError)
		return
	}

	cart.DecreaseItem(itemId)
	if len(cart.Items) == 0 {
		cart.Clear()
	}

	if err := saveCart(ctx, cart); err != nil {
		http.Error(w, `{"success": false, "message": "Error saving cart"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Cart updated",
		"data":    cart,
		"total":   cart.Total(),
	})
}

// ClearCart empties the cart. Clearing an already empty cart succeeds.
func ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	customerId := mux.Vars(r)["customer_id"]

	if err := database.RedisClient.Del(ctx, cartKey(customerId)).Err(); err != nil {
		http.Error(w, `{"success": false, "message": "Error clearing cart"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Cart cleared",
	})
}

// CheckoutCart snapshots the stored cart into an order. The cart is cleared
// only after the order is confirmed persisted, so a failed submission
// leaves it intact for retry.
func CheckoutCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	customerId := mux.Vars(r)["customer_id"]

	var requestBody struct {
		Idempotency_key string `json:"idempotency_key"`
	}
	if r.Body != nil {
		// An absent body just means no idempotency key was supplied.
		_ = json.NewDecoder(r.Body).Decode(&requestBody)
	}

	cart, err := loadCart(ctx, customerId)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving cart"}`, http.StatusInternalServerError)
		return
	}

	if len(cart.Items) == 0 {
		http.Error(w, `{"success": false, "message": "Cart is empty"}`, http.StatusBadRequest)
		return
	}

	vendorId := cart.Vendor_id
	total := cart.Total()
	order := models.Order{
		Customer_id:     &customerId,
		Vendor_id:       &vendorId,
		Items:           cart.Snapshot(),
		TotalAmount:     total,
		Idempotency_key: requestBody.Idempotency_key,
	}

	persisted, replayed, err := persistOrder(ctx, &order)
	if err != nil {
		if errors.Is(err, models.ErrEmptyOrder) || errors.Is(err, models.ErrBadQuantity) {
			http.Error(w, `{"success": false, "message": "Cart contents are invalid"}`, http.StatusBadRequest)
			return
		}
		http.Error(w, `{"success": false, "message": "Order creation failed"}`, http.StatusInternalServerError)
		return
	}

	if !replayed {
		if err := database.RedisClient.Del(ctx, cartKey(customerId)).Err(); err != nil {
			// The order is in; a stale cart is the lesser failure.
			log.Printf("failed to clear cart for customer %s: %v", customerId, err)
		}
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
