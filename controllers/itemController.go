package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	database "github.com/Lunch-Booking-System/LunchBookingSystem/config"
	"github.com/Lunch-Booking-System/LunchBookingSystem/models"

	"github.com/go-playground/validator"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var itemCollection *mongo.Collection = database.OpenCollection(database.Client, "item")
var validate = validator.New()

// GetItems is the customer-facing catalog read: only items the vendor has
// marked available and active are returned.
func GetItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	vendorId := r.URL.Query().Get("vendor_id")
	if vendorId == "" {
		http.Error(w, `{"success": false, "message": "Vendor ID missing"}`, http.StatusBadRequest)
		return
	}

	filter := bson.M{
		"vendor_id": vendorId,
		"available": true,
		"is_active": true,
	}
	if category := r.URL.Query().Get("category"); category != "" {
		if !models.ValidCategory(category) {
			http.Error(w, `{"success": false, "message": "Invalid category"}`, http.StatusBadRequest)
			return
		}
		filter["category"] = category
	}

	cursor, err := itemCollection.Find(ctx, filter)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving items"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var items []models.Item
	if err := cursor.All(ctx, &items); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding item data"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Items retrieved successfully",
		"data":    items,
	})
}

// GetVendorItems lists a vendor's own catalog with pagination, including
// items currently unavailable, for the management screens.
func GetVendorItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	vendorId := mux.Vars(r)["vendor_id"]
	if vendorId == "" {
		http.Error(w, `{"success": false, "message": "Invalid vendor ID"}`, http.StatusBadRequest)
		return
	}

	recordPerPage, err := strconv.Atoi(r.URL.Query().Get("recordPerPage"))
	if err != nil || recordPerPage < 1 {
		recordPerPage = 10
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	startIndex := (page - 1) * recordPerPage

	match := bson.D{{Key: "vendor_id", Value: vendorId}}
	if category := r.URL.Query().Get("category"); category != "" {
		match = append(match, bson.E{Key: "category", Value: category})
	}

	matchStage := bson.D{{Key: "$match", Value: match}}
	skipStage := bson.D{{Key: "$skip", Value: startIndex}}
	limitStage := bson.D{{Key: "$limit", Value: int64(recordPerPage)}}

	cursor, err := itemCollection.Aggregate(ctx, mongo.Pipeline{matchStage, skipStage, limitStage})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving items"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var items []models.Item
	if err := cursor.All(ctx, &items); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding item data"}`, http.StatusInternalServerError)
		return
	}

	totalItems, err := itemCollection.CountDocuments(ctx, match)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving total item count"}`, http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"success": true,
		"message": "Items retrieved successfully",
		"data":    items,
		"pagination": map[string]interface{}{
			"current_page":     page,
			"records_per_page": recordPerPage,
			"total_items":      totalItems,
			"total_pages":      (totalItems + int64(recordPerPage) - 1) / int64(recordPerPage),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Get a single item
func GetItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	itemId := mux.Vars(r)["item_id"]

	var item models.Item
	err := itemCollection.FindOne(ctx, bson.M{"item_id": itemId}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, `{"success": false, "message": "Item not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving item"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Item retrieved successfully",
		"data":    item,
	})
}

// Create an item
func CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var item models.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(item); validationErr != nil {
		http.Error(w, `{"success": false, "message": "Missing or invalid fields"}`, http.StatusBadRequest)
		return
	}

	// Items start sellable; the vendor toggles availability afterwards.
	item.Available = true
	item.IsActive = true
	item.Created_at = time.Now()
	item.Updated_at = time.Now()
	item.ID = primitive.NewObjectID()
	item.Item_id = item.ID.Hex()

	if _, err := itemCollection.InsertOne(ctx, item); err != nil {
		http.Error(w, `{"success": false, "message": "Item creation failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Item created successfully",
		"data":    item,
	})
}

// UpdateItem edits the descriptive fields of an item. Availability has its
// own endpoint; items are never deleted.
func UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	itemId := mux.Vars(r)["item_id"]

	var item models.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	updateObj := bson.D{}

	if item.ItemName != nil {
		updateObj = append(updateObj, bson.E{Key: "item_name", Value: item.ItemName})
	}
	if item.Description != nil {
		updateObj = append(updateObj, bson.E{Key: "description", Value: item.Description})
	}
	if item.Type != nil {
		if *item.Type != "Veg" && *item.Type != "Non-Veg" {
			http.Error(w, `{"success": false, "message": "Invalid item type"}`, http.StatusBadRequest)
			return
		}
		updateObj = append(updateObj, bson.E{Key: "type", Value: item.Type})
	}
	if item.Category != nil {
		if !models.ValidCategory(*item.Category) {
			http.Error(w, `{"success": false, "message": "Invalid category"}`, http.StatusBadRequest)
			return
		}
		updateObj = append(updateObj, bson.E{Key: "category", Value: item.Category})
	}
	if item.ImageUrl != nil {
		updateObj = append(updateObj, bson.E{Key: "image_url", Value: item.ImageUrl})
	}
	if item.Price != nil {
		if *item.Price <= 0 {
			http.Error(w, `{"success": false, "message": "Price must be positive"}`, http.StatusBadRequest)
			return
		}
		updateObj = append(updateObj, bson.E{Key: "price", Value: item.Price})
	}

	if len(updateObj) == 0 {
		http.Error(w, `{"success": false, "message": "No fields to update"}`, http.StatusBadRequest)
		return
	}

	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

	filter := bson.M{"item_id": itemId}
	opt := options.Update().SetUpsert(false)

	result, err := itemCollection.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: updateObj}}, opt)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Item update failed"}`, http.StatusInternalServerError)
		return
	}

	if result.MatchedCount == 0 {
		http.Error(w, `{"success": false, "message": "Item not found"}`, http.StatusNotFound)
		return
	}

	var updatedItem models.Item
	if err := itemCollection.FindOne(ctx, bson.M{"item_id": itemId}).Decode(&updatedItem); err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving updated item"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Item updated successfully",
		"data":    updatedItem,
	})
}

// UpdateItemAvailability toggles whether customers can currently order
// the item.
func UpdateItemAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	itemId := mux.Vars(r)["item_id"]

	var requestBody struct {
		Available *bool `json:"available"`
		IsActive  *bool `json:"is_active"`
	}

	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	updateObj := bson.D{}
	if requestBody.Available != nil {
		updateObj = append(updateObj, bson.E{Key: "available", Value: *requestBody.Available})
	}
	if requestBody.IsActive != nil {
		updateObj = append(updateObj, bson.E{Key: "is_active", Value: *requestBody.IsActive})
	}

	if len(updateObj) == 0 {
		http.Error(w, `{"success": false, "message": "No fields to update"}`, http.StatusBadRequest)
		return
	}

	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

	result, err := itemCollection.UpdateOne(ctx, bson.M{"item_id": itemId}, bson.D{{Key: "$set", Value: updateObj}})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Failed to update availability"}`, http.StatusInternalServerError)
		return
	}

	if result.MatchedCount == 0 {
		http.Error(w, `{"success": false, "message": "Item not found"}`, http.StatusNotFound)
		return
	}

	var updatedItem models.Item
	if err := itemCollection.FindOne(ctx, bson.M{"item_id": itemId}).Decode(&updatedItem); err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving updated item"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Item availability updated successfully",
		"data":    updatedItem,
	})
}
