package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	database "github.com/Lunch-Booking-System/LunchBookingSystem/config"
	"github.com/Lunch-Booking-System/LunchBookingSystem/helper"
	"github.com/Lunch-Booking-System/LunchBookingSystem/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var vendorCollection *mongo.Collection = database.OpenCollection(database.Client, "vendor")

func VendorSignUp(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var vendor models.Vendor
	if err := json.NewDecoder(r.Body).Decode(&vendor); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(vendor); validationErr != nil {
		http.Error(w, `{"success": false, "message": "Missing or invalid fields"}`, http.StatusBadRequest)
		return
	}

	count, err := vendorCollection.CountDocuments(ctx, bson.M{"email": vendor.Email})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error checking email"}`, http.StatusInternalServerError)
		return
	}
	if count > 0 {
		http.Error(w, `{"success": false, "message": "Email already exists"}`, http.StatusConflict)
		return
	}

	password := HashPassword(*vendor.Password)
	vendor.Password = &password

	vendor.Created_at = time.Now()
	vendor.Updated_at = time.Now()
	vendor.ID = primitive.NewObjectID()
	vendor.Vendor_id = vendor.ID.Hex()

	token, refreshToken, _ := helper.GenerateAllTokens(*vendor.Email, *vendor.Name, vendor.Vendor_id, helper.RoleVendor)
	vendor.Token = &token
	vendor.Refresh_token = &refreshToken

	if _, err := vendorCollection.InsertOne(ctx, vendor); err != nil {
		http.Error(w, `{"success": false, "message": "Vendor creation failed"}`, http.StatusInternalServerError)
		return
	}

	vendor.Password = nil

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Vendor registered successfully",
		"data":    vendor,
	})
}

func VendorLogin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var vendor models.Vendor
	var foundVendor models.Vendor

	if err := json.NewDecoder(r.Body).Decode(&vendor); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if vendor.Email == nil || vendor.Password == nil {
		http.Error(w, `{"success": false, "message": "Email and password are required"}`, http.StatusBadRequest)
		return
	}

	err := vendorCollection.FindOne(ctx, bson.M{"email": vendor.Email}).Decode(&foundVendor)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Invalid email or password"}`, http.StatusUnauthorized)
		return
	}

	passwordIsValid, _ := VerifyPassword(*vendor.Password, *foundVendor.Password)
	if !passwordIsValid {
		http.Error(w, `{"success": false, "message": "Invalid email or password"}`, http.StatusUnauthorized)
		return
	}

	token, refreshToken, _ := helper.GenerateAllTokens(*foundVendor.Email, *foundVendor.Name, foundVendor.Vendor_id, helper.RoleVendor)
	storeTokens(ctx, vendorCollection, "vendor_id", foundVendor.Vendor_id, token, refreshToken)

	responseVendor := struct {
		Email        string `json:"email"`
		Name         string `json:"name"`
		CanteenName  string `json:"canteen_name"`
		VendorID     string `json:"vendor_id"`
		Token        string `json:"token"`
		RefreshToken string `json:"refresh_token"`
	}{
		Email:        *foundVendor.Email,
		Name:         *foundVendor.Name,
		CanteenName:  *foundVendor.CanteenName,
		VendorID:     foundVendor.Vendor_id,
		Token:        token,
		RefreshToken: refreshToken,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responseVendor)
}

// VendorExists backs the registration form's email pre-check.
func VendorExists(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	email := r.URL.Query().Get("email")
	if email == "" {
		http.Error(w, `{"success": false, "message": "Email is required"}`, http.StatusBadRequest)
		return
	}

	count, err := vendorCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error checking email"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"exists":  count > 0,
	})
}

// ListVendors powers the customer's canteen picker.
func ListVendors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	projectStage := bson.D{
		{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "vendor_id", Value: 1},
			{Key: "name", Value: 1},
			{Key: "canteen_name", Value: 1},
			{Key: "email", Value: 1},
			{Key: "phone", Value: 1},
		}},
	}

	cursor, err := vendorCollection.Aggregate(ctx, mongo.Pipeline{projectStage})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving vendors"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var vendors []bson.M
	if err := cursor.All(ctx, &vendors); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding vendor data"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Vendors retrieved successfully",
		"data":    vendors,
	})
}
