package controller

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	database "github.com/Lunch-Booking-System/LunchBookingSystem/config"
	"github.com/Lunch-Booking-System/LunchBookingSystem/helper"
	"github.com/Lunch-Booking-System/LunchBookingSystem/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var customerCollection *mongo.Collection = database.OpenCollection(database.Client, "customer")

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		log.Panic(err)
	}
	return string(bytes)
}

func VerifyPassword(userPassword string, providedPassword string) (bool, string) {
	if err := bcrypt.CompareHashAndPassword([]byte(providedPassword), []byte(userPassword)); err != nil {
		return false, "Incorrect password"
	}
	return true, ""
}

func storeTokens(ctx context.Context, collection *mongo.Collection, idField, id, token, refreshToken string) {
	update := bson.D{
		{Key: "token", Value: token},
		{Key: "refresh_token", Value: refreshToken},
		{Key: "updated_at", Value: time.Now()},
	}
	if _, err := collection.UpdateOne(ctx, bson.M{idField: id}, bson.D{{Key: "$set", Value: update}}); err != nil {
		log.Printf("failed to store tokens for %s: %v", id, err)
	}
}

func CustomerSignUp(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var customer models.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(customer); validationErr != nil {
		http.Error(w, `{"success": false, "message": "Missing or invalid fields"}`, http.StatusBadRequest)
		return
	}

	count, err := customerCollection.CountDocuments(ctx, bson.M{"email": customer.Email})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error checking email"}`, http.StatusInternalServerError)
		return
	}
	if count > 0 {
		http.Error(w, `{"success": false, "message": "Email already exists"}`, http.StatusConflict)
		return
	}

	password := HashPassword(*customer.Password)
	customer.Password = &password

	customer.Created_at = time.Now()
	customer.Updated_at = time.Now()
	customer.ID = primitive.NewObjectID()
	customer.Customer_id = customer.ID.Hex()

	token, refreshToken, _ := helper.GenerateAllTokens(*customer.Email, *customer.Name, customer.Customer_id, helper.RoleCustomer)
	customer.Token = &token
	customer.Refresh_token = &refreshToken

	if _, err := customerCollection.InsertOne(ctx, customer); err != nil {
		http.Error(w, `{"success": false, "message": "Customer creation failed"}`, http.StatusInternalServerError)
		return
	}

	customer.Password = nil

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Customer registered successfully",
		"data":    customer,
	})
}

func CustomerLogin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var customer models.Customer
	var foundCustomer models.Customer

	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if customer.Email == nil || customer.Password == nil {
		http.Error(w, `{"success": false, "message": "Email and password are required"}`, http.StatusBadRequest)
		return
	}

	err := customerCollection.FindOne(ctx, bson.M{"email": customer.Email}).Decode(&foundCustomer)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Invalid email or password"}`, http.StatusUnauthorized)
		return
	}

	passwordIsValid, _ := VerifyPassword(*customer.Password, *foundCustomer.Password)
	if !passwordIsValid {
		http.Error(w, `{"success": false, "message": "Invalid email or password"}`, http.StatusUnauthorized)
		return
	}

	token, refreshToken, _ := helper.GenerateAllTokens(*foundCustomer.Email, *foundCustomer.Name, foundCustomer.Customer_id, helper.RoleCustomer)
	storeTokens(ctx, customerCollection, "customer_id", foundCustomer.Customer_id, token, refreshToken)

	responseCustomer := struct {
		Email        string `json:"email"`
		Name         string `json:"name"`
		CustomerID   string `json:"customer_id"`
		Token        string `json:"token"`
		RefreshToken string `json:"refresh_token"`
	}{
		Email:        *foundCustomer.Email,
		Name:         *foundCustomer.Name,
		CustomerID:   foundCustomer.Customer_id,
		Token:        token,
		RefreshToken: refreshToken,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responseCustomer)
}
