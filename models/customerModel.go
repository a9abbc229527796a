package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Customer struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Customer_id   string             `bson:"customer_id" json:"customer_id"`
	Name          *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Email         *string            `bson:"email" json:"email" validate:"required,email"`
	Password      *string            `bson:"password" json:"password" validate:"required,min=6"`
	Phone         *string            `bson:"phone" json:"phone" validate:"required"`
	Token         *string            `bson:"token" json:"token"`
	Refresh_token *string            `bson:"refresh_token" json:"refresh_token"`
	Created_at    time.Time          `bson:"created_at" json:"created_at"`
	Updated_at    time.Time          `bson:"updated_at" json:"updated_at"`
}
