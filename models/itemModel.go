package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item categories decide which customer-facing listing an item shows up in.
const (
	CategoryWeeklyMenu   = "WeeklyMenu"
	CategoryBreakFast    = "BreakFast"
	CategoryAllDaySnacks = "AllDaySnacks"
)

// Item types distinguish the two catalog variants an order line can reference.
const (
	ItemTypeMenu  = "Menu"
	ItemTypeSnack = "Snack"
)

type Item struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Item_id     string             `bson:"item_id" json:"item_id"`
	ItemName    *string            `bson:"item_name" json:"item_name" validate:"required,min=2,max=100"`
	Description *string            `bson:"description" json:"description"`
	Type        *string            `bson:"type" json:"type" validate:"required,eq=Veg|eq=Non-Veg"`
	Category    *string            `bson:"category" json:"category" validate:"required,eq=WeeklyMenu|eq=BreakFast|eq=AllDaySnacks"`
	ItemType    *string            `bson:"item_type" json:"item_type" validate:"required,eq=Menu|eq=Snack"`
	ImageUrl    *string            `bson:"image_url" json:"image_url" validate:"required"`
	Price       *float64           `bson:"price" json:"price" validate:"required,gt=0"`
	Vendor_id   *string            `bson:"vendor_id" json:"vendor_id" validate:"required"`
	Available   bool               `bson:"available" json:"available"`
	IsActive    bool               `bson:"is_active" json:"is_active"`
	Created_at  time.Time          `bson:"created_at" json:"created_at"`
	Updated_at  time.Time          `bson:"updated_at" json:"updated_at"`
}

func ValidCategory(category string) bool {
	switch category {
	case CategoryWeeklyMenu, CategoryBreakFast, CategoryAllDaySnacks:
		return true
	}
	return false
}
