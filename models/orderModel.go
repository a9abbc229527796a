package models

import (
	"errors"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is the denormalized snapshot of a catalog item at order time.
// Price and category are copied, not referenced, so later catalog edits do
// not retroactively alter historical orders.
type OrderItem struct {
	Item_id  string  `bson:"item_id" json:"item_id" validate:"required"`
	ItemType string  `bson:"item_type" json:"item_type" validate:"required,eq=Menu|eq=Snack"`
	Category string  `bson:"category" json:"category" validate:"required,eq=WeeklyMenu|eq=BreakFast|eq=AllDaySnacks"`
	Quantity int     `bson:"quantity" json:"quantity" validate:"required,gte=1"`
	Price    float64 `bson:"price" json:"price" validate:"required,gt=0"`
}

// OrderDate keeps the human-readable creation date fields shown on the
// checkout page. Order_day, not these fields, drives vendor date filtering.
type OrderDate struct {
	Date    int    `bson:"date" json:"date"`
	DayName string `bson:"day_name" json:"day_name"`
	Month   string `bson:"month" json:"month"`
	Year    int    `bson:"year" json:"year"`
	Time    string `bson:"time" json:"time"`
}

type Order struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Order_id           string             `bson:"order_id" json:"order_id"`
	Customer_id        *string            `bson:"customer_id" json:"customer_id" validate:"required"`
	Vendor_id          *string            `bson:"vendor_id" json:"vendor_id" validate:"required"`
	Items              []OrderItem        `bson:"items" json:"items" validate:"required,min=1,dive"`
	TotalAmount        float64            `bson:"total_amount" json:"total_amount" validate:"required,gt=0"`
	Discount           float64            `bson:"discount" json:"discount"`
	CouponApplied      bool               `bson:"coupon_applied" json:"coupon_applied"`
	Order_Date         OrderDate          `bson:"order_date" json:"order_date"`
	Order_day          time.Time          `bson:"order_day" json:"order_day"`
	Status             string             `bson:"status" json:"status"`
	PaymentStatus      string             `bson:"payment_status" json:"payment_status"`
	Gateway_order_id   string             `bson:"gateway_order_id,omitempty" json:"gateway_order_id,omitempty"`
	Gateway_payment_id string             `bson:"gateway_payment_id,omitempty" json:"gateway_payment_id,omitempty"`
	Idempotency_key    string             `bson:"idempotency_key,omitempty" json:"idempotency_key,omitempty"`
	Created_at         time.Time          `bson:"created_at" json:"created_at"`
	Updated_at         time.Time          `bson:"updated_at" json:"updated_at"`
}

var (
	ErrEmptyOrder     = errors.New("order has no items")
	ErrMixedVendors   = errors.New("all order items must belong to the same vendor")
	ErrBadQuantity    = errors.New("item quantity must be at least 1")
	ErrTotalMismatch  = errors.New("total amount does not match the sum of item prices")
	ErrMissingVendor  = errors.New("vendor id is required")
	ErrMissingCust    = errors.New("customer id is required")
	ErrUnknownItemTag = errors.New("unknown item type or category")
)

// ItemsTotal is the authoritative subtotal: Σ price × quantity.
func ItemsTotal(items []OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// CheckNewOrder verifies the invariants an order must satisfy before it is
// persisted. TotalAmount is the client-computed cart subtotal and must agree
// with the item snapshot to the paisa.
func CheckNewOrder(order *Order) error {
	if order.Customer_id == nil || *order.Customer_id == "" {
		return ErrMissingCust
	}
	if order.Vendor_id == nil || *order.Vendor_id == "" {
		return ErrMissingVendor
	}
	if len(order.Items) == 0 {
		return ErrEmptyOrder
	}
	for _, it := range order.Items {
		if it.Quantity < 1 {
			return ErrBadQuantity
		}
		if it.ItemType != ItemTypeMenu && it.ItemType != ItemTypeSnack {
			return ErrUnknownItemTag
		}
		if !ValidCategory(it.Category) {
			return ErrUnknownItemTag
		}
	}
	if math.Abs(order.TotalAmount-ItemsTotal(order.Items)) > 0.009 {
		return ErrTotalMismatch
	}
	return nil
}

// CheckItemVendor rejects an order line whose catalog record belongs to a
// different vendor than the order, so a forged payload cannot route an
// order to the wrong vendor.
func CheckItemVendor(order *Order, item *Item) error {
	if order.Vendor_id == nil || item.Vendor_id == nil || *item.Vendor_id != *order.Vendor_id {
		return ErrMixedVendors
	}
	return nil
}

// NewOrderDate captures the wall-clock creation moment for display.
func NewOrderDate(t time.Time) OrderDate {
	return OrderDate{
		Date:    t.Day(),
		DayName: t.Weekday().String(),
		Month:   t.Month().String(),
		Year:    t.Year(),
		Time:    t.Format("15:04"),
	}
}

// OrderDay normalizes a timestamp to UTC midnight. Vendor order listings
// filter on this value, so creation and lookup share one calendar.
func OrderDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
