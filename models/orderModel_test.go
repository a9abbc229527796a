package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func validOrder() *Order {
	return &Order{
		Customer_id: strptr("c1"),
		Vendor_id:   strptr("v1"),
		Items: []OrderItem{
			{Item_id: "a", ItemType: ItemTypeSnack, Category: CategoryAllDaySnacks, Quantity: 2, Price: 50},
			{Item_id: "b", ItemType: ItemTypeMenu, Category: CategoryWeeklyMenu, Quantity: 1, Price: 30},
		},
		TotalAmount: 130,
	}
}

func TestCheckNewOrderAcceptsValidOrder(t *testing.T) {
	assert.NoError(t, CheckNewOrder(validOrder()))
}

func TestCheckNewOrderRejectsMissingIdentity(t *testing.T) {
	order := validOrder()
	order.Customer_id = nil
	assert.ErrorIs(t, CheckNewOrder(order), ErrMissingCust)

	order = validOrder()
	empty := ""
	order.Vendor_id = &empty
	assert.ErrorIs(t, CheckNewOrder(order), ErrMissingVendor)
}

func TestCheckNewOrderRejectsEmptyItems(t *testing.T) {
	order := validOrder()
	order.Items = nil
	assert.ErrorIs(t, CheckNewOrder(order), ErrEmptyOrder)
}

func TestCheckNewOrderRejectsBadQuantity(t *testing.T) {
	order := validOrder()
	order.Items[0].Quantity = 0
	assert.ErrorIs(t, CheckNewOrder(order), ErrBadQuantity)
}

func TestCheckNewOrderRejectsUnknownTags(t *testing.T) {
	order := validOrder()
	order.Items[0].ItemType = "Dessert"
	assert.ErrorIs(t, CheckNewOrder(order), ErrUnknownItemTag)

	order = validOrder()
	order.Items[1].Category = "MidnightSnacks"
	assert.ErrorIs(t, CheckNewOrder(order), ErrUnknownItemTag)
}

func TestCheckNewOrderRejectsTotalMismatch(t *testing.T) {
	order := validOrder()
	order.TotalAmount = 120
	assert.ErrorIs(t, CheckNewOrder(order), ErrTotalMismatch)

	// The discount never changes the recorded total: 130 stays 130 even
	// though the customer pays 30.
	order = validOrder()
	order.Discount = 100
	order.CouponApplied = true
	require.NoError(t, CheckNewOrder(order))
	assert.InDelta(t, 130.0, order.TotalAmount, 1e-9)
	assert.InDelta(t, 30.0, PayableAmount(order), 1e-9)
}

func TestCheckItemVendor(t *testing.T) {
	order := validOrder()

	sameVendor := &Item{Item_id: "a", Vendor_id: strptr("v1")}
	assert.NoError(t, CheckItemVendor(order, sameVendor))

	otherVendor := &Item{Item_id: "a", Vendor_id: strptr("v2")}
	assert.ErrorIs(t, CheckItemVendor(order, otherVendor), ErrMixedVendors)

	noVendor := &Item{Item_id: "a"}
	assert.ErrorIs(t, CheckItemVendor(order, noVendor), ErrMixedVendors)
}

func TestItemsTotal(t *testing.T) {
	assert.InDelta(t, 130.0, ItemsTotal(validOrder().Items), 1e-9)
	assert.Zero(t, ItemsTotal(nil))
}

func TestNewOrderDate(t *testing.T) {
	at := time.Date(2025, time.March, 5, 14, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))
	d := NewOrderDate(at)

	assert.Equal(t, 5, d.Date)
	assert.Equal(t, "Wednesday", d.DayName)
	assert.Equal(t, "March", d.Month)
	assert.Equal(t, 2025, d.Year)
	assert.Equal(t, "14:30", d.Time)
}

func TestOrderDayNormalizesToUTCMidnight(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)

	// 01:00 IST on March 5 is still March 4 in UTC; the vendor filter
	// must see the UTC calendar, not the local one.
	day := OrderDay(time.Date(2025, time.March, 5, 1, 0, 0, 0, ist))
	assert.Equal(t, time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC), day)

	day = OrderDay(time.Date(2025, time.March, 5, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), day)
}
