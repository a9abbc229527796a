package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCartItem(id string, price float64) CartItem {
	return CartItem{
		Item_id:  id,
		ItemType: ItemTypeSnack,
		Category: CategoryAllDaySnacks,
		ItemName: "item " + id,
		Price:    price,
	}
}

func TestCartAddItemMergesQuantities(t *testing.T) {
	cart := &Cart{Customer_id: "c1"}

	cart.AddItem(sampleCartItem("a", 50), 2)
	cart.AddItem(sampleCartItem("a", 50), 1)
	cart.AddItem(sampleCartItem("b", 30), 1)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 1, cart.Items[1].Quantity)
}

func TestCartAddItemIgnoresNonPositiveQuantity(t *testing.T) {
	cart := &Cart{Customer_id: "c1"}

	cart.AddItem(sampleCartItem("a", 50), 0)
	cart.AddItem(sampleCartItem("a", 50), -3)

	assert.Empty(t, cart.Items)
}

func TestCartTotalIsSumOfPriceTimesQuantity(t *testing.T) {
	cart := &Cart{Customer_id: "c1"}

	cart.AddItem(sampleCartItem("a", 50), 2)
	cart.AddItem(sampleCartItem("b", 30), 1)

	assert.InDelta(t, 130.0, cart.Total(), 1e-9)
}

func TestCartDecreaseItemDropsEntryAtZero(t *testing.T) {
	cart := &Cart{Customer_id: "c1"}
	cart.AddItem(sampleCartItem("a", 50), 2)
	cart.AddItem(sampleCartItem("b", 30), 1)

	cart.DecreaseItem("a")
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	cart.DecreaseItem("a")
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "b", cart.Items[0].Item_id)

	// Decreasing an absent item is a no-op.
	cart.DecreaseItem("a")
	assert.Len(t, cart.Items, 1)
}

func TestCartNeverHoldsNonPositiveQuantities(t *testing.T) {
	cart := &Cart{Customer_id: "c1"}

	ops := []struct {
		add bool
		id  string
		qty int
	}{
		{true, "a", 2}, {true, "b", 1}, {false, "a", 0}, {false, "a", 0},
		{false, "a", 0}, {true, "c", 3}, {false, "b", 0}, {false, "b", 0},
	}

	for _, op := range ops {
		if op.add {
			cart.AddItem(sampleCartItem(op.id, 10), op.qty)
		} else {
			cart.DecreaseItem(op.id)
		}
		var expected float64
		for _, it := range cart.Items {
			require.Greater(t, it.Quantity, 0)
			expected += it.Price * float64(it.Quantity)
		}
		assert.InDelta(t, expected, cart.Total(), 1e-9)
	}
}

func TestCartClearIsIdempotent(t *testing.T) {
	cart := &Cart{Customer_id: "c1", Vendor_id: "v1"}
	cart.AddItem(sampleCartItem("a", 50), 2)

	cart.Clear()
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total())
	assert.Empty(t, cart.Vendor_id)

	cart.Clear()
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total())
}

func TestCartSnapshotIsDecoupledCopy(t *testing.T) {
	cart := &Cart{Customer_id: "c1", Vendor_id: "v1"}
	cart.AddItem(sampleCartItem("a", 50), 2)

	snapshot := cart.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, 2, snapshot[0].Quantity)
	assert.InDelta(t, 50.0, snapshot[0].Price, 1e-9)

	// Later cart mutations must not leak into an in-flight snapshot.
	cart.AddItem(sampleCartItem("a", 50), 5)
	cart.Clear()
	assert.Equal(t, 2, snapshot[0].Quantity)
}
