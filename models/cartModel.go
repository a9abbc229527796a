package models

import "time"

// CartItem holds the price snapshot taken when the item was added, so the
// checkout total cannot drift under a concurrent catalog edit.
type CartItem struct {
	Item_id  string  `json:"item_id"`
	ItemType string  `json:"item_type"`
	Category string  `json:"category"`
	ItemName string  `json:"item_name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Cart is the session-scoped, serializable cart a customer builds before
// checkout. It is single-vendor: the first add pins Vendor_id.
type Cart struct {
	Customer_id string     `json:"customer_id"`
	Vendor_id   string     `json:"vendor_id"`
	Items       []CartItem `json:"items"`
	Updated_at  time.Time  `json:"updated_at"`
}

// AddItem merges quantity into an existing entry or appends a new one.
func (c *Cart) AddItem(item CartItem, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range c.Items {
		if c.Items[i].Item_id == item.Item_id {
			c.Items[i].Quantity += quantity
			return
		}
	}
	item.Quantity = quantity
	c.Items = append(c.Items, item)
}

// DecreaseItem decrements the entry by one and drops it when it reaches zero.
func (c *Cart) DecreaseItem(itemId string) {
	for i := range c.Items {
		if c.Items[i].Item_id != itemId {
			continue
		}
		c.Items[i].Quantity--
		if c.Items[i].Quantity <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		}
		return
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.Items = nil
	c.Vendor_id = ""
}

// Total is Σ price × quantity, recomputed on every call.
func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// Snapshot converts the cart into the denormalized order item list. The
// returned slice is a copy, so in-flight submissions cannot race later
// cart mutations.
func (c *Cart) Snapshot() []OrderItem {
	items := make([]OrderItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, OrderItem{
			Item_id:  it.Item_id,
			ItemType: it.ItemType,
			Category: it.Category,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}
	return items
}
