package models

import (
	"fmt"
	"math"
	"time"
)

// CartItem is one (catalog item, customization) pair with a quantity.
type CartItem struct {
	CartItemID    string        `json:"cart_item_id"`
	ItemID        string        `json:"item_id"`
	Name          string        `json:"name"`
	Price         float64       `json:"price"`
	Category      string        `json:"category"`
	Image         string        `json:"image,omitempty"`
	Quantity      int           `json:"quantity"`
	Customization Customization `json:"customization"`
}

// Cart holds a session's line items. No two entries share a CartItemID.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewCart(sessionID string) *Cart {
	return &Cart{
		SessionID: sessionID,
		Items:     []CartItem{},
	}
}

// CartItemKey derives the identity key for merge-on-add semantics.
func CartItemKey(itemID string, cust Customization) string {
	return fmt.Sprintf("%s-%s", itemID, cust.Value())
}

// AddItem merges into an existing entry with the same identity key,
// otherwise appends a new entry.
func (c *Cart) AddItem(item MenuItem, quantity int, cust Customization) {
	cartItemID := CartItemKey(item.ID, cust)

	for i := range c.Items {
		if c.Items[i].CartItemID == cartItemID {
			c.Items[i].Quantity += quantity
			return
		}
	}

	c.Items = append(c.Items, CartItem{
		CartItemID:    cartItemID,
		ItemID:        item.ID,
		Name:          item.Name,
		Price:         item.Price,
		Category:      item.Category,
		Image:         item.Image,
		Quantity:      quantity,
		Customization: cust,
	})
}

// UpdateQuantity replaces an entry's quantity. A quantity of zero or
// less removes the entry.
func (c *Cart) UpdateQuantity(cartItemID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(cartItemID)
		return
	}
	for i := range c.Items {
		if c.Items[i].CartItemID == cartItemID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem drops the matching entry. Removing an absent id is a no-op.
func (c *Cart) RemoveItem(cartItemID string) {
	items := c.Items[:0]
	for _, item := range c.Items {
		if item.CartItemID != cartItemID {
			items = append(items, item)
		}
	}
	c.Items = items
}

func (c *Cart) Clear() {
	c.Items = []CartItem{}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalPrice sums price*quantity over all entries, rounded once at the
// aggregate to 2 decimal places (half away from zero on the cent value).
// Per-line values are never rounded.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return math.Round(total*100) / 100
}

// TotalItems sums the quantities across all entries.
func (c *Cart) TotalItems() int {
	var total int
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}
