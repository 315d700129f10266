package models

import "time"

// Payment status values reported by the order backend.
const (
	PaymentPending   = "PENDING"
	PaymentCompleted = "COMPLETED"
	PaymentFailed    = "FAILED"
)

// Order status values reported by the order backend.
const (
	OrderPending   = "PENDING"
	OrderConfirmed = "CONFIRMED"
	OrderPreparing = "PREPARING"
	OrderShipped   = "SHIPPED"
	OrderDelivered = "DELIVERED"
	OrderCancelled = "CANCELLED"
)

// OrderItem is a snapshot of a cart line at order time, decoupled from
// the live catalog.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// OrderPayload is the request body for creating an order on the
// remote order backend.
type OrderPayload struct {
	Customer      Customer    `json:"customer"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"totalAmount"`
	PaymentMethod string      `json:"paymentMethod"`
}

// Order is the read-only projection of a server-owned order record.
type Order struct {
	ID            string      `json:"_id"`
	OrderNumber   string      `json:"orderNumber"`
	Customer      Customer    `json:"customer"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"totalAmount"`
	PaymentMethod string      `json:"paymentMethod"`
	PaymentStatus string      `json:"paymentStatus"`
	Status        string      `json:"status"`
	CreatedAt     string      `json:"createdAt"`
	UpdatedAt     string      `json:"updatedAt,omitempty"`
}

// OrderPlacedEvent is published (best-effort) after a successful checkout.
type OrderPlacedEvent struct {
	Event       string    `json:"event"`
	SessionID   string    `json:"session_id"`
	OrderID     string    `json:"order_id"`
	Customer    string    `json:"customer"`
	TotalAmount float64   `json:"total_amount"`
	ItemCount   int       `json:"item_count"`
	Timestamp   time.Time `json:"timestamp"`
}
