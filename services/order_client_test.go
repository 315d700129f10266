package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"storefront-service/models"
)

func testPayload() *models.OrderPayload {
	return &models.OrderPayload{
		Customer: models.Customer{
			Name:    "Asha Rao",
			Email:   "asha@example.com",
			Phone:   "9876543210",
			Address: "12 Gandhi Road, Jayanagar, 560041",
		},
		Items: []models.OrderItem{
			{Name: "Rasam Powder", Price: 650, Quantity: 2},
		},
		TotalAmount:   1300,
		PaymentMethod: "ONLINE",
	}
}

func TestCreateOrderSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"orderId": "ord-123", "message": "created"}`))
	}))
	defer server.Close()

	client := NewOrderClient(server.URL, 5*time.Second)
	orderID, err := client.CreateOrder(context.Background(), testPayload())

	assert.NoError(t, err)
	assert.Equal(t, "ord-123", orderID)
}

func TestCreateOrderIDFallbacks(t *testing.T) {
	t.Run("plain id field", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id": "ord-456"}`))
		}))
		defer server.Close()

		client := NewOrderClient(server.URL, 5*time.Second)
		orderID, err := client.CreateOrder(context.Background(), testPayload())

		assert.NoError(t, err)
		assert.Equal(t, "ord-456", orderID)
	})

	t.Run("nested data id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data": {"_id": "ord-789", "orderNumber": "ORD-2026-001"}}`))
		}))
		defer server.Close()

		client := NewOrderClient(server.URL, 5*time.Second)
		orderID, err := client.CreateOrder(context.Background(), testPayload())

		assert.NoError(t, err)
		assert.Equal(t, "ord-789", orderID)
	})

	t.Run("no identifier is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"message": "ok"}`))
		}))
		defer server.Close()

		client := NewOrderClient(server.URL, 5*time.Second)
		_, err := client.CreateOrder(context.Background(), testPayload())

		assert.Error(t, err)
	})
}

func TestCreateOrderStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		status     int
		body       string
		wantInMsg  string
		wantStatus int
	}{
		{"bad request surfaces backend message", http.StatusBadRequest, `{"message": "phone is invalid"}`, "phone is invalid", 400},
		{"bad request default message", http.StatusBadRequest, `{}`, "Invalid order data", 400},
		{"unauthorized", http.StatusUnauthorized, `{}`, "Authentication failed", 401},
		{"forbidden", http.StatusForbidden, `{}`, "Authentication failed", 403},
		{"not found", http.StatusNotFound, `{}`, "Order service not found", 404},
		{"server error surfaces backend message", http.StatusInternalServerError, `{"message": "db down"}`, "db down", 500},
		{"server error default message", http.StatusInternalServerError, `{}`, "Server error", 500},
		{"other status", http.StatusTeapot, `{}`, "Server error (418)", 418},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := NewOrderClient(server.URL, 5*time.Second)
			_, err := client.CreateOrder(context.Background(), testPayload())

			assert.Error(t, err)
			remoteErr, ok := err.(*RemoteOrderError)
			assert.True(t, ok)
			assert.Equal(t, tc.wantStatus, remoteErr.StatusCode)
			assert.Contains(t, remoteErr.Message, tc.wantInMsg)
		})
	}
}

func TestCreateOrderUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening any more

	client := NewOrderClient(server.URL, 2*time.Second)
	_, err := client.CreateOrder(context.Background(), testPayload())

	assert.Error(t, err)
	remoteErr, ok := err.(*RemoteOrderError)
	assert.True(t, ok)
	assert.Contains(t, remoteErr.Message, "Cannot reach order service")
}

func TestCreateOrderTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer server.Close()

	client := NewOrderClient(server.URL, 50*time.Millisecond)
	_, err := client.CreateOrder(context.Background(), testPayload())

	assert.Error(t, err)
	remoteErr, ok := err.(*RemoteOrderError)
	assert.True(t, ok)
	assert.Contains(t, remoteErr.Message, "timeout")
}

func TestGetOrderSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/ord-123", r.URL.Path)
		w.Write([]byte(`{
			"success": true,
			"data": {
				"_id": "ord-123",
				"orderNumber": "ORD-2026-001",
				"customer": {"name": "Asha Rao", "email": "asha@example.com", "phone": "9876543210", "address": "12 Gandhi Road"},
				"items": [{"name": "Rasam Powder", "price": 650, "quantity": 2}],
				"totalAmount": 1300,
				"paymentMethod": "ONLINE",
				"paymentStatus": "PENDING",
				"status": "PENDING",
				"createdAt": "2026-08-30T10:00:00Z"
			}
		}`))
	}))
	defer server.Close()

	client := NewOrderClient(server.URL, 5*time.Second)
	order, err := client.GetOrder(context.Background(), "ord-123")

	assert.NoError(t, err)
	assert.Equal(t, "ord-123", order.ID)
	assert.Equal(t, "ORD-2026-001", order.OrderNumber)
	assert.Equal(t, 1300.0, order.TotalAmount)
	assert.Len(t, order.Items, 1)
}

func TestGetOrderFailureKinds(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"404 maps to not found", http.StatusNotFound, ErrOrderNotFound},
		{"400 maps to invalid input", http.StatusBadRequest, ErrInvalidOrderID},
		{"500 maps to server error", http.StatusInternalServerError, ErrOrderServer},
		{"503 maps to server error", http.StatusServiceUnavailable, ErrOrderServer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer server.Close()

			client := NewOrderClient(server.URL, 5*time.Second)
			_, err := client.GetOrder(context.Background(), "ord-404")

			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestGetOrderUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewOrderClient(server.URL, 2*time.Second)
	_, err := client.GetOrder(context.Background(), "ord-123")

	assert.ErrorIs(t, err, ErrOrderUnreachable)
}

func TestGetOrderEmptyID(t *testing.T) {
	client := NewOrderClient("http://localhost:0", 1*time.Second)

	_, err := client.GetOrder(context.Background(), "  ")

	assert.ErrorIs(t, err, ErrInvalidOrderID)
}

func TestGetOrderEnvelopeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false}`))
	}))
	defer server.Close()

	client := NewOrderClient(server.URL, 5*time.Second)
	_, err := client.GetOrder(context.Background(), "ord-123")

	assert.ErrorIs(t, err, ErrOrderServer)
}
