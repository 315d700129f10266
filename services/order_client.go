package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"storefront-service/logger"
	"storefront-service/models"
)

// Retrieval failure categories, each rendered as a distinct user-facing
// message by the order controller.
var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidOrderID   = errors.New("invalid order id")
	ErrOrderServer      = errors.New("order service error")
	ErrOrderUnreachable = errors.New("order service unreachable")
)

// RemoteOrderError carries a remote failure from order creation. The
// message is surfaced verbatim to the user where the backend provided one.
type RemoteOrderError struct {
	StatusCode int
	Message    string
}

func (e *RemoteOrderError) Error() string {
	return e.Message
}

// OrderAPI is the remote order backend contract.
type OrderAPI interface {
	CreateOrder(ctx context.Context, payload *models.OrderPayload) (string, error)
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)
}

// OrderClient talks to the REST order backend. Every call is a fresh
// network fetch; nothing is cached.
type OrderClient struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

func NewOrderClient(baseURL string, timeout time.Duration) *OrderClient {
	return &OrderClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type createOrderResponse struct {
	OrderID string `json:"orderId"`
	ID      string `json:"id"`
	Message string `json:"message"`
	Data    *struct {
		ID          string `json:"_id"`
		OrderNumber string `json:"orderNumber"`
	} `json:"data"`
}

type orderEnvelope struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    *models.Order `json:"data"`
}

// CreateOrder posts the order payload and returns the server-assigned
// order identifier. Failure statuses map to distinct error categories;
// a client-side timeout cancels the in-flight request.
func (c *OrderClient) CreateOrder(ctx context.Context, payload *models.OrderPayload) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode order payload: %w", err)
	}

	url := c.baseURL + "/orders"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", &RemoteOrderError{
				StatusCode: 0,
				Message:    "Request timeout. Please check your connection and try again.",
			}
		}
		logger.Log.Error("Order creation request failed", zap.String("url", url), zap.Error(err))
		return "", &RemoteOrderError{
			StatusCode: 0,
			Message:    fmt.Sprintf("Cannot reach order service at %s. Please try again later.", url),
		}
	}
	defer resp.Body.Close()

	var decoded createOrderResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&decoded); decodeErr != nil && resp.StatusCode < 300 {
		return "", &RemoteOrderError{
			StatusCode: resp.StatusCode,
			Message:    "Order service returned an unreadable response.",
		}
	}

	if resp.StatusCode >= 300 {
		return "", c.creationError(resp.StatusCode, decoded.Message)
	}

	orderID := decoded.OrderID
	if orderID == "" {
		orderID = decoded.ID
	}
	if orderID == "" && decoded.Data != nil {
		orderID = decoded.Data.ID
	}
	if orderID == "" {
		return "", &RemoteOrderError{
			StatusCode: resp.StatusCode,
			Message:    "Order service did not return an order identifier.",
		}
	}

	return orderID, nil
}

func (c *OrderClient) creationError(status int, message string) *RemoteOrderError {
	switch {
	case status == http.StatusBadRequest:
		if message == "" {
			message = "Invalid order data. Please check your information."
		}
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		message = "Authentication failed. Please try again."
	case status == http.StatusNotFound:
		message = "Order service not found. Please contact support."
	case status >= 500:
		if message == "" {
			message = "Server error. Please try again later."
		}
	default:
		if message == "" {
			message = fmt.Sprintf("Server error (%d)", status)
		} else {
			message = fmt.Sprintf("Server error (%d): %s", status, message)
		}
	}
	return &RemoteOrderError{StatusCode: status, Message: message}
}

// GetOrder fetches a single order by id and unwraps the backend's
// {success, data} envelope.
func (c *OrderClient) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/orders/%s", c.baseURL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.Error("Order fetch request failed", zap.String("order_id", orderID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrOrderUnreachable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrOrderNotFound
	case resp.StatusCode == http.StatusBadRequest:
		return nil, ErrInvalidOrderID
	case resp.StatusCode >= 500:
		return nil, ErrOrderServer
	case resp.StatusCode >= 300:
		return nil, fmt.Errorf("%w: status %d", ErrOrderServer, resp.StatusCode)
	}

	var envelope orderEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: malformed response", ErrOrderServer)
	}
	if !envelope.Success || envelope.Data == nil {
		return nil, fmt.Errorf("%w: backend reported failure", ErrOrderServer)
	}

	return envelope.Data, nil
}
