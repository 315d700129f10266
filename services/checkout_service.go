package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"storefront-service/database"
	apperrors "storefront-service/errors"
	"storefront-service/kafka"
	"storefront-service/logger"
	"storefront-service/models"
	"storefront-service/validation"
)

// SubmissionState tracks the order submission flow. Failed is reachable
// from Validating and Submitting; a declined confirmation returns to
// Idle with no side effects.
type SubmissionState string

const (
	StateIdle                 SubmissionState = "idle"
	StateValidating           SubmissionState = "validating"
	StateAwaitingConfirmation SubmissionState = "awaiting_confirmation"
	StateSubmitting           SubmissionState = "submitting"
	StateEmailNotifying       SubmissionState = "email_notifying"
	StateCompleted            SubmissionState = "completed"
	StateFailed               SubmissionState = "failed"
)

// SubmissionResult is the outcome surfaced to the checkout controller.
type SubmissionResult struct {
	State       SubmissionState   `json:"state"`
	OrderID     string            `json:"order_id,omitempty"`
	TotalAmount float64           `json:"total_amount,omitempty"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
	Message     string            `json:"message,omitempty"`
}

var emptyCartMessage = apperrors.ErrEmptyCart.Message

type CheckoutService struct {
	carts    database.CartStore
	checkout database.CheckoutStore
	orders   OrderAPI
	notifier OrderNotifier
	events   kafka.EventPublisher // nil when no broker is configured
}

func NewCheckoutService(
	carts database.CartStore,
	checkout database.CheckoutStore,
	orders OrderAPI,
	notifier OrderNotifier,
	events kafka.EventPublisher,
) *CheckoutService {
	return &CheckoutService{
		carts:    carts,
		checkout: checkout,
		orders:   orders,
		notifier: notifier,
		events:   events,
	}
}

// Submit drives the flow Idle → Validating → AwaitingConfirmation →
// Submitting → EmailNotifying → Completed. With confirmed=false the
// flow stops at AwaitingConfirmation and performs no side effects; the
// confirming resubmission carries confirmed=true.
//
// On a remote failure the cart and any saved address are left untouched
// so the user can resubmit.
func (s *CheckoutService) Submit(ctx context.Context, sessionID string, form models.CheckoutFormData, confirmed bool, paymentMethod string) (*SubmissionResult, error) {
	cart, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if cart == nil || cart.IsEmpty() {
		return &SubmissionResult{
			State:   StateFailed,
			Message: emptyCartMessage,
		}, nil
	}

	form = sanitizeForm(form)

	if fieldErrors := validation.ValidateCheckoutForm(form); len(fieldErrors) > 0 {
		return &SubmissionResult{
			State:       StateFailed,
			FieldErrors: fieldErrors,
			Message:     "Please fix the validation errors before submitting.",
		}, nil
	}

	if !confirmed {
		return &SubmissionResult{
			State:       StateAwaitingConfirmation,
			TotalAmount: cart.TotalPrice(),
			Message:     "Confirm to place the order.",
		}, nil
	}

	if paymentMethod == "" {
		paymentMethod = "ONLINE"
	}

	// Recompute the total independently of the cart's own aggregate;
	// the two must agree before anything leaves the building.
	var total float64
	for _, item := range cart.Items {
		total += item.Price * float64(item.Quantity)
	}
	total = math.Round(total*100) / 100

	if total != cart.TotalPrice() {
		logger.Log.Error("Cart total mismatch",
			zap.String("session_id", sessionID),
			zap.Float64("recomputed", total),
			zap.Float64("cart_total", cart.TotalPrice()),
		)
		return &SubmissionResult{
			State:   StateFailed,
			Message: "Cart totals are inconsistent. Please retry.",
		}, nil
	}

	payload := buildOrderPayload(form, cart, total, paymentMethod)

	orderID, err := s.orders.CreateOrder(ctx, payload)
	if err != nil {
		message := "Order failed. Please try again."
		if remoteErr, ok := err.(*RemoteOrderError); ok {
			message = remoteErr.Message
		}
		logger.Log.Error("Order creation failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return &SubmissionResult{
			State:   StateFailed,
			Message: message,
		}, nil
	}

	// Best-effort notification; failure never blocks the order.
	if err := s.notifier.OrderConfirmation(ctx, sessionID, form.FullName, form.Email, orderID, total); err != nil {
		logger.Log.Warn("Confirmation email failed",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
	}

	if s.events != nil {
		event := models.OrderPlacedEvent{
			Event:       "order.placed",
			SessionID:   sessionID,
			OrderID:     orderID,
			Customer:    form.FullName,
			TotalAmount: total,
			ItemCount:   cart.TotalItems(),
			Timestamp:   time.Now(),
		}
		if err := s.events.PublishOrderPlaced(ctx, event); err != nil {
			logger.Log.Warn("Order event publish failed",
				zap.String("order_id", orderID),
				zap.Error(err),
			)
		}
	}

	if err := s.checkout.SaveAddress(ctx, sessionID, form.ToDeliveryAddress()); err != nil {
		logger.Log.Warn("Failed to save delivery address",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
	}

	if err := s.carts.DeleteCart(ctx, sessionID); err != nil {
		logger.Log.Warn("Failed to clear cart after order",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
	}

	return &SubmissionResult{
		State:       StateCompleted,
		OrderID:     orderID,
		TotalAmount: total,
	}, nil
}

// SavedAddress returns the previously persisted delivery address as
// form data for prefill, or nil when none is stored.
func (s *CheckoutService) SavedAddress(ctx context.Context, sessionID string) (*models.CheckoutFormData, error) {
	addr, err := s.checkout.GetAddress(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if addr == nil {
		return nil, nil
	}
	form := addr.ToFormData()
	return &form, nil
}

func sanitizeForm(form models.CheckoutFormData) models.CheckoutFormData {
	form.FullName = validation.Sanitize(form.FullName)
	form.Email = validation.Sanitize(form.Email)
	form.PhoneNumber = validation.Sanitize(form.PhoneNumber)
	form.Address = validation.Sanitize(form.Address)
	form.Landmark = validation.Sanitize(form.Landmark)
	form.Pincode = validation.Sanitize(form.Pincode)
	form.DeliveryInstructions = validation.Sanitize(form.DeliveryInstructions)
	return form
}

func buildOrderPayload(form models.CheckoutFormData, cart *models.Cart, total float64, paymentMethod string) *models.OrderPayload {
	address := form.Address
	if form.Landmark != "" {
		address += ", " + form.Landmark
	}
	if form.Pincode != "" {
		address += ", " + form.Pincode
	}
	if form.DeliveryInstructions != "" {
		address += " (" + form.DeliveryInstructions + ")"
	}

	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, models.OrderItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	return &models.OrderPayload{
		Customer: models.Customer{
			Name:    form.FullName,
			Email:   form.Email,
			Phone:   form.PhoneNumber,
			Address: address,
		},
		Items:         items,
		TotalAmount:   total,
		PaymentMethod: paymentMethod,
	}
}
