package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "storefront-service/errors"
	"storefront-service/logger"
	"storefront-service/services"
)

type PaymentController struct {
	Client services.PaymentClient
}

func NewPaymentController(client services.PaymentClient) *PaymentController {
	return &PaymentController{Client: client}
}

type paymentIntentRequest struct {
	Amount   int64  `json:"amount" binding:"required,min=1"` // minor currency units
	Currency string `json:"currency"`
}

// CreateIntent opens a payment for the given amount and returns the
// provider's payment identifier
func (pc *PaymentController) CreateIntent(c *gin.Context) {
	var req paymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if req.Currency == "" {
		req.Currency = "inr"
	}

	paymentID, err := pc.Client.CreatePaymentIntent(req.Amount, req.Currency)
	if err != nil {
		logger.Error(c, "Payment intent creation failed", err, zap.Int64("amount", req.Amount))
		_ = c.Error(apperrors.New(http.StatusBadGateway, "payment provider error", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment_id": paymentID})
}
