package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "storefront-service/errors"
	"storefront-service/logger"
	"storefront-service/middleware"
	"storefront-service/models"
	"storefront-service/services"
)

type CheckoutController struct {
	Service *services.CheckoutService
}

func NewCheckoutController(service *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Service: service}
}

type checkoutRequest struct {
	FullName             string `json:"full_name"`
	Email                string `json:"email"`
	PhoneNumber          string `json:"phone_number"`
	Address              string `json:"address"`
	Landmark             string `json:"landmark"`
	Pincode              string `json:"pincode"`
	DeliveryInstructions string `json:"delivery_instructions"`
	Confirmed            bool   `json:"confirmed"`
	PaymentMethod        string `json:"payment_method"`
}

// Submit runs the order submission flow for the session's cart
func (cc *CheckoutController) Submit(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	form := models.CheckoutFormData{
		FullName:             req.FullName,
		Email:                req.Email,
		PhoneNumber:          req.PhoneNumber,
		Address:              req.Address,
		Landmark:             req.Landmark,
		Pincode:              req.Pincode,
		DeliveryInstructions: req.DeliveryInstructions,
	}

	result, err := cc.Service.Submit(c.Request.Context(), sessionID, form, req.Confirmed, req.PaymentMethod)
	if err != nil {
		logger.Error(c, "Checkout failed", err, zap.String("session_id", sessionID))
		_ = c.Error(apperrors.New(http.StatusInternalServerError, "checkout failed", err))
		return
	}

	status := http.StatusOK
	if result.State == services.StateFailed {
		status = http.StatusUnprocessableEntity
	}

	c.JSON(status, result)
}

// SavedAddress returns the stored delivery address for form prefill
func (cc *CheckoutController) SavedAddress(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	form, err := cc.Service.SavedAddress(c.Request.Context(), sessionID)
	if err != nil {
		logger.Error(c, "Failed to load saved address", err, zap.String("session_id", sessionID))
		_ = c.Error(apperrors.New(http.StatusInternalServerError, "failed to load saved address", err))
		return
	}
	if form == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no saved address"})
		return
	}

	c.JSON(http.StatusOK, form)
}
