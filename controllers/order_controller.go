package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "storefront-service/errors"
	"storefront-service/logger"
	"storefront-service/services"
)

type OrderController struct {
	Client services.OrderAPI
}

func NewOrderController(client services.OrderAPI) *OrderController {
	return &OrderController{Client: client}
}

// GetOrder fetches a single order from the order backend. Each
// retrieval failure category gets its own user-facing message.
func (oc *OrderController) GetOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	order, err := oc.Client.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			_ = c.Error(apperrors.New(http.StatusNotFound, "Order not found", err))
		case errors.Is(err, services.ErrInvalidOrderID):
			_ = c.Error(apperrors.New(http.StatusBadRequest, "Invalid order ID", err))
		case errors.Is(err, services.ErrOrderServer):
			_ = c.Error(apperrors.New(http.StatusBadGateway, "Server error. Please try again later.", err))
		case errors.Is(err, services.ErrOrderUnreachable):
			_ = c.Error(apperrors.New(http.StatusServiceUnavailable, "Cannot reach server. Please check your connection.", err))
		default:
			logger.Error(c, "Unexpected order fetch failure", err, zap.String("order_id", orderID))
			_ = c.Error(apperrors.New(http.StatusInternalServerError, "An unexpected error occurred", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}
