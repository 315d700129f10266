package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-service/database"
	apperrors "storefront-service/errors"
	"storefront-service/logger"
	"storefront-service/middleware"
	"storefront-service/models"
)

type CartController struct {
	Repo database.CartStore
}

func NewCartController(repo database.CartStore) *CartController {
	return &CartController{Repo: repo}
}

type addItemRequest struct {
	ItemID      string `json:"item_id" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,min=1,max=10"`
	SugarOption string `json:"sugar_option"`
	SpiceLevel  string `json:"spice_level"`
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func cartResponse(cart *models.Cart) gin.H {
	return gin.H{
		"cart":        cart,
		"total_price": cart.TotalPrice(),
		"total_items": cart.TotalItems(),
	}
}

// GetCart returns the current cart for the session
func (cc *CartController) GetCart(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	cart, err := cc.Repo.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		logger.Error(c, "Failed to get cart", err, zap.String("session_id", sessionID))
		_ = c.Error(apperrors.New(http.StatusInternalServerError, "failed to get cart", err))
		return
	}

	if cart == nil {
		cart = models.NewCart(sessionID)
	}

	c.JSON(http.StatusOK, cartResponse(cart))
}

// AddItem adds a catalog item to the cart, merging with an existing
// line when the customization matches
func (cc *CartController) AddItem(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	item, ok := models.FindMenuItem(req.ItemID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown menu item"})
		return
	}

	cust, errMsg := resolveCustomization(item, req.SugarOption, req.SpiceLevel)
	if errMsg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	ctx := c.Request.Context()
	cart, err := cc.Repo.GetCart(ctx, sessionID)
	if err != nil {
		logger.Error(c, "Failed to load cart", err, zap.String("session_id", sessionID))
		_ = c.Error(apperrors.New(http.StatusInternalServerError, "failed to load cart", err))
		return
	}
	if cart == nil {
		cart = models.NewCart(sessionID)
	}

	cart.AddItem(item, req.Quantity, cust)

	if err := cc.Repo.SaveCart(ctx, cart); err != nil {
		logger.Error(c, "Failed to save cart", err, zap.String("session_id", sessionID))
		_ = c.Error(apperrors.New(http.StatusInternalServerError, "failed to save cart", err))
		return
	}

	c.JSON(http.StatusOK, cartResponse(cart))
}

// UpdateQuantity sets a line's quantity exactly; zero or less removes it
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	cartItemID := c.Param("cart_item_id")

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	ctx := c.Request.Context()
	cart, err := cc.Repo.GetCart(ctx, sessionID)
	if err != nil {
		logger.Error(c, "Failed to load cart", err, zap.String("session_id", sessionID))
		_ = c.Error(apperrors.New(http.StatusInternalServerError, "failed to load cart", err))
		return
	}
	if cart == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
		return
	}

	cart.UpdateQuantity(cartItemID, *req.Quantity)

	if err := cc.Repo.SaveCart(ctx, cart); err != nil {
		logger.Error(c, "Failed to update cart", err, zap.String("session_id", sessionID))
		_ = c.Error(apperrors.New(http.StatusInternalServerError, "failed to update cart", err))
		return
	}

	c.JSON(http.StatusOK, cartResponse(cart))
}

// RemoveItem removes a specific line from the cart
func (cc *CartController) RemoveItem(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	cartItemID := c.Param("cart_item_id")

	ctx := c.Request.Context()
	cart, err := cc.Repo.GetCart(ctx, sessionID)
	if err != nil {
		logger.Error(c, "Failed to load cart", err, zap.String("session_id", sessionID))
		_ = c.Error(apperrors.New(http.StatusInternalServerError, "failed to load cart", err))
		return
	}
	if cart == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
		return
	}

	cart.RemoveItem(cartItemID)

	if err := cc.Repo.SaveCart(ctx, cart); err != nil {
		logger.Error(c, "Failed to update cart", err, zap.String("session_id", sessionID))
		_ = c.Error(apperrors.New(http.StatusInternalServerError, "failed to update cart", err))
		return
	}

	c.JSON(http.StatusOK, cartResponse(cart))
}

// ClearCart removes all items from the cart
func (cc *CartController) ClearCart(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	if err := cc.Repo.DeleteCart(c.Request.Context(), sessionID); err != nil {
		logger.Error(c, "Failed to clear cart", err, zap.String("session_id", sessionID))
		_ = c.Error(apperrors.New(http.StatusInternalServerError, "failed to clear cart", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

// resolveCustomization picks the variant the item's category offers,
// falling back to the storefront defaults when no choice was sent.
func resolveCustomization(item models.MenuItem, sugarOption, spiceLevel string) (models.Customization, string) {
	switch models.CustomizationKindFor(item.Category) {
	case models.CustomizationSpice:
		lvl := models.SpiceLevel(spiceLevel)
		if spiceLevel == "" {
			lvl = models.MediumSpicy
		}
		if !lvl.Valid() {
			return models.Customization{}, "invalid spice level"
		}
		if sugarOption != "" {
			return models.Customization{}, "item does not take a sugar option"
		}
		return models.SpiceCustomization(lvl), ""
	default:
		opt := models.SugarOption(sugarOption)
		if sugarOption == "" {
			opt = models.WithSugar
		}
		if !opt.Valid() {
			return models.Customization{}, "invalid sugar option"
		}
		if spiceLevel != "" {
			return models.Customization{}, "item does not take a spice level"
		}
		return models.SugarCustomization(opt), ""
	}
}
