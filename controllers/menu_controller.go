package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/models"
)

type MenuController struct{}

func NewMenuController() *MenuController {
	return &MenuController{}
}

// GetMenu returns the full catalog grouped by category
func (mc *MenuController) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.MenuCategories})
}

// GetItems returns the flat item list
func (mc *MenuController) GetItems(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": models.AllMenuItems()})
}
