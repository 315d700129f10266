package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "storefront-service/errors"
	"storefront-service/logger"
	"storefront-service/models"
	"storefront-service/repository"
)

type NotificationController struct {
	Repo repository.NotificationRepository
}

func NewNotificationController(repo repository.NotificationRepository) *NotificationController {
	return &NotificationController{Repo: repo}
}

// GetLogs lists notification attempts, filterable by session, status
// and channel
func (nc *NotificationController) GetLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	filter := models.NotificationFilter{
		SessionID: c.Query("session_id"),
		Status:    c.Query("status"),
		Channel:   c.Query("channel"),
		Page:      page,
		PageSize:  pageSize,
	}

	logs, total, err := nc.Repo.GetLogs(c.Request.Context(), filter)
	if err != nil {
		logger.Error(c, "Failed to fetch notification logs", err)
		_ = c.Error(apperrors.New(http.StatusInternalServerError, "failed to fetch logs", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs":  logs,
		"total": total,
	})
}
