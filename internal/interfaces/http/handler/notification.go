package handler

import (
	"github.com/gin-gonic/gin"

	notifapp "github.com/storefront/backend/internal/application/notification"
)

// NotificationHandler handles notification feed API endpoints
type NotificationHandler struct {
	BaseHandler
	notificationService *notifapp.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService *notifapp.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// RegisterRoutes registers notification routes
func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.GetFeed)
		notifications.GET("/unread-count", h.UnreadCount)
		notifications.POST("/:id/read", h.MarkAsRead)
		notifications.POST("/read-all", h.MarkAllAsRead)
	}
}

// GetFeed returns the caller's notifications, most recent first
func (h *NotificationHandler) GetFeed(c *gin.Context) {
	recipient, err := recipientFromContext(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	feed, err := h.notificationService.GetFeed(c.Request.Context(), recipient)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, feed)
}

// UnreadCount returns the caller's unread notification count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	recipient, err := recipientFromContext(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	count, err := h.notificationService.UnreadCount(c.Request.Context(), recipient)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"unread_count": count})
}

// MarkAsRead marks one of the caller's notifications as read
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	recipient, err := recipientFromContext(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	notificationID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid notification ID format")
		return
	}

	resp, err := h.notificationService.MarkAsRead(c.Request.Context(), recipient, notificationID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// MarkAllAsRead marks all of the caller's notifications as read
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	recipient, err := recipientFromContext(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.notificationService.MarkAllAsRead(c.Request.Context(), recipient); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
