package notification

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/notification"
)

// PayloadResponse carries the delivery fields attached to a notification
type PayloadResponse struct {
	Date        string `json:"date,omitempty"`
	TimeWindow  string `json:"time_window,omitempty"`
	Status      string `json:"status,omitempty"`
	Counterpart string `json:"counterpart,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

// NotificationResponse represents one entry in a recipient's feed
type NotificationResponse struct {
	ID        uuid.UUID        `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      string           `json:"type"`
	Read      bool             `json:"read"`
	OrderID   *uuid.UUID       `json:"order_id,omitempty"`
	Payload   *PayloadResponse `json:"payload,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// FeedResponse is a recipient's notification feed with its unread count
type FeedResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int64                  `json:"unread_count"`
}

// ToNotificationResponse converts a notification to its response DTO
func ToNotificationResponse(n *notification.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Read:      n.Read,
		OrderID:   n.OrderID,
		CreatedAt: n.CreatedAt,
	}
	if n.Payload != nil {
		resp.Payload = &PayloadResponse{
			Date:        n.Payload.Date,
			TimeWindow:  n.Payload.TimeWindow,
			Status:      n.Payload.Status,
			Counterpart: n.Payload.Counterpart,
			Reason:      n.Payload.Reason,
		}
	}
	return resp
}
