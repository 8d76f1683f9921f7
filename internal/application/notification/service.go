package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/notification"
	"github.com/storefront/backend/internal/domain/shared"
)

// Recipient identifies whose feed an operation addresses. A nil UserID
// addresses the role-wide feed.
type Recipient struct {
	Role   notification.RecipientRole
	UserID *uuid.UUID
}

// NotificationService serves and mutates notification feeds
type NotificationService struct {
	notifications notification.Repository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notifications notification.Repository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// GetFeed returns a recipient's notifications most recent first together
// with the unread count
func (s *NotificationService) GetFeed(ctx context.Context, recipient Recipient) (*FeedResponse, error) {
	items, err := s.notifications.FindByRecipient(ctx, recipient.Role, recipient.UserID)
	if err != nil {
		return nil, err
	}
	unread, err := s.notifications.CountUnread(ctx, recipient.Role, recipient.UserID)
	if err != nil {
		return nil, err
	}

	responses := make([]NotificationResponse, 0, len(items))
	for _, n := range items {
		responses = append(responses, ToNotificationResponse(n))
	}
	return &FeedResponse{Notifications: responses, UnreadCount: unread}, nil
}

// UnreadCount returns the number of unread notifications for a recipient
func (s *NotificationService) UnreadCount(ctx context.Context, recipient Recipient) (int64, error) {
	return s.notifications.CountUnread(ctx, recipient.Role, recipient.UserID)
}

// MarkAsRead marks one notification as read. Marking an already-read
// notification succeeds without effect.
func (s *NotificationService) MarkAsRead(ctx context.Context, recipient Recipient, id uuid.UUID) (*NotificationResponse, error) {
	n, err := s.notifications.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.belongsTo(n, recipient) {
		return nil, shared.ErrNotFound
	}

	if !n.Read {
		n.MarkAsRead()
		if err := s.notifications.Save(ctx, n); err != nil {
			return nil, err
		}
	}

	resp := ToNotificationResponse(n)
	return &resp, nil
}

// MarkAllAsRead flips every unread notification in a recipient's feed
func (s *NotificationService) MarkAllAsRead(ctx context.Context, recipient Recipient) error {
	return s.notifications.MarkAllAsRead(ctx, recipient.Role, recipient.UserID)
}

// belongsTo reports whether a notification sits in the recipient's feed.
// A role-wide notification is visible to every user holding the role.
func (s *NotificationService) belongsTo(n *notification.Notification, recipient Recipient) bool {
	if n.RecipientRole != recipient.Role {
		return false
	}
	if n.RecipientID == nil {
		return true
	}
	return recipient.UserID != nil && *n.RecipientID == *recipient.UserID
}
