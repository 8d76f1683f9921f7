package notification

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for notifications.
// A recipient is a role plus an optional user ID; a nil recipientID addresses
// the role-wide feed.
type Repository interface {
	// FindByID finds a notification by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Notification, error)
	// FindByRecipient lists a recipient's notifications most recent first
	FindByRecipient(ctx context.Context, role RecipientRole, recipientID *uuid.UUID) ([]*Notification, error)
	// CountUnread returns the number of unread notifications for a recipient
	CountUnread(ctx context.Context, role RecipientRole, recipientID *uuid.UUID) (int64, error)
	// Save creates or updates a notification
	Save(ctx context.Context, n *Notification) error
	// MarkAllAsRead flips every unread notification for a recipient
	MarkAllAsRead(ctx context.Context, role RecipientRole, recipientID *uuid.UUID) error
	// PruneToLimit deletes the oldest notifications beyond limit for a recipient
	PruneToLimit(ctx context.Context, role RecipientRole, recipientID *uuid.UUID, limit int) error
}
