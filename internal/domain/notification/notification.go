package notification

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// Type categorizes a notification for display grouping
type Type string

const (
	TypeOrder    Type = "order"
	TypeDelivery Type = "delivery"
	TypeSystem   Type = "system"
)

// IsValid checks if the type is a known notification type
func (t Type) IsValid() bool {
	switch t {
	case TypeOrder, TypeDelivery, TypeSystem:
		return true
	}
	return false
}

// RecipientRole addresses a notification to one side of an order.
// Notifications belong to the actor, not to the order.
type RecipientRole string

const (
	RoleBuyer  RecipientRole = "buyer"
	RoleSeller RecipientRole = "seller"
)

// IsValid checks if the role is a known recipient role
func (r RecipientRole) IsValid() bool {
	return r == RoleBuyer || r == RoleSeller
}

// DeliveryPayload carries the delivery fields a client needs to render
// inline actions without another fetch
type DeliveryPayload struct {
	Date        string `json:"date,omitempty"`
	TimeWindow  string `json:"time_window,omitempty"`
	Status      string `json:"status,omitempty"`
	Counterpart string `json:"counterpart,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

// Notification is a single entry in an actor's notification feed
type Notification struct {
	shared.BaseEntity
	RecipientRole RecipientRole `gorm:"type:varchar(10);not null;index:idx_notifications_recipient"`
	RecipientID   *uuid.UUID    `gorm:"type:uuid;index"`
	Title         string        `gorm:"not null"`
	Message       string
	Type          Type `gorm:"type:varchar(20);not null"`
	Read          bool `gorm:"not null;default:false"`
	OrderID       *uuid.UUID
	Payload       *DeliveryPayload `gorm:"serializer:json"`
}

// Input holds the fields callers supply when creating a notification
type Input struct {
	RecipientRole RecipientRole
	RecipientID   *uuid.UUID
	Title         string
	Message       string
	Type          Type
	OrderID       *uuid.UUID
	Payload       *DeliveryPayload
}

// New creates an unread notification with a fresh ID and current timestamp
func New(input Input) (*Notification, error) {
	if !input.RecipientRole.IsValid() {
		return nil, shared.NewDomainError("INVALID_RECIPIENT", "Notification recipient role is required")
	}
	if input.Title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Notification title cannot be empty")
	}
	if !input.Type.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Notification type is not recognized")
	}

	return &Notification{
		BaseEntity:    shared.NewBaseEntity(),
		RecipientRole: input.RecipientRole,
		RecipientID:   input.RecipientID,
		Title:         input.Title,
		Message:       input.Message,
		Type:          input.Type,
		Read:          false,
		OrderID:       input.OrderID,
		Payload:       input.Payload,
	}, nil
}

// MarkAsRead flips the read flag. Marking an already-read notification is a
// no-op, not an error.
func (n *Notification) MarkAsRead() {
	if n.Read {
		return
	}
	n.Read = true
	n.UpdatedAt = time.Now()
}
