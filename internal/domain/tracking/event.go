package tracking

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// Status is a shipment milestone on an order's delivery timeline
type Status string

const (
	StatusOrderPlaced    Status = "order_placed"
	StatusProcessing     Status = "processing"
	StatusShipped        Status = "shipped"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusDelayed        Status = "delayed"
)

// IsValid checks if the status is a known milestone
func (s Status) IsValid() bool {
	switch s {
	case StatusOrderPlaced, StatusProcessing, StatusShipped, StatusOutForDelivery, StatusDelivered, StatusDelayed:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// DeliveryEvent is an append-only milestone record owned by an order.
// Events are never rolled back.
type DeliveryEvent struct {
	shared.BaseEntity
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Status      Status    `gorm:"type:varchar(20);not null"`
	Description string
	Location    string
	OccurredAt  time.Time `gorm:"not null;index"`
}

// NewDeliveryEvent creates a milestone event for an order
func NewDeliveryEvent(orderID uuid.UUID, status Status, occurredAt time.Time, description, location string) (*DeliveryEvent, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Tracking status is not recognized")
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	return &DeliveryEvent{
		BaseEntity:  shared.NewBaseEntity(),
		OrderID:     orderID,
		Status:      status,
		Description: description,
		Location:    location,
		OccurredAt:  occurredAt,
	}, nil
}
