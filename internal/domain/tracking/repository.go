package tracking

import (
	"context"

	"github.com/google/uuid"
)

// EventRepository defines persistence operations for delivery events
type EventRepository interface {
	// FindByOrderID returns all events for an order ordered by occurrence
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]DeliveryEvent, error)
	// Append stores a new event. Events are never updated or deleted.
	Append(ctx context.Context, event *DeliveryEvent) error
}
