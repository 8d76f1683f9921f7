package tracking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/delivery"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/tracking"
	"go.uber.org/zap"
)

// SlotConfirmedHandler advances the tracking timeline to processing once a
// delivery slot is agreed, whether the buyer's original proposal or the
// seller's alternative was accepted.
type SlotConfirmedHandler struct {
	trackingEvents tracking.EventRepository
	logger         *zap.Logger
}

// NewSlotConfirmedHandler creates a new handler for agreed delivery slots
func NewSlotConfirmedHandler(trackingEvents tracking.EventRepository, logger *zap.Logger) *SlotConfirmedHandler {
	return &SlotConfirmedHandler{trackingEvents: trackingEvents, logger: logger}
}

// EventTypes returns the event types this handler is interested in
func (h *SlotConfirmedHandler) EventTypes() []string {
	return []string{
		delivery.EventTypeDeliveryProposalAccepted,
		delivery.EventTypeDeliveryAlternativeAccepted,
	}
}

// Handle appends the processing milestone with the agreed slot
func (h *SlotConfirmedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	var (
		orderID uuid.UUID
		date    time.Time
		window  delivery.TimeWindow
	)

	switch e := event.(type) {
	case *delivery.DeliveryProposalAcceptedEvent:
		orderID, date, window = e.OrderID, e.Date, e.Window
	case *delivery.DeliveryAlternativeAcceptedEvent:
		orderID, date, window = e.OrderID, e.Date, e.Window
	default:
		h.logger.Error("unexpected event type", zap.String("actual", event.EventType()))
		return fmt.Errorf("unexpected event type: %s", event.EventType())
	}

	milestone, err := tracking.NewDeliveryEvent(orderID, tracking.StatusProcessing,
		event.OccurredAt(),
		fmt.Sprintf("Delivery confirmed for %s, %s", date.Format("2006-01-02"), window), "")
	if err != nil {
		return err
	}
	if err := h.trackingEvents.Append(ctx, milestone); err != nil {
		return fmt.Errorf("append processing milestone: %w", err)
	}

	h.logger.Info("delivery slot confirmed",
		zap.String("order_id", orderID.String()),
		zap.String("window", window.String()),
	)

	return nil
}
