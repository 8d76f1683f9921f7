package order

import (
	"context"
	"fmt"

	"github.com/storefront/backend/internal/domain/notification"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/tracking"
	"go.uber.org/zap"
)

// OrderPlacedHandler handles OrderPlacedEvent: it seeds the tracking
// timeline with the order_placed milestone and notifies the seller.
type OrderPlacedHandler struct {
	trackingEvents  tracking.EventRepository
	notifications   notification.Repository
	maxPerRecipient int
	logger          *zap.Logger
}

// NewOrderPlacedHandler creates a new handler for order placed events
func NewOrderPlacedHandler(trackingEvents tracking.EventRepository, notifications notification.Repository, maxPerRecipient int, logger *zap.Logger) *OrderPlacedHandler {
	return &OrderPlacedHandler{
		trackingEvents:  trackingEvents,
		notifications:   notifications,
		maxPerRecipient: maxPerRecipient,
		logger:          logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *OrderPlacedHandler) EventTypes() []string {
	return []string{order.EventTypeOrderPlaced}
}

// Handle seeds the timeline and writes the seller's notification
func (h *OrderPlacedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	placed, ok := event.(*order.OrderPlacedEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", order.EventTypeOrderPlaced),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			order.EventTypeOrderPlaced, event.EventType())
	}

	milestone, err := tracking.NewDeliveryEvent(placed.OrderID, tracking.StatusOrderPlaced,
		event.OccurredAt(), fmt.Sprintf("Order %s placed", placed.OrderNumber), "")
	if err != nil {
		return err
	}
	if err := h.trackingEvents.Append(ctx, milestone); err != nil {
		return fmt.Errorf("append order_placed milestone: %w", err)
	}

	orderID := placed.OrderID
	notif, err := notification.New(notification.Input{
		RecipientRole: notification.RoleSeller,
		Title:         "New order placed",
		Message: fmt.Sprintf("%s placed order %s (%d items, %s total).",
			placed.CustomerName, placed.OrderNumber, placed.ItemCount, placed.Total.StringFixed(2)),
		Type:    notification.TypeOrder,
		OrderID: &orderID,
	})
	if err != nil {
		return err
	}
	if err := h.notifications.Save(ctx, notif); err != nil {
		return fmt.Errorf("save seller notification: %w", err)
	}
	if err := h.notifications.PruneToLimit(ctx, notification.RoleSeller, nil, h.maxPerRecipient); err != nil {
		h.logger.Warn("failed to prune seller notifications", zap.Error(err))
	}

	h.logger.Info("order placed",
		zap.String("order_number", placed.OrderNumber),
		zap.String("order_id", placed.OrderID.String()),
	)

	return nil
}
