package tracking

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/tracking"
)

// TrackingService projects and extends the delivery timeline of an order
type TrackingService struct {
	events tracking.EventRepository
	orders order.Repository
}

// NewTrackingService creates a new TrackingService
func NewTrackingService(events tracking.EventRepository, orders order.Repository) *TrackingService {
	return &TrackingService{events: events, orders: orders}
}

// GetTimeline returns the tracking timeline for an order
func (s *TrackingService) GetTimeline(ctx context.Context, orderID uuid.UUID) (*TimelineResponse, error) {
	if _, err := s.orders.FindByID(ctx, orderID); err != nil {
		return nil, err
	}

	events, err := s.events.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	timeline := tracking.NewTimeline(events)
	resp := ToTimelineResponse(orderID, timeline)
	return &resp, nil
}

// AppendEvent records a new milestone on an order's timeline
func (s *TrackingService) AppendEvent(ctx context.Context, orderID uuid.UUID, req AppendEventRequest) (*TimelineEventResponse, error) {
	status := tracking.Status(req.Status)
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Tracking status is not recognized")
	}

	if _, err := s.orders.FindByID(ctx, orderID); err != nil {
		return nil, err
	}

	event, err := tracking.NewDeliveryEvent(orderID, status, req.OccurredAt, req.Description, req.Location)
	if err != nil {
		return nil, err
	}

	if err := s.events.Append(ctx, event); err != nil {
		return nil, err
	}

	resp := ToTimelineEventResponse(*event)
	return &resp, nil
}
