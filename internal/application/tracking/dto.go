package tracking

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/tracking"
)

// AppendEventRequest represents a request to record a tracking milestone.
// A zero OccurredAt defaults to the time of recording.
type AppendEventRequest struct {
	Status      string    `json:"status" binding:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// TimelineEventResponse represents one recorded milestone
type TimelineEventResponse struct {
	ID          uuid.UUID `json:"id"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// TimelineResponse represents an order's tracking timeline projection
type TimelineResponse struct {
	OrderID         uuid.UUID               `json:"order_id"`
	CurrentStatus   string                  `json:"current_status,omitempty"`
	ProgressPercent int                     `json:"progress_percent"`
	Delayed         bool                    `json:"delayed"`
	Events          []TimelineEventResponse `json:"events"`
}

// ToTimelineEventResponse converts a delivery event to its response DTO
func ToTimelineEventResponse(e tracking.DeliveryEvent) TimelineEventResponse {
	return TimelineEventResponse{
		ID:          e.ID,
		Status:      e.Status.String(),
		Description: e.Description,
		Location:    e.Location,
		OccurredAt:  e.OccurredAt,
	}
}

// ToTimelineResponse converts a timeline projection to its response DTO
func ToTimelineResponse(orderID uuid.UUID, t *tracking.Timeline) TimelineResponse {
	events := t.Events()
	responses := make([]TimelineEventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, ToTimelineEventResponse(e))
	}

	resp := TimelineResponse{
		OrderID:         orderID,
		ProgressPercent: t.ProgressPercent(),
		Delayed:         t.IsDelayed(),
		Events:          responses,
	}
	if status, ok := t.CurrentStatus(); ok {
		resp.CurrentStatus = status.String()
	}
	return resp
}
