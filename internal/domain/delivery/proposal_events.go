package delivery

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeDeliveryProposal = "DeliveryProposal"

// Event type constants
const (
	EventTypeDeliveryProposalCreated      = "DeliveryProposalCreated"
	EventTypeDeliveryProposalAccepted     = "DeliveryProposalAccepted"
	EventTypeDeliveryAlternativeProposed  = "DeliveryAlternativeProposed"
	EventTypeDeliveryAlternativeAccepted  = "DeliveryAlternativeAccepted"
	EventTypeDeliveryAlternativeRejected  = "DeliveryAlternativeRejected"
)

// DeliveryProposalCreatedEvent is raised when a buyer proposes a slot at checkout
type DeliveryProposalCreatedEvent struct {
	shared.BaseDomainEvent
	OrderID uuid.UUID  `json:"order_id"`
	Date    time.Time  `json:"date"`
	Window  TimeWindow `json:"time_window"`
}

// NewDeliveryProposalCreatedEvent creates a new DeliveryProposalCreatedEvent
func NewDeliveryProposalCreatedEvent(p *DeliveryProposal) *DeliveryProposalCreatedEvent {
	return &DeliveryProposalCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDeliveryProposalCreated, AggregateTypeDeliveryProposal, p.ID),
		OrderID:         p.OrderID,
		Date:            p.Date,
		Window:          p.Window,
	}
}

// EventType returns the event type name
func (e *DeliveryProposalCreatedEvent) EventType() string {
	return EventTypeDeliveryProposalCreated
}

// DeliveryProposalAcceptedEvent is raised when the seller confirms the buyer's slot
type DeliveryProposalAcceptedEvent struct {
	shared.BaseDomainEvent
	OrderID uuid.UUID  `json:"order_id"`
	Date    time.Time  `json:"date"`
	Window  TimeWindow `json:"time_window"`
}

// NewDeliveryProposalAcceptedEvent creates a new DeliveryProposalAcceptedEvent
func NewDeliveryProposalAcceptedEvent(p *DeliveryProposal) *DeliveryProposalAcceptedEvent {
	return &DeliveryProposalAcceptedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDeliveryProposalAccepted, AggregateTypeDeliveryProposal, p.ID),
		OrderID:         p.OrderID,
		Date:            p.Date,
		Window:          p.Window,
	}
}

// EventType returns the event type name
func (e *DeliveryProposalAcceptedEvent) EventType() string {
	return EventTypeDeliveryProposalAccepted
}

// DeliveryAlternativeProposedEvent is raised when the seller counter-proposes
type DeliveryAlternativeProposedEvent struct {
	shared.BaseDomainEvent
	OrderID   uuid.UUID  `json:"order_id"`
	AltDate   time.Time  `json:"alternative_date"`
	AltWindow TimeWindow `json:"alternative_window"`
	Reason    string     `json:"reason"`
}

// NewDeliveryAlternativeProposedEvent creates a new DeliveryAlternativeProposedEvent
func NewDeliveryAlternativeProposedEvent(p *DeliveryProposal) *DeliveryAlternativeProposedEvent {
	return &DeliveryAlternativeProposedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDeliveryAlternativeProposed, AggregateTypeDeliveryProposal, p.ID),
		OrderID:         p.OrderID,
		AltDate:         *p.AltDate,
		AltWindow:       *p.AltWindow,
		Reason:          p.AltReason,
	}
}

// EventType returns the event type name
func (e *DeliveryAlternativeProposedEvent) EventType() string {
	return EventTypeDeliveryAlternativeProposed
}

// DeliveryAlternativeAcceptedEvent is raised when the buyer takes the counter-proposal
type DeliveryAlternativeAcceptedEvent struct {
	shared.BaseDomainEvent
	OrderID uuid.UUID  `json:"order_id"`
	Date    time.Time  `json:"date"`
	Window  TimeWindow `json:"time_window"`
}

// NewDeliveryAlternativeAcceptedEvent creates a new DeliveryAlternativeAcceptedEvent
func NewDeliveryAlternativeAcceptedEvent(p *DeliveryProposal) *DeliveryAlternativeAcceptedEvent {
	return &DeliveryAlternativeAcceptedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDeliveryAlternativeAccepted, AggregateTypeDeliveryProposal, p.ID),
		OrderID:         p.OrderID,
		Date:            p.Date,
		Window:          p.Window,
	}
}

// EventType returns the event type name
func (e *DeliveryAlternativeAcceptedEvent) EventType() string {
	return EventTypeDeliveryAlternativeAccepted
}

// DeliveryAlternativeRejectedEvent is raised when the buyer declines the counter-proposal
type DeliveryAlternativeRejectedEvent struct {
	shared.BaseDomainEvent
	OrderID uuid.UUID `json:"order_id"`
}

// NewDeliveryAlternativeRejectedEvent creates a new DeliveryAlternativeRejectedEvent
func NewDeliveryAlternativeRejectedEvent(p *DeliveryProposal) *DeliveryAlternativeRejectedEvent {
	return &DeliveryAlternativeRejectedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDeliveryAlternativeRejected, AggregateTypeDeliveryProposal, p.ID),
		OrderID:         p.OrderID,
	}
}

// EventType returns the event type name
func (e *DeliveryAlternativeRejectedEvent) EventType() string {
	return EventTypeDeliveryAlternativeRejected
}
