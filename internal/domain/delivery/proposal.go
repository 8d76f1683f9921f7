package delivery

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// ProposalStatus represents the negotiation state of a delivery proposal
type ProposalStatus string

const (
	ProposalStatusPending             ProposalStatus = "PENDING"
	ProposalStatusAccepted            ProposalStatus = "ACCEPTED"
	ProposalStatusRejected            ProposalStatus = "REJECTED"
	ProposalStatusAlternativeProposed ProposalStatus = "ALTERNATIVE_PROPOSED"
)

// IsValid checks if the status is a valid ProposalStatus
func (s ProposalStatus) IsValid() bool {
	switch s {
	case ProposalStatusPending, ProposalStatusAccepted, ProposalStatusRejected, ProposalStatusAlternativeProposed:
		return true
	}
	return false
}

// String returns the string representation of ProposalStatus
func (s ProposalStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are permitted
func (s ProposalStatus) IsTerminal() bool {
	return s == ProposalStatusAccepted || s == ProposalStatusRejected
}

// CanTransitionTo checks if the status can transition to the target status
func (s ProposalStatus) CanTransitionTo(target ProposalStatus) bool {
	switch s {
	case ProposalStatusPending:
		return target == ProposalStatusAccepted || target == ProposalStatusAlternativeProposed
	case ProposalStatusAlternativeProposed:
		return target == ProposalStatusAccepted || target == ProposalStatusRejected
	case ProposalStatusAccepted, ProposalStatusRejected:
		return false // Terminal states
	}
	return false
}

// Alternative is a seller counter-proposal replacing the buyer's slot.
// It exists only while the proposal is in ALTERNATIVE_PROPOSED.
type Alternative struct {
	Date   time.Time  `json:"date"`
	Window TimeWindow `json:"time_window"`
	Reason string     `json:"reason"`
}

// DeliveryProposal is the aggregate root for the delivery-time negotiation
// of a single order. Exactly one proposal exists per order.
type DeliveryProposal struct {
	shared.BaseAggregateRoot
	OrderID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Date       time.Time
	// WINDOW is reserved in PostgreSQL, so the column carries an explicit name.
	Window     TimeWindow `gorm:"column:time_window;type:varchar(20)"`
	ProposedBy Actor      `gorm:"type:varchar(10)"`
	Status     ProposalStatus
	AltDate    *time.Time
	AltWindow  *TimeWindow `gorm:"type:varchar(20)"`
	AltReason  string
	RespondedAt *time.Time
}

// NewDeliveryProposal creates the initial buyer proposal attached at checkout
func NewDeliveryProposal(orderID uuid.UUID, date time.Time, window TimeWindow) (*DeliveryProposal, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if !window.IsValid() {
		return nil, shared.NewDomainError("INVALID_TIME_WINDOW", fmt.Sprintf("Time window %q is not an offered slot", window))
	}
	if err := ValidateDeliveryDate(date, time.Now()); err != nil {
		return nil, err
	}

	proposal := &DeliveryProposal{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderID:           orderID,
		Date:              date,
		Window:            window,
		ProposedBy:        ActorBuyer,
		Status:            ProposalStatusPending,
	}

	proposal.AddDomainEvent(NewDeliveryProposalCreatedEvent(proposal))

	return proposal, nil
}

// Accept confirms the buyer's proposed slot. Seller only, pending only.
func (p *DeliveryProposal) Accept(actor Actor) error {
	if err := p.guardTransition(ProposalStatusAccepted, ProposalStatusPending); err != nil {
		return err
	}
	if actor != ActorSeller {
		return shared.NewDomainError("NOT_AUTHORIZED", "Only the seller can accept the proposed slot")
	}

	now := time.Now()
	p.Status = ProposalStatusAccepted
	p.RespondedAt = &now
	p.UpdatedAt = now

	p.AddDomainEvent(NewDeliveryProposalAcceptedEvent(p))

	return nil
}

// ProposeAlternative replaces the buyer's slot with a seller counter-proposal.
// Seller only, pending only.
func (p *DeliveryProposal) ProposeAlternative(actor Actor, date time.Time, window TimeWindow, reason string) error {
	if err := p.guardTransition(ProposalStatusAlternativeProposed, ProposalStatusPending); err != nil {
		return err
	}
	if actor != ActorSeller {
		return shared.NewDomainError("NOT_AUTHORIZED", "Only the seller can propose an alternative slot")
	}
	if !window.IsValid() {
		return shared.NewDomainError("INVALID_TIME_WINDOW", fmt.Sprintf("Time window %q is not an offered slot", window))
	}
	if err := ValidateDeliveryDate(date, time.Now()); err != nil {
		return err
	}
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "A reason for the alternative slot is required")
	}

	now := time.Now()
	p.Status = ProposalStatusAlternativeProposed
	p.ProposedBy = ActorSeller
	p.AltDate = &date
	p.AltWindow = &window
	p.AltReason = reason
	p.UpdatedAt = now

	p.AddDomainEvent(NewDeliveryAlternativeProposedEvent(p))

	return nil
}

// AcceptAlternative confirms the seller's counter-proposal, which becomes the
// agreed slot. Buyer only, alternative_proposed only.
func (p *DeliveryProposal) AcceptAlternative(actor Actor) error {
	if err := p.guardTransition(ProposalStatusAccepted, ProposalStatusAlternativeProposed); err != nil {
		return err
	}
	if actor != ActorBuyer {
		return shared.NewDomainError("NOT_AUTHORIZED", "Only the buyer can accept the alternative slot")
	}

	now := time.Now()
	p.Date = *p.AltDate
	p.Window = *p.AltWindow
	p.Status = ProposalStatusAccepted
	p.RespondedAt = &now
	p.UpdatedAt = now
	p.clearAlternative()

	p.AddDomainEvent(NewDeliveryAlternativeAcceptedEvent(p))

	return nil
}

// RejectAlternative declines the seller's counter-proposal.
// Buyer only, alternative_proposed only.
func (p *DeliveryProposal) RejectAlternative(actor Actor) error {
	if err := p.guardTransition(ProposalStatusRejected, ProposalStatusAlternativeProposed); err != nil {
		return err
	}
	if actor != ActorBuyer {
		return shared.NewDomainError("NOT_AUTHORIZED", "Only the buyer can reject the alternative slot")
	}

	now := time.Now()
	p.Status = ProposalStatusRejected
	p.RespondedAt = &now
	p.UpdatedAt = now
	p.clearAlternative()

	p.AddDomainEvent(NewDeliveryAlternativeRejectedEvent(p))

	return nil
}

// Alternative returns the pending counter-proposal, or nil outside
// ALTERNATIVE_PROPOSED
func (p *DeliveryProposal) Alternative() *Alternative {
	if p.Status != ProposalStatusAlternativeProposed || p.AltDate == nil || p.AltWindow == nil {
		return nil
	}
	return &Alternative{
		Date:   *p.AltDate,
		Window: *p.AltWindow,
		Reason: p.AltReason,
	}
}

// IsTerminal returns true if the negotiation has concluded
func (p *DeliveryProposal) IsTerminal() bool {
	return p.Status.IsTerminal()
}

// IsPending returns true if the proposal awaits the seller's response
func (p *DeliveryProposal) IsPending() bool {
	return p.Status == ProposalStatusPending
}

// guardTransition enforces the state machine. The state check runs before the
// actor check so a call against a concluded negotiation always reports
// INVALID_TRANSITION regardless of who made it.
func (p *DeliveryProposal) guardTransition(target, from ProposalStatus) error {
	if p.Status != from || !p.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_TRANSITION",
			fmt.Sprintf("Cannot move proposal from %s to %s", p.Status, target))
	}
	return nil
}

func (p *DeliveryProposal) clearAlternative() {
	p.AltDate = nil
	p.AltWindow = nil
	p.AltReason = ""
}
