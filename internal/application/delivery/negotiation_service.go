package delivery

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/delivery"
	"github.com/storefront/backend/internal/domain/notification"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
)

// lockStripes is the number of mutexes serializing negotiations. Two orders
// hashing to the same stripe serialize needlessly, which is harmless.
const lockStripes = 64

// TransitionStore persists a proposal transition together with its
// counterpart notification in a single atomic write.
type TransitionStore interface {
	SaveTransition(ctx context.Context, proposal *delivery.DeliveryProposal, notif *notification.Notification) error
}

// NegotiationService drives the delivery-time negotiation of an order.
// Every transition produces exactly one notification for the counterpart,
// written atomically with the proposal update.
type NegotiationService struct {
	proposals      delivery.ProposalRepository
	orders         order.Repository
	store          TransitionStore
	eventPublisher shared.EventPublisher
	locks          [lockStripes]sync.Mutex
}

// NewNegotiationService creates a new NegotiationService
func NewNegotiationService(proposals delivery.ProposalRepository, orders order.Repository, store TransitionStore) *NegotiationService {
	return &NegotiationService{
		proposals: proposals,
		orders:    orders,
		store:     store,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *NegotiationService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// GetByOrderID returns the negotiation state for an order
func (s *NegotiationService) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*ProposalResponse, error) {
	proposal, err := s.proposals.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	resp := ToProposalResponse(proposal)
	return &resp, nil
}

// Accept confirms the buyer's proposed slot on behalf of the seller
func (s *NegotiationService) Accept(ctx context.Context, orderID uuid.UUID, actor delivery.Actor, callerID uuid.UUID) (*ProposalResponse, error) {
	return s.transition(ctx, orderID, actor, callerID, func(p *delivery.DeliveryProposal) error {
		return p.Accept(actor)
	})
}

// ProposeAlternative records a seller counter-proposal for the order
func (s *NegotiationService) ProposeAlternative(ctx context.Context, orderID uuid.UUID, actor delivery.Actor, callerID uuid.UUID, req ProposeAlternativeRequest) (*ProposalResponse, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE", fmt.Sprintf("Date %q is not in YYYY-MM-DD format", req.Date))
	}
	window, err := delivery.ParseTimeWindow(req.TimeWindow)
	if err != nil {
		return nil, err
	}

	return s.transition(ctx, orderID, actor, callerID, func(p *delivery.DeliveryProposal) error {
		return p.ProposeAlternative(actor, date, window, req.Reason)
	})
}

// AcceptAlternative confirms the seller's counter-proposal on behalf of the buyer
func (s *NegotiationService) AcceptAlternative(ctx context.Context, orderID uuid.UUID, actor delivery.Actor, callerID uuid.UUID) (*ProposalResponse, error) {
	return s.transition(ctx, orderID, actor, callerID, func(p *delivery.DeliveryProposal) error {
		return p.AcceptAlternative(actor)
	})
}

// RejectAlternative declines the seller's counter-proposal on behalf of the buyer
func (s *NegotiationService) RejectAlternative(ctx context.Context, orderID uuid.UUID, actor delivery.Actor, callerID uuid.UUID) (*ProposalResponse, error) {
	return s.transition(ctx, orderID, actor, callerID, func(p *delivery.DeliveryProposal) error {
		return p.RejectAlternative(actor)
	})
}

// transition loads the proposal, applies the state change, and persists it
// atomically with the counterpart notification. Transitions on the same order
// are serialized so concurrent responses surface as INVALID_TRANSITION rather
// than a version conflict.
func (s *NegotiationService) transition(ctx context.Context, orderID uuid.UUID, actor delivery.Actor, callerID uuid.UUID, apply func(*delivery.DeliveryProposal) error) (*ProposalResponse, error) {
	lock := s.lockFor(orderID)
	lock.Lock()
	defer lock.Unlock()

	proposal, err := s.proposals.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	ord, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// Buyer-side transitions are scoped to the order's owner. A foreign
	// order reads as absent, same as CheckoutService.GetByID.
	if actor == delivery.ActorBuyer && ord.BuyerID != callerID {
		return nil, shared.ErrOrderNotFound
	}

	if err := apply(proposal); err != nil {
		return nil, err
	}

	notif, err := s.counterpartNotification(proposal, ord, actor)
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveTransition(ctx, proposal, notif); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, proposal)

	resp := ToProposalResponse(proposal)
	return &resp, nil
}

// counterpartNotification builds the single notification owed to the other
// side of the negotiation for the transition that just happened
func (s *NegotiationService) counterpartNotification(p *delivery.DeliveryProposal, ord *order.Order, actor delivery.Actor) (*notification.Notification, error) {
	var (
		title   string
		message string
		payload notification.DeliveryPayload
	)

	payload.Status = p.Status.String()
	payload.Counterpart = actor.String()
	payload.Date = p.Date.Format(dateLayout)
	payload.TimeWindow = p.Window.String()

	switch p.Status {
	case delivery.ProposalStatusAccepted:
		if actor == delivery.ActorBuyer {
			title = "Alternative delivery slot accepted"
			message = fmt.Sprintf("The buyer accepted the alternative slot for order %s: %s, %s.",
				ord.OrderNumber, p.Date.Format(dateLayout), p.Window)
		} else {
			title = "Delivery slot confirmed"
			message = fmt.Sprintf("Delivery for order %s is confirmed for %s, %s.",
				ord.OrderNumber, p.Date.Format(dateLayout), p.Window)
		}
	case delivery.ProposalStatusAlternativeProposed:
		alt := p.Alternative()
		title = "Alternative delivery slot proposed"
		message = fmt.Sprintf("The seller proposed %s, %s for order %s: %s",
			alt.Date.Format(dateLayout), alt.Window, ord.OrderNumber, alt.Reason)
		payload.Date = alt.Date.Format(dateLayout)
		payload.TimeWindow = alt.Window.String()
		payload.Reason = alt.Reason
	case delivery.ProposalStatusRejected:
		title = "Alternative delivery slot rejected"
		message = fmt.Sprintf("The buyer rejected the alternative slot for order %s.", ord.OrderNumber)
	default:
		return nil, shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("No notification defined for proposal status %s", p.Status))
	}

	counterpart := actor.Counterpart()
	input := notification.Input{
		RecipientRole: notification.RecipientRole(counterpart),
		Title:         title,
		Message:       message,
		Type:          notification.TypeDelivery,
		OrderID:       &p.OrderID,
		Payload:       &payload,
	}
	if counterpart == delivery.ActorBuyer {
		buyerID := ord.BuyerID
		input.RecipientID = &buyerID
	}

	return notification.New(input)
}

// publishEvents hands the aggregate's events to the bus after the commit.
// Delivery of these events is advisory; the notification already persisted
// with the transition.
func (s *NegotiationService) publishEvents(ctx context.Context, p *delivery.DeliveryProposal) {
	if s.eventPublisher == nil {
		return
	}
	for _, event := range p.GetDomainEvents() {
		_ = s.eventPublisher.Publish(ctx, event)
	}
	p.ClearDomainEvents()
}

func (s *NegotiationService) lockFor(orderID uuid.UUID) *sync.Mutex {
	h := fnv.New32a()
	h.Write(orderID[:])
	return &s.locks[h.Sum32()%lockStripes]
}
