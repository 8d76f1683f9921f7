package delivery

import (
	"context"

	"github.com/google/uuid"
)

// ProposalRepository defines persistence operations for delivery proposals
type ProposalRepository interface {
	// FindByID finds a proposal by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*DeliveryProposal, error)
	// FindByOrderID finds the proposal attached to an order.
	// Returns shared.ErrOrderNotFound if no proposal exists for the order.
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*DeliveryProposal, error)
	// Save creates or updates a proposal
	Save(ctx context.Context, proposal *DeliveryProposal) error
	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, proposal *DeliveryProposal) error
}
