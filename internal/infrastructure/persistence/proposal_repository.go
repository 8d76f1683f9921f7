package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/delivery"
	"github.com/storefront/backend/internal/domain/notification"
	"github.com/storefront/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProposalRepository implements delivery.ProposalRepository using GORM
type GormProposalRepository struct {
	db *gorm.DB
}

// NewGormProposalRepository creates a new GormProposalRepository
func NewGormProposalRepository(db *gorm.DB) *GormProposalRepository {
	return &GormProposalRepository{db: db}
}

// FindByID finds a proposal by its ID
func (r *GormProposalRepository) FindByID(ctx context.Context, id uuid.UUID) (*delivery.DeliveryProposal, error) {
	var proposal delivery.DeliveryProposal
	if err := r.db.WithContext(ctx).First(&proposal, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &proposal, nil
}

// FindByOrderID finds the proposal attached to an order
func (r *GormProposalRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*delivery.DeliveryProposal, error) {
	var proposal delivery.DeliveryProposal
	if err := r.db.WithContext(ctx).First(&proposal, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrOrderNotFound
		}
		return nil, err
	}
	return &proposal, nil
}

// Save creates or updates a proposal
func (r *GormProposalRepository) Save(ctx context.Context, proposal *delivery.DeliveryProposal) error {
	return r.db.WithContext(ctx).Save(proposal).Error
}

// SaveWithLock saves with optimistic locking (version check)
func (r *GormProposalRepository) SaveWithLock(ctx context.Context, proposal *delivery.DeliveryProposal) error {
	proposal.IncrementVersion()
	return saveProposalLocked(r.db.WithContext(ctx), proposal)
}

// saveProposalLocked updates a proposal guarded by its previous version.
// The proposal's Version must already be incremented by the caller.
func saveProposalLocked(tx *gorm.DB, proposal *delivery.DeliveryProposal) error {
	result := tx.Model(&delivery.DeliveryProposal{}).
		Where("id = ? AND version = ?", proposal.ID, proposal.Version-1).
		Updates(map[string]interface{}{
			"date":         proposal.Date,
			"time_window":  proposal.Window,
			"proposed_by":  proposal.ProposedBy,
			"status":       proposal.Status,
			"alt_date":     proposal.AltDate,
			"alt_window":   proposal.AltWindow,
			"alt_reason":   proposal.AltReason,
			"responded_at": proposal.RespondedAt,
			"version":      proposal.Version,
			"updated_at":   time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("CONCURRENCY_CONFLICT", "The proposal was modified by another request")
	}
	return nil
}

// GormNegotiationStore persists a negotiation transition and its
// counterpart notification in a single transaction, so a crash can never
// leave a transition without its notification.
type GormNegotiationStore struct {
	db              *gorm.DB
	maxPerRecipient int
}

// NewGormNegotiationStore creates a new GormNegotiationStore.
// maxPerRecipient caps the notification feed; zero disables pruning.
func NewGormNegotiationStore(db *gorm.DB, maxPerRecipient int) *GormNegotiationStore {
	return &GormNegotiationStore{db: db, maxPerRecipient: maxPerRecipient}
}

// SaveTransition writes the proposal update and inserts the notification
// atomically, with an optimistic lock on the proposal row.
func (s *GormNegotiationStore) SaveTransition(ctx context.Context, proposal *delivery.DeliveryProposal, notif *notification.Notification) error {
	proposal.IncrementVersion()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveProposalLocked(tx, proposal); err != nil {
			return err
		}
		if err := tx.Create(notif).Error; err != nil {
			return err
		}
		return pruneNotifications(tx, notif.RecipientRole, notif.RecipientID, s.maxPerRecipient)
	})
}
