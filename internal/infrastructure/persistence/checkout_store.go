package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/delivery"
	"github.com/storefront/backend/internal/domain/order"
	"gorm.io/gorm"
)

// GormCheckoutStore persists a checkout as one transaction: the order with
// its items, the initial delivery proposal, and the cart removal. A failure
// anywhere rolls back everything, so an order can never exist without its
// proposal or leave its cart behind.
type GormCheckoutStore struct {
	db *gorm.DB
}

// NewGormCheckoutStore creates a new GormCheckoutStore
func NewGormCheckoutStore(db *gorm.DB) *GormCheckoutStore {
	return &GormCheckoutStore{db: db}
}

// SavePlacedOrder writes the order, proposal, and cart deletion atomically
func (s *GormCheckoutStore) SavePlacedOrder(ctx context.Context, ord *order.Order, proposal *delivery.DeliveryProposal, cartID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(ord).Error; err != nil {
			return err
		}
		for i := range ord.Items {
			ord.Items[i].OrderID = ord.ID
			if err := tx.Create(&ord.Items[i]).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(proposal).Error; err != nil {
			return err
		}

		if err := tx.Where("cart_id = ?", cartID).Delete(&cart.Item{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cart.Cart{}, "id = ?", cartID).Error
	})
}
