package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/tracking"
	"gorm.io/gorm"
)

// GormTrackingRepository implements tracking.EventRepository using GORM.
// Delivery events are append-only.
type GormTrackingRepository struct {
	db *gorm.DB
}

// NewGormTrackingRepository creates a new GormTrackingRepository
func NewGormTrackingRepository(db *gorm.DB) *GormTrackingRepository {
	return &GormTrackingRepository{db: db}
}

// FindByOrderID returns all delivery events recorded for an order
func (r *GormTrackingRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]tracking.DeliveryEvent, error) {
	var events []tracking.DeliveryEvent
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("occurred_at asc").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Append records a new delivery event
func (r *GormTrackingRepository) Append(ctx context.Context, event *tracking.DeliveryEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}
