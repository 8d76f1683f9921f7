package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/notification"
	"github.com/storefront/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormNotificationRepository implements notification.Repository using GORM
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GormNotificationRepository
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// FindByID finds a notification by its ID
func (r *GormNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	var notif notification.Notification
	if err := r.db.WithContext(ctx).First(&notif, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &notif, nil
}

// FindByRecipient returns a recipient's notifications, most recent first
func (r *GormNotificationRepository) FindByRecipient(ctx context.Context, role notification.RecipientRole, recipientID *uuid.UUID) ([]*notification.Notification, error) {
	var notifications []*notification.Notification
	if err := recipientScope(r.db.WithContext(ctx), role, recipientID).
		Order("created_at desc").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// CountUnread counts a recipient's unread notifications
func (r *GormNotificationRepository) CountUnread(ctx context.Context, role notification.RecipientRole, recipientID *uuid.UUID) (int64, error) {
	var count int64
	if err := recipientScope(r.db.WithContext(ctx).Model(&notification.Notification{}), role, recipientID).
		Where("read = ?", false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a notification
func (r *GormNotificationRepository) Save(ctx context.Context, notif *notification.Notification) error {
	return r.db.WithContext(ctx).Save(notif).Error
}

// MarkAllAsRead marks every unread notification for a recipient as read.
// Already-read entries are untouched, keeping the operation idempotent.
func (r *GormNotificationRepository) MarkAllAsRead(ctx context.Context, role notification.RecipientRole, recipientID *uuid.UUID) error {
	return recipientScope(r.db.WithContext(ctx).Model(&notification.Notification{}), role, recipientID).
		Where("read = ?", false).
		Updates(map[string]interface{}{
			"read":       true,
			"updated_at": time.Now(),
		}).Error
}

// PruneToLimit deletes a recipient's oldest notifications beyond the limit
func (r *GormNotificationRepository) PruneToLimit(ctx context.Context, role notification.RecipientRole, recipientID *uuid.UUID, limit int) error {
	return pruneNotifications(r.db.WithContext(ctx), role, recipientID, limit)
}

func recipientScope(query *gorm.DB, role notification.RecipientRole, recipientID *uuid.UUID) *gorm.DB {
	query = query.Where("recipient_role = ?", role)
	if recipientID != nil {
		query = query.Where("recipient_id = ?", *recipientID)
	} else {
		query = query.Where("recipient_id IS NULL")
	}
	return query
}

// pruneNotifications deletes the oldest notifications past the cap for a
// recipient. A non-positive limit disables pruning.
func pruneNotifications(tx *gorm.DB, role notification.RecipientRole, recipientID *uuid.UUID, limit int) error {
	if limit <= 0 {
		return nil
	}

	sub := recipientScope(tx.Session(&gorm.Session{NewDB: true}).Model(&notification.Notification{}), role, recipientID).
		Select("id").
		Order("created_at desc").
		Limit(limit)

	return recipientScope(tx.Session(&gorm.Session{NewDB: true}), role, recipientID).
		Where("id NOT IN (?)", sub).
		Delete(&notification.Notification{}).Error
}
