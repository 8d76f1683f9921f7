package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/notification"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockNotificationRepository is a mock implementation of notification.Repository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindByRecipient(ctx context.Context, role notification.RecipientRole, recipientID *uuid.UUID) ([]*notification.Notification, error) {
	args := m.Called(ctx, role, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, role notification.RecipientRole, recipientID *uuid.UUID) (int64, error) {
	args := m.Called(ctx, role, recipientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllAsRead(ctx context.Context, role notification.RecipientRole, recipientID *uuid.UUID) error {
	args := m.Called(ctx, role, recipientID)
	return args.Error(0)
}

func (m *MockNotificationRepository) PruneToLimit(ctx context.Context, role notification.RecipientRole, recipientID *uuid.UUID, limit int) error {
	args := m.Called(ctx, role, recipientID, limit)
	return args.Error(0)
}

func newSellerNotification(t *testing.T) *notification.Notification {
	t.Helper()
	orderID := uuid.New()
	n, err := notification.New(notification.Input{
		RecipientRole: notification.RoleSeller,
		Title:         "New order placed",
		Message:       "Order ORD-20260829-0001 was placed.",
		Type:          notification.TypeOrder,
		OrderID:       &orderID,
	})
	require.NoError(t, err)
	return n
}

func TestNotificationService_GetFeed(t *testing.T) {
	repo := new(MockNotificationRepository)
	service := NewNotificationService(repo)
	first := newSellerNotification(t)
	second := newSellerNotification(t)

	repo.On("FindByRecipient", mock.Anything, notification.RoleSeller, (*uuid.UUID)(nil)).
		Return([]*notification.Notification{second, first}, nil)
	repo.On("CountUnread", mock.Anything, notification.RoleSeller, (*uuid.UUID)(nil)).
		Return(int64(2), nil)

	feed, err := service.GetFeed(context.Background(), Recipient{Role: notification.RoleSeller})

	require.NoError(t, err)
	require.Len(t, feed.Notifications, 2)
	assert.Equal(t, second.ID, feed.Notifications[0].ID)
	assert.Equal(t, int64(2), feed.UnreadCount)
}

func TestNotificationService_MarkAsRead(t *testing.T) {
	repo := new(MockNotificationRepository)
	service := NewNotificationService(repo)
	n := newSellerNotification(t)

	repo.On("FindByID", mock.Anything, n.ID).Return(n, nil)
	repo.On("Save", mock.Anything, n).Return(nil)

	resp, err := service.MarkAsRead(context.Background(), Recipient{Role: notification.RoleSeller}, n.ID)

	require.NoError(t, err)
	assert.True(t, resp.Read)
	repo.AssertCalled(t, "Save", mock.Anything, n)
}

func TestNotificationService_MarkAsRead_Idempotent(t *testing.T) {
	repo := new(MockNotificationRepository)
	service := NewNotificationService(repo)
	n := newSellerNotification(t)
	n.MarkAsRead()

	repo.On("FindByID", mock.Anything, n.ID).Return(n, nil)

	resp, err := service.MarkAsRead(context.Background(), Recipient{Role: notification.RoleSeller}, n.ID)

	require.NoError(t, err)
	assert.True(t, resp.Read)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestNotificationService_MarkAsRead_OtherRolesFeed(t *testing.T) {
	repo := new(MockNotificationRepository)
	service := NewNotificationService(repo)
	n := newSellerNotification(t)

	repo.On("FindByID", mock.Anything, n.ID).Return(n, nil)

	_, err := service.MarkAsRead(context.Background(), Recipient{Role: notification.RoleBuyer}, n.ID)

	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestNotificationService_MarkAsRead_OtherUsersNotification(t *testing.T) {
	repo := new(MockNotificationRepository)
	service := NewNotificationService(repo)
	owner := uuid.New()
	n, err := notification.New(notification.Input{
		RecipientRole: notification.RoleBuyer,
		RecipientID:   &owner,
		Title:         "Delivery slot confirmed",
		Type:          notification.TypeDelivery,
	})
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, n.ID).Return(n, nil)

	stranger := uuid.New()
	_, err = service.MarkAsRead(context.Background(), Recipient{Role: notification.RoleBuyer, UserID: &stranger}, n.ID)

	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestNotificationService_MarkAllAsRead(t *testing.T) {
	repo := new(MockNotificationRepository)
	service := NewNotificationService(repo)
	buyerID := uuid.New()

	repo.On("MarkAllAsRead", mock.Anything, notification.RoleBuyer, &buyerID).Return(nil)

	err := service.MarkAllAsRead(context.Background(), Recipient{Role: notification.RoleBuyer, UserID: &buyerID})

	require.NoError(t, err)
	repo.AssertCalled(t, "MarkAllAsRead", mock.Anything, notification.RoleBuyer, &buyerID)
}
