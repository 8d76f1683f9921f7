package order

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/notification"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/tracking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockTrackingEventRepository is a mock implementation of tracking.EventRepository
type MockTrackingEventRepository struct {
	mock.Mock
}

func (m *MockTrackingEventRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]tracking.DeliveryEvent, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tracking.DeliveryEvent), args.Error(1)
}

func (m *MockTrackingEventRepository) Append(ctx context.Context, event *tracking.DeliveryEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

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

func placedEvent(t *testing.T) *order.OrderPlacedEvent {
	t.Helper()
	ord, err := order.NewOrder("ORD-20260829-0004", uuid.New(), order.Customer{
		Name:       "Ada Lovelace",
		Email:      "ada@example.com",
		Phone:      "+4917612345678",
		Address:    "Analytical Lane 1",
		City:       "Berlin",
		PostalCode: "10115",
	}, order.DeliveryTypeCourier, "card")
	require.NoError(t, err)
	_, err = ord.AddItem(uuid.New(), "Ceramic Mug", 2, decimal.NewFromFloat(12.50))
	require.NoError(t, err)
	require.NoError(t, ord.Place())
	return order.NewOrderPlacedEvent(ord)
}

func TestOrderPlacedHandler_Handle(t *testing.T) {
	trackingEvents := new(MockTrackingEventRepository)
	notifications := new(MockNotificationRepository)
	handler := NewOrderPlacedHandler(trackingEvents, notifications, 200, zap.NewNop())
	event := placedEvent(t)

	var milestone *tracking.DeliveryEvent
	trackingEvents.On("Append", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			milestone = args.Get(1).(*tracking.DeliveryEvent)
		}).Return(nil)
	var notif *notification.Notification
	notifications.On("Save", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			notif = args.Get(1).(*notification.Notification)
		}).Return(nil)
	notifications.On("PruneToLimit", mock.Anything, notification.RoleSeller, (*uuid.UUID)(nil), 200).Return(nil)

	err := handler.Handle(context.Background(), event)

	require.NoError(t, err)
	require.NotNil(t, milestone)
	assert.Equal(t, tracking.StatusOrderPlaced, milestone.Status)
	assert.Equal(t, event.OrderID, milestone.OrderID)

	require.NotNil(t, notif)
	assert.Equal(t, notification.RoleSeller, notif.RecipientRole)
	assert.Equal(t, notification.TypeOrder, notif.Type)
	assert.Equal(t, "New order placed", notif.Title)
	assert.Contains(t, notif.Message, "ORD-20260829-0004")
}

func TestOrderPlacedHandler_EventTypes(t *testing.T) {
	handler := NewOrderPlacedHandler(nil, nil, 0, zap.NewNop())
	assert.Equal(t, []string{order.EventTypeOrderPlaced}, handler.EventTypes())
}
