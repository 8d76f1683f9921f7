package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	notifapp "github.com/storefront/backend/internal/application/notification"
	"github.com/storefront/backend/internal/domain/notification"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

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

// asRole simulates an authenticated request without issuing a real token
func asRole(role string, userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.JWTUserIDKey, userID.String())
		c.Set(middleware.JWTRoleKey, role)
		c.Next()
	}
}

func newNotificationEngine(repo *MockNotificationRepository, role string, userID uuid.UUID) *gin.Engine {
	engine := gin.New()
	engine.Use(asRole(role, userID))

	api := engine.Group("/api/v1")
	NewNotificationHandler(notifapp.NewNotificationService(repo)).RegisterRoutes(api)
	return engine
}

func TestNotificationHandlerGetFeed(t *testing.T) {
	repo := new(MockNotificationRepository)
	sellerNotif, err := notification.New(notification.Input{
		RecipientRole: notification.RoleSeller,
		Type:          notification.TypeOrder,
		Title:         "New order placed",
		Message:       "Order ORD-2026-00042 was placed",
	})
	require.NoError(t, err)

	repo.On("FindByRecipient", mock.Anything, notification.RoleSeller, (*uuid.UUID)(nil)).
		Return([]*notification.Notification{sellerNotif}, nil)
	repo.On("CountUnread", mock.Anything, notification.RoleSeller, (*uuid.UUID)(nil)).
		Return(int64(1), nil)

	engine := newNotificationEngine(repo, "seller", uuid.New())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	feed := resp.Data.(map[string]any)
	assert.Equal(t, float64(1), feed["unread_count"])
	assert.Len(t, feed["notifications"], 1)
}

func TestNotificationHandlerMarkAsRead(t *testing.T) {
	buyerID := uuid.New()
	repo := new(MockNotificationRepository)
	notif, err := notification.New(notification.Input{
		RecipientRole: notification.RoleBuyer,
		RecipientID:   &buyerID,
		Type:          notification.TypeDelivery,
		Title:         "Delivery slot confirmed",
		Message:       "Your delivery slot was confirmed",
	})
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, notif.ID).Return(notif, nil)
	repo.On("Save", mock.Anything, notif).Return(nil)

	engine := newNotificationEngine(repo, "customer", buyerID)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/notifications/"+notif.ID.String()+"/read", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, notif.Read)
	repo.AssertCalled(t, "Save", mock.Anything, notif)
}

func TestNotificationHandlerForeignNotificationHidden(t *testing.T) {
	ownerID := uuid.New()
	repo := new(MockNotificationRepository)
	notif, err := notification.New(notification.Input{
		RecipientRole: notification.RoleBuyer,
		RecipientID:   &ownerID,
		Type:          notification.TypeDelivery,
		Title:         "Delivery slot confirmed",
		Message:       "Your delivery slot was confirmed",
	})
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, notif.ID).Return(notif, nil)

	engine := newNotificationEngine(repo, "customer", uuid.New())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/notifications/"+notif.ID.String()+"/read", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestNotificationHandlerMarkAllAsRead(t *testing.T) {
	buyerID := uuid.New()
	repo := new(MockNotificationRepository)
	repo.On("MarkAllAsRead", mock.Anything, notification.RoleBuyer, &buyerID).Return(nil)

	engine := newNotificationEngine(repo, "customer", buyerID)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/notifications/read-all", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	repo.AssertExpectations(t)
}
