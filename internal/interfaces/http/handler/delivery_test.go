package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	deliveryapp "github.com/storefront/backend/internal/application/delivery"
	"github.com/storefront/backend/internal/domain/delivery"
	"github.com/storefront/backend/internal/domain/notification"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

type MockProposalRepository struct {
	mock.Mock
}

func (m *MockProposalRepository) FindByID(ctx context.Context, id uuid.UUID) (*delivery.DeliveryProposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.DeliveryProposal), args.Error(1)
}

func (m *MockProposalRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*delivery.DeliveryProposal, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.DeliveryProposal), args.Error(1)
}

func (m *MockProposalRepository) Save(ctx context.Context, proposal *delivery.DeliveryProposal) error {
	args := m.Called(ctx, proposal)
	return args.Error(0)
}

func (m *MockProposalRepository) SaveWithLock(ctx context.Context, proposal *delivery.DeliveryProposal) error {
	args := m.Called(ctx, proposal)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID, filter shared.Filter) (*shared.Paginated[*order.Order], error) {
	args := m.Called(ctx, buyerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[*order.Order]), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[*order.Order], error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[*order.Order]), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) NextOrderNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type MockTransitionStore struct {
	mock.Mock
}

func (m *MockTransitionStore) SaveTransition(ctx context.Context, proposal *delivery.DeliveryProposal, n *notification.Notification) error {
	args := m.Called(ctx, proposal, n)
	return args.Error(0)
}

type negotiationFixture struct {
	proposals *MockProposalRepository
	orders    *MockOrderRepository
	store     *MockTransitionStore
	ord       *order.Order
	proposal  *delivery.DeliveryProposal
}

func newNegotiationFixture(t *testing.T) *negotiationFixture {
	t.Helper()

	ord, err := order.NewOrder("ORD-2026-00042", uuid.New(), order.Customer{
		Name:       "Ivan Dimitrov",
		Email:      "ivan@example.com",
		Phone:      "+359888123456",
		Address:    "12 Vitosha Blvd",
		City:       "Sofia",
		PostalCode: "1000",
	}, order.DeliveryTypeCourier, "card")
	require.NoError(t, err)
	_, err = ord.AddItem(uuid.New(), "Ceramic Mug", 2, decimal.NewFromFloat(12.50))
	require.NoError(t, err)

	window, err := delivery.ParseTimeWindow("10:00 - 11:00")
	require.NoError(t, err)
	proposal, err := delivery.NewDeliveryProposal(ord.ID, time.Now().AddDate(0, 0, 3), window)
	require.NoError(t, err)

	return &negotiationFixture{
		proposals: new(MockProposalRepository),
		orders:    new(MockOrderRepository),
		store:     new(MockTransitionStore),
		ord:       ord,
		proposal:  proposal,
	}
}

func (f *negotiationFixture) engine(role string) *gin.Engine {
	return f.engineAs(role, uuid.New())
}

func (f *negotiationFixture) engineAs(role string, userID uuid.UUID) *gin.Engine {
	engine := gin.New()
	engine.Use(asRole(role, userID))

	api := engine.Group("/api/v1")
	svc := deliveryapp.NewNegotiationService(f.proposals, f.orders, f.store)
	NewDeliveryHandler(svc).RegisterRoutes(api)
	return engine
}

func TestDeliveryHandlerSellerAccept(t *testing.T) {
	f := newNegotiationFixture(t)
	f.proposals.On("FindByOrderID", mock.Anything, f.ord.ID).Return(f.proposal, nil)
	f.orders.On("FindByID", mock.Anything, f.ord.ID).Return(f.ord, nil)
	f.store.On("SaveTransition", mock.Anything, f.proposal, mock.Anything).Return(nil)

	engine := f.engine("seller")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/orders/"+f.ord.ID.String()+"/delivery/accept", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]any)
	assert.Equal(t, string(delivery.ProposalStatusAccepted), data["status"])
	f.store.AssertExpectations(t)
}

func TestDeliveryHandlerCustomerCannotAccept(t *testing.T) {
	f := newNegotiationFixture(t)
	engine := f.engine("customer")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/orders/"+f.ord.ID.String()+"/delivery/accept", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	f.store.AssertNotCalled(t, "SaveTransition", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeliveryHandlerProposeAlternative(t *testing.T) {
	f := newNegotiationFixture(t)
	f.proposals.On("FindByOrderID", mock.Anything, f.ord.ID).Return(f.proposal, nil)
	f.orders.On("FindByID", mock.Anything, f.ord.ID).Return(f.ord, nil)
	f.store.On("SaveTransition", mock.Anything, f.proposal, mock.Anything).Return(nil)

	engine := f.engine("seller")

	body := `{"date":"` + time.Now().AddDate(0, 0, 5).Format("2006-01-02") + `","time_window":"16:00 - 17:00","reason":"Courier is fully booked that morning"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/"+f.ord.ID.String()+"/delivery/propose-alternative", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, string(delivery.ProposalStatusAlternativeProposed), data["status"])
	require.NotNil(t, data["alternative"])
}

func TestDeliveryHandlerProposeAlternativeMalformedBody(t *testing.T) {
	f := newNegotiationFixture(t)
	engine := f.engine("seller")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/"+f.ord.ID.String()+"/delivery/propose-alternative", strings.NewReader(`{"date":""}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.store.AssertNotCalled(t, "SaveTransition", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeliveryHandlerBuyerAcceptAlternative(t *testing.T) {
	f := newNegotiationFixture(t)
	require.NoError(t, f.proposal.ProposeAlternative(delivery.ActorSeller, time.Now().AddDate(0, 0, 5), "16:00 - 17:00", "Courier is fully booked"))
	f.proposal.ClearDomainEvents()

	f.proposals.On("FindByOrderID", mock.Anything, f.ord.ID).Return(f.proposal, nil)
	f.orders.On("FindByID", mock.Anything, f.ord.ID).Return(f.ord, nil)
	f.store.On("SaveTransition", mock.Anything, f.proposal, mock.Anything).Return(nil)

	engine := f.engineAs("customer", f.ord.BuyerID)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/orders/"+f.ord.ID.String()+"/delivery/accept-alternative", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, string(delivery.ProposalStatusAccepted), data["status"])
}

func TestDeliveryHandlerForeignBuyerCannotRespond(t *testing.T) {
	f := newNegotiationFixture(t)
	require.NoError(t, f.proposal.ProposeAlternative(delivery.ActorSeller, time.Now().AddDate(0, 0, 5), "16:00 - 17:00", "Courier is fully booked"))
	f.proposal.ClearDomainEvents()

	f.proposals.On("FindByOrderID", mock.Anything, f.ord.ID).Return(f.proposal, nil)
	f.orders.On("FindByID", mock.Anything, f.ord.ID).Return(f.ord, nil)

	// Authenticated customer, but not the order's buyer
	engine := f.engineAs("customer", uuid.New())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/orders/"+f.ord.ID.String()+"/delivery/accept-alternative", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	f.store.AssertNotCalled(t, "SaveTransition", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeliveryHandlerGetProposal(t *testing.T) {
	f := newNegotiationFixture(t)
	f.proposals.On("FindByOrderID", mock.Anything, f.ord.ID).Return(f.proposal, nil)

	engine := f.engine("customer")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+f.ord.ID.String()+"/delivery", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, string(delivery.ProposalStatusPending), data["status"])
}

func TestDeliveryHandlerUnknownOrder(t *testing.T) {
	f := newNegotiationFixture(t)
	orderID := uuid.New()
	f.proposals.On("FindByOrderID", mock.Anything, orderID).Return(nil, shared.ErrOrderNotFound)

	engine := f.engine("seller")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/delivery/accept", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
