package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCartRepository is a mock implementation of cart.Repository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) FindBySessionKey(ctx context.Context, sessionKey string) (*cart.Cart, error) {
	args := m.Called(ctx, sessionKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindActive(ctx context.Context, categoryID *uuid.UUID, filter shared.Filter) (*shared.Paginated[*catalog.Product], error) {
	args := m.Called(ctx, categoryID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[*catalog.Product]), args.Error(1)
}

func (m *MockProductRepository) FindFeatured(ctx context.Context, limit int) ([]*catalog.Product, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySeller(ctx context.Context, sellerID uuid.UUID, filter shared.Filter) (*shared.Paginated[*catalog.Product], error) {
	args := m.Called(ctx, sellerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[*catalog.Product]), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) SaveWithLock(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newCartService(t *testing.T) (*CartService, *MockCartRepository, *MockProductRepository) {
	t.Helper()
	carts := new(MockCartRepository)
	products := new(MockProductRepository)
	return NewCartService(carts, products), carts, products
}

func newCartProduct(t *testing.T, stock int) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(uuid.New(), "Ceramic Mug", "Stoneware mug", decimal.NewFromFloat(12.50), stock)
	require.NoError(t, err)
	product.ClearDomainEvents()
	return product
}

func TestCartService_GetCart_NewSession(t *testing.T) {
	service, carts, _ := newCartService(t)

	carts.On("FindBySessionKey", mock.Anything, "session-new").Return(nil, shared.ErrNotFound)

	resp, err := service.GetCart(context.Background(), "session-new")

	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.True(t, resp.Total.IsZero())
	carts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCartService_AddItem_CreatesCart(t *testing.T) {
	service, carts, products := newCartService(t)
	product := newCartProduct(t, 5)

	products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	carts.On("FindBySessionKey", mock.Anything, "session-abc").Return(nil, shared.ErrNotFound)
	carts.On("Save", mock.Anything, mock.Anything).Return(nil)

	resp, err := service.AddItem(context.Background(), "session-abc", AddItemRequest{
		ProductID: product.ID,
		Quantity:  2,
	})

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.True(t, resp.Total.Equal(decimal.NewFromFloat(25.00)))
}

func TestCartService_AddItem_MergesQuantity(t *testing.T) {
	service, carts, products := newCartService(t)
	product := newCartProduct(t, 5)
	existing, err := cart.NewCart("session-abc")
	require.NoError(t, err)
	require.NoError(t, existing.AddItem(product.ID, product.Name, product.Price, 1))

	products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	carts.On("FindBySessionKey", mock.Anything, "session-abc").Return(existing, nil)
	carts.On("Save", mock.Anything, existing).Return(nil)

	resp, err := service.AddItem(context.Background(), "session-abc", AddItemRequest{
		ProductID: product.ID,
		Quantity:  2,
	})

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Quantity)
}

func TestCartService_AddItem_InsufficientStock(t *testing.T) {
	service, carts, products := newCartService(t)
	product := newCartProduct(t, 1)

	products.On("FindByID", mock.Anything, product.ID).Return(product, nil)

	_, err := service.AddItem(context.Background(), "session-abc", AddItemRequest{
		ProductID: product.ID,
		Quantity:  3,
	})

	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
	carts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCartService_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	service, carts, _ := newCartService(t)
	product := newCartProduct(t, 5)
	existing, err := cart.NewCart("session-abc")
	require.NoError(t, err)
	require.NoError(t, existing.AddItem(product.ID, product.Name, product.Price, 2))

	carts.On("FindBySessionKey", mock.Anything, "session-abc").Return(existing, nil)
	carts.On("Save", mock.Anything, existing).Return(nil)

	resp, err := service.UpdateQuantity(context.Background(), "session-abc", product.ID, UpdateQuantityRequest{Quantity: 0})

	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestCartService_Clear_MissingCartSucceeds(t *testing.T) {
	service, carts, _ := newCartService(t)

	carts.On("FindBySessionKey", mock.Anything, "session-abc").Return(nil, shared.ErrNotFound)

	err := service.Clear(context.Background(), "session-abc")

	require.NoError(t, err)
	carts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
