package order

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCustomer() Customer {
	return Customer{
		Name:       "Ana Petrova",
		Email:      "ana@example.com",
		Phone:      "+359888123456",
		Address:    "12 Vitosha Blvd",
		City:       "Sofia",
		PostalCode: "1000",
	}
}

func createTestOrder(t *testing.T) *Order {
	t.Helper()
	o, err := NewOrder("ORD-20260829-0001", uuid.New(), testCustomer(), DeliveryTypeCourier, "cash_on_delivery")
	require.NoError(t, err)
	return o
}

func assertDomainErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr), "expected DomainError, got %v", err)
	assert.Equal(t, code, domainErr.Code)
}

func TestNewOrder(t *testing.T) {
	t.Run("creates order with valid input", func(t *testing.T) {
		o := createTestOrder(t)

		assert.Equal(t, "ORD-20260829-0001", o.OrderNumber)
		assert.Equal(t, DeliveryTypeCourier, o.DeliveryType)
		assert.True(t, o.Total.IsZero())
		assert.False(t, o.IsPlaced())
		assert.Empty(t, o.GetDomainEvents())
	})

	t.Run("rejects missing customer contact", func(t *testing.T) {
		customer := testCustomer()
		customer.Phone = ""

		_, err := NewOrder("ORD-1", uuid.New(), customer, DeliveryTypeCourier, "card")
		assertDomainErrorCode(t, err, "INVALID_CUSTOMER")
	})

	t.Run("rejects missing address", func(t *testing.T) {
		customer := testCustomer()
		customer.Address = ""

		_, err := NewOrder("ORD-1", uuid.New(), customer, DeliveryTypeCourier, "card")
		assertDomainErrorCode(t, err, "INVALID_ADDRESS")
	})

	t.Run("rejects unknown delivery type", func(t *testing.T) {
		_, err := NewOrder("ORD-1", uuid.New(), testCustomer(), DeliveryType("drone"), "card")
		assertDomainErrorCode(t, err, "INVALID_DELIVERY_TYPE")
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("adds item and recalculates total", func(t *testing.T) {
		o := createTestOrder(t)

		_, err := o.AddItem(uuid.New(), "Espresso Beans 1kg", 2, decimal.NewFromFloat(18.50))
		require.NoError(t, err)
		_, err = o.AddItem(uuid.New(), "Moka Pot", 1, decimal.NewFromFloat(29.90))
		require.NoError(t, err)

		assert.Equal(t, 2, o.ItemCount())
		assert.True(t, o.Total.Equal(decimal.NewFromFloat(66.90)), "got %s", o.Total)
	})

	t.Run("rejects duplicate product", func(t *testing.T) {
		o := createTestOrder(t)
		productID := uuid.New()

		_, err := o.AddItem(productID, "Espresso Beans 1kg", 1, decimal.NewFromFloat(18.50))
		require.NoError(t, err)

		_, err = o.AddItem(productID, "Espresso Beans 1kg", 3, decimal.NewFromFloat(18.50))
		assertDomainErrorCode(t, err, "DUPLICATE_PRODUCT")
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		o := createTestOrder(t)

		_, err := o.AddItem(uuid.New(), "Espresso Beans 1kg", 0, decimal.NewFromFloat(18.50))
		assertDomainErrorCode(t, err, "INVALID_QUANTITY")
	})

	t.Run("rejects items after placement", func(t *testing.T) {
		o := createTestOrder(t)
		_, err := o.AddItem(uuid.New(), "Espresso Beans 1kg", 1, decimal.NewFromFloat(18.50))
		require.NoError(t, err)
		require.NoError(t, o.Place())

		_, err = o.AddItem(uuid.New(), "Moka Pot", 1, decimal.NewFromFloat(29.90))
		assertDomainErrorCode(t, err, "INVALID_STATE")
	})
}

func TestOrder_Place(t *testing.T) {
	t.Run("places order and emits event", func(t *testing.T) {
		o := createTestOrder(t)
		_, err := o.AddItem(uuid.New(), "Espresso Beans 1kg", 2, decimal.NewFromFloat(18.50))
		require.NoError(t, err)

		err = o.Place()

		require.NoError(t, err)
		assert.True(t, o.IsPlaced())
		events := o.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeOrderPlaced, events[0].EventType())

		placed, ok := events[0].(*OrderPlacedEvent)
		require.True(t, ok)
		assert.Equal(t, o.OrderNumber, placed.OrderNumber)
		assert.True(t, placed.Total.Equal(o.Total))
	})

	t.Run("rejects empty order", func(t *testing.T) {
		o := createTestOrder(t)

		err := o.Place()
		assertDomainErrorCode(t, err, "NO_ITEMS")
	})

	t.Run("rejects double placement", func(t *testing.T) {
		o := createTestOrder(t)
		_, err := o.AddItem(uuid.New(), "Espresso Beans 1kg", 1, decimal.NewFromFloat(18.50))
		require.NoError(t, err)
		require.NoError(t, o.Place())

		err = o.Place()
		assertDomainErrorCode(t, err, "INVALID_STATE")
	})
}
