package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProduct(t *testing.T) *Product {
	t.Helper()
	p, err := NewProduct(uuid.New(), "Espresso Beans 1kg", "Dark roast", decimal.NewFromFloat(18.50), 10)
	require.NoError(t, err)
	return p
}

func assertDomainErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr), "expected DomainError, got %v", err)
	assert.Equal(t, code, domainErr.Code)
}

func TestNewProduct(t *testing.T) {
	t.Run("creates active product and emits event", func(t *testing.T) {
		p := createTestProduct(t)

		assert.Equal(t, ProductStatusActive, p.Status)
		assert.Equal(t, 10, p.Stock)
		events := p.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeProductCreated, events[0].EventType())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewProduct(uuid.New(), "  ", "", decimal.NewFromInt(1), 0)
		assertDomainErrorCode(t, err, "INVALID_NAME")
	})

	t.Run("rejects overlong name", func(t *testing.T) {
		_, err := NewProduct(uuid.New(), strings.Repeat("x", 201), "", decimal.NewFromInt(1), 0)
		assertDomainErrorCode(t, err, "INVALID_NAME")
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewProduct(uuid.New(), "Moka Pot", "", decimal.NewFromInt(-1), 0)
		assertDomainErrorCode(t, err, "INVALID_PRICE")
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		_, err := NewProduct(uuid.New(), "Moka Pot", "", decimal.NewFromInt(1), -1)
		assertDomainErrorCode(t, err, "INVALID_STOCK")
	})
}

func TestProduct_AdjustStock(t *testing.T) {
	t.Run("applies positive and negative deltas", func(t *testing.T) {
		p := createTestProduct(t)

		require.NoError(t, p.AdjustStock(5))
		assert.Equal(t, 15, p.Stock)

		require.NoError(t, p.AdjustStock(-15))
		assert.Equal(t, 0, p.Stock)
	})

	t.Run("rejects delta below zero", func(t *testing.T) {
		p := createTestProduct(t)

		err := p.AdjustStock(-11)

		assertDomainErrorCode(t, err, "INSUFFICIENT_STOCK")
		assert.Equal(t, 10, p.Stock)
	})
}

func TestProduct_IsAvailable(t *testing.T) {
	p := createTestProduct(t)

	assert.True(t, p.IsAvailable(10))
	assert.False(t, p.IsAvailable(11))
	assert.False(t, p.IsAvailable(0))

	p.Deactivate()
	assert.False(t, p.IsAvailable(1))

	p.Activate()
	assert.True(t, p.IsAvailable(1))
}

func TestProduct_Update(t *testing.T) {
	p := createTestProduct(t)
	p.ClearDomainEvents()

	err := p.Update("Espresso Beans 500g", "Medium roast", decimal.NewFromFloat(10.90))

	require.NoError(t, err)
	assert.Equal(t, "Espresso Beans 500g", p.Name)
	assert.True(t, p.Price.Equal(decimal.NewFromFloat(10.90)))
	events := p.GetDomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeProductUpdated, events[0].EventType())
}

func TestNewCategory(t *testing.T) {
	t.Run("creates category", func(t *testing.T) {
		c, err := NewCategory("Coffee", "Beans and ground coffee")

		require.NoError(t, err)
		assert.Equal(t, "Coffee", c.Name)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewCategory("", "")
		assertDomainErrorCode(t, err, "INVALID_NAME")
	})
}
