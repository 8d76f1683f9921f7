package notification

import (
	"testing"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() Input {
	orderID := uuid.New()
	return Input{
		RecipientRole: RoleBuyer,
		Title:         "Delivery time confirmed",
		Message:       "The seller accepted your delivery slot",
		Type:          TypeDelivery,
		OrderID:       &orderID,
		Payload: &DeliveryPayload{
			Date:       "2026-09-01",
			TimeWindow: "14:00 - 15:00",
			Status:     "ACCEPTED",
		},
	}
}

func TestType_IsValid(t *testing.T) {
	assert.True(t, TypeOrder.IsValid())
	assert.True(t, TypeDelivery.IsValid())
	assert.True(t, TypeSystem.IsValid())
	assert.False(t, Type("promo").IsValid())
}

func TestNew(t *testing.T) {
	t.Run("creates unread notification", func(t *testing.T) {
		n, err := New(validInput())
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, n.ID)
		assert.False(t, n.Read)
		assert.Equal(t, RoleBuyer, n.RecipientRole)
		assert.Equal(t, TypeDelivery, n.Type)
		require.NotNil(t, n.Payload)
		assert.Equal(t, "14:00 - 15:00", n.Payload.TimeWindow)
		assert.False(t, n.CreatedAt.IsZero())
	})

	t.Run("rejects missing recipient role", func(t *testing.T) {
		input := validInput()
		input.RecipientRole = ""
		_, err := New(input)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_RECIPIENT", domainErr.Code)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		input := validInput()
		input.Title = ""
		_, err := New(input)
		assert.Error(t, err)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		input := validInput()
		input.Type = "promo"
		_, err := New(input)
		assert.Error(t, err)
	})
}

func TestNotification_MarkAsRead(t *testing.T) {
	n, err := New(validInput())
	require.NoError(t, err)

	n.MarkAsRead()
	assert.True(t, n.Read)
	readAt := n.UpdatedAt

	// Second call is a no-op
	n.MarkAsRead()
	assert.True(t, n.Read)
	assert.Equal(t, readAt, n.UpdatedAt)
}
