package cart

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence for shopping carts
type Repository interface {
	FindBySessionKey(ctx context.Context, sessionKey string) (*Cart, error)
	FindByBuyer(ctx context.Context, buyerID uuid.UUID) (*Cart, error)
	Save(ctx context.Context, c *Cart) error
	Delete(ctx context.Context, id uuid.UUID) error
}
