package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// Repository defines persistence for orders
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)
	FindByBuyer(ctx context.Context, buyerID uuid.UUID, filter shared.Filter) (*shared.Paginated[*Order], error)
	FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[*Order], error)
	Save(ctx context.Context, o *Order) error
	NextOrderNumber(ctx context.Context) (string, error)
}
