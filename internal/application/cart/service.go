package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// CartService manages session-scoped shopping carts. Prices are taken from
// the catalog at the moment a line is added.
type CartService struct {
	carts    cart.Repository
	products catalog.ProductRepository
}

// NewCartService creates a new CartService
func NewCartService(carts cart.Repository, products catalog.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

// GetCart returns the session's cart. A session without a stored cart gets
// an empty one without persisting anything.
func (s *CartService) GetCart(ctx context.Context, sessionKey string) (*CartResponse, error) {
	c, err := s.carts.FindBySessionKey(ctx, sessionKey)
	if err != nil {
		if isNotFound(err) {
			resp := EmptyCartResponse(sessionKey)
			return &resp, nil
		}
		return nil, err
	}
	resp := ToCartResponse(c)
	return &resp, nil
}

// AddItem puts a product in the session's cart, merging quantity when the
// product is already there
func (s *CartService) AddItem(ctx context.Context, sessionKey string, req AddItemRequest) (*CartResponse, error) {
	product, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsAvailable(req.Quantity) {
		return nil, shared.NewDomainError("INSUFFICIENT_STOCK", "Not enough stock available")
	}

	c, err := s.carts.FindBySessionKey(ctx, sessionKey)
	if err != nil {
		if !isNotFound(err) {
			return nil, err
		}
		c, err = cart.NewCart(sessionKey)
		if err != nil {
			return nil, err
		}
	}

	if err := c.AddItem(product.ID, product.Name, product.Price, req.Quantity); err != nil {
		return nil, err
	}
	if err := s.carts.Save(ctx, c); err != nil {
		return nil, err
	}

	resp := ToCartResponse(c)
	return &resp, nil
}

// UpdateQuantity changes a line's quantity; zero removes the line
func (s *CartService) UpdateQuantity(ctx context.Context, sessionKey string, productID uuid.UUID, req UpdateQuantityRequest) (*CartResponse, error) {
	c, err := s.carts.FindBySessionKey(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	if err := c.UpdateQuantity(productID, req.Quantity); err != nil {
		return nil, err
	}
	if err := s.carts.Save(ctx, c); err != nil {
		return nil, err
	}

	resp := ToCartResponse(c)
	return &resp, nil
}

// RemoveItem takes a product out of the cart
func (s *CartService) RemoveItem(ctx context.Context, sessionKey string, productID uuid.UUID) (*CartResponse, error) {
	c, err := s.carts.FindBySessionKey(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	if err := c.RemoveItem(productID); err != nil {
		return nil, err
	}
	if err := s.carts.Save(ctx, c); err != nil {
		return nil, err
	}

	resp := ToCartResponse(c)
	return &resp, nil
}

// Clear drops the session's cart entirely. Clearing a session without a
// cart succeeds.
func (s *CartService) Clear(ctx context.Context, sessionKey string) error {
	c, err := s.carts.FindBySessionKey(ctx, sessionKey)
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return err
	}
	return s.carts.Delete(ctx, c.ID)
}

func isNotFound(err error) bool {
	var domainErr *shared.DomainError
	return errors.As(err, &domainErr) && domainErr.Code == "NOT_FOUND"
}
