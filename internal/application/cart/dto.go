package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/cart"
)

// AddItemRequest represents a request to put a product in the cart
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// UpdateQuantityRequest represents a request to change a cart line's quantity.
// Zero removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}

// CartItemResponse represents one cart line
type CartItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CartResponse represents the session's cart
type CartResponse struct {
	SessionKey string             `json:"session_key"`
	Items      []CartItemResponse `json:"items"`
	Total      decimal.Decimal    `json:"total"`
}

// ToCartResponse converts a cart to its response DTO
func ToCartResponse(c *cart.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, CartItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal(),
		})
	}
	return CartResponse{
		SessionKey: c.SessionKey,
		Items:      items,
		Total:      c.Total(),
	}
}

// EmptyCartResponse is the response for a session without a stored cart
func EmptyCartResponse(sessionKey string) CartResponse {
	return CartResponse{
		SessionKey: sessionKey,
		Items:      []CartItemResponse{},
		Total:      decimal.Zero,
	}
}
