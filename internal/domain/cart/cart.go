package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// MaxItemQuantity caps how many units of one product a cart may hold
const MaxItemQuantity = 99

// Item is a product entry in a shopping cart
type Item struct {
	ID          uuid.UUID
	CartID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null"`
	ProductName string
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Quantity    int             `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "cart_items"
}

// Subtotal returns quantity times unit price
func (i *Item) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the aggregate root for a shopper's cart. Carts are keyed by an
// opaque session key so guests can shop before signing in.
type Cart struct {
	shared.BaseAggregateRoot
	SessionKey string `gorm:"type:varchar(64);not null;uniqueIndex"`
	BuyerID    *uuid.UUID `gorm:"type:uuid;index"`
	Items      []Item
}

// TableName returns the table name for GORM
func (Cart) TableName() string {
	return "carts"
}

// NewCart creates an empty cart for a session
func NewCart(sessionKey string) (*Cart, error) {
	if sessionKey == "" {
		return nil, shared.NewDomainError("INVALID_SESSION", "Session key cannot be empty")
	}

	return &Cart{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SessionKey:        sessionKey,
		Items:             make([]Item, 0),
	}, nil
}

// AttachBuyer links a signed-in buyer to the cart
func (c *Cart) AttachBuyer(buyerID uuid.UUID) {
	c.BuyerID = &buyerID
	c.UpdatedAt = time.Now()
}

// AddItem adds a product to the cart. Adding a product already in the cart
// merges quantities instead of creating a second line.
func (c *Cart) AddItem(productID uuid.UUID, productName string, unitPrice decimal.Decimal, quantity int) error {
	if productID == uuid.Nil {
		return shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			merged := c.Items[idx].Quantity + quantity
			if merged > MaxItemQuantity {
				return shared.NewDomainError("QUANTITY_LIMIT", "Cart quantity limit exceeded for product")
			}
			c.Items[idx].Quantity = merged
			c.Items[idx].UnitPrice = unitPrice
			c.Items[idx].UpdatedAt = time.Now()
			c.touch()
			return nil
		}
	}

	if quantity > MaxItemQuantity {
		return shared.NewDomainError("QUANTITY_LIMIT", "Cart quantity limit exceeded for product")
	}

	now := time.Now()
	c.Items = append(c.Items, Item{
		ID:          uuid.New(),
		CartID:      c.ID,
		ProductID:   productID,
		ProductName: productName,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	c.touch()

	return nil
}

// UpdateQuantity sets the quantity for a product. Zero removes the line.
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	if quantity > MaxItemQuantity {
		return shared.NewDomainError("QUANTITY_LIMIT", "Cart quantity limit exceeded for product")
	}

	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			if quantity == 0 {
				c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			} else {
				c.Items[idx].Quantity = quantity
				c.Items[idx].UpdatedAt = time.Now()
			}
			c.touch()
			return nil
		}
	}

	return shared.NewDomainError("ITEM_NOT_FOUND", "Product is not in the cart")
}

// RemoveItem deletes a product line from the cart
func (c *Cart) RemoveItem(productID uuid.UUID) error {
	return c.UpdateQuantity(productID, 0)
}

// Clear empties the cart
func (c *Cart) Clear() {
	if len(c.Items) == 0 {
		return
	}
	c.Items = make([]Item, 0)
	c.touch()
}

// IsEmpty reports whether the cart has no items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Total returns the sum of all line subtotals
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for idx := range c.Items {
		total = total.Add(c.Items[idx].Subtotal())
	}
	return total
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now()
}
