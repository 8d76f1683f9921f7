package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// Product is the aggregate root for storefront catalog entries
type Product struct {
	shared.BaseAggregateRoot
	Name          string           `gorm:"type:varchar(200);not null"`
	Description   string           `gorm:"type:text"`
	Price         decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	OriginalPrice *decimal.Decimal `gorm:"type:decimal(18,2)"`
	ImageURL      string           `gorm:"type:varchar(500)"`
	Stock         int              `gorm:"not null;default:0"`
	CategoryID    *uuid.UUID       `gorm:"type:uuid;index"`
	SellerID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	Featured      bool             `gorm:"not null;default:false;index"`
	Status        ProductStatus    `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new active product
func NewProduct(sellerID uuid.UUID, name, description string, price decimal.Decimal, stock int) (*Product, error) {
	if sellerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SELLER", "Seller ID cannot be empty")
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Description:       description,
		Price:             price,
		Stock:             stock,
		SellerID:          sellerID,
		Status:            ProductStatusActive,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description string, price decimal.Decimal) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	if err := validatePrice(price); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(name)
	p.Description = description
	p.Price = price
	p.UpdatedAt = time.Now()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// SetOriginalPrice records the pre-discount price shown struck through.
// It must exceed the selling price; nil clears the discount display.
func (p *Product) SetOriginalPrice(original *decimal.Decimal) error {
	if original != nil && original.LessThanOrEqual(p.Price) {
		return shared.NewDomainError("INVALID_PRICE", "Original price must exceed the selling price")
	}
	p.OriginalPrice = original
	p.UpdatedAt = time.Now()
	return nil
}

// DiscountPercent returns the rounded-down discount against the original
// price, or zero when no discount applies
func (p *Product) DiscountPercent() int {
	if p.OriginalPrice == nil || p.OriginalPrice.IsZero() {
		return 0
	}
	diff := p.OriginalPrice.Sub(p.Price)
	if diff.Sign() <= 0 {
		return 0
	}
	return int(diff.Div(*p.OriginalPrice).Mul(decimal.NewFromInt(100)).IntPart())
}

// SetFeatured toggles placement in the storefront's featured shelf
func (p *Product) SetFeatured(featured bool) {
	if p.Featured == featured {
		return
	}
	p.Featured = featured
	p.UpdatedAt = time.Now()
}

// AssignCategory moves the product to a category, nil clears it
func (p *Product) AssignCategory(categoryID *uuid.UUID) {
	p.CategoryID = categoryID
	p.UpdatedAt = time.Now()
}

// AdjustStock applies a stock delta. Negative deltas must not take stock below zero.
func (p *Product) AdjustStock(delta int) error {
	next := p.Stock + delta
	if next < 0 {
		return shared.NewDomainError("INSUFFICIENT_STOCK", "Not enough stock available")
	}

	p.Stock = next
	p.UpdatedAt = time.Now()

	return nil
}

// Deactivate hides the product from the storefront
func (p *Product) Deactivate() {
	if p.Status == ProductStatusInactive {
		return
	}
	p.Status = ProductStatusInactive
	p.UpdatedAt = time.Now()
}

// Activate makes the product visible again
func (p *Product) Activate() {
	if p.Status == ProductStatusActive {
		return
	}
	p.Status = ProductStatusActive
	p.UpdatedAt = time.Now()
}

// IsAvailable reports whether the product can be added to a cart
func (p *Product) IsAvailable(quantity int) bool {
	return p.Status == ProductStatusActive && quantity > 0 && p.Stock >= quantity
}

// IsOwnedBy reports whether the given seller owns this product
func (p *Product) IsOwnedBy(sellerID uuid.UUID) bool {
	return p.SellerID == sellerID
}

func validateProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	return nil
}
