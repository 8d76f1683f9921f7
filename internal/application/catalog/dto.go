package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// CreateProductRequest represents a request to add a catalog entry
type CreateProductRequest struct {
	Name          string           `json:"name" binding:"required,min=1,max=200"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price" binding:"required"`
	OriginalPrice *decimal.Decimal `json:"original_price"`
	ImageURL      string           `json:"image_url"`
	Stock         int              `json:"stock"`
	CategoryID    *uuid.UUID       `json:"category_id"`
	Featured      bool             `json:"featured"`
}

// UpdateProductRequest represents a request to change a catalog entry
type UpdateProductRequest struct {
	Name          string           `json:"name" binding:"required,min=1,max=200"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price" binding:"required"`
	OriginalPrice *decimal.Decimal `json:"original_price"`
	Featured      *bool            `json:"featured"`
}

// ProductResponse represents a catalog entry
type ProductResponse struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Price           decimal.Decimal  `json:"price"`
	OriginalPrice   *decimal.Decimal `json:"original_price,omitempty"`
	DiscountPercent int              `json:"discount_percent,omitempty"`
	ImageURL        string           `json:"image_url"`
	InStock         bool             `json:"in_stock"`
	Stock           int              `json:"stock"`
	CategoryID      *uuid.UUID       `json:"category_id,omitempty"`
	Featured        bool             `json:"featured"`
}

// CategoryResponse represents a browsing category
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon,omitempty"`
}

// ToProductResponse converts a product to its response DTO
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		OriginalPrice:   p.OriginalPrice,
		DiscountPercent: p.DiscountPercent(),
		ImageURL:        p.ImageURL,
		InStock:         p.Stock > 0,
		Stock:           p.Stock,
		CategoryID:      p.CategoryID,
		Featured:        p.Featured,
	}
}

// toProductPage converts a page of products to its response DTO page
func toProductPage(page *shared.Paginated[*catalog.Product]) *shared.Paginated[ProductResponse] {
	responses := make([]ProductResponse, 0, len(page.Items))
	for _, p := range page.Items {
		responses = append(responses, ToProductResponse(p))
	}
	result := shared.NewPaginated(responses, page.Total, page.Page, page.PageSize)
	return &result
}

// ToCategoryResponse converts a category to its response DTO
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
	}
}
