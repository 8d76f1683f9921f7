package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindActive lists active products, optionally restricted to a category
func (r *GormProductRepository) FindActive(ctx context.Context, categoryID *uuid.UUID, filter shared.Filter) (*shared.Paginated[*catalog.Product], error) {
	query := r.db.WithContext(ctx).Model(&catalog.Product{}).
		Where("status = ?", catalog.ProductStatusActive)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	return r.paginate(query, filter)
}

// FindFeatured lists active featured products, newest first
func (r *GormProductRepository) FindFeatured(ctx context.Context, limit int) ([]*catalog.Product, error) {
	var products []*catalog.Product
	query := r.db.WithContext(ctx).
		Where("status = ? AND featured = ?", catalog.ProductStatusActive, true).
		Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindBySeller lists a seller's products regardless of status
func (r *GormProductRepository) FindBySeller(ctx context.Context, sellerID uuid.UUID, filter shared.Filter) (*shared.Paginated[*catalog.Product], error) {
	query := r.db.WithContext(ctx).Model(&catalog.Product{}).Where("seller_id = ?", sellerID)
	return r.paginate(query, filter)
}

func (r *GormProductRepository) paginate(query *gorm.DB, filter shared.Filter) (*shared.Paginated[*catalog.Product], error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var products []*catalog.Product
	if err := applyFilter(query, filter).Find(&products).Error; err != nil {
		return nil, err
	}

	result := shared.NewPaginated(products, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// SaveWithLock saves with optimistic locking (version check)
func (r *GormProductRepository) SaveWithLock(ctx context.Context, p *catalog.Product) error {
	p.IncrementVersion()
	result := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("id = ? AND version = ?", p.ID, p.Version-1).
		Updates(map[string]interface{}{
			"name":           p.Name,
			"description":    p.Description,
			"price":          p.Price,
			"original_price": p.OriginalPrice,
			"image_url":      p.ImageURL,
			"stock":          p.Stock,
			"category_id":    p.CategoryID,
			"featured":       p.Featured,
			"status":         p.Status,
			"version":        p.Version,
			"updated_at":     time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("CONCURRENCY_CONFLICT", "The product was modified by another request")
	}
	return nil
}

// Delete removes a product
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
