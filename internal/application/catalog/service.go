package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/cache"
	"go.uber.org/zap"
)

// featuredShelfSize caps the storefront's featured shelf
const featuredShelfSize = 12

// CatalogService serves the storefront catalog. Single-product reads go
// through the product cache; cache failures fall back to the repository.
type CatalogService struct {
	products   catalog.ProductRepository
	categories catalog.CategoryRepository
	cache      cache.ProductCache
	logger     *zap.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(products catalog.ProductRepository, categories catalog.CategoryRepository, productCache cache.ProductCache, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		products:   products,
		categories: categories,
		cache:      productCache,
		logger:     logger,
	}
}

// GetProduct returns a product, serving from the cache when possible
func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	if cached, err := s.cache.Get(ctx, id); err == nil && cached != nil {
		resp := ToProductResponse(cached)
		return &resp, nil
	} else if err != nil {
		s.logger.Warn("product cache read failed", zap.Error(err), zap.String("product_id", id.String()))
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, product); err != nil {
		s.logger.Warn("product cache write failed", zap.Error(err), zap.String("product_id", id.String()))
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// ListProducts lists active products
func (s *CatalogService) ListProducts(ctx context.Context, filter shared.Filter) (*shared.Paginated[ProductResponse], error) {
	page, err := s.products.FindActive(ctx, nil, filter)
	if err != nil {
		return nil, err
	}
	return toProductPage(page), nil
}

// ListByCategory lists active products in one category
func (s *CatalogService) ListByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) (*shared.Paginated[ProductResponse], error) {
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}
	page, err := s.products.FindActive(ctx, &categoryID, filter)
	if err != nil {
		return nil, err
	}
	return toProductPage(page), nil
}

// ListFeatured returns the featured shelf
func (s *CatalogService) ListFeatured(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.products.FindFeatured(ctx, featuredShelfSize)
	if err != nil {
		return nil, err
	}
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ToProductResponse(p))
	}
	return responses, nil
}

// ListCategories returns all browsing categories in display order
func (s *CatalogService) ListCategories(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, ToCategoryResponse(c))
	}
	return responses, nil
}

// CreateProduct adds a catalog entry for a seller
func (s *CatalogService) CreateProduct(ctx context.Context, sellerID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(sellerID, req.Name, req.Description, req.Price, req.Stock)
	if err != nil {
		return nil, err
	}
	product.ImageURL = req.ImageURL
	if req.OriginalPrice != nil {
		if err := product.SetOriginalPrice(req.OriginalPrice); err != nil {
			return nil, err
		}
	}
	if req.CategoryID != nil {
		product.AssignCategory(req.CategoryID)
	}
	product.SetFeatured(req.Featured)

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	product.ClearDomainEvents()

	resp := ToProductResponse(product)
	return &resp, nil
}

// UpdateProduct changes a seller's catalog entry and drops it from the cache
func (s *CatalogService) UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsOwnedBy(sellerID) {
		return nil, shared.ErrNotAuthorized
	}

	if err := product.Update(req.Name, req.Description, req.Price); err != nil {
		return nil, err
	}
	if err := product.SetOriginalPrice(req.OriginalPrice); err != nil {
		return nil, err
	}
	if req.Featured != nil {
		product.SetFeatured(*req.Featured)
	}

	if err := s.products.SaveWithLock(ctx, product); err != nil {
		return nil, err
	}
	product.ClearDomainEvents()

	if err := s.cache.Invalidate(ctx, productID); err != nil {
		s.logger.Warn("product cache invalidation failed", zap.Error(err), zap.String("product_id", productID.String()))
	}

	resp := ToProductResponse(product)
	return &resp, nil
}
