package catalog

import (
	"context"
	"time"

	"inkpress/models"
	"inkpress/rdx"
)

const featuredLimit = 6

const cacheTTL = 5 * time.Minute

// Backend is the narrow read surface the catalog needs from the backing
// store. The mongo implementation is the default; tests inject fakes.
type Backend interface {
	Categories(ctx context.Context) ([]models.Category, error)
	CategoryIDBySlug(ctx context.Context, slug string) (string, error)
	Products(ctx context.Context, categoryID string) ([]models.Product, error)
	FeaturedProducts(ctx context.Context, limit int64) ([]models.Product, error)
	ProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	ProductByID(ctx context.Context, id string) (*models.Product, error)
}

// Service serves read-only catalog views. All operations are idempotent.
type Service struct {
	backend Backend
	cached  bool
}

func NewService(backend Backend, cached bool) *Service {
	return &Service{backend: backend, cached: cached}
}

// NewMongoService returns the production catalog backed by MongoDB with a
// Redis read-through cache over the hot lists.
func NewMongoService() *Service {
	return NewService(mongoBackend{}, true)
}

// ListCategories returns all categories ordered by name.
func (s *Service) ListCategories(ctx context.Context) ([]models.Category, error) {
	if s.cached {
		var cached []models.Category
		if rdx.GetJSON(ctx, "catalog:categories", &cached) {
			return cached, nil
		}
	}

	categories, err := s.backend.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if s.cached {
		rdx.SetJSON(ctx, "catalog:categories", categories, cacheTTL)
	}
	return categories, nil
}

// ListProducts returns products ordered by name, optionally filtered by
// category slug. A slug that resolves to no category drops the filter and
// returns the full catalog; likewise when the resolution itself fails. The
// storefront treats a stale category link as "show everything", never as an
// error page — keep it that way.
func (s *Service) ListProducts(ctx context.Context, categorySlug string) ([]models.Product, error) {
	categoryID := ""
	if categorySlug != "" {
		if id, err := s.backend.CategoryIDBySlug(ctx, categorySlug); err == nil {
			categoryID = id
		}
	}
	return s.backend.Products(ctx, categoryID)
}

// ListFeatured returns up to six featured products ordered by name.
func (s *Service) ListFeatured(ctx context.Context) ([]models.Product, error) {
	if s.cached {
		var cached []models.Product
		if rdx.GetJSON(ctx, "catalog:featured", &cached) {
			return cached, nil
		}
	}

	featured, err := s.backend.FeaturedProducts(ctx, featuredLimit)
	if err != nil {
		return nil, err
	}
	if s.cached {
		rdx.SetJSON(ctx, "catalog:featured", featured, cacheTTL)
	}
	return featured, nil
}

// ProductBySlug returns the product for a slug, or nil when absent.
func (s *Service) ProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return s.backend.ProductBySlug(ctx, slug)
}

// ProductByID returns the product for an id, or nil when absent. The cart
// uses it to snapshot name and price at add time.
func (s *Service) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.backend.ProductByID(ctx, id)
}
