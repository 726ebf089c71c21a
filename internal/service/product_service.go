package service

import (
	"context"
	"strings"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/catalog"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/model"

	"github.com/rs/zerolog"
)

// productService implements ProductService over the immutable catalogue.
type productService struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(c *catalog.Catalog, logger zerolog.Logger) ProductService {
	return &productService{
		catalog: c,
		logger:  logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves products filtered by search query and category, with
// pagination. The query is applied first, then the category filter.
func (s *productService) List(ctx context.Context, query, category string, limit, offset int) ([]model.Product, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	products := s.catalog.Search(query)

	if category != "" && !strings.EqualFold(category, "all") {
		filtered := products[:0]
		for _, p := range products {
			if strings.EqualFold(p.Category, category) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	if offset >= len(products) {
		return []model.Product{}, nil
	}

	end := offset + limit
	if end > len(products) {
		end = len(products)
	}

	page := products[offset:end]

	s.logger.Debug().
		Str("query", query).
		Str("category", category).
		Int("count", len(page)).
		Int("limit", limit).
		Int("offset", offset).
		Msg("listed products")

	return page, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int) (*model.Product, error) {
	product := s.catalog.ByID(id)
	if product == nil {
		s.logger.Debug().Int("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}
	return product, nil
}

// Categories returns the distinct product categories.
func (s *productService) Categories(ctx context.Context) ([]string, error) {
	return s.catalog.Categories(), nil
}
