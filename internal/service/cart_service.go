package service

import (
	"context"
	"fmt"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/catalog"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/model"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/pricing"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/repository"

	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	cartRepo repository.CartRepository
	catalog  *catalog.Catalog
	logger   zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(cartRepo repository.CartRepository, c *catalog.Catalog, logger zerolog.Logger) CartService {
	return &cartService{
		cartRepo: cartRepo,
		catalog:  c,
		logger:   logger.With().Str("service", "cart").Logger(),
	}
}

// Get retrieves the cart with derived monetary values.
func (s *cartService) Get(ctx context.Context, customerID string) (*model.Cart, error) {
	items, err := s.cartRepo.Get(ctx, customerID)
	if err != nil {
		s.logger.Error().Err(err).Str("customer_id", customerID).Msg("failed to load cart")
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	return s.withQuote(items)
}

// AddItem adds quantity units of a product to the cart. An existing
// line item for the product is incremented; at most one line item
// exists per product id.
func (s *cartService) AddItem(ctx context.Context, customerID string, productID, quantity int) (*model.Cart, error) {
	if quantity <= 0 {
		return nil, model.ErrInvalidQuantity
	}

	product := s.catalog.ByID(productID)
	if product == nil {
		s.logger.Warn().Int("product_id", productID).Msg("attempted to add unknown product")
		return nil, model.ErrProductNotFound
	}
	if !product.InStock {
		s.logger.Debug().Int("product_id", productID).Msg("attempted to add out-of-stock product")
		return nil, model.ErrProductOutOfStock
	}

	items, err := s.cartRepo.Get(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	found := false
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		items = append(items, model.CartItem{Product: *product, Quantity: quantity})
	}

	if err := s.cartRepo.Save(ctx, customerID, items); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("customer_id", customerID).
		Int("product_id", productID).
		Int("quantity", quantity).
		Msg("item added to cart")

	return s.withQuote(items)
}

// UpdateQuantity sets the quantity of an existing line item. A
// quantity of zero or less removes the line item entirely.
func (s *cartService) UpdateQuantity(ctx context.Context, customerID string, productID, quantity int) (*model.Cart, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, customerID, productID)
	}

	items, err := s.cartRepo.Get(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	found := false
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return nil, model.ErrProductNotFound
	}

	if err := s.cartRepo.Save(ctx, customerID, items); err != nil {
		return nil, err
	}

	return s.withQuote(items)
}

// RemoveItem removes a line item from the cart.
func (s *cartService) RemoveItem(ctx context.Context, customerID string, productID int) (*model.Cart, error) {
	items, err := s.cartRepo.Get(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	kept := items[:0]
	found := false
	for _, item := range items {
		if item.ID == productID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return nil, model.ErrProductNotFound
	}

	if err := s.cartRepo.Save(ctx, customerID, kept); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("customer_id", customerID).
		Int("product_id", productID).
		Msg("item removed from cart")

	return s.withQuote(kept)
}

// Clear empties the cart.
func (s *cartService) Clear(ctx context.Context, customerID string) error {
	if err := s.cartRepo.Clear(ctx, customerID); err != nil {
		s.logger.Error().Err(err).Str("customer_id", customerID).Msg("failed to clear cart")
		return err
	}
	return nil
}

func (s *cartService) withQuote(items []model.CartItem) (*model.Cart, error) {
	quote, err := pricing.NewQuote(items)
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []model.CartItem{}
	}

	return &model.Cart{
		Items:    items,
		Subtotal: quote.Subtotal,
		Tax:      quote.Tax,
		Shipping: quote.Shipping,
		Total:    quote.Total,
	}, nil
}
