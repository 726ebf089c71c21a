package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/kvstore"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/model"

	"github.com/rs/zerolog"
)

// cartRepository implements CartRepository on top of the key-value store.
type cartRepository struct {
	store  kvstore.Store
	logger zerolog.Logger
}

// NewCartRepository creates a new store-backed cart repository.
func NewCartRepository(store kvstore.Store, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		store:  store,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

func cartKey(customerID string) string {
	return "cart:" + customerID
}

// Get retrieves the customer's cart items.
func (r *cartRepository) Get(ctx context.Context, customerID string) ([]model.CartItem, error) {
	value, err := r.store.Get(ctx, cartKey(customerID))
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return []model.CartItem{}, nil
		}
		r.logger.Error().Err(err).Str("customer_id", customerID).Msg("failed to get cart")
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	var items []model.CartItem
	if err := json.Unmarshal(value, &items); err != nil {
		r.logger.Error().Err(err).Str("customer_id", customerID).Msg("failed to decode cart")
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}

	return items, nil
}

// Save replaces the customer's cart items.
func (r *cartRepository) Save(ctx context.Context, customerID string, items []model.CartItem) error {
	value, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := r.store.Set(ctx, cartKey(customerID), value); err != nil {
		r.logger.Error().Err(err).Str("customer_id", customerID).Msg("failed to save cart")
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}

// Clear removes the customer's cart entirely.
func (r *cartRepository) Clear(ctx context.Context, customerID string) error {
	if err := r.store.Delete(ctx, cartKey(customerID)); err != nil {
		r.logger.Error().Err(err).Str("customer_id", customerID).Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
