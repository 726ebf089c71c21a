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

// orderRepository implements OrderRepository on top of the key-value
// store. Each customer's full order history lives under one key.
type orderRepository struct {
	store  kvstore.Store
	logger zerolog.Logger
}

// NewOrderRepository creates a new store-backed order repository.
func NewOrderRepository(store kvstore.Store, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		store:  store,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

func ordersKey(customerID string) string {
	return "orders:" + customerID
}

// List retrieves the customer's orders, oldest first.
func (r *orderRepository) List(ctx context.Context, customerID string) ([]model.Order, error) {
	value, err := r.store.Get(ctx, ordersKey(customerID))
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return []model.Order{}, nil
		}
		r.logger.Error().Err(err).Str("customer_id", customerID).Msg("failed to get orders")
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	var orders []model.Order
	if err := json.Unmarshal(value, &orders); err != nil {
		r.logger.Error().Err(err).Str("customer_id", customerID).Msg("failed to decode orders")
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	return orders, nil
}

// Append adds an order to the customer's history.
func (r *orderRepository) Append(ctx context.Context, customerID string, order model.Order) error {
	orders, err := r.List(ctx, customerID)
	if err != nil {
		return err
	}

	orders = append(orders, order)
	return r.save(ctx, customerID, orders)
}

// GetByID retrieves a single order. Returns nil if not found.
func (r *orderRepository) GetByID(ctx context.Context, customerID, orderID string) (*model.Order, error) {
	orders, err := r.List(ctx, customerID)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID == orderID {
			return &orders[i], nil
		}
	}

	return nil, nil
}

// Update replaces an existing order.
func (r *orderRepository) Update(ctx context.Context, customerID string, order model.Order) error {
	orders, err := r.List(ctx, customerID)
	if err != nil {
		return err
	}

	for i := range orders {
		if orders[i].ID == order.ID {
			orders[i] = order
			return r.save(ctx, customerID, orders)
		}
	}

	return model.ErrOrderNotFound
}

func (r *orderRepository) save(ctx context.Context, customerID string, orders []model.Order) error {
	value, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("failed to encode orders: %w", err)
	}

	if err := r.store.Set(ctx, ordersKey(customerID), value); err != nil {
		r.logger.Error().Err(err).Str("customer_id", customerID).Msg("failed to save orders")
		return fmt.Errorf("failed to save orders: %w", err)
	}

	return nil
}
