package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/model"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/payment"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/pricing"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/repository"

	"github.com/rs/zerolog"
)

// Estimated delivery window added to the order date at checkout.
const deliveryWindow = 7 * 24 * time.Hour

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	processor payment.Processor
	now       func() time.Time
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	processor payment.Processor,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		processor: processor,
		now:       time.Now,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Checkout snapshots the cart into an order, charges the total and
// clears the cart. The order's monetary fields are rounded to cents;
// the charge uses the unrounded total.
func (s *orderService) Checkout(ctx context.Context, req *CheckoutRequest) (*model.Order, error) {
	if err := s.validateCheckoutRequest(req); err != nil {
		return nil, err
	}

	items, err := s.cartRepo.Get(ctx, req.CustomerID)
	if err != nil {
		s.logger.Error().Err(err).Str("customer_id", req.CustomerID).Msg("failed to load cart for checkout")
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	if len(items) == 0 {
		s.logger.Debug().Str("customer_id", req.CustomerID).Msg("checkout attempted with empty cart")
		return nil, model.ErrCartEmpty
	}

	quote, err := pricing.NewQuote(items)
	if err != nil {
		return nil, err
	}

	if err := s.processor.Charge(ctx, quote.Total, req.PaymentMethod); err != nil {
		s.logger.Warn().
			Err(err).
			Str("customer_id", req.CustomerID).
			Float64("total", quote.Total).
			Str("method", req.PaymentMethod).
			Msg("payment failed")
		return nil, err
	}

	now := s.now()
	rounded := quote.Rounded()

	order := model.Order{
		ID:                model.NewOrderID(now),
		CustomerID:        req.CustomerID,
		Items:             items,
		Subtotal:          rounded.Subtotal,
		Tax:               rounded.Tax,
		Shipping:          rounded.Shipping,
		Total:             rounded.Total,
		Status:            model.OrderStatusProcessing,
		ShippingAddress:   req.ShippingAddress,
		PaymentMethod:     req.PaymentMethod,
		OrderDate:         now,
		EstimatedDelivery: now.Add(deliveryWindow),
	}

	if err := s.orderRepo.Append(ctx, req.CustomerID, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to persist order")
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	// The order is placed; a failed cart clear must not fail checkout.
	if err := s.cartRepo.Clear(ctx, req.CustomerID); err != nil {
		s.logger.Error().Err(err).Str("customer_id", req.CustomerID).Msg("failed to clear cart after checkout")
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Str("customer_id", req.CustomerID).
		Int("item_count", len(order.Items)).
		Float64("total", order.Total).
		Msg("order created successfully")

	return &order, nil
}

// List retrieves the customer's order history.
func (s *orderService) List(ctx context.Context, customerID string) ([]model.Order, error) {
	orders, err := s.orderRepo.List(ctx, customerID)
	if err != nil {
		s.logger.Error().Err(err).Str("customer_id", customerID).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves a single order.
func (s *orderService) GetByID(ctx context.Context, customerID, orderID string) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, customerID, orderID)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

// UpdateStatus advances an order's status. Orders are never deleted;
// the only permitted mutation is the forward status transition.
func (s *orderService) UpdateStatus(ctx context.Context, customerID, orderID, status string) (*model.Order, error) {
	order, err := s.GetByID(ctx, customerID, orderID)
	if err != nil {
		return nil, err
	}

	if !validOrderTransition(order.Status, status) {
		s.logger.Warn().
			Str("order_id", orderID).
			Str("from", order.Status).
			Str("to", status).
			Msg("invalid order status transition")
		return nil, model.ErrInvalidStatus
	}

	order.Status = status
	if err := s.orderRepo.Update(ctx, customerID, *order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	s.logger.Info().
		Str("order_id", orderID).
		Str("status", status).
		Msg("order status updated")

	return order, nil
}

func validOrderTransition(from, to string) bool {
	switch from {
	case model.OrderStatusProcessing:
		return to == model.OrderStatusShipped
	case model.OrderStatusShipped:
		return to == model.OrderStatusDelivered
	default:
		return false
	}
}

// validateCheckoutRequest validates the checkout request.
func (s *orderService) validateCheckoutRequest(req *CheckoutRequest) error {
	if req == nil {
		return fmt.Errorf("checkout request is nil")
	}

	if req.CustomerID == "" {
		return fmt.Errorf("customer ID is required")
	}

	if !model.ValidPaymentMethod(req.PaymentMethod) {
		return model.ErrInvalidPayment
	}

	addr := req.ShippingAddress
	required := []struct {
		field string
		value string
	}{
		{"first name", addr.FirstName},
		{"last name", addr.LastName},
		{"address", addr.Address},
		{"city", addr.City},
		{"zip code", addr.ZipCode},
	}
	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.field)
		}
	}
	if len(missing) > 0 {
		return model.NewDomainError(model.ErrCodeMissingField,
			fmt.Sprintf("shipping address is missing required fields: %s", strings.Join(missing, ", ")))
	}

	return nil
}
