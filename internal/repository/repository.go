package repository

import (
	"context"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/model"
)

// CartRepository defines data access for per-customer carts. A cart
// is stored as a single record and replaced wholesale on write.
type CartRepository interface {
	// Get retrieves the customer's cart items. A missing cart is an
	// empty cart, not an error.
	Get(ctx context.Context, customerID string) ([]model.CartItem, error)

	// Save replaces the customer's cart items.
	Save(ctx context.Context, customerID string, items []model.CartItem) error

	// Clear removes the customer's cart entirely.
	Clear(ctx context.Context, customerID string) error
}

// OrderRepository defines data access for per-customer order history.
type OrderRepository interface {
	// List retrieves the customer's orders, oldest first.
	List(ctx context.Context, customerID string) ([]model.Order, error)

	// Append adds an order to the customer's history.
	Append(ctx context.Context, customerID string, order model.Order) error

	// GetByID retrieves a single order. Returns nil if not found.
	GetByID(ctx context.Context, customerID, orderID string) (*model.Order, error)

	// Update replaces an existing order (status changes).
	Update(ctx context.Context, customerID string, order model.Order) error
}

// PickupRepository defines data access for per-industry pickup requests.
type PickupRepository interface {
	// List retrieves the industry's pickup requests, oldest first.
	List(ctx context.Context, industryID string) ([]model.PickupRequest, error)

	// Append adds a pickup request to the industry's list.
	Append(ctx context.Context, industryID string, request model.PickupRequest) error

	// GetByID retrieves a single request. Returns nil if not found.
	GetByID(ctx context.Context, industryID, requestID string) (*model.PickupRequest, error)

	// Update replaces an existing request (status changes).
	Update(ctx context.Context, industryID string, request model.PickupRequest) error

	// Delete removes a request from the industry's list.
	Delete(ctx context.Context, industryID, requestID string) error
}

// UserRepository defines data access for customer and industry
// accounts. Email lookups go through index records so registration
// can enforce unique emails.
type UserRepository interface {
	SaveCustomer(ctx context.Context, customer *model.Customer) error
	GetCustomer(ctx context.Context, id string) (*model.Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*model.Customer, error)

	SaveIndustry(ctx context.Context, industry *model.IndustryUser) error
	GetIndustry(ctx context.Context, id string) (*model.IndustryUser, error)
	GetIndustryByEmail(ctx context.Context, email string) (*model.IndustryUser, error)
}
