package service

import (
	"context"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/model"
)

// ProductService defines catalogue browsing operations.
type ProductService interface {
	// List retrieves products, optionally filtered by search query
	// and category, with pagination.
	List(ctx context.Context, query, category string, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int) (*model.Product, error)

	// Categories returns the distinct product categories.
	Categories(ctx context.Context) ([]string, error)
}

// CartService defines operations on a customer's cart.
type CartService interface {
	// Get retrieves the cart with derived monetary values.
	Get(ctx context.Context, customerID string) (*model.Cart, error)

	// AddItem adds quantity units of a product to the cart. Adding a
	// product already in the cart increments its line item.
	AddItem(ctx context.Context, customerID string, productID, quantity int) (*model.Cart, error)

	// UpdateQuantity sets the quantity of an existing line item. A
	// quantity of zero or less removes the item.
	UpdateQuantity(ctx context.Context, customerID string, productID, quantity int) (*model.Cart, error)

	// RemoveItem removes a line item from the cart.
	RemoveItem(ctx context.Context, customerID string, productID int) (*model.Cart, error)

	// Clear empties the cart.
	Clear(ctx context.Context, customerID string) error
}

// CheckoutRequest carries everything needed to place an order.
type CheckoutRequest struct {
	CustomerID      string                `json:"-"`
	ShippingAddress model.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                `json:"paymentMethod"`
}

// OrderService defines checkout and order history operations.
type OrderService interface {
	// Checkout snapshots the cart into an order, charges the total
	// and clears the cart.
	Checkout(ctx context.Context, req *CheckoutRequest) (*model.Order, error)

	// List retrieves the customer's order history.
	List(ctx context.Context, customerID string) ([]model.Order, error)

	// GetByID retrieves a single order.
	GetByID(ctx context.Context, customerID, orderID string) (*model.Order, error)

	// UpdateStatus advances an order's status. Status only moves
	// forward: Processing -> Shipped -> Delivered.
	UpdateStatus(ctx context.Context, customerID, orderID, status string) (*model.Order, error)
}

// PickupStats summarises an industry's pickup activity.
type PickupStats struct {
	TotalRequests     int `json:"totalRequests"`
	PendingRequests   int `json:"pendingRequests"`
	CompletedRequests int `json:"completedRequests"`
	TotalKgCollected  int `json:"totalKgCollected"`
}

// PickupService defines waste pickup request operations.
type PickupService interface {
	// Create submits a new pickup request with status Pending.
	Create(ctx context.Context, industryID, wasteType string, amount int, notes string) (*model.PickupRequest, error)

	// List retrieves the industry's pickup requests.
	List(ctx context.Context, industryID string) ([]model.PickupRequest, error)

	// Cancel removes a request that is still Pending or Assigned.
	Cancel(ctx context.Context, industryID, requestID string) error

	// UpdateStatus advances a request's status. Status only moves
	// forward: Pending -> Assigned -> Picked Up.
	UpdateStatus(ctx context.Context, industryID, requestID, status string) (*model.PickupRequest, error)

	// Stats summarises the industry's pickup activity.
	Stats(ctx context.Context, industryID string) (*PickupStats, error)
}

// RegisterCustomerRequest carries a customer registration form.
type RegisterCustomerRequest struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Phone     string   `json:"phone"`
	Address   string   `json:"address"`
	City      string   `json:"city"`
	ZipCode   string   `json:"zipCode"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// RegisterIndustryRequest carries an industry registration form.
type RegisterIndustryRequest struct {
	IndustryName string   `json:"industryName"`
	Email        string   `json:"email"`
	Password     string   `json:"password"`
	Phone        string   `json:"phone"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	WasteTypes   []string `json:"wasteTypes"`
	Description  string   `json:"description"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

// UserService defines account registration, login and profile operations.
type UserService interface {
	RegisterCustomer(ctx context.Context, req *RegisterCustomerRequest) (*model.Customer, error)
	RegisterIndustry(ctx context.Context, req *RegisterIndustryRequest) (*model.IndustryUser, error)

	LoginCustomer(ctx context.Context, email, password string) (*model.Customer, error)
	LoginIndustry(ctx context.Context, email, password string) (*model.IndustryUser, error)

	GetCustomer(ctx context.Context, id string) (*model.Customer, error)
	GetIndustry(ctx context.Context, id string) (*model.IndustryUser, error)

	UpdateCustomer(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	UpdateIndustry(ctx context.Context, industry *model.IndustryUser) (*model.IndustryUser, error)
}
