package model

import (
	"fmt"
	"time"
)

// Order statuses. Status only moves forward: Processing -> Shipped -> Delivered.
const (
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
)

// Supported payment methods.
const (
	PaymentMethodCard   = "card"
	PaymentMethodPayPal = "paypal"
)

// ShippingAddress holds the delivery address captured at checkout.
type ShippingAddress struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
}

// Order represents a completed checkout. Items are a snapshot of the
// cart at checkout time; the four monetary fields are rounded to
// cents when the order is created.
type Order struct {
	ID                string          `json:"id"`
	CustomerID        string          `json:"customerId"`
	Items             []CartItem      `json:"items"`
	Subtotal          float64         `json:"subtotal"`
	Tax               float64         `json:"tax"`
	Shipping          float64         `json:"shipping"`
	Total             float64         `json:"total"`
	Status            string          `json:"status"`
	ShippingAddress   ShippingAddress `json:"shippingAddress"`
	PaymentMethod     string          `json:"paymentMethod"`
	OrderDate         time.Time       `json:"orderDate"`
	EstimatedDelivery time.Time       `json:"estimatedDelivery"`
}

// NewOrderID returns a time-derived order identifier, e.g. "ORD-1712345678901".
func NewOrderID(now time.Time) string {
	return fmt.Sprintf("ORD-%d", now.UnixMilli())
}

// ValidPaymentMethod reports whether the given method is supported.
func ValidPaymentMethod(method string) bool {
	return method == PaymentMethodCard || method == PaymentMethodPayPal
}
