package pricing

import (
	"math"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/model"
)

// Pricing constants. The shipping threshold is a strict greater-than:
// a subtotal of exactly 50.00 still pays the flat rate.
const (
	TaxRate           = 0.08
	FreeShippingAbove = 50.0
	FlatShippingRate  = 9.99
)

// Quote holds the four derived monetary values for a cart.
type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// Subtotal returns the sum of price times quantity across all line
// items. No rounding is applied during summation.
func Subtotal(items []model.CartItem) (float64, error) {
	var subtotal float64
	for _, item := range items {
		if item.Price < 0 || item.Quantity < 0 {
			return 0, model.ErrInvalidLineItem
		}
		subtotal += item.Price * float64(item.Quantity)
	}
	return subtotal, nil
}

// Tax returns the flat 8% tax on the cart subtotal.
func Tax(items []model.CartItem) (float64, error) {
	subtotal, err := Subtotal(items)
	if err != nil {
		return 0, err
	}
	return subtotal * TaxRate, nil
}

// Shipping returns the shipping cost: free above the threshold,
// otherwise the flat rate. An empty cart pays the flat rate.
func Shipping(items []model.CartItem) (float64, error) {
	subtotal, err := Subtotal(items)
	if err != nil {
		return 0, err
	}
	if subtotal > FreeShippingAbove {
		return 0, nil
	}
	return FlatShippingRate, nil
}

// Total returns subtotal + tax + shipping.
func Total(items []model.CartItem) (float64, error) {
	q, err := NewQuote(items)
	if err != nil {
		return 0, err
	}
	return q.Total, nil
}

// NewQuote computes all four derived values in a single pass over the
// line items. It fails with ErrInvalidLineItem if any line item has a
// negative price or quantity.
func NewQuote(items []model.CartItem) (Quote, error) {
	subtotal, err := Subtotal(items)
	if err != nil {
		return Quote{}, err
	}

	tax := subtotal * TaxRate

	shipping := FlatShippingRate
	if subtotal > FreeShippingAbove {
		shipping = 0
	}

	return Quote{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal + tax + shipping,
	}, nil
}

// Rounded returns a copy of the quote with every field rounded to
// cents. Rounding is applied only at the persistence/display edge,
// never during computation.
func (q Quote) Rounded() Quote {
	return Quote{
		Subtotal: RoundCents(q.Subtotal),
		Tax:      RoundCents(q.Tax),
		Shipping: RoundCents(q.Shipping),
		Total:    RoundCents(q.Total),
	}
}

// RoundCents rounds a monetary value half-away-from-zero to two
// decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
