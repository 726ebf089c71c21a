package model

// CartItem is a line item in a customer's cart: a product plus the
// quantity being purchased. A cart holds at most one line item per
// product ID; adding an existing product increments its quantity.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Cart is the full cart state returned to clients, including the
// derived monetary values.
type Cart struct {
	Items    []CartItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
	Tax      float64    `json:"tax"`
	Shipping float64    `json:"shipping"`
	Total    float64    `json:"total"`
}

// TotalQuantity returns the number of units across all line items.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}
