package domain

import "errors"

// ErrInvalidProduct is returned when a cart mutation receives a product
// without a valid id.
var ErrInvalidProduct = errors.New("invalid product")

// Pricing rules applied to every totals computation
const (
	TaxRate          = 0.18 // 18% GST
	FreeShippingOver = 1000.0
	FlatShippingFee  = 50.0
)

// LineItem is one product plus its requested quantity. A stored line item
// always has Quantity >= 1; at most one line item exists per product id.
type LineItem struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	UnitPrice float64 `json:"unitPrice"` // final price captured when the item was added
	Quantity  int     `json:"quantity"`
}

// Totals are derived from the line items on every read, never cached.
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Shipping  float64 `json:"shipping"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
}

// CalculateTotals computes cart totals: subtotal over unit price times
// quantity, 18% tax, and free shipping once the subtotal reaches the
// threshold. An empty cart owes no shipping.
func CalculateTotals(items []LineItem) Totals {
	var t Totals
	for _, item := range items {
		t.Subtotal += item.UnitPrice * float64(item.Quantity)
		t.ItemCount += item.Quantity
	}

	t.Tax = t.Subtotal * TaxRate
	if t.Subtotal > 0 && t.Subtotal < FreeShippingOver {
		t.Shipping = FlatShippingFee
	}
	t.Total = t.Subtotal + t.Tax + t.Shipping
	return t
}
