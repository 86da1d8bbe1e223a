package domain

import "errors"

// ErrProductNotFound is returned when no product matches the requested id.
var ErrProductNotFound = errors.New("product not found")

// Product represents one catalog entry. Products are loaded once at startup
// and never mutated afterwards.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Image       string   `json:"image"`
	Price       float64  `json:"price"`
	Discount    float64  `json:"discount"` // percent, 0-100
	Rating      float64  `json:"rating"`   // 0.0-5.0
	Reviews     int      `json:"reviews"`
	Tags        []string `json:"tags"`
}

// FinalPrice returns the list price after the discount percentage is
// applied. A product without a discount sells at its list price.
func (p *Product) FinalPrice() float64 {
	if p.Discount <= 0 {
		return p.Price
	}
	return p.Price * (1 - p.Discount/100)
}

// Repository defines the contract for catalog access
type Repository interface {
	All() []Product
	FindByID(id int) (*Product, error)
	Categories() []string
	Brands() []string
	Count() int
}
