package query

import (
	"github.com/sportshop/storefront/internal/cart"
	"github.com/sportshop/storefront/internal/cart/domain"
)

// CartView is the cart contents plus its derived totals
type CartView struct {
	Items  []domain.LineItem `json:"items"`
	Totals domain.Totals     `json:"totals"`
}

// GetCartQuery represents the query to read the cart
type GetCartQuery struct{}

// GetCartHandler handles get cart query
type GetCartHandler struct {
	ledger *cart.Ledger
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(ledger *cart.Ledger) *GetCartHandler {
	return &GetCartHandler{ledger: ledger}
}

// Handle executes the get cart query. Totals are recomputed on every read.
func (h *GetCartHandler) Handle(query GetCartQuery) (*CartView, error) {
	return &CartView{
		Items:  h.ledger.Items(),
		Totals: h.ledger.Totals(),
	}, nil
}
