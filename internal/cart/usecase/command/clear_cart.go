package command

import (
	"context"

	"github.com/sportshop/storefront/internal/cart"
)

// ClearCartCommand represents the command to empty the cart
type ClearCartCommand struct{}

// ClearCartHandler handles clear cart command
type ClearCartHandler struct {
	ledger *cart.Ledger
}

// NewClearCartHandler creates a new clear cart handler
func NewClearCartHandler(ledger *cart.Ledger) *ClearCartHandler {
	return &ClearCartHandler{ledger: ledger}
}

// Handle executes the clear cart command
func (h *ClearCartHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	h.ledger.Clear(ctx)
	return nil
}
