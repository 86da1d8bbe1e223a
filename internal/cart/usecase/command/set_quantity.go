package command

import (
	"context"

	"github.com/sportshop/storefront/internal/cart"
)

// SetQuantityCommand represents the command to replace a line item quantity
type SetQuantityCommand struct {
	ProductID int
	Quantity  int
}

// SetQuantityHandler handles set quantity command
type SetQuantityHandler struct {
	ledger *cart.Ledger
}

// NewSetQuantityHandler creates a new set quantity handler
func NewSetQuantityHandler(ledger *cart.Ledger) *SetQuantityHandler {
	return &SetQuantityHandler{ledger: ledger}
}

// Handle executes the set quantity command. A quantity below 1 removes the
// line item.
func (h *SetQuantityHandler) Handle(ctx context.Context, cmd SetQuantityCommand) error {
	h.ledger.SetQuantity(ctx, cmd.ProductID, cmd.Quantity)
	return nil
}
