package command

import (
	"context"

	"github.com/sportshop/storefront/internal/cart"
)

// RemoveItemCommand represents the command to remove a product from the cart
type RemoveItemCommand struct {
	ProductID int
}

// RemoveItemHandler handles remove item command
type RemoveItemHandler struct {
	ledger *cart.Ledger
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(ledger *cart.Ledger) *RemoveItemHandler {
	return &RemoveItemHandler{ledger: ledger}
}

// Handle executes the remove item command. Removing an absent product is a
// no-op.
func (h *RemoveItemHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
	h.ledger.Remove(ctx, cmd.ProductID)
	return nil
}
