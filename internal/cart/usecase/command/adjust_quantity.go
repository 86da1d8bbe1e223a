package command

import (
	"context"

	"github.com/sportshop/storefront/internal/cart"
)

// IncrementItemCommand represents the command to raise a quantity by one
type IncrementItemCommand struct {
	ProductID int
}

// IncrementItemHandler handles increment item command
type IncrementItemHandler struct {
	ledger *cart.Ledger
}

// NewIncrementItemHandler creates a new increment item handler
func NewIncrementItemHandler(ledger *cart.Ledger) *IncrementItemHandler {
	return &IncrementItemHandler{ledger: ledger}
}

// Handle executes the increment item command
func (h *IncrementItemHandler) Handle(ctx context.Context, cmd IncrementItemCommand) error {
	h.ledger.Increment(ctx, cmd.ProductID)
	return nil
}

// DecrementItemCommand represents the command to lower a quantity by one
type DecrementItemCommand struct {
	ProductID int
}

// DecrementItemHandler handles decrement item command
type DecrementItemHandler struct {
	ledger *cart.Ledger
}

// NewDecrementItemHandler creates a new decrement item handler
func NewDecrementItemHandler(ledger *cart.Ledger) *DecrementItemHandler {
	return &DecrementItemHandler{ledger: ledger}
}

// Handle executes the decrement item command. Dropping to zero removes the
// line item entirely.
func (h *DecrementItemHandler) Handle(ctx context.Context, cmd DecrementItemCommand) error {
	h.ledger.Decrement(ctx, cmd.ProductID)
	return nil
}
