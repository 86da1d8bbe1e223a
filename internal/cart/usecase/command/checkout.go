package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sportshop/storefront/internal/cart"
	"github.com/sportshop/storefront/internal/cart/domain"
)

// CheckoutCommand represents the command to place an order from the cart
type CheckoutCommand struct{}

// Confirmation is the receipt returned by a successful checkout
type Confirmation struct {
	OrderID  string        `json:"orderId"`
	Totals   domain.Totals `json:"totals"`
	PlacedAt time.Time     `json:"placedAt"`
}

// CheckoutHandler handles checkout command. Payment is simulated with a
// fixed delay; there is no real payment processing.
type CheckoutHandler struct {
	ledger *cart.Ledger
	delay  time.Duration
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(ledger *cart.Ledger, delay time.Duration) *CheckoutHandler {
	return &CheckoutHandler{ledger: ledger, delay: delay}
}

// Handle executes the checkout command. The simulated payment delay is
// cancellable through the context; the cart is only cleared once the delay
// has fully elapsed.
func (h *CheckoutHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*Confirmation, error) {
	totals := h.ledger.Totals()
	if totals.ItemCount == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	if h.delay > 0 {
		timer := time.NewTimer(h.delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	confirmation := &Confirmation{
		OrderID:  uuid.NewString(),
		Totals:   totals,
		PlacedAt: time.Now(),
	}
	h.ledger.Clear(ctx)
	return confirmation, nil
}
