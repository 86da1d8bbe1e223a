package command

import (
	"context"
	"fmt"

	"github.com/sportshop/storefront/internal/cart"
	"github.com/sportshop/storefront/internal/cart/domain"
	catalogdomain "github.com/sportshop/storefront/internal/catalog/domain"
)

// AddItemCommand represents the command to add a product to the cart
type AddItemCommand struct {
	ProductID int
}

// AddItemHandler handles add item command
type AddItemHandler struct {
	ledger  *cart.Ledger
	catalog catalogdomain.Repository
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(ledger *cart.Ledger, catalog catalogdomain.Repository) *AddItemHandler {
	return &AddItemHandler{ledger: ledger, catalog: catalog}
}

// Handle executes the add item command
func (h *AddItemHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
	if cmd.ProductID <= 0 {
		return domain.ErrInvalidProduct
	}

	product, err := h.catalog.FindByID(cmd.ProductID)
	if err != nil {
		return fmt.Errorf("product not found: %w", err)
	}

	return h.ledger.Add(ctx, product)
}
