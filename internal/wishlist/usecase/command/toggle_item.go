package command

import (
	"context"
	"fmt"

	catalogdomain "github.com/sportshop/storefront/internal/catalog/domain"
	"github.com/sportshop/storefront/internal/wishlist"
)

// ToggleItemCommand represents the command to toggle wishlist membership
type ToggleItemCommand struct {
	ProductID int
}

// ToggleItemHandler handles toggle item command
type ToggleItemHandler struct {
	set     *wishlist.Set
	catalog catalogdomain.Repository
}

// NewToggleItemHandler creates a new toggle item handler
func NewToggleItemHandler(set *wishlist.Set, catalog catalogdomain.Repository) *ToggleItemHandler {
	return &ToggleItemHandler{set: set, catalog: catalog}
}

// Handle executes the toggle item command, reporting the resulting
// membership.
func (h *ToggleItemHandler) Handle(ctx context.Context, cmd ToggleItemCommand) (bool, error) {
	if _, err := h.catalog.FindByID(cmd.ProductID); err != nil {
		return false, fmt.Errorf("product not found: %w", err)
	}
	return h.set.Toggle(ctx, cmd.ProductID), nil
}
