package command

import (
	"context"
	"fmt"

	catalogdomain "github.com/sportshop/storefront/internal/catalog/domain"
	"github.com/sportshop/storefront/internal/wishlist"
)

// AddItemCommand represents the command to add a product to the wishlist
type AddItemCommand struct {
	ProductID int
}

// AddItemHandler handles add item command
type AddItemHandler struct {
	set     *wishlist.Set
	catalog catalogdomain.Repository
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(set *wishlist.Set, catalog catalogdomain.Repository) *AddItemHandler {
	return &AddItemHandler{set: set, catalog: catalog}
}

// Handle executes the add item command. Adding a product that is already
// wishlisted is a no-op.
func (h *AddItemHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
	if _, err := h.catalog.FindByID(cmd.ProductID); err != nil {
		return fmt.Errorf("product not found: %w", err)
	}
	h.set.Add(ctx, cmd.ProductID)
	return nil
}

// RemoveItemCommand represents the command to remove a product from the
// wishlist
type RemoveItemCommand struct {
	ProductID int
}

// RemoveItemHandler handles remove item command
type RemoveItemHandler struct {
	set *wishlist.Set
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(set *wishlist.Set) *RemoveItemHandler {
	return &RemoveItemHandler{set: set}
}

// Handle executes the remove item command
func (h *RemoveItemHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
	h.set.Remove(ctx, cmd.ProductID)
	return nil
}

// ClearWishlistCommand represents the command to empty the wishlist
type ClearWishlistCommand struct{}

// ClearWishlistHandler handles clear wishlist command
type ClearWishlistHandler struct {
	set *wishlist.Set
}

// NewClearWishlistHandler creates a new clear wishlist handler
func NewClearWishlistHandler(set *wishlist.Set) *ClearWishlistHandler {
	return &ClearWishlistHandler{set: set}
}

// Handle executes the clear wishlist command
func (h *ClearWishlistHandler) Handle(ctx context.Context, cmd ClearWishlistCommand) error {
	h.set.Clear(ctx)
	return nil
}
