package query

import (
	catalogdomain "github.com/sportshop/storefront/internal/catalog/domain"
	"github.com/sportshop/storefront/internal/wishlist"
)

// GetWishlistQuery represents the query to read the wishlist
type GetWishlistQuery struct{}

// GetWishlistHandler handles get wishlist query, resolving the stored ids
// against the catalog. Ids that no longer resolve are skipped.
type GetWishlistHandler struct {
	set     *wishlist.Set
	catalog catalogdomain.Repository
}

// NewGetWishlistHandler creates a new get wishlist handler
func NewGetWishlistHandler(set *wishlist.Set, catalog catalogdomain.Repository) *GetWishlistHandler {
	return &GetWishlistHandler{set: set, catalog: catalog}
}

// Handle executes the get wishlist query
func (h *GetWishlistHandler) Handle(query GetWishlistQuery) ([]catalogdomain.Product, error) {
	ids := h.set.IDs()
	products := make([]catalogdomain.Product, 0, len(ids))
	for _, id := range ids {
		p, err := h.catalog.FindByID(id)
		if err != nil {
			continue
		}
		products = append(products, *p)
	}
	return products, nil
}
