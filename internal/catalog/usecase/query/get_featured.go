package query

import (
	"github.com/sportshop/storefront/internal/catalog/domain"
)

// GetFeaturedQuery represents the query to get the highest rated products
type GetFeaturedQuery struct {
	Limit int
}

// GetFeaturedHandler handles featured products query
type GetFeaturedHandler struct {
	repo domain.Repository
}

// NewGetFeaturedHandler creates a new featured products handler
func NewGetFeaturedHandler(repo domain.Repository) *GetFeaturedHandler {
	return &GetFeaturedHandler{repo: repo}
}

// Handle executes the featured products query
func (h *GetFeaturedHandler) Handle(query GetFeaturedQuery) ([]domain.Product, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 8
	}

	featured := domain.Apply(h.repo.All(), domain.FilterSpec{SortBy: domain.SortRating})
	if len(featured) > limit {
		featured = featured[:limit]
	}
	return featured, nil
}
