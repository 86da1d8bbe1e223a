package query

import (
	"fmt"

	"github.com/sportshop/storefront/internal/catalog/domain"
)

// GetRelatedQuery represents the query to list products related to one
// product (same category, the product itself excluded)
type GetRelatedQuery struct {
	ProductID int
	Limit     int
}

// GetRelatedHandler handles related products query
type GetRelatedHandler struct {
	repo domain.Repository
}

// NewGetRelatedHandler creates a new related products handler
func NewGetRelatedHandler(repo domain.Repository) *GetRelatedHandler {
	return &GetRelatedHandler{repo: repo}
}

// Handle executes the related products query
func (h *GetRelatedHandler) Handle(query GetRelatedQuery) ([]domain.Product, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 4
	}

	current, err := h.repo.FindByID(query.ProductID)
	if err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}

	related := make([]domain.Product, 0, limit)
	for _, p := range h.repo.All() {
		if p.ID == current.ID || p.Category != current.Category {
			continue
		}
		related = append(related, p)
		if len(related) == limit {
			break
		}
	}
	return related, nil
}
