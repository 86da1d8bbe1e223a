package query

import (
	"github.com/sportshop/storefront/internal/catalog/domain"
)

// ListProductsQuery represents the query to list catalog products through
// the filter/sort pipeline
type ListProductsQuery struct {
	Spec domain.FilterSpec
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.Repository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.Repository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(query ListProductsQuery) ([]domain.Product, error) {
	return domain.Apply(h.repo.All(), query.Spec), nil
}
