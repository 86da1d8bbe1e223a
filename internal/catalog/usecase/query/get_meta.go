package query

import (
	"github.com/sportshop/storefront/internal/catalog/domain"
)

// PriceRange represents the minimum and maximum final price in the catalog
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Meta represents the filter metadata exposed to the storefront
type Meta struct {
	Categories []string   `json:"categories"`
	Brands     []string   `json:"brands"`
	PriceRange PriceRange `json:"priceRange"`
	Count      int        `json:"count"`
}

// GetMetaQuery represents the query for catalog filter metadata
type GetMetaQuery struct{}

// GetMetaHandler handles catalog metadata query
type GetMetaHandler struct {
	repo domain.Repository
}

// NewGetMetaHandler creates a new catalog metadata handler
func NewGetMetaHandler(repo domain.Repository) *GetMetaHandler {
	return &GetMetaHandler{repo: repo}
}

// Handle executes the catalog metadata query
func (h *GetMetaHandler) Handle(query GetMetaQuery) (*Meta, error) {
	meta := &Meta{
		Categories: h.repo.Categories(),
		Brands:     h.repo.Brands(),
		Count:      h.repo.Count(),
	}

	for i, p := range h.repo.All() {
		price := p.FinalPrice()
		if i == 0 {
			meta.PriceRange.Min = price
			meta.PriceRange.Max = price
			continue
		}
		if price < meta.PriceRange.Min {
			meta.PriceRange.Min = price
		}
		if price > meta.PriceRange.Max {
			meta.PriceRange.Max = price
		}
	}

	return meta, nil
}
