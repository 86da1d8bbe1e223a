package domain

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort keys accepted by FilterSpec.SortBy. An empty key preserves the
// filtered input order.
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortName      = "name"
	SortPopular   = "popular"
)

// CategoryAll matches every category.
const CategoryAll = "all"

// FilterSpec describes one view over the catalog. Zero values make each
// predicate vacuous: empty search, "all"/empty category, empty brand set,
// zero rating threshold, and a non-positive MaxPrice (no price bounds).
type FilterSpec struct {
	Search    string
	Category  string
	MinPrice  float64
	MaxPrice  float64
	Brands    []string
	MinRating float64
	SortBy    string
}

// Apply filters and sorts products according to spec. It is a pure
// function: the input slice is never modified, and equal inputs always
// produce identical output. Products survive only if they pass every
// active predicate; sorting is stable, so ties keep their input order.
func Apply(products []Product, spec FilterSpec) []Product {
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if spec.matches(&p) {
			filtered = append(filtered, p)
		}
	}
	sortProducts(filtered, spec.SortBy)
	return filtered
}

func (spec *FilterSpec) matches(p *Product) bool {
	if !matchesSearch(p, spec.Search) {
		return false
	}
	if spec.Category != "" && spec.Category != CategoryAll && p.Category != spec.Category {
		return false
	}
	if spec.MaxPrice > 0 {
		price := p.FinalPrice()
		if price < spec.MinPrice || price > spec.MaxPrice {
			return false
		}
	}
	if len(spec.Brands) > 0 && !containsString(spec.Brands, p.Brand) {
		return false
	}
	if p.Rating < spec.MinRating {
		return false
	}
	return true
}

func matchesSearch(p *Product, query string) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}

	if strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Category), query) ||
		strings.Contains(strings.ToLower(p.Brand), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func sortProducts(products []Product, sortBy string) {
	switch sortBy {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].FinalPrice() < products[j].FinalPrice()
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].FinalPrice() > products[j].FinalPrice()
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortName:
		c := collate.New(language.English)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) < 0
		})
	case SortPopular:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Reviews > products[j].Reviews
		})
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
