package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureProducts() []Product {
	return []Product{
		{ID: 1, Name: "Zonal Runner", Description: "road shoe", Category: "running", Brand: "Nike", Price: 1000, Discount: 10, Rating: 4.5, Reviews: 300, Tags: []string{"shoes", "road"}},
		{ID: 2, Name: "Alpha Boots", Description: "firm ground", Category: "football", Brand: "Adidas", Price: 2000, Discount: 0, Rating: 4.0, Reviews: 150, Tags: []string{"boots"}},
		{ID: 3, Name: "Mat Pro", Description: "yoga mat", Category: "fitness", Brand: "Reebok", Price: 500, Discount: 20, Rating: 4.5, Reviews: 600, Tags: []string{"yoga", "mat"}},
		{ID: 4, Name: "Beta Ball", Description: "match ball", Category: "football", Brand: "Nike", Price: 800, Discount: 0, Rating: 3.5, Reviews: 150, Tags: []string{"ball"}},
	}
}

func ids(products []Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestApplyVacuousSpecIsIdentity(t *testing.T) {
	products := fixtureProducts()
	got := Apply(products, FilterSpec{})
	assert.Equal(t, products, got, "a spec with every predicate vacuous must return the catalog in input order")
}

func TestApplyEmptyCatalog(t *testing.T) {
	got := Apply(nil, FilterSpec{Search: "anything", SortBy: SortName})
	assert.Empty(t, got)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	products := fixtureProducts()
	original := fixtureProducts()
	Apply(products, FilterSpec{SortBy: SortPriceHigh})
	assert.Equal(t, original, products)
}

func TestApplyIsIdempotent(t *testing.T) {
	products := fixtureProducts()
	spec := FilterSpec{Category: "football", SortBy: SortPriceLow}
	first := Apply(products, spec)
	second := Apply(products, spec)
	assert.Equal(t, first, second)
}

func TestSearchPredicate(t *testing.T) {
	products := fixtureProducts()

	tests := []struct {
		name   string
		search string
		want   []int
	}{
		{"empty search is vacuous", "", []int{1, 2, 3, 4}},
		{"matches name", "alpha", []int{2}},
		{"matches description", "yoga", []int{3}},
		{"matches category", "running", []int{1}},
		{"matches brand", "nike", []int{1, 4}},
		{"matches tags", "mat", []int{3, 4}}, // "mat" is a tag of 3 and a substring of 4's "match ball" description
		{"case insensitive", "ZONAL", []int{1}},
		{"no match", "tennis", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(products, FilterSpec{Search: tt.search})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestCategoryPredicate(t *testing.T) {
	products := fixtureProducts()

	assert.Equal(t, []int{2, 4}, ids(Apply(products, FilterSpec{Category: "football"})))
	assert.Equal(t, []int{1, 2, 3, 4}, ids(Apply(products, FilterSpec{Category: CategoryAll})))
	assert.Equal(t, []int{1, 2, 3, 4}, ids(Apply(products, FilterSpec{Category: ""})))
}

func TestPriceRangePredicate(t *testing.T) {
	products := fixtureProducts()

	// Bounds apply to the final (discounted) price: product 1 sells at 900,
	// product 3 at 400.
	got := Apply(products, FilterSpec{MinPrice: 400, MaxPrice: 900})
	assert.Equal(t, []int{1, 3, 4}, ids(got))

	// Inclusive at both ends.
	got = Apply(products, FilterSpec{MinPrice: 900, MaxPrice: 900})
	assert.Equal(t, []int{1}, ids(got))

	// A non-positive max leaves the predicate vacuous.
	got = Apply(products, FilterSpec{MinPrice: 0, MaxPrice: 0})
	assert.Len(t, got, 4)
}

func TestBrandPredicate(t *testing.T) {
	products := fixtureProducts()

	assert.Equal(t, []int{1, 4}, ids(Apply(products, FilterSpec{Brands: []string{"Nike"}})))
	assert.Equal(t, []int{1, 2, 4}, ids(Apply(products, FilterSpec{Brands: []string{"Nike", "Adidas"}})))
	assert.Len(t, Apply(products, FilterSpec{Brands: nil}), 4)
}

func TestRatingPredicate(t *testing.T) {
	products := fixtureProducts()

	assert.Equal(t, []int{1, 3}, ids(Apply(products, FilterSpec{MinRating: 4.5})))
	assert.Len(t, Apply(products, FilterSpec{MinRating: 0}), 4)
}

func TestPredicatesAreConjunctive(t *testing.T) {
	products := fixtureProducts()

	got := Apply(products, FilterSpec{Category: "football", Brands: []string{"Nike"}})
	assert.Equal(t, []int{4}, ids(got))
}

func TestSortKeys(t *testing.T) {
	products := fixtureProducts()

	tests := []struct {
		sortBy string
		want   []int
	}{
		{SortPriceLow, []int{3, 4, 1, 2}},  // final prices 400, 800, 900, 2000
		{SortPriceHigh, []int{2, 1, 4, 3}},
		{SortRating, []int{1, 3, 2, 4}}, // ties (1, 3 at 4.5) keep input order
		{SortName, []int{2, 4, 3, 1}},
		{SortPopular, []int{3, 1, 2, 4}}, // ties (2, 4 at 150) keep input order
		{"", []int{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run("sort "+tt.sortBy, func(t *testing.T) {
			got := Apply(products, FilterSpec{SortBy: tt.sortBy})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSortIsPermutationOfFilteredSet(t *testing.T) {
	products := fixtureProducts()

	for _, sortBy := range []string{SortPriceLow, SortPriceHigh, SortRating, SortName, SortPopular, ""} {
		got := Apply(products, FilterSpec{SortBy: sortBy})
		require.Len(t, got, len(products), "sort %q changed the element count", sortBy)
		assert.ElementsMatch(t, ids(products), ids(got), "sort %q is not a permutation", sortBy)
	}
}

func TestSortStability(t *testing.T) {
	// Two products with identical ratings: the one earlier in input order
	// must stay first.
	products := []Product{
		{ID: 10, Name: "First", Rating: 4.0, Reviews: 5},
		{ID: 11, Name: "Second", Rating: 4.0, Reviews: 5},
		{ID: 12, Name: "Third", Rating: 5.0, Reviews: 5},
	}

	got := Apply(products, FilterSpec{SortBy: SortRating})
	assert.Equal(t, []int{12, 10, 11}, ids(got))

	got = Apply(products, FilterSpec{SortBy: SortPopular})
	assert.Equal(t, []int{10, 11, 12}, ids(got))
}

func TestFinalPrice(t *testing.T) {
	p := Product{Price: 1000, Discount: 25}
	assert.InDelta(t, 750, p.FinalPrice(), 1e-9)

	// No discount sells at list price.
	p = Product{Price: 1000}
	assert.Equal(t, 1000.0, p.FinalPrice())
}
