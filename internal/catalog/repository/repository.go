package repository

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/sportshop/storefront/internal/catalog/domain"
)

//go:embed catalog.json
var catalogJSON []byte

// document mirrors the shape of the embedded catalog file
type document struct {
	Products   []domain.Product `json:"products"`
	Categories []string         `json:"categories"`
	Brands     []string         `json:"brands"`
}

// StaticRepository serves the embedded catalog document. The catalog is
// read-only after construction, so no locking is needed.
type StaticRepository struct {
	products   []domain.Product
	byID       map[int]*domain.Product
	categories []string
	brands     []string
}

// NewStaticRepository decodes the embedded catalog document
func NewStaticRepository() (*StaticRepository, error) {
	return newFromJSON(catalogJSON)
}

// NewFromDocument builds a repository from raw JSON, used by tests to load
// small fixtures.
func NewFromDocument(raw []byte) (*StaticRepository, error) {
	return newFromJSON(raw)
}

func newFromJSON(raw []byte) (*StaticRepository, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog document: %w", err)
	}

	repo := &StaticRepository{
		products:   doc.Products,
		byID:       make(map[int]*domain.Product, len(doc.Products)),
		categories: doc.Categories,
		brands:     doc.Brands,
	}
	for i := range repo.products {
		repo.byID[repo.products[i].ID] = &repo.products[i]
	}
	return repo, nil
}

// All returns the catalog in load order. Callers receive a copy so the
// backing slice stays immutable.
func (r *StaticRepository) All() []domain.Product {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *StaticRepository) FindByID(id int) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	// Copy to keep the catalog immutable.
	cp := *p
	return &cp, nil
}

func (r *StaticRepository) Categories() []string {
	out := make([]string, len(r.categories))
	copy(out, r.categories)
	return out
}

func (r *StaticRepository) Brands() []string {
	out := make([]string, len(r.brands))
	copy(out, r.brands)
	return out
}

func (r *StaticRepository) Count() int {
	return len(r.products)
}
