package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/example/aromique/internal/models"
)

// Repository is the immutable product collection a catalog session works
// against. It is built once from a bundle and never mutated; a reload
// produces a fresh Repository value.
type Repository struct {
	products []models.Product
	brands   []models.Brand
	byID     map[string]models.Product
}

// NewRepository wraps a product and brand collection. Product IDs are assumed
// unique within one bundle. When brands is empty the aggregates are derived
// from the products, so hand-written bundles can omit the brand list.
func NewRepository(products []models.Product, brands []models.Brand) *Repository {
	repo := &Repository{
		products: products,
		byID:     make(map[string]models.Product, len(products)),
	}
	for _, p := range products {
		repo.byID[p.ID] = p
	}

	if len(brands) == 0 {
		brands = deriveBrands(products)
	}
	repo.brands = brands

	return repo
}

// Products returns the full product collection. Callers must treat the slice
// as read-only.
func (r *Repository) Products() []models.Product {
	return r.products
}

// Brands returns the brand aggregates supplied with the bundle.
func (r *Repository) Brands() []models.Brand {
	return r.brands
}

// Get looks a product up by ID.
func (r *Repository) Get(id string) (models.Product, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// Len reports the number of products in the repository.
func (r *Repository) Len() int {
	return len(r.products)
}

type bundle struct {
	Products []models.Product `json:"products"`
	Brands   []models.Brand   `json:"brands"`
}

// LoadBundle reads a catalog bundle from a JSON file on disk.
func LoadBundle(path string) (*Repository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog bundle: %w", err)
	}

	var b bundle
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("parse catalog bundle %s: %w", path, err)
	}

	return NewRepository(b.Products, b.Brands), nil
}

func deriveBrands(products []models.Product) []models.Brand {
	counts := map[string]int{}
	for _, p := range products {
		if p.Brand != "" {
			counts[p.Brand]++
		}
	}

	brands := make([]models.Brand, 0, len(counts))
	for name, count := range counts {
		brands = append(brands, models.Brand{Name: name, Count: count})
	}
	sort.Slice(brands, func(i, j int) bool { return brands[i].Name < brands[j].Name })
	return brands
}
