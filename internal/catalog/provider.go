// Package catalog supplies the read-only product catalog.
package catalog

import (
	"fmt"

	"oro/internal/models"
)

// Provider hands out consistent, caller-owned snapshots of the catalog.
type Provider interface {
	Snapshot() []models.Product
	Lookup(id string) (*models.Product, error)
}

// Static serves a catalog fixed at construction time.
type Static struct {
	products []models.Product
	byID     map[string]int
}

// NewStatic builds a Static provider. The products are validated and copied,
// so later changes to the argument do not leak into the catalog.
func NewStatic(products []models.Product) (*Static, error) {
	if err := Validate(products); err != nil {
		return nil, err
	}
	s := &Static{
		products: cloneProducts(products),
		byID:     make(map[string]int, len(products)),
	}
	for i, p := range s.products {
		s.byID[p.ID] = i
	}
	return s, nil
}

// Snapshot returns a deep copy of the catalog in its canonical order.
func (s *Static) Snapshot() []models.Product {
	return cloneProducts(s.products)
}

// Lookup finds a product by id.
func (s *Static) Lookup(id string) (*models.Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, models.ErrNotFound)
	}
	p := cloneProduct(s.products[i])
	return &p, nil
}

// Len is the number of products in the catalog.
func (s *Static) Len() int { return len(s.products) }

func cloneProducts(in []models.Product) []models.Product {
	out := make([]models.Product, len(in))
	for i, p := range in {
		out[i] = cloneProduct(p)
	}
	return out
}

// cloneProduct copies the slice fields. They come back non-nil so products
// always serialize tags and ethics flags as JSON arrays.
func cloneProduct(p models.Product) models.Product {
	p.Tags = cloneStrings(p.Tags)
	p.EthicsFlags = cloneStrings(p.EthicsFlags)
	return p
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
