package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"oro/internal/models"
)

type catalogFile struct {
	Products []models.Product `yaml:"products"`
}

// LoadFile reads a catalog from a YAML document with a top-level "products"
// list. JSON is accepted as well since it parses as YAML.
func LoadFile(path string) ([]models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) ([]models.Product, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	for i := range f.Products {
		normalize(&f.Products[i])
	}
	if err := Validate(f.Products); err != nil {
		return nil, err
	}
	return f.Products, nil
}

// Validate checks every product's fields and that ids are unique.
func Validate(products []models.Product) error {
	v := validator.New()
	seen := make(map[string]bool, len(products))
	var errs []error
	for i, p := range products {
		if err := v.Struct(p); err != nil {
			errs = append(errs, fmt.Errorf("product %d (%q): %w", i, p.ID, err))
			continue
		}
		if seen[p.ID] {
			errs = append(errs, fmt.Errorf("product %d: duplicate id %q", i, p.ID))
		}
		seen[p.ID] = true
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return nil
}

// normalize lowercases the fields the search corpus relies on.
func normalize(p *models.Product) {
	p.Color = strings.ToLower(strings.TrimSpace(p.Color))
	for i, t := range p.Tags {
		p.Tags[i] = strings.ToLower(strings.TrimSpace(t))
	}
}
