package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/model"
)

// Loader defines the interface for loading the catalogue document.
type Loader interface {
	// Load reads a JSON catalogue document and returns its products.
	Load(ctx context.Context, path string) ([]model.Product, error)
}

// Catalog is the immutable in-memory product catalogue. It is built
// once at startup and never mutated, so it is safe for concurrent
// reads without locking.
type Catalog struct {
	products []model.Product
	byID     map[int]*model.Product
}

// New builds a catalogue index from the loaded products.
func New(products []model.Product) *Catalog {
	sorted := make([]model.Product, len(products))
	copy(sorted, products)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	byID := make(map[int]*model.Product, len(sorted))
	for i := range sorted {
		byID[sorted[i].ID] = &sorted[i]
	}

	return &Catalog{
		products: sorted,
		byID:     byID,
	}
}

// All returns every product, ordered by id.
func (c *Catalog) All() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Size returns the number of products in the catalogue.
func (c *Catalog) Size() int {
	return len(c.products)
}

// ByID returns the product with the given id, or nil if absent.
func (c *Catalog) ByID(id int) *model.Product {
	p, ok := c.byID[id]
	if !ok {
		return nil
	}
	out := *p
	return &out
}

// Search returns products whose name, short description or category
// contains the query, case-insensitively. An empty query matches
// everything.
func (c *Catalog) Search(query string) []model.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c.All()
	}

	var matches []model.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.ShortDescription), query) ||
			strings.Contains(strings.ToLower(p.Category), query) {
			matches = append(matches, p)
		}
	}
	return matches
}

// Filter returns products in the given category. The match is
// case-insensitive; "all" or an empty category matches everything.
func (c *Catalog) Filter(category string) []model.Product {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, "all") {
		return c.All()
	}

	var matches []model.Product
	for _, p := range c.products {
		if strings.EqualFold(p.Category, category) {
			matches = append(matches, p)
		}
	}
	return matches
}

// Categories returns the distinct categories present, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories
}
