// Package catalog provides an in-memory product repository.
// The catalog is seeded at startup and read-only afterwards; it stands in for
// an external product service until one is integrated.
package catalog

import (
	"context"

	"orderservice/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// InMemoryProductRepository resolves products from a fixed in-memory set.
// Safe for concurrent use: the backing map is never mutated after construction.
type InMemoryProductRepository struct {
	products map[string]*product.Product
}

// NewInMemoryProductRepository creates a repository over the given products.
func NewInMemoryProductRepository(products []*product.Product) *InMemoryProductRepository {
	byID := make(map[string]*product.Product, len(products))
	for _, p := range products {
		byID[p.ID()] = p
	}
	return &InMemoryProductRepository{products: byID}
}

// NewSeededProductRepository creates a repository with the default product set.
func NewSeededProductRepository() (*InMemoryProductRepository, error) {
	seed := []struct {
		id    string
		name  string
		price int64
		stock int
	}{
		{"1", "Product A", 100, 50},
		{"2", "Product B", 200, 30},
		{"3", "Product C", 300, 20},
	}

	products := make([]*product.Product, 0, len(seed))
	for _, s := range seed {
		p, err := product.NewProduct(s.id, s.name, decimal.NewFromInt(s.price), s.stock)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return NewInMemoryProductRepository(products), nil
}

// FindByIDs returns the products matching the given ids, in the order the ids
// were requested. Unknown ids are silently omitted; callers that need full
// resolution must compare result cardinality against the request.
func (r *InMemoryProductRepository) FindByIDs(_ context.Context, ids []string) ([]*product.Product, error) {
	found := make([]*product.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			found = append(found, p)
		}
	}
	return found, nil
}
