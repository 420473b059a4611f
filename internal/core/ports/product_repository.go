package ports

import (
	"context"

	"orderservice/internal/core/domain/model/product"
)

// ProductRepository resolves catalog snapshots for the products referenced by
// an order request. The returned snapshots carry the stock level observed at
// resolution time; they are advisory and are not decremented by order creation.
type ProductRepository interface {
	// FindByIDs returns the products whose identifiers appear in ids.
	// Unknown identifiers are silently omitted: the workflow compares the
	// returned cardinality against the requested set and rejects the request
	// before the builder ever sees a mismatch.
	FindByIDs(ctx context.Context, ids []string) ([]*product.Product, error)
}
