package search

import (
	"context"

	domcat "github.com/cartwise/cartwise/internal/domain/catalog"
)

// Repository defines the storage reads the search needs.
type Repository interface {
	ListProducts(ctx context.Context) ([]domcat.Product, error)
}
