package storeview

import (
	"context"

	domcat "github.com/cartwise/cartwise/internal/domain/catalog"
)

// Repository defines the storage reads the aggregation needs.
type Repository interface {
	GetStore(ctx context.Context, id string) (domcat.Store, error)
	ListSectionsByStore(ctx context.Context, storeID string) ([]domcat.Section, error)
	ListCategoriesByStore(ctx context.Context, storeID string) ([]domcat.Category, error)
	ListProductsByCategories(ctx context.Context, categoryIDs []string) ([]domcat.Product, error)
}
