package catalog

import (
	"context"

	domcat "github.com/cartwise/cartwise/internal/domain/catalog"
)

// Repository defines the storage contract for catalog writes and lookups.
type Repository interface {
	PutStore(ctx context.Context, st domcat.Store) error
	ListStores(ctx context.Context) ([]domcat.Store, error)
	StoreExists(ctx context.Context, id string) (bool, error)
	PutSection(ctx context.Context, sec domcat.Section) error
	GetSection(ctx context.Context, id string) (domcat.Section, error)
	ListSectionsByStore(ctx context.Context, storeID string) ([]domcat.Section, error)
	PutCategory(ctx context.Context, cat domcat.Category) error
	GetCategory(ctx context.Context, id string) (domcat.Category, error)
	PutProduct(ctx context.Context, p domcat.Product) error
	GetProduct(ctx context.Context, id string) (domcat.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID string) ([]domcat.Product, error)
}
