package seed

import (
	"context"

	domcat "github.com/cartwise/cartwise/internal/domain/catalog"
)

// Repository defines the storage operations seeding needs: a full wipe
// followed by plain writes.
type Repository interface {
	Reset(ctx context.Context) error
	PutStore(ctx context.Context, st domcat.Store) error
	PutSection(ctx context.Context, sec domcat.Section) error
	PutCategory(ctx context.Context, cat domcat.Category) error
	PutProduct(ctx context.Context, p domcat.Product) error
}
