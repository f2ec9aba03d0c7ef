package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/cartwise/cartwise/internal/db"
	"github.com/cartwise/cartwise/internal/domain"
	domcat "github.com/cartwise/cartwise/internal/domain/catalog"
)

// PutProduct writes a product record.
func (r *Repo) PutProduct(ctx context.Context, p domcat.Product) error {
	return r.put(ctx, collProducts, p.ID(), productToRecord(p))
}

// GetProduct returns a product by id.
func (r *Repo) GetProduct(ctx context.Context, id string) (domcat.Product, error) {
	raw, err := r.store.JSONGet(ctx, r.key(collProducts, id), "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domcat.Product{}, domain.ErrProductNotFound
		}
		return domcat.Product{}, storeErr(fmt.Errorf("json.get product %s: %w", id, err))
	}
	return parseProduct(raw)
}

// ListProducts returns every product record. No ordering guarantee.
func (r *Repo) ListProducts(ctx context.Context) ([]domcat.Product, error) {
	return r.listProducts(ctx, func(domcat.Product) bool { return true })
}

// ListProductsByCategory returns all products of one category.
func (r *Repo) ListProductsByCategory(ctx context.Context, categoryID string) ([]domcat.Product, error) {
	return r.listProducts(ctx, func(p domcat.Product) bool {
		return p.CategoryID() == categoryID
	})
}

// ListProductsByCategories returns all products whose category is in the
// given id set. One set-membership pass over a single pipelined fetch --
// never one lookup per category.
func (r *Repo) ListProductsByCategories(ctx context.Context, categoryIDs []string) ([]domcat.Product, error) {
	if len(categoryIDs) == 0 {
		return []domcat.Product{}, nil
	}
	idSet := make(map[string]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		idSet[id] = struct{}{}
	}
	return r.listProducts(ctx, func(p domcat.Product) bool {
		_, ok := idSet[p.CategoryID()]
		return ok
	})
}

func (r *Repo) listProducts(ctx context.Context, keep func(domcat.Product) bool) ([]domcat.Product, error) {
	raws, err := r.listRaw(ctx, collProducts)
	if err != nil {
		return nil, err
	}

	products := make([]domcat.Product, 0, len(raws))
	for _, raw := range raws {
		if raw == nil {
			continue
		}
		p, err := parseProduct(raw)
		if err != nil {
			return nil, fmt.Errorf("list products: %w", err)
		}
		if keep(p) {
			products = append(products, p)
		}
	}
	return products, nil
}
