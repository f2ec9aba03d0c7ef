package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/cartwise/cartwise/internal/db"
	"github.com/cartwise/cartwise/internal/domain"
	domcat "github.com/cartwise/cartwise/internal/domain/catalog"
)

// PutCategory writes a category record.
func (r *Repo) PutCategory(ctx context.Context, cat domcat.Category) error {
	return r.put(ctx, collCategories, cat.ID(), categoryToRecord(cat))
}

// GetCategory returns a category by id.
func (r *Repo) GetCategory(ctx context.Context, id string) (domcat.Category, error) {
	raw, err := r.store.JSONGet(ctx, r.key(collCategories, id), "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domcat.Category{}, domain.ErrCategoryNotFound
		}
		return domcat.Category{}, storeErr(fmt.Errorf("json.get category %s: %w", id, err))
	}
	return parseCategory(raw)
}

// ListCategoriesByStore returns all categories owned by the given store.
func (r *Repo) ListCategoriesByStore(ctx context.Context, storeID string) ([]domcat.Category, error) {
	raws, err := r.listRaw(ctx, collCategories)
	if err != nil {
		return nil, err
	}

	categories := make([]domcat.Category, 0, len(raws))
	for _, raw := range raws {
		if raw == nil {
			continue
		}
		cat, err := parseCategory(raw)
		if err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		if cat.StoreID() == storeID {
			categories = append(categories, cat)
		}
	}
	return categories, nil
}
