package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/cartwise/cartwise/internal/db"
	"github.com/cartwise/cartwise/internal/domain"
	domcat "github.com/cartwise/cartwise/internal/domain/catalog"
)

// PutStore writes a store record.
func (r *Repo) PutStore(ctx context.Context, st domcat.Store) error {
	return r.put(ctx, collStores, st.ID(), storeToRecord(st))
}

// GetStore returns a store by id.
func (r *Repo) GetStore(ctx context.Context, id string) (domcat.Store, error) {
	raw, err := r.store.JSONGet(ctx, r.key(collStores, id), "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domcat.Store{}, domain.ErrStoreNotFound
		}
		return domcat.Store{}, storeErr(fmt.Errorf("json.get store %s: %w", id, err))
	}
	return parseStore(raw)
}

// StoreExists reports whether a store record exists.
func (r *Repo) StoreExists(ctx context.Context, id string) (bool, error) {
	exists, err := r.store.Exists(ctx, r.key(collStores, id))
	if err != nil {
		return false, storeErr(fmt.Errorf("exists store %s: %w", id, err))
	}
	return exists, nil
}

// ListStores returns every store record. No ordering guarantee.
func (r *Repo) ListStores(ctx context.Context) ([]domcat.Store, error) {
	raws, err := r.listRaw(ctx, collStores)
	if err != nil {
		return nil, err
	}

	stores := make([]domcat.Store, 0, len(raws))
	for _, raw := range raws {
		if raw == nil {
			continue
		}
		st, err := parseStore(raw)
		if err != nil {
			return nil, fmt.Errorf("list stores: %w", err)
		}
		stores = append(stores, st)
	}
	return stores, nil
}
