// Package catalog stores the four catalog collections as keyed JSON records.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cartwise/cartwise/internal/db"
	"github.com/cartwise/cartwise/internal/domain"
)

// The four record collections. Each record lives under
// <prefix><collection>:<id>; the store enforces nothing beyond key lookup.
const (
	collStores     = "stores"
	collSections   = "sections"
	collCategories = "categories"
	collProducts   = "products"
)

// store is the consumer interface for catalog records (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	JSONGetMulti(ctx context.Context, keys []string, path string) ([][]byte, error)
	DelMulti(ctx context.Context, keys []string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements the repository contracts of the catalog use cases.
type Repo struct {
	store  store
	prefix string
}

// New creates a catalog repository. keyPrefix namespaces all record keys.
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, prefix: keyPrefix}
}

func (r *Repo) key(collection, id string) string {
	return fmt.Sprintf("%s%s:%s", r.prefix, collection, id)
}

func (r *Repo) pattern(collection string) string {
	return r.key(collection, "*")
}

// put marshals and writes one record.
func (r *Repo) put(ctx context.Context, collection, id string, rec any) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal %s record: %w", collection, err)
	}
	if err := r.store.JSONSet(ctx, r.key(collection, id), "$", data); err != nil {
		return storeErr(fmt.Errorf("json.set %s: %w", collection, err))
	}
	return nil
}

// listRaw fetches every record of a collection: one SCAN for the keys, one
// pipelined multi-get for the bodies. Entries that vanished between the two
// steps come back nil and are skipped.
func (r *Repo) listRaw(ctx context.Context, collection string) ([][]byte, error) {
	keys, err := r.store.Scan(ctx, r.pattern(collection))
	if err != nil {
		return nil, storeErr(fmt.Errorf("scan %s: %w", collection, err))
	}
	if len(keys) == 0 {
		return nil, nil
	}
	raws, err := r.store.JSONGetMulti(ctx, keys, "$")
	if err != nil {
		return nil, storeErr(fmt.Errorf("json.get %s: %w", collection, err))
	}
	return raws, nil
}

// Reset wipes all four collections. Not atomic: a concurrent writer can
// observe or survive a partially-cleared state.
func (r *Repo) Reset(ctx context.Context) error {
	for _, collection := range []string{collStores, collSections, collCategories, collProducts} {
		keys, err := r.store.Scan(ctx, r.pattern(collection))
		if err != nil {
			return storeErr(fmt.Errorf("scan %s: %w", collection, err))
		}
		if err := r.store.DelMulti(ctx, keys); err != nil {
			return storeErr(fmt.Errorf("del %s: %w", collection, err))
		}
	}
	return nil
}

// storeErr marks unreachable-store failures so callers can map them to the
// StoreUnavailable outcome; everything else passes through.
func storeErr(err error) error {
	if errors.Is(err, db.ErrUnavailable) {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return err
}
