package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/cartwise/cartwise/internal/db"
	"github.com/cartwise/cartwise/internal/domain"
	domcat "github.com/cartwise/cartwise/internal/domain/catalog"
)

// PutSection writes a section record.
func (r *Repo) PutSection(ctx context.Context, sec domcat.Section) error {
	return r.put(ctx, collSections, sec.ID(), sectionToRecord(sec))
}

// GetSection returns a section by id.
func (r *Repo) GetSection(ctx context.Context, id string) (domcat.Section, error) {
	raw, err := r.store.JSONGet(ctx, r.key(collSections, id), "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domcat.Section{}, domain.ErrSectionNotFound
		}
		return domcat.Section{}, storeErr(fmt.Errorf("json.get section %s: %w", id, err))
	}
	return parseSection(raw)
}

// ListSectionsByStore returns all sections owned by the given store.
// The record store has no secondary indexes; the store filter is applied
// over one pipelined fetch of the collection.
func (r *Repo) ListSectionsByStore(ctx context.Context, storeID string) ([]domcat.Section, error) {
	raws, err := r.listRaw(ctx, collSections)
	if err != nil {
		return nil, err
	}

	sections := make([]domcat.Section, 0, len(raws))
	for _, raw := range raws {
		if raw == nil {
			continue
		}
		sec, err := parseSection(raw)
		if err != nil {
			return nil, fmt.Errorf("list sections: %w", err)
		}
		if sec.StoreID() == storeID {
			sections = append(sections, sec)
		}
	}
	return sections, nil
}
