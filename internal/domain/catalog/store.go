// Package catalog defines the merchandising entities and their creation rules.
package catalog

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cartwise/cartwise/internal/domain"
)

// Store is a single physical retail location with a vector-graphic floor map
// (immutable value object).
type Store struct {
	id        string
	name      string
	address   string
	layoutMap string
	createdAt time.Time
}

// NewStore validates and creates a Store with a generated identifier.
// Name, address and layout map are required.
func NewStore(name, address, layoutMap string) (Store, error) {
	if name == "" {
		return Store{}, fmt.Errorf("store name is required: %w", domain.ErrValidation)
	}
	if address == "" {
		return Store{}, fmt.Errorf("store address is required: %w", domain.ErrValidation)
	}
	if layoutMap == "" {
		return Store{}, fmt.Errorf("store layout map is required: %w", domain.ErrValidation)
	}

	return Store{
		id:        uuid.NewString(),
		name:      name,
		address:   address,
		layoutMap: layoutMap,
		createdAt: time.Now().UTC(),
	}, nil
}

// ReconstructStore creates a Store without validation (storage hydration).
func ReconstructStore(id, name, address, layoutMap string, createdAt time.Time) Store {
	return Store{
		id:        id,
		name:      name,
		address:   address,
		layoutMap: layoutMap,
		createdAt: createdAt,
	}
}

// ID returns the store identifier.
func (s Store) ID() string { return s.id }

// Name returns the store name.
func (s Store) Name() string { return s.name }

// Address returns the store address.
func (s Store) Address() string { return s.address }

// LayoutMap returns the serialized vector floor map.
func (s Store) LayoutMap() string { return s.layoutMap }

// CreatedAt returns the creation timestamp (UTC).
func (s Store) CreatedAt() time.Time { return s.createdAt }
