package catalog

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cartwise/cartwise/internal/domain"
)

// Category is a merchandising grouping of products within a section.
type Category struct {
	id        string
	storeID   string
	sectionID string
	name      string
	color     string
}

// NewCategory validates and creates a Category with a generated identifier.
// The cross-consistency rule (the section must belong to the same store) is
// enforced at the service boundary.
func NewCategory(storeID, sectionID, name, color string) (Category, error) {
	if storeID == "" {
		return Category{}, fmt.Errorf("category store id is required: %w", domain.ErrValidation)
	}
	if sectionID == "" {
		return Category{}, fmt.Errorf("category section id is required: %w", domain.ErrValidation)
	}
	if name == "" {
		return Category{}, fmt.Errorf("category name is required: %w", domain.ErrValidation)
	}

	return Category{
		id:        uuid.NewString(),
		storeID:   storeID,
		sectionID: sectionID,
		name:      name,
		color:     color,
	}, nil
}

// ReconstructCategory creates a Category without validation (storage hydration).
func ReconstructCategory(id, storeID, sectionID, name, color string) Category {
	return Category{
		id:        id,
		storeID:   storeID,
		sectionID: sectionID,
		name:      name,
		color:     color,
	}
}

// ID returns the category identifier.
func (c Category) ID() string { return c.id }

// StoreID returns the owning store identifier.
func (c Category) StoreID() string { return c.storeID }

// SectionID returns the owning section identifier.
func (c Category) SectionID() string { return c.sectionID }

// Name returns the category name.
func (c Category) Name() string { return c.name }

// Color returns the display color.
func (c Category) Color() string { return c.color }
