package catalog

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cartwise/cartwise/internal/domain"
)

// Section is a labeled physical region of a store's floor map, linked to one
// highlightable map element.
type Section struct {
	id           string
	storeID      string
	name         string
	color        string
	mapElementID string
}

// NewSection validates and creates a Section with a generated identifier.
// The map element identifier must be unique within the owning store; that
// rule is enforced at the service boundary, not here.
func NewSection(storeID, name, color, mapElementID string) (Section, error) {
	if storeID == "" {
		return Section{}, fmt.Errorf("section store id is required: %w", domain.ErrValidation)
	}
	if name == "" {
		return Section{}, fmt.Errorf("section name is required: %w", domain.ErrValidation)
	}
	if mapElementID == "" {
		return Section{}, fmt.Errorf("section map element id is required: %w", domain.ErrValidation)
	}

	return Section{
		id:           uuid.NewString(),
		storeID:      storeID,
		name:         name,
		color:        color,
		mapElementID: mapElementID,
	}, nil
}

// ReconstructSection creates a Section without validation (storage hydration).
func ReconstructSection(id, storeID, name, color, mapElementID string) Section {
	return Section{
		id:           id,
		storeID:      storeID,
		name:         name,
		color:        color,
		mapElementID: mapElementID,
	}
}

// ID returns the section identifier.
func (s Section) ID() string { return s.id }

// StoreID returns the owning store identifier.
func (s Section) StoreID() string { return s.storeID }

// Name returns the section name.
func (s Section) Name() string { return s.name }

// Color returns the highlight color.
func (s Section) Color() string { return s.color }

// MapElementID returns the identifier of the layout map element to highlight.
func (s Section) MapElementID() string { return s.mapElementID }
