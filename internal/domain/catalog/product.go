package catalog

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cartwise/cartwise/internal/domain"
)

// Product is a sellable item belonging to exactly one category. The section
// identifier is denormalized from the category; the category's value is
// authoritative when the two disagree.
type Product struct {
	id          string
	categoryID  string
	sectionID   string
	name        string
	price       float64
	description string
}

// NewProduct validates and creates a Product with a generated identifier.
// Price must be non-negative (defaults to 0); description is optional.
func NewProduct(categoryID, sectionID, name string, price float64, description string) (Product, error) {
	if categoryID == "" {
		return Product{}, fmt.Errorf("product category id is required: %w", domain.ErrValidation)
	}
	if name == "" {
		return Product{}, fmt.Errorf("product name is required: %w", domain.ErrValidation)
	}
	if price < 0 {
		return Product{}, fmt.Errorf("product price must be non-negative, got %v: %w", price, domain.ErrValidation)
	}

	return Product{
		id:          uuid.NewString(),
		categoryID:  categoryID,
		sectionID:   sectionID,
		name:        name,
		price:       price,
		description: description,
	}, nil
}

// ReconstructProduct creates a Product without validation (storage hydration).
func ReconstructProduct(id, categoryID, sectionID, name string, price float64, description string) Product {
	return Product{
		id:          id,
		categoryID:  categoryID,
		sectionID:   sectionID,
		name:        name,
		price:       price,
		description: description,
	}
}

// ID returns the product identifier.
func (p Product) ID() string { return p.id }

// CategoryID returns the owning category identifier.
func (p Product) CategoryID() string { return p.categoryID }

// SectionID returns the denormalized section identifier.
func (p Product) SectionID() string { return p.sectionID }

// Name returns the product name.
func (p Product) Name() string { return p.name }

// Price returns the unit price.
func (p Product) Price() float64 { return p.price }

// Description returns the optional description.
func (p Product) Description() string { return p.description }
