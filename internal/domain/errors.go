// Package domain holds the error taxonomy shared across services.
package domain

import "errors"

var (
	// ErrValidation signals malformed or out-of-range input.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrStoreNotFound signals an unresolved store identifier.
	ErrStoreNotFound = errors.New("store not found")
	// ErrSectionNotFound signals an unresolved section identifier.
	ErrSectionNotFound = errors.New("section not found")
	// ErrCategoryNotFound signals an unresolved category identifier.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrProductNotFound signals an unresolved product identifier.
	ErrProductNotFound = errors.New("product not found")
	// ErrStoreUnavailable signals the record store cannot be reached.
	// Always fatal to the current request; never retried.
	ErrStoreUnavailable = errors.New("record store unavailable")
)
