// Package storeview assembles the full navigation view of a single store:
// the store itself plus its sections, categories and products.
package storeview

import (
	"context"
	"fmt"

	domcat "github.com/cartwise/cartwise/internal/domain/catalog"
)

// View is the complete catalog of one store. Slices are never nil, so an
// empty store renders as empty lists rather than nulls.
type View struct {
	Store      domcat.Store
	Sections   []domcat.Section
	Categories []domcat.Category
	Products   []domcat.Product
}

// Service assembles store views.
type Service struct {
	repo Repository
}

// New creates a storeview service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the aggregated view of one store. The store lookup gates
// everything else: a missing store fails before any collection is read.
// Products are resolved in one batch against the store's category id set.
func (s *Service) Get(ctx context.Context, storeID string) (View, error) {
	st, err := s.repo.GetStore(ctx, storeID)
	if err != nil {
		return View{}, fmt.Errorf("get store %s: %w", storeID, err)
	}

	sections, err := s.repo.ListSectionsByStore(ctx, storeID)
	if err != nil {
		return View{}, fmt.Errorf("list sections of %s: %w", storeID, err)
	}

	categories, err := s.repo.ListCategoriesByStore(ctx, storeID)
	if err != nil {
		return View{}, fmt.Errorf("list categories of %s: %w", storeID, err)
	}

	categoryIDs := make([]string, 0, len(categories))
	for _, cat := range categories {
		categoryIDs = append(categoryIDs, cat.ID())
	}
	products, err := s.repo.ListProductsByCategories(ctx, categoryIDs)
	if err != nil {
		return View{}, fmt.Errorf("list products of %s: %w", storeID, err)
	}

	if sections == nil {
		sections = []domcat.Section{}
	}
	if categories == nil {
		categories = []domcat.Category{}
	}
	if products == nil {
		products = []domcat.Product{}
	}

	return View{
		Store:      st,
		Sections:   sections,
		Categories: categories,
		Products:   products,
	}, nil
}
