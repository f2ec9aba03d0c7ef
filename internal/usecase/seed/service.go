// Package seed wipes the record store and loads the demo supermarket.
package seed

import (
	"context"
	"fmt"

	domcat "github.com/cartwise/cartwise/internal/domain/catalog"
)

// Result reports what a seeding run created.
type Result struct {
	StoreID    string
	Sections   int
	Categories int
	Products   int
}

// Service resets the record store and writes the demo dataset.
type Service struct {
	repo Repository
}

// New creates a seed service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Run wipes all catalog collections and loads the fixture. The wipe-first
// ordering makes repeated runs converge on the same dataset instead of
// piling up duplicates. Products take their section from the parent
// category, so the loaded data is referentially consistent throughout.
func (s *Service) Run(ctx context.Context) (Result, error) {
	if err := s.repo.Reset(ctx); err != nil {
		return Result{}, fmt.Errorf("reset: %w", err)
	}

	st, err := domcat.NewStore(fixtureStoreName, fixtureStoreAddress, fixtureLayoutMap)
	if err != nil {
		return Result{}, fmt.Errorf("build store: %w", err)
	}
	if err := s.repo.PutStore(ctx, st); err != nil {
		return Result{}, fmt.Errorf("put store: %w", err)
	}

	sections := make([]domcat.Section, 0, len(fixtureSections))
	for _, fs := range fixtureSections {
		sec, err := domcat.NewSection(st.ID(), fs.name, fs.color, fs.mapElementID)
		if err != nil {
			return Result{}, fmt.Errorf("build section %q: %w", fs.name, err)
		}
		if err := s.repo.PutSection(ctx, sec); err != nil {
			return Result{}, fmt.Errorf("put section %q: %w", fs.name, err)
		}
		sections = append(sections, sec)
	}

	categories := make([]domcat.Category, 0, len(fixtureCategories))
	for _, fc := range fixtureCategories {
		sec := sections[fc.sectionIdx]
		cat, err := domcat.NewCategory(st.ID(), sec.ID(), fc.name, sec.Color())
		if err != nil {
			return Result{}, fmt.Errorf("build category %q: %w", fc.name, err)
		}
		if err := s.repo.PutCategory(ctx, cat); err != nil {
			return Result{}, fmt.Errorf("put category %q: %w", fc.name, err)
		}
		categories = append(categories, cat)
	}

	for _, fp := range fixtureProducts {
		cat := categories[fp.categoryIdx]
		p, err := domcat.NewProduct(cat.ID(), cat.SectionID(), fp.name, fp.price, fp.description)
		if err != nil {
			return Result{}, fmt.Errorf("build product %q: %w", fp.name, err)
		}
		if err := s.repo.PutProduct(ctx, p); err != nil {
			return Result{}, fmt.Errorf("put product %q: %w", fp.name, err)
		}
	}

	return Result{
		StoreID:    st.ID(),
		Sections:   len(sections),
		Categories: len(categories),
		Products:   len(fixtureProducts),
	}, nil
}
