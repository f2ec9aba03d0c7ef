// Package catalog implements creation and lookup of catalog entities,
// enforcing the referential rules the record store cannot.
package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cartwise/cartwise/internal/domain"
	domcat "github.com/cartwise/cartwise/internal/domain/catalog"
	"github.com/cartwise/cartwise/internal/logger"
)

// Service handles catalog entity creation and lookups.
type Service struct {
	repo Repository
}

// New creates a catalog service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateStore validates and persists a new store.
func (s *Service) CreateStore(ctx context.Context, name, address, layoutMap string) (domcat.Store, error) {
	st, err := domcat.NewStore(name, address, layoutMap)
	if err != nil {
		return domcat.Store{}, err
	}
	if err := s.repo.PutStore(ctx, st); err != nil {
		return domcat.Store{}, fmt.Errorf("put store: %w", err)
	}
	return st, nil
}

// ListStores returns every store. No filter, no pagination: the domain
// bounds the number of stores to a handful.
func (s *Service) ListStores(ctx context.Context) ([]domcat.Store, error) {
	stores, err := s.repo.ListStores(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return stores, nil
}

// CreateSection validates and persists a new section. The owning store must
// exist, and the map element identifier must be unique within that store.
func (s *Service) CreateSection(ctx context.Context, storeID, name, color, mapElementID string) (domcat.Section, error) {
	sec, err := domcat.NewSection(storeID, name, color, mapElementID)
	if err != nil {
		return domcat.Section{}, err
	}

	exists, err := s.repo.StoreExists(ctx, storeID)
	if err != nil {
		return domcat.Section{}, fmt.Errorf("check store %s: %w", storeID, err)
	}
	if !exists {
		return domcat.Section{}, domain.ErrStoreNotFound
	}

	siblings, err := s.repo.ListSectionsByStore(ctx, storeID)
	if err != nil {
		return domcat.Section{}, fmt.Errorf("list sections of %s: %w", storeID, err)
	}
	for _, sib := range siblings {
		if sib.MapElementID() == mapElementID {
			return domcat.Section{}, fmt.Errorf(
				"map element %q already bound to section %s: %w",
				mapElementID, sib.ID(), domain.ErrValidation,
			)
		}
	}

	if err := s.repo.PutSection(ctx, sec); err != nil {
		return domcat.Section{}, fmt.Errorf("put section: %w", err)
	}
	return sec, nil
}

// CreateCategory validates and persists a new category. The referenced
// section must belong to the given store.
func (s *Service) CreateCategory(ctx context.Context, storeID, sectionID, name, color string) (domcat.Category, error) {
	cat, err := domcat.NewCategory(storeID, sectionID, name, color)
	if err != nil {
		return domcat.Category{}, err
	}

	sec, err := s.repo.GetSection(ctx, sectionID)
	if err != nil {
		return domcat.Category{}, fmt.Errorf("get section %s: %w", sectionID, err)
	}
	if sec.StoreID() != storeID {
		return domcat.Category{}, fmt.Errorf(
			"section %s belongs to store %s, not %s: %w",
			sectionID, sec.StoreID(), storeID, domain.ErrValidation,
		)
	}

	if err := s.repo.PutCategory(ctx, cat); err != nil {
		return domcat.Category{}, fmt.Errorf("put category: %w", err)
	}
	return cat, nil
}

// CreateProduct validates and persists a new product. A section identifier
// that disagrees with the parent category is a data-quality issue, not a
// failure: the category's value is authoritative, the product's is a
// denormalized hint. The mismatch is logged, never corrected.
func (s *Service) CreateProduct(
	ctx context.Context, categoryID, sectionID, name string, price float64, description string,
) (domcat.Product, error) {
	p, err := domcat.NewProduct(categoryID, sectionID, name, price, description)
	if err != nil {
		return domcat.Product{}, err
	}

	cat, err := s.repo.GetCategory(ctx, categoryID)
	if err != nil {
		return domcat.Product{}, fmt.Errorf("get category %s: %w", categoryID, err)
	}
	if sectionID != "" && sectionID != cat.SectionID() {
		logger.FromContext(ctx).Warn("product section disagrees with category section",
			zap.String("product", name),
			zap.String("category_id", categoryID),
			zap.String("product_section_id", sectionID),
			zap.String("category_section_id", cat.SectionID()),
		)
	}

	if err := s.repo.PutProduct(ctx, p); err != nil {
		return domcat.Product{}, fmt.Errorf("put product: %w", err)
	}
	return p, nil
}

// GetProduct returns a product by id.
func (s *Service) GetProduct(ctx context.Context, id string) (domcat.Product, error) {
	p, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return domcat.Product{}, fmt.Errorf("get product %s: %w", id, err)
	}
	return p, nil
}

// ListProductsByCategory returns all products of one category, unordered.
func (s *Service) ListProductsByCategory(ctx context.Context, categoryID string) ([]domcat.Product, error) {
	products, err := s.repo.ListProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list products of %s: %w", categoryID, err)
	}
	return products, nil
}
