package catalog

import (
	"context"
	"testing"

	domcat "github.com/cartwise/cartwise/internal/domain/catalog"
)

// mockRepo implements Repository for tests.
type mockRepo struct {
	putStoreFn               func(ctx context.Context, st domcat.Store) error
	listStoresFn             func(ctx context.Context) ([]domcat.Store, error)
	storeExistsFn            func(ctx context.Context, id string) (bool, error)
	putSectionFn             func(ctx context.Context, sec domcat.Section) error
	getSectionFn             func(ctx context.Context, id string) (domcat.Section, error)
	listSectionsByStoreFn    func(ctx context.Context, storeID string) ([]domcat.Section, error)
	putCategoryFn            func(ctx context.Context, cat domcat.Category) error
	getCategoryFn            func(ctx context.Context, id string) (domcat.Category, error)
	putProductFn             func(ctx context.Context, p domcat.Product) error
	getProductFn             func(ctx context.Context, id string) (domcat.Product, error)
	listProductsByCategoryFn func(ctx context.Context, categoryID string) ([]domcat.Product, error)
}

func (m *mockRepo) PutStore(ctx context.Context, st domcat.Store) error {
	if m.putStoreFn != nil {
		return m.putStoreFn(ctx, st)
	}
	return nil
}

func (m *mockRepo) ListStores(ctx context.Context) ([]domcat.Store, error) {
	if m.listStoresFn != nil {
		return m.listStoresFn(ctx)
	}
	return nil, nil
}

func (m *mockRepo) StoreExists(ctx context.Context, id string) (bool, error) {
	if m.storeExistsFn != nil {
		return m.storeExistsFn(ctx, id)
	}
	return true, nil
}

func (m *mockRepo) PutSection(ctx context.Context, sec domcat.Section) error {
	if m.putSectionFn != nil {
		return m.putSectionFn(ctx, sec)
	}
	return nil
}

func (m *mockRepo) GetSection(ctx context.Context, id string) (domcat.Section, error) {
	if m.getSectionFn != nil {
		return m.getSectionFn(ctx, id)
	}
	return domcat.Section{}, nil
}

func (m *mockRepo) ListSectionsByStore(ctx context.Context, storeID string) ([]domcat.Section, error) {
	if m.listSectionsByStoreFn != nil {
		return m.listSectionsByStoreFn(ctx, storeID)
	}
	return nil, nil
}

func (m *mockRepo) PutCategory(ctx context.Context, cat domcat.Category) error {
	if m.putCategoryFn != nil {
		return m.putCategoryFn(ctx, cat)
	}
	return nil
}

func (m *mockRepo) GetCategory(ctx context.Context, id string) (domcat.Category, error) {
	if m.getCategoryFn != nil {
		return m.getCategoryFn(ctx, id)
	}
	return domcat.Category{}, nil
}

func (m *mockRepo) PutProduct(ctx context.Context, p domcat.Product) error {
	if m.putProductFn != nil {
		return m.putProductFn(ctx, p)
	}
	return nil
}

func (m *mockRepo) GetProduct(ctx context.Context, id string) (domcat.Product, error) {
	if m.getProductFn != nil {
		return m.getProductFn(ctx, id)
	}
	return domcat.Product{}, nil
}

func (m *mockRepo) ListProductsByCategory(ctx context.Context, categoryID string) ([]domcat.Product, error) {
	if m.listProductsByCategoryFn != nil {
		return m.listProductsByCategoryFn(ctx, categoryID)
	}
	return nil, nil
}

func newTestService(t *testing.T) (*Service, *mockRepo) {
	t.Helper()
	repo := &mockRepo{}
	return New(repo), repo
}

func testSection(t *testing.T, storeID, mapElementID string) domcat.Section {
	t.Helper()
	sec, err := domcat.NewSection(storeID, "Fresh Produce", "#28a745", mapElementID)
	if err != nil {
		t.Fatalf("NewSection: %v", err)
	}
	return sec
}

func testCategory(t *testing.T, storeID, sectionID string) domcat.Category {
	t.Helper()
	cat, err := domcat.NewCategory(storeID, sectionID, "Fresh Fruits", "#28a745")
	if err != nil {
		t.Fatalf("NewCategory: %v", err)
	}
	return cat
}
