package chi

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/cartwise/cartwise/internal/domain"
	domcat "github.com/cartwise/cartwise/internal/domain/catalog"

	cataloguc "github.com/cartwise/cartwise/internal/usecase/catalog"
	healthuc "github.com/cartwise/cartwise/internal/usecase/health"
	searchuc "github.com/cartwise/cartwise/internal/usecase/search"
	seeduc "github.com/cartwise/cartwise/internal/usecase/seed"
	storeviewuc "github.com/cartwise/cartwise/internal/usecase/storeview"
)

// stubBackend is an in-memory stand-in for the catalog repository, shared by
// every use case the server wires in. failErr, when set, poisons all
// operations.
type stubBackend struct {
	stores     map[string]domcat.Store
	sections   map[string]domcat.Section
	categories map[string]domcat.Category
	products   map[string]domcat.Product

	failErr error
	pingErr error
}

func newStubBackend() *stubBackend {
	return &stubBackend{
		stores:     make(map[string]domcat.Store),
		sections:   make(map[string]domcat.Section),
		categories: make(map[string]domcat.Category),
		products:   make(map[string]domcat.Product),
	}
}

func (b *stubBackend) Ping(context.Context) error { return b.pingErr }

func (b *stubBackend) Reset(context.Context) error {
	if b.failErr != nil {
		return b.failErr
	}
	b.stores = make(map[string]domcat.Store)
	b.sections = make(map[string]domcat.Section)
	b.categories = make(map[string]domcat.Category)
	b.products = make(map[string]domcat.Product)
	return nil
}

func (b *stubBackend) PutStore(_ context.Context, st domcat.Store) error {
	if b.failErr != nil {
		return b.failErr
	}
	b.stores[st.ID()] = st
	return nil
}

func (b *stubBackend) GetStore(_ context.Context, id string) (domcat.Store, error) {
	if b.failErr != nil {
		return domcat.Store{}, b.failErr
	}
	st, ok := b.stores[id]
	if !ok {
		return domcat.Store{}, domain.ErrStoreNotFound
	}
	return st, nil
}

func (b *stubBackend) ListStores(context.Context) ([]domcat.Store, error) {
	if b.failErr != nil {
		return nil, b.failErr
	}
	out := make([]domcat.Store, 0, len(b.stores))
	for _, st := range b.stores {
		out = append(out, st)
	}
	return out, nil
}

func (b *stubBackend) StoreExists(_ context.Context, id string) (bool, error) {
	if b.failErr != nil {
		return false, b.failErr
	}
	_, ok := b.stores[id]
	return ok, nil
}

func (b *stubBackend) PutSection(_ context.Context, sec domcat.Section) error {
	if b.failErr != nil {
		return b.failErr
	}
	b.sections[sec.ID()] = sec
	return nil
}

func (b *stubBackend) GetSection(_ context.Context, id string) (domcat.Section, error) {
	if b.failErr != nil {
		return domcat.Section{}, b.failErr
	}
	sec, ok := b.sections[id]
	if !ok {
		return domcat.Section{}, domain.ErrSectionNotFound
	}
	return sec, nil
}

func (b *stubBackend) ListSectionsByStore(_ context.Context, storeID string) ([]domcat.Section, error) {
	if b.failErr != nil {
		return nil, b.failErr
	}
	out := make([]domcat.Section, 0)
	for _, sec := range b.sections {
		if sec.StoreID() == storeID {
			out = append(out, sec)
		}
	}
	return out, nil
}

func (b *stubBackend) PutCategory(_ context.Context, cat domcat.Category) error {
	if b.failErr != nil {
		return b.failErr
	}
	b.categories[cat.ID()] = cat
	return nil
}

func (b *stubBackend) GetCategory(_ context.Context, id string) (domcat.Category, error) {
	if b.failErr != nil {
		return domcat.Category{}, b.failErr
	}
	cat, ok := b.categories[id]
	if !ok {
		return domcat.Category{}, domain.ErrCategoryNotFound
	}
	return cat, nil
}

func (b *stubBackend) ListCategoriesByStore(_ context.Context, storeID string) ([]domcat.Category, error) {
	if b.failErr != nil {
		return nil, b.failErr
	}
	out := make([]domcat.Category, 0)
	for _, cat := range b.categories {
		if cat.StoreID() == storeID {
			out = append(out, cat)
		}
	}
	return out, nil
}

func (b *stubBackend) PutProduct(_ context.Context, p domcat.Product) error {
	if b.failErr != nil {
		return b.failErr
	}
	b.products[p.ID()] = p
	return nil
}

func (b *stubBackend) GetProduct(_ context.Context, id string) (domcat.Product, error) {
	if b.failErr != nil {
		return domcat.Product{}, b.failErr
	}
	p, ok := b.products[id]
	if !ok {
		return domcat.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

func (b *stubBackend) ListProducts(context.Context) ([]domcat.Product, error) {
	if b.failErr != nil {
		return nil, b.failErr
	}
	out := make([]domcat.Product, 0, len(b.products))
	for _, p := range b.products {
		out = append(out, p)
	}
	return out, nil
}

func (b *stubBackend) ListProductsByCategory(_ context.Context, categoryID string) ([]domcat.Product, error) {
	if b.failErr != nil {
		return nil, b.failErr
	}
	out := make([]domcat.Product, 0)
	for _, p := range b.products {
		if p.CategoryID() == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (b *stubBackend) ListProductsByCategories(_ context.Context, categoryIDs []string) ([]domcat.Product, error) {
	if b.failErr != nil {
		return nil, b.failErr
	}
	idSet := make(map[string]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		idSet[id] = struct{}{}
	}
	out := make([]domcat.Product, 0)
	for _, p := range b.products {
		if _, ok := idSet[p.CategoryID()]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func newTestServer(t *testing.T) (http.Handler, *stubBackend) {
	t.Helper()
	backend := newStubBackend()
	server := NewServer(
		cataloguc.New(backend),
		storeviewuc.New(backend),
		searchuc.New(backend),
		seeduc.New(backend),
		healthuc.New(backend),
		zap.NewNop(),
	)
	r := chi.NewRouter()
	server.Register(r)
	return r, backend
}

func seedStore(t *testing.T, b *stubBackend) domcat.Store {
	t.Helper()
	st, err := domcat.NewStore("SuperMart Central", "123 Main Street", "<svg/>")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	b.stores[st.ID()] = st
	return st
}

func seedSection(t *testing.T, b *stubBackend, storeID, mapElementID string) domcat.Section {
	t.Helper()
	sec, err := domcat.NewSection(storeID, "Fresh Produce", "#28a745", mapElementID)
	if err != nil {
		t.Fatalf("NewSection: %v", err)
	}
	b.sections[sec.ID()] = sec
	return sec
}

func seedCategory(t *testing.T, b *stubBackend, storeID, sectionID string) domcat.Category {
	t.Helper()
	cat, err := domcat.NewCategory(storeID, sectionID, "Fresh Fruits", "#28a745")
	if err != nil {
		t.Fatalf("NewCategory: %v", err)
	}
	b.categories[cat.ID()] = cat
	return cat
}

func seedProduct(t *testing.T, b *stubBackend, categoryID, sectionID, name string, price float64) domcat.Product {
	t.Helper()
	p, err := domcat.NewProduct(categoryID, sectionID, name, price, "")
	if err != nil {
		t.Fatalf("NewProduct: %v", err)
	}
	b.products[p.ID()] = p
	return p
}
