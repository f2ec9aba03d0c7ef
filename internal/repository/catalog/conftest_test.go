package catalog

import (
	"context"
	"encoding/json"
	"testing"

	domcat "github.com/cartwise/cartwise/internal/domain/catalog"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	jsonSetFn      func(ctx context.Context, key, path string, data []byte) error
	jsonGetFn      func(ctx context.Context, key string, paths ...string) ([]byte, error)
	jsonGetMultiFn func(ctx context.Context, keys []string, path string) ([][]byte, error)
	delMultiFn     func(ctx context.Context, keys []string) error
	existsFn       func(ctx context.Context, key string) (bool, error)
	scanFn         func(ctx context.Context, pattern string) ([]string, error)
}

func (m *mockStore) JSONSet(ctx context.Context, key, path string, data []byte) error {
	if m.jsonSetFn != nil {
		return m.jsonSetFn(ctx, key, path, data)
	}
	return nil
}

func (m *mockStore) JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error) {
	if m.jsonGetFn != nil {
		return m.jsonGetFn(ctx, key, paths...)
	}
	return nil, nil
}

func (m *mockStore) JSONGetMulti(ctx context.Context, keys []string, path string) ([][]byte, error) {
	if m.jsonGetMultiFn != nil {
		return m.jsonGetMultiFn(ctx, keys, path)
	}
	return nil, nil
}

func (m *mockStore) DelMulti(ctx context.Context, keys []string) error {
	if m.delMultiFn != nil {
		return m.delMultiFn(ctx, keys)
	}
	return nil
}

func (m *mockStore) Exists(ctx context.Context, key string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, key)
	}
	return false, nil
}

func (m *mockStore) Scan(ctx context.Context, pattern string) ([]string, error) {
	if m.scanFn != nil {
		return m.scanFn(ctx, pattern)
	}
	return nil, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms, "cartwise:"), ms
}

// wrapped marshals a record as a JSON.GET "$" result (single-element array).
func wrapped(t *testing.T, rec any) []byte {
	t.Helper()
	data, err := json.Marshal([]any{rec})
	if err != nil {
		t.Fatalf("marshal record: %v", err)
	}
	return data
}

func testSection(t *testing.T, storeID, name, mapElementID string) domcat.Section {
	t.Helper()
	sec, err := domcat.NewSection(storeID, name, "#28a745", mapElementID)
	if err != nil {
		t.Fatalf("NewSection: %v", err)
	}
	return sec
}

func testProduct(t *testing.T, categoryID, sectionID, name string, price float64) domcat.Product {
	t.Helper()
	p, err := domcat.NewProduct(categoryID, sectionID, name, price, "")
	if err != nil {
		t.Fatalf("NewProduct: %v", err)
	}
	return p
}
