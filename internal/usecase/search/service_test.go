package search

import (
	"context"
	"errors"
	"testing"

	domcat "github.com/cartwise/cartwise/internal/domain/catalog"
)

type mockRepo struct {
	listProductsFn func(ctx context.Context) ([]domcat.Product, error)
}

func (m *mockRepo) ListProducts(ctx context.Context) ([]domcat.Product, error) {
	if m.listProductsFn != nil {
		return m.listProductsFn(ctx)
	}
	return nil, nil
}

func fixtureProducts(t *testing.T) []domcat.Product {
	t.Helper()
	names := []string{"Fresh Apples", "Bananas", "Pineapple Chunks", "Whole Milk", "Straße Brezel"}
	products := make([]domcat.Product, 0, len(names))
	for _, name := range names {
		p, err := domcat.NewProduct("cat-1", "sec-1", name, 1.99, "")
		if err != nil {
			t.Fatalf("NewProduct: %v", err)
		}
		products = append(products, p)
	}
	return products
}

func TestProducts_CaseInsensitiveSubstring(t *testing.T) {
	repo := &mockRepo{listProductsFn: func(context.Context) ([]domcat.Product, error) {
		return fixtureProducts(t), nil
	}}
	svc := New(repo)

	tests := []struct {
		name      string
		query     string
		wantNames []string
	}{
		{"lowercase matches mixed case", "apple", []string{"Fresh Apples", "Pineapple Chunks"}},
		{"uppercase query", "MILK", []string{"Whole Milk"}},
		{"interior substring", "anan", []string{"Bananas"}},
		{"case folded sharp s", "strasse", []string{"Straße Brezel"}},
		{"no match", "caviar", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Products(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.wantNames) {
				t.Fatalf("expected %d products, got %d", len(tt.wantNames), len(got))
			}
			for i, want := range tt.wantNames {
				if got[i].Name() != want {
					t.Errorf("product %d: expected %q, got %q", i, want, got[i].Name())
				}
			}
		})
	}
}

func TestProducts_EmptyQueryMatchesAll(t *testing.T) {
	repo := &mockRepo{listProductsFn: func(context.Context) ([]domcat.Product, error) {
		return fixtureProducts(t), nil
	}}

	got, err := New(repo).Products(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("expected every product, got %d", len(got))
	}
}

func TestProducts_RepoError(t *testing.T) {
	wantErr := errors.New("boom")
	repo := &mockRepo{listProductsFn: func(context.Context) ([]domcat.Product, error) {
		return nil, wantErr
	}}

	_, err := New(repo).Products(context.Background(), "apple")
	if !errors.Is(err, wantErr) {
		t.Errorf("expected wrapped repo error, got %v", err)
	}
}
