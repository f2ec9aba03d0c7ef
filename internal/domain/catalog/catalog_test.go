package catalog

import (
	"errors"
	"testing"
	"time"

	"github.com/cartwise/cartwise/internal/domain"
)

func TestNewStore_OK(t *testing.T) {
	st, err := NewStore("SuperMart Central", "123 Main Street", "<svg/>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.ID() == "" {
		t.Error("expected generated id")
	}
	if st.Name() != "SuperMart Central" {
		t.Errorf("unexpected name: %q", st.Name())
	}
	if st.CreatedAt().IsZero() {
		t.Error("expected createdAt to be set")
	}
	if st.CreatedAt().Location() != time.UTC {
		t.Error("expected createdAt in UTC")
	}
}

func TestNewStore_Validation(t *testing.T) {
	tests := []struct {
		name                    string
		stName, address, layout string
	}{
		{"empty name", "", "addr", "<svg/>"},
		{"empty address", "SuperMart", "", "<svg/>"},
		{"empty layout map", "SuperMart", "addr", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStore(tt.stName, tt.address, tt.layout)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestNewStore_UniqueIDs(t *testing.T) {
	a, err := NewStore("A", "addr", "<svg/>")
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewStore("B", "addr", "<svg/>")
	if err != nil {
		t.Fatal(err)
	}
	if a.ID() == b.ID() {
		t.Error("expected distinct identifiers")
	}
}

func TestNewSection_Validation(t *testing.T) {
	tests := []struct {
		name                         string
		storeID, secName, mapElement string
	}{
		{"empty store id", "", "Dairy", "dairy-section"},
		{"empty name", "store-1", "", "dairy-section"},
		{"empty map element id", "store-1", "Dairy", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSection(tt.storeID, tt.secName, "#fff", tt.mapElement)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestNewSection_OK(t *testing.T) {
	sec, err := NewSection("store-1", "Dairy", "#6f42c1", "dairy-section")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sec.StoreID() != "store-1" || sec.MapElementID() != "dairy-section" {
		t.Errorf("unexpected section: %+v", sec)
	}
}

func TestNewCategory_Validation(t *testing.T) {
	if _, err := NewCategory("", "sec-1", "Milk & Cheese", "#fff"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation for empty store id, got %v", err)
	}
	if _, err := NewCategory("store-1", "", "Milk & Cheese", "#fff"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation for empty section id, got %v", err)
	}
	if _, err := NewCategory("store-1", "sec-1", "", "#fff"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation for empty name, got %v", err)
	}
}

func TestNewProduct_NegativePrice(t *testing.T) {
	_, err := NewProduct("cat-1", "sec-1", "Fresh Apples", -1, "")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestNewProduct_ZeroPriceDefault(t *testing.T) {
	p, err := NewProduct("cat-1", "sec-1", "Sample", 0, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Price() != 0 {
		t.Errorf("expected price 0, got %v", p.Price())
	}
}

func TestNewProduct_OK(t *testing.T) {
	p, err := NewProduct("cat-1", "sec-1", "Fresh Apples", 2.99, "Crispy red apples")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.CategoryID() != "cat-1" || p.SectionID() != "sec-1" {
		t.Errorf("unexpected references: %+v", p)
	}
	if p.Price() != 2.99 {
		t.Errorf("expected price 2.99, got %v", p.Price())
	}
}

func TestReconstructStore_RoundTrip(t *testing.T) {
	created := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	st := ReconstructStore("store-1", "SuperMart", "addr", "<svg/>", created)

	if st.ID() != "store-1" {
		t.Errorf("unexpected id: %q", st.ID())
	}
	if !st.CreatedAt().Equal(created) {
		t.Errorf("unexpected createdAt: %v", st.CreatedAt())
	}
}
