package catalog

import (
	"encoding/json"
	"fmt"
	"time"

	domcat "github.com/cartwise/cartwise/internal/domain/catalog"
)

// Typed storage records. Shapes coming back from the record store are never
// assumed correct: every read goes through a parse* function that validates
// the identifier and, for stores, the creation timestamp.

type storeRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	LayoutMap string `json:"layout_map"`
	CreatedAt string `json:"created_at"` // RFC 3339
}

type sectionRecord struct {
	ID           string `json:"id"`
	StoreID      string `json:"store_id"`
	Name         string `json:"name"`
	Color        string `json:"color"`
	MapElementID string `json:"map_element_id"`
}

type categoryRecord struct {
	ID        string `json:"id"`
	StoreID   string `json:"store_id"`
	SectionID string `json:"section_id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
}

type productRecord struct {
	ID          string  `json:"id"`
	CategoryID  string  `json:"category_id"`
	SectionID   string  `json:"section_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

func storeToRecord(st domcat.Store) storeRecord {
	return storeRecord{
		ID:        st.ID(),
		Name:      st.Name(),
		Address:   st.Address(),
		LayoutMap: st.LayoutMap(),
		CreatedAt: st.CreatedAt().Format(time.RFC3339Nano),
	}
}

func sectionToRecord(sec domcat.Section) sectionRecord {
	return sectionRecord{
		ID:           sec.ID(),
		StoreID:      sec.StoreID(),
		Name:         sec.Name(),
		Color:        sec.Color(),
		MapElementID: sec.MapElementID(),
	}
}

func categoryToRecord(cat domcat.Category) categoryRecord {
	return categoryRecord{
		ID:        cat.ID(),
		StoreID:   cat.StoreID(),
		SectionID: cat.SectionID(),
		Name:      cat.Name(),
		Color:     cat.Color(),
	}
}

func productToRecord(p domcat.Product) productRecord {
	return productRecord{
		ID:          p.ID(),
		CategoryID:  p.CategoryID(),
		SectionID:   p.SectionID(),
		Name:        p.Name(),
		Price:       p.Price(),
		Description: p.Description(),
	}
}

// unwrap decodes a JSON.GET "$" result (an array with one element) into rec.
func unwrap[T any](raw []byte) (T, error) {
	var recs []T
	var zero T
	if err := json.Unmarshal(raw, &recs); err != nil {
		return zero, fmt.Errorf("unmarshal record: %w", err)
	}
	if len(recs) == 0 {
		return zero, fmt.Errorf("empty record")
	}
	return recs[0], nil
}

func parseStore(raw []byte) (domcat.Store, error) {
	rec, err := unwrap[storeRecord](raw)
	if err != nil {
		return domcat.Store{}, err
	}
	if rec.ID == "" {
		return domcat.Store{}, fmt.Errorf("store record missing id")
	}
	createdAt, err := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	if err != nil {
		return domcat.Store{}, fmt.Errorf("store record %s: parse created_at %q: %w", rec.ID, rec.CreatedAt, err)
	}
	return domcat.ReconstructStore(rec.ID, rec.Name, rec.Address, rec.LayoutMap, createdAt), nil
}

func parseSection(raw []byte) (domcat.Section, error) {
	rec, err := unwrap[sectionRecord](raw)
	if err != nil {
		return domcat.Section{}, err
	}
	if rec.ID == "" {
		return domcat.Section{}, fmt.Errorf("section record missing id")
	}
	return domcat.ReconstructSection(rec.ID, rec.StoreID, rec.Name, rec.Color, rec.MapElementID), nil
}

func parseCategory(raw []byte) (domcat.Category, error) {
	rec, err := unwrap[categoryRecord](raw)
	if err != nil {
		return domcat.Category{}, err
	}
	if rec.ID == "" {
		return domcat.Category{}, fmt.Errorf("category record missing id")
	}
	return domcat.ReconstructCategory(rec.ID, rec.StoreID, rec.SectionID, rec.Name, rec.Color), nil
}

func parseProduct(raw []byte) (domcat.Product, error) {
	rec, err := unwrap[productRecord](raw)
	if err != nil {
		return domcat.Product{}, err
	}
	if rec.ID == "" {
		return domcat.Product{}, fmt.Errorf("product record missing id")
	}
	return domcat.ReconstructProduct(rec.ID, rec.CategoryID, rec.SectionID, rec.Name, rec.Price, rec.Description), nil
}
