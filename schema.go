package cartwise

import (
	"time"

	domcat "github.com/cartwise/cartwise/internal/domain/catalog"
	storeviewuc "github.com/cartwise/cartwise/internal/usecase/storeview"
)

// Store is a retail store with its layout map.
type Store struct {
	ID        string
	Name      string
	Address   string
	LayoutMap string
	CreatedAt time.Time
}

// Section is a physical store region bound to a layout map element.
type Section struct {
	ID           string
	StoreID      string
	Name         string
	Color        string
	MapElementID string
}

// Category groups products within a section.
type Category struct {
	ID        string
	StoreID   string
	SectionID string
	Name      string
	Color     string
}

// Product is a sellable item.
type Product struct {
	ID          string
	CategoryID  string
	SectionID   string
	Name        string
	Price       float64
	Description string
}

// StoreView is the aggregated catalog of one store.
type StoreView struct {
	Store      Store
	Sections   []Section
	Categories []Category
	Products   []Product
}

// SeedSummary reports what sample-data initialization created.
type SeedSummary struct {
	StoreID    string
	Sections   int
	Categories int
	Products   int
}

func fromDomainStore(st domcat.Store) Store {
	return Store{
		ID:        st.ID(),
		Name:      st.Name(),
		Address:   st.Address(),
		LayoutMap: st.LayoutMap(),
		CreatedAt: st.CreatedAt(),
	}
}

func fromDomainSection(sec domcat.Section) Section {
	return Section{
		ID:           sec.ID(),
		StoreID:      sec.StoreID(),
		Name:         sec.Name(),
		Color:        sec.Color(),
		MapElementID: sec.MapElementID(),
	}
}

func fromDomainCategory(cat domcat.Category) Category {
	return Category{
		ID:        cat.ID(),
		StoreID:   cat.StoreID(),
		SectionID: cat.SectionID(),
		Name:      cat.Name(),
		Color:     cat.Color(),
	}
}

func fromDomainProduct(p domcat.Product) Product {
	return Product{
		ID:          p.ID(),
		CategoryID:  p.CategoryID(),
		SectionID:   p.SectionID(),
		Name:        p.Name(),
		Price:       p.Price(),
		Description: p.Description(),
	}
}

func fromDomainProducts(products []domcat.Product) []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = fromDomainProduct(p)
	}
	return out
}

func fromDomainView(v storeviewuc.View) StoreView {
	sections := make([]Section, len(v.Sections))
	for i, sec := range v.Sections {
		sections[i] = fromDomainSection(sec)
	}
	categories := make([]Category, len(v.Categories))
	for i, cat := range v.Categories {
		categories[i] = fromDomainCategory(cat)
	}
	return StoreView{
		Store:      fromDomainStore(v.Store),
		Sections:   sections,
		Categories: categories,
		Products:   fromDomainProducts(v.Products),
	}
}
