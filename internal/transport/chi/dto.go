package chi

import (
	"time"

	domcat "github.com/cartwise/cartwise/internal/domain/catalog"
	storeviewuc "github.com/cartwise/cartwise/internal/usecase/storeview"
)

// Error codes returned to clients.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeStoreNotFound    = "store_not_found"
	codeSectionNotFound  = "section_not_found"
	codeCategoryNotFound = "category_not_found"
	codeProductNotFound  = "product_not_found"
	codeNotFound         = "not_found"
	codeStoreUnavailable = "store_unavailable"
	codeInternalError    = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type createStoreRequest struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	LayoutMap string `json:"layout_map"`
}

type createSectionRequest struct {
	StoreID      string `json:"store_id"`
	Name         string `json:"name"`
	Color        string `json:"color"`
	MapElementID string `json:"map_element_id"`
}

type createCategoryRequest struct {
	StoreID   string `json:"store_id"`
	SectionID string `json:"section_id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
}

type createProductRequest struct {
	CategoryID  string  `json:"category_id"`
	SectionID   string  `json:"section_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

type storeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	LayoutMap string    `json:"layout_map"`
	CreatedAt time.Time `json:"created_at"`
}

type sectionResponse struct {
	ID           string `json:"id"`
	StoreID      string `json:"store_id"`
	Name         string `json:"name"`
	Color        string `json:"color"`
	MapElementID string `json:"map_element_id"`
}

type categoryResponse struct {
	ID        string `json:"id"`
	StoreID   string `json:"store_id"`
	SectionID string `json:"section_id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
}

type productResponse struct {
	ID          string  `json:"id"`
	CategoryID  string  `json:"category_id"`
	SectionID   string  `json:"section_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

type storeViewResponse struct {
	Store      storeResponse      `json:"store"`
	Sections   []sectionResponse  `json:"sections"`
	Categories []categoryResponse `json:"categories"`
	Products   []productResponse  `json:"products"`
}

type seedResponse struct {
	Message    string `json:"message"`
	StoreID    string `json:"store_id"`
	Sections   int    `json:"sections"`
	Categories int    `json:"categories"`
	Products   int    `json:"products"`
}

func storeToDTO(st domcat.Store) storeResponse {
	return storeResponse{
		ID:        st.ID(),
		Name:      st.Name(),
		Address:   st.Address(),
		LayoutMap: st.LayoutMap(),
		CreatedAt: st.CreatedAt(),
	}
}

func sectionToDTO(sec domcat.Section) sectionResponse {
	return sectionResponse{
		ID:           sec.ID(),
		StoreID:      sec.StoreID(),
		Name:         sec.Name(),
		Color:        sec.Color(),
		MapElementID: sec.MapElementID(),
	}
}

func categoryToDTO(cat domcat.Category) categoryResponse {
	return categoryResponse{
		ID:        cat.ID(),
		StoreID:   cat.StoreID(),
		SectionID: cat.SectionID(),
		Name:      cat.Name(),
		Color:     cat.Color(),
	}
}

func productToDTO(p domcat.Product) productResponse {
	return productResponse{
		ID:          p.ID(),
		CategoryID:  p.CategoryID(),
		SectionID:   p.SectionID(),
		Name:        p.Name(),
		Price:       p.Price(),
		Description: p.Description(),
	}
}

func productsToDTO(products []domcat.Product) []productResponse {
	items := make([]productResponse, len(products))
	for i, p := range products {
		items[i] = productToDTO(p)
	}
	return items
}

func viewToDTO(v storeviewuc.View) storeViewResponse {
	sections := make([]sectionResponse, len(v.Sections))
	for i, sec := range v.Sections {
		sections[i] = sectionToDTO(sec)
	}
	categories := make([]categoryResponse, len(v.Categories))
	for i, cat := range v.Categories {
		categories[i] = categoryToDTO(cat)
	}
	return storeViewResponse{
		Store:      storeToDTO(v.Store),
		Sections:   sections,
		Categories: categories,
		Products:   productsToDTO(v.Products),
	}
}
