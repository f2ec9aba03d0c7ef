// Package chi exposes the catalog over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/cartwise/cartwise/internal/domain"
	"github.com/cartwise/cartwise/internal/version"

	cataloguc "github.com/cartwise/cartwise/internal/usecase/catalog"
	healthuc "github.com/cartwise/cartwise/internal/usecase/health"
	searchuc "github.com/cartwise/cartwise/internal/usecase/search"
	seeduc "github.com/cartwise/cartwise/internal/usecase/seed"
	storeviewuc "github.com/cartwise/cartwise/internal/usecase/storeview"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server routes catalog HTTP requests to the use case services.
type Server struct {
	catalog       *cataloguc.Service
	storeview     *storeviewuc.Service
	search        *searchuc.Service
	seed          *seeduc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	catalog *cataloguc.Service,
	storeview *storeviewuc.Service,
	search *searchuc.Service,
	seed *seeduc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		catalog:   catalog,
		storeview: storeview,
		search:    search,
		seed:      seed,
		health:    health,
		logger:    logger,
	}
	// Ordered: specific sentinels before the generic ones.
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrValidation, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrStoreNotFound, http.StatusNotFound, codeStoreNotFound),
		sentinelHandler(domain.ErrSectionNotFound, http.StatusNotFound, codeSectionNotFound),
		sentinelHandler(domain.ErrCategoryNotFound, http.StatusNotFound, codeCategoryNotFound),
		sentinelHandler(domain.ErrProductNotFound, http.StatusNotFound, codeProductNotFound),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrStoreUnavailable, http.StatusServiceUnavailable, codeStoreUnavailable),
	}
	return s
}

// Register mounts all routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/", s.Banner)
		r.Post("/stores", s.CreateStore)
		r.Get("/stores", s.ListStores)
		r.Get("/stores/{storeID}", s.GetStoreView)
		r.Post("/sections", s.CreateSection)
		r.Post("/categories", s.CreateCategory)
		r.Get("/categories/{categoryID}/products", s.ListProductsByCategory)
		r.Post("/products", s.CreateProduct)
		r.Get("/products/{productID}", s.GetProduct)
		r.Get("/products/search/{query}", s.SearchProducts)
		r.Post("/initialize-sample-data", s.InitializeSampleData)
	})
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// Banner handles GET /api/.
func (s *Server) Banner(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "cartwise",
		"version": version.Version,
	})
}

// CreateStore handles POST /api/stores.
func (s *Server) CreateStore(w http.ResponseWriter, r *http.Request) {
	var req createStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	st, err := s.catalog.CreateStore(r.Context(), req.Name, req.Address, req.LayoutMap)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, storeToDTO(st))
}

// ListStores handles GET /api/stores.
func (s *Server) ListStores(w http.ResponseWriter, r *http.Request) {
	stores, err := s.catalog.ListStores(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]storeResponse, len(stores))
	for i, st := range stores {
		items[i] = storeToDTO(st)
	}
	writeJSON(w, http.StatusOK, items)
}

// GetStoreView handles GET /api/stores/{storeID}. It returns the aggregated
// view: the store plus all of its sections, categories and products.
func (s *Server) GetStoreView(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")

	view, err := s.storeview.Get(r.Context(), storeID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, viewToDTO(view))
}

// CreateSection handles POST /api/sections.
func (s *Server) CreateSection(w http.ResponseWriter, r *http.Request) {
	var req createSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	sec, err := s.catalog.CreateSection(r.Context(), req.StoreID, req.Name, req.Color, req.MapElementID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, sectionToDTO(sec))
}

// CreateCategory handles POST /api/categories.
func (s *Server) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	cat, err := s.catalog.CreateCategory(r.Context(), req.StoreID, req.SectionID, req.Name, req.Color)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, categoryToDTO(cat))
}

// ListProductsByCategory handles GET /api/categories/{categoryID}/products.
func (s *Server) ListProductsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryID")

	products, err := s.catalog.ListProductsByCategory(r.Context(), categoryID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, productsToDTO(products))
}

// CreateProduct handles POST /api/products.
func (s *Server) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	p, err := s.catalog.CreateProduct(r.Context(), req.CategoryID, req.SectionID, req.Name, req.Price, req.Description)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, productToDTO(p))
}

// GetProduct handles GET /api/products/{productID}.
func (s *Server) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	p, err := s.catalog.GetProduct(r.Context(), productID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, productToDTO(p))
}

// SearchProducts handles GET /api/products/search/{query}. The service
// treats an empty query as match-all, but an empty path segment never gets
// that far: it is rejected here as bad input.
func (s *Server) SearchProducts(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "query")
	if query == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "search query is required")
		return
	}

	products, err := s.search.Products(r.Context(), query)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, productsToDTO(products))
}

// InitializeSampleData handles POST /api/initialize-sample-data.
func (s *Server) InitializeSampleData(w http.ResponseWriter, r *http.Request) {
	res, err := s.seed.Run(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, seedResponse{
		Message:    "Sample data initialized successfully!",
		StoreID:    res.StoreID,
		Sections:   res.Sections,
		Categories: res.Categories,
		Products:   res.Products,
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrValidation,
		domain.ErrStoreNotFound,
		domain.ErrSectionNotFound,
		domain.ErrCategoryNotFound,
		domain.ErrProductNotFound,
		domain.ErrNotFound,
		domain.ErrStoreUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
