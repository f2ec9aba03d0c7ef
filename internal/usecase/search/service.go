// Package search matches products by name substring, across every store.
package search

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	domcat "github.com/cartwise/cartwise/internal/domain/catalog"
)

// Service answers product name searches.
type Service struct {
	repo Repository
}

// New creates a search service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Products returns every product whose name contains the query, compared
// under Unicode case folding. An empty query matches all products. Results
// carry no ordering or relevance guarantee.
func (s *Service) Products(ctx context.Context, query string) ([]domcat.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	// A Caser is stateful, so each call gets its own.
	fold := cases.Fold()
	needle := fold.String(query)

	matched := make([]domcat.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(fold.String(p.Name()), needle) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
