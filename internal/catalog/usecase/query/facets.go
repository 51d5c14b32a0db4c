package query

import (
	"context"
	"fmt"

	"github.com/nrivas/marketscope/internal/catalog/domain"
)

// CharacteristicFacetsQuery represents the filter UI query for a category's
// observed characteristics.
type CharacteristicFacetsQuery struct {
	CategoryID uint
}

// CharacteristicFacetsHandler aggregates distinct characteristic names and
// values over a category's active listings.
type CharacteristicFacetsHandler struct {
	repo domain.CatalogRepository
}

// NewCharacteristicFacetsHandler creates a new characteristic facets handler
func NewCharacteristicFacetsHandler(repo domain.CatalogRepository) *CharacteristicFacetsHandler {
	return &CharacteristicFacetsHandler{repo: repo}
}

// Handle executes the facet aggregation.
func (h *CharacteristicFacetsHandler) Handle(ctx context.Context, q CharacteristicFacetsQuery) ([]domain.CharacteristicFacet, error) {
	facets, err := h.repo.CharacteristicFacets(ctx, q.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate characteristic facets for category %d: %w", q.CategoryID, err)
	}
	return facets, nil
}

// ListCategoriesHandler returns the category tree for the filter panel.
type ListCategoriesHandler struct {
	repo domain.CatalogRepository
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(repo domain.CatalogRepository) *ListCategoriesHandler {
	return &ListCategoriesHandler{repo: repo}
}

// Handle executes the category listing.
func (h *ListCategoriesHandler) Handle(ctx context.Context) ([]domain.Category, error) {
	categories, err := h.repo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
