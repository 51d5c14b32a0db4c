package query

import (
	"context"
	"fmt"

	"github.com/nrivas/marketscope/internal/catalog/domain"
	"github.com/nrivas/marketscope/pkg/logger"
)

// ResolveCatalogQuery represents the query to resolve canonical products
// under a filter set.
type ResolveCatalogQuery struct {
	Filter domain.ListingFilter
}

// ResolveCatalogHandler resolves marketplace listings to canonical base
// products: a base product appears in the result only when at least one of
// its active listings survives every filter predicate.
type ResolveCatalogHandler struct {
	repo domain.CatalogRepository
}

// NewResolveCatalogHandler creates a new resolve catalog handler
func NewResolveCatalogHandler(repo domain.CatalogRepository) *ResolveCatalogHandler {
	return &ResolveCatalogHandler{repo: repo}
}

// Handle executes the catalog resolution. Filtering is pushed down to the
// listing level because price, stock and marketplace are listing properties;
// the existence check afterwards is what makes "products available under
// these constraints" correct. A failed per-product fetch skips that product
// and keeps the rest of the result usable.
func (h *ResolveCatalogHandler) Handle(ctx context.Context, q ResolveCatalogQuery) ([]domain.ResolvedProduct, error) {
	bases, err := h.repo.FindActiveBaseProducts(ctx, q.Filter.CategoryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load base products: %w", err)
	}

	resolved := make([]domain.ResolvedProduct, 0, len(bases))

	for _, base := range bases {
		listings, err := h.repo.FindFilteredListings(ctx, base.ID, q.Filter)
		if err != nil {
			logger.Logger.Error().
				Err(err).
				Uint("base_product_id", base.ID).
				Msg("Failed to load listings, skipping base product")
			continue
		}

		if len(listings) == 0 {
			continue
		}

		// First returned listing stands in for the product's attribute set.
		characteristics, err := h.repo.FindCharacteristics(ctx, listings[0].ID)
		if err != nil {
			logger.Logger.Error().
				Err(err).
				Uint("base_product_id", base.ID).
				Uint("listing_id", listings[0].ID).
				Msg("Failed to load characteristics, skipping base product")
			continue
		}

		if !matchesCharacteristicFilter(characteristics, q.Filter.Characteristics) {
			continue
		}

		resolved = append(resolved, shapeResolvedProduct(base, listings, characteristics))
	}

	return resolved, nil
}
