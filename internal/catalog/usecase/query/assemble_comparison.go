package query

import (
	"context"
	"fmt"

	"github.com/nrivas/marketscope/internal/catalog/domain"
	"github.com/nrivas/marketscope/pkg/logger"
)

// AssembleComparisonQuery represents the query to build the cross-marketplace
// comparison view for a set of base products.
type AssembleComparisonQuery struct {
	BaseProductIDs []uint
}

// AssembleComparisonHandler assembles comparison rows: for each requested
// base product, every active listing plus the representative characteristic
// set. No price/stock/marketplace filtering happens here, the comparison
// always shows everything active.
type AssembleComparisonHandler struct {
	repo domain.CatalogRepository
}

// NewAssembleComparisonHandler creates a new assemble comparison handler
func NewAssembleComparisonHandler(repo domain.CatalogRepository) *AssembleComparisonHandler {
	return &AssembleComparisonHandler{repo: repo}
}

// Handle executes the comparison assembly. Given unchanged backing data the
// result is a pure function of the id set, which is what lets saved reports
// recompute instead of caching. Output follows the request order, with
// duplicate ids collapsing to their first occurrence; the IN query returns
// rows in whatever order the database likes, so the fetched products are
// re-keyed by id before shaping. Products with zero active listings are
// excluded even when explicitly requested.
func (h *AssembleComparisonHandler) Handle(ctx context.Context, q AssembleComparisonQuery) ([]domain.ComparisonProduct, error) {
	if len(q.BaseProductIDs) == 0 {
		return []domain.ComparisonProduct{}, nil
	}

	bases, err := h.repo.FindBaseProductsByIDs(ctx, q.BaseProductIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load base products for comparison: %w", err)
	}

	byID := make(map[uint]domain.BaseProduct, len(bases))
	for _, base := range bases {
		byID[base.ID] = base
	}

	products := make([]domain.ComparisonProduct, 0, len(bases))
	seen := make(map[uint]bool, len(q.BaseProductIDs))

	for _, id := range q.BaseProductIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		base, ok := byID[id]
		if !ok {
			continue
		}

		listings, err := h.repo.FindActiveListings(ctx, base.ID)
		if err != nil {
			logger.Logger.Error().
				Err(err).
				Uint("base_product_id", base.ID).
				Msg("Failed to load comparison listings, dropping base product")
			continue
		}

		if len(listings) == 0 {
			continue
		}

		characteristics, err := h.repo.FindCharacteristics(ctx, listings[0].ID)
		if err != nil {
			logger.Logger.Error().
				Err(err).
				Uint("base_product_id", base.ID).
				Uint("listing_id", listings[0].ID).
				Msg("Failed to load characteristics, dropping base product")
			continue
		}

		products = append(products, shapeComparisonProduct(base, listings, characteristics))
	}

	return products, nil
}

// Assemble is a convenience form of Handle for callers that rehydrate saved
// reports.
func (h *AssembleComparisonHandler) Assemble(ctx context.Context, baseProductIDs []uint) ([]domain.ComparisonProduct, error) {
	return h.Handle(ctx, AssembleComparisonQuery{BaseProductIDs: baseProductIDs})
}
