package query

import (
	"context"
	"fmt"

	"github.com/nrivas/marketscope/internal/catalog/domain"
)

// ListListingsQuery represents the query for the flat listing table.
type ListListingsQuery struct {
	Filter domain.ListingFilter
}

// ListListingsHandler returns every active listing passing the filter set,
// one row per marketplace listing (no canonical grouping).
type ListListingsHandler struct {
	repo domain.CatalogRepository
}

// NewListListingsHandler creates a new list listings handler
func NewListListingsHandler(repo domain.CatalogRepository) *ListListingsHandler {
	return &ListListingsHandler{repo: repo}
}

// Handle executes the flat listing query.
func (h *ListListingsHandler) Handle(ctx context.Context, q ListListingsQuery) ([]domain.ListingRow, error) {
	listings, err := h.repo.FindAllListings(ctx, q.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}

	rows := make([]domain.ListingRow, 0, len(listings))
	for i := range listings {
		l := &listings[i]
		category := ""
		if l.Category != nil {
			category = l.Category.Name
		}
		rows = append(rows, domain.ListingRow{
			ID:            l.ID,
			Name:          l.Name,
			Brand:         l.Brand,
			Model:         l.Model,
			SKU:           l.SKU,
			Price:         l.Price,
			PreviousPrice: l.PreviousPrice,
			Marketplace:   l.Marketplace,
			Seller:        l.SellerName(),
			Stock:         l.Stock,
			ImageURL:      l.ImageURL,
			Category:      category,
			ExtractedAt:   l.ExtractedAt,
			BaseProductID: l.BaseProductID,
		})
	}

	return rows, nil
}
