package query

import (
	"fmt"

	"github.com/nrivas/marketscope/internal/seller/domain"
)

// ListSellersQuery represents the query for the seller table.
type ListSellersQuery struct {
	Marketplace string
}

// ListSellersHandler lists active sellers, optionally for one marketplace.
type ListSellersHandler struct {
	repo domain.SellerRepository
}

// NewListSellersHandler creates a new list sellers handler
func NewListSellersHandler(repo domain.SellerRepository) *ListSellersHandler {
	return &ListSellersHandler{repo: repo}
}

// Handle executes the seller listing.
func (h *ListSellersHandler) Handle(q ListSellersQuery) ([]domain.SellerRow, error) {
	sellers, err := h.repo.FindActive(q.Marketplace)
	if err != nil {
		return nil, fmt.Errorf("failed to list sellers: %w", err)
	}

	rows := make([]domain.SellerRow, 0, len(sellers))
	for _, s := range sellers {
		row := domain.SellerRow{
			ID:          s.ID,
			Name:        s.Name,
			Marketplace: s.Marketplace,
			URL:         s.URL,
		}
		if s.Rating != nil {
			row.Rating = *s.Rating
		}
		if s.SalesCount != nil {
			row.SalesCount = *s.SalesCount
		}
		rows = append(rows, row)
	}

	return rows, nil
}
