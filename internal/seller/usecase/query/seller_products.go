package query

import (
	"fmt"

	"github.com/nrivas/marketscope/internal/seller/domain"
)

// SellerProductsQuery represents the query for one seller's listings.
type SellerProductsQuery struct {
	SellerID uint
}

// SellerProductsHandler lists one seller's active listings with category
// names embedded.
type SellerProductsHandler struct {
	repo domain.SellerRepository
}

// NewSellerProductsHandler creates a new seller products handler
func NewSellerProductsHandler(repo domain.SellerRepository) *SellerProductsHandler {
	return &SellerProductsHandler{repo: repo}
}

// Handle executes the seller products query.
func (h *SellerProductsHandler) Handle(q SellerProductsQuery) ([]domain.SellerListing, error) {
	listings, err := h.repo.FindListingsBySeller(q.SellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products for seller %d: %w", q.SellerID, err)
	}

	rows := make([]domain.SellerListing, 0, len(listings))
	for i := range listings {
		l := &listings[i]
		category := ""
		if l.Category != nil {
			category = l.Category.Name
		}
		rows = append(rows, domain.SellerListing{
			ID:            l.ID,
			Name:          l.Name,
			Price:         l.Price,
			PreviousPrice: l.PreviousPrice,
			Stock:         l.Stock,
			Marketplace:   l.Marketplace,
			Category:      category,
		})
	}

	return rows, nil
}
