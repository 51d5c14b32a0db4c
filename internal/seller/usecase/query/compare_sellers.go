package query

import (
	"fmt"
	"sort"

	"github.com/nrivas/marketscope/internal/seller/domain"
)

// CompareSellersQuery represents the query to compare sellers' pricing,
// optionally within one category.
type CompareSellersQuery struct {
	SellerIDs  []uint
	CategoryID *uint
}

// CompareSellersHandler aggregates average price and product count per
// seller over the sellers' active listings.
type CompareSellersHandler struct {
	repo domain.SellerRepository
}

// NewCompareSellersHandler creates a new compare sellers handler
func NewCompareSellersHandler(repo domain.SellerRepository) *CompareSellersHandler {
	return &CompareSellersHandler{repo: repo}
}

// Handle executes the comparison. Sellers with no matching listings simply
// do not appear; output is ordered by seller id for stable rendering.
func (h *CompareSellersHandler) Handle(q CompareSellersQuery) ([]domain.SellerComparison, error) {
	if len(q.SellerIDs) == 0 {
		return []domain.SellerComparison{}, nil
	}

	listings, err := h.repo.FindListingsBySellers(q.SellerIDs, q.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load listings for seller comparison: %w", err)
	}

	totals := make(map[uint]*domain.SellerComparison)
	for i := range listings {
		l := &listings[i]
		if l.SellerID == nil {
			continue
		}

		agg, ok := totals[*l.SellerID]
		if !ok {
			agg = &domain.SellerComparison{
				SellerID:    *l.SellerID,
				Name:        "Unknown",
				Marketplace: "Unknown",
			}
			if l.Seller != nil {
				agg.Name = l.Seller.Name
				agg.Marketplace = l.Seller.Marketplace
			}
			totals[*l.SellerID] = agg
		}

		agg.AveragePrice += l.Price
		agg.ProductCount++
	}

	comparisons := make([]domain.SellerComparison, 0, len(totals))
	for _, agg := range totals {
		if agg.ProductCount > 0 {
			agg.AveragePrice /= float64(agg.ProductCount)
		}
		comparisons = append(comparisons, *agg)
	}
	sort.Slice(comparisons, func(i, j int) bool {
		return comparisons[i].SellerID < comparisons[j].SellerID
	})

	return comparisons, nil
}
