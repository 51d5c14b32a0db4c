package query

import (
	"context"
	"fmt"

	"github.com/nrivas/marketscope/internal/catalog/domain"
)

// PriceHistoryQuery represents the query for a listing's price series.
type PriceHistoryQuery struct {
	ListingID uint
}

// PriceHistoryHandler reads a listing's price points for charting, ascending
// by timestamp.
type PriceHistoryHandler struct {
	repo domain.CatalogRepository
}

// NewPriceHistoryHandler creates a new price history handler
func NewPriceHistoryHandler(repo domain.CatalogRepository) *PriceHistoryHandler {
	return &PriceHistoryHandler{repo: repo}
}

// Handle executes the price history query.
func (h *PriceHistoryHandler) Handle(ctx context.Context, q PriceHistoryQuery) ([]domain.PriceHistoryEntry, error) {
	points, err := h.repo.PriceHistory(ctx, q.ListingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load price history for listing %d: %w", q.ListingID, err)
	}

	entries := make([]domain.PriceHistoryEntry, 0, len(points))
	for _, p := range points {
		entry := domain.PriceHistoryEntry{
			Date:  p.RecordedAt,
			Price: p.Price,
		}
		if p.Listing != nil {
			entry.Marketplace = p.Listing.Marketplace
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// StockHistoryQuery represents the query for a listing's stock series.
type StockHistoryQuery struct {
	ListingID uint
}

// StockHistoryHandler reads a listing's stock points for charting, ascending
// by timestamp.
type StockHistoryHandler struct {
	repo domain.CatalogRepository
}

// NewStockHistoryHandler creates a new stock history handler
func NewStockHistoryHandler(repo domain.CatalogRepository) *StockHistoryHandler {
	return &StockHistoryHandler{repo: repo}
}

// Handle executes the stock history query.
func (h *StockHistoryHandler) Handle(ctx context.Context, q StockHistoryQuery) ([]domain.StockHistoryEntry, error) {
	points, err := h.repo.StockHistory(ctx, q.ListingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock history for listing %d: %w", q.ListingID, err)
	}

	entries := make([]domain.StockHistoryEntry, 0, len(points))
	for _, p := range points {
		entries = append(entries, domain.StockHistoryEntry{
			Date:  p.RecordedAt,
			Stock: p.Stock,
		})
	}

	return entries, nil
}
