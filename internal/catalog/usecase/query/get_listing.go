package query

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nrivas/marketscope/internal/catalog/domain"
)

// ErrListingNotFound is returned when the requested listing does not exist.
var ErrListingNotFound = errors.New("listing not found")

// GetListingQuery represents the query for one listing's detail view.
type GetListingQuery struct {
	ListingID uint
}

// GetListingHandler returns the full detail of a single marketplace listing.
type GetListingHandler struct {
	repo domain.CatalogRepository
}

// NewGetListingHandler creates a new get listing handler
func NewGetListingHandler(repo domain.CatalogRepository) *GetListingHandler {
	return &GetListingHandler{repo: repo}
}

// Handle executes the listing detail query.
func (h *GetListingHandler) Handle(ctx context.Context, q GetListingQuery) (*domain.ListingDetail, error) {
	listing, err := h.repo.FindListingByID(ctx, q.ListingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to load listing %d: %w", q.ListingID, err)
	}

	detail := &domain.ListingDetail{
		ID:              listing.ID,
		Name:            listing.Name,
		Brand:           listing.Brand,
		Model:           listing.Model,
		SKU:             listing.SKU,
		Price:           listing.Price,
		PreviousPrice:   listing.PreviousPrice,
		Currency:        listing.Currency,
		Stock:           listing.Stock,
		URL:             listing.URL,
		ImageURL:        listing.ImageURL,
		Description:     listing.Description,
		Marketplace:     listing.Marketplace,
		ExtractedAt:     listing.ExtractedAt,
		Characteristics: shapeCharacteristics(listing.Characteristics),
	}
	if listing.Seller != nil {
		detail.Seller = domain.SellerInfo{
			Name:   listing.Seller.Name,
			Rating: listing.Seller.Rating,
			URL:    listing.Seller.URL,
		}
	}
	if listing.Category != nil {
		detail.Category = listing.Category.Name
	}

	return detail, nil
}
