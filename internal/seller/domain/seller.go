package domain

import (
	catalogdomain "github.com/nrivas/marketscope/internal/catalog/domain"
)

// The seller entity itself lives in the catalog domain (listings embed it);
// this module adds the analysis views computed over it.

// SellerRow is one row of the seller table view.
type SellerRow struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Marketplace string  `json:"marketplace"`
	Rating      float64 `json:"rating"`
	SalesCount  int     `json:"sales_count"`
	URL         *string `json:"url"`
}

// SellerListing is one of a seller's active listings with its category name.
type SellerListing struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	PreviousPrice *float64 `json:"previous_price,omitempty"`
	Stock         int      `json:"stock"`
	Marketplace   string   `json:"marketplace"`
	Category      string   `json:"category"`
}

// SellerComparison aggregates one seller's pricing inside a comparison set.
type SellerComparison struct {
	SellerID     uint    `json:"seller_id"`
	Name         string  `json:"name"`
	Marketplace  string  `json:"marketplace"`
	AveragePrice float64 `json:"average_price"`
	ProductCount int     `json:"product_count"`
}

// SellerRepository defines the contract for seller analysis data access.
type SellerRepository interface {
	// FindActive returns active sellers, optionally restricted to one
	// marketplace.
	FindActive(marketplace string) ([]catalogdomain.Seller, error)
	// FindListingsBySeller returns one seller's active listings with
	// categories embedded.
	FindListingsBySeller(sellerID uint) ([]catalogdomain.Listing, error)
	// FindListingsBySellers returns active listings across a seller id set,
	// sellers embedded, optionally restricted to one category.
	FindListingsBySellers(sellerIDs []uint, categoryID *uint) ([]catalogdomain.Listing, error)
}
