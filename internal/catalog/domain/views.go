package domain

import "time"

// In-memory projections handed to the rendering layer. These are shaped by
// the query handlers and never persisted.

// CharacteristicValue is one name/value pair of a listing's attribute set.
type CharacteristicValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ResolvedVariant is one surviving listing inside a resolved catalog entry.
type ResolvedVariant struct {
	ID            uint     `json:"id"`
	Marketplace   string   `json:"marketplace"`
	Price         float64  `json:"price"`
	PreviousPrice *float64 `json:"previous_price,omitempty"`
	Stock         int      `json:"stock"`
	Seller        string   `json:"seller,omitempty"`
}

// ResolvedProduct is a base product together with every listing that passed
// the active filter set, plus the representative characteristic set.
type ResolvedProduct struct {
	ID              uint                  `json:"id"`
	Name            string                `json:"name"`
	Brand           string                `json:"brand"`
	Model           string                `json:"model"`
	SKU             string                `json:"sku"`
	Category        string                `json:"category"`
	Description     string                `json:"description"`
	ImageURL        *string               `json:"image_url"`
	Variants        []ResolvedVariant     `json:"variants"`
	Characteristics []CharacteristicValue `json:"characteristics"`
}

// ComparisonVariant is one marketplace cell of the comparison grid.
type ComparisonVariant struct {
	ID              uint     `json:"id"`
	Marketplace     string   `json:"marketplace"`
	Price           float64  `json:"price"`
	PreviousPrice   *float64 `json:"previous_price,omitempty"`
	DiscountPercent *int     `json:"discount_percent,omitempty"`
	Stock           int      `json:"stock"`
	URL             string   `json:"url"`
	ImageURL        *string  `json:"image_url,omitempty"`
	Seller          string   `json:"seller,omitempty"`
}

// ComparisonProduct is one row of the side-by-side comparison view.
type ComparisonProduct struct {
	ID              uint                  `json:"id"`
	Name            string                `json:"name"`
	Brand           string                `json:"brand"`
	Model           string                `json:"model"`
	SKU             string                `json:"sku"`
	Variants        []ComparisonVariant   `json:"variants"`
	Characteristics []CharacteristicValue `json:"characteristics"`
}

// ListingRow is one row of the flat listing table.
type ListingRow struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Brand         string    `json:"brand"`
	Model         string    `json:"model"`
	SKU           string    `json:"sku"`
	Price         float64   `json:"price"`
	PreviousPrice *float64  `json:"previous_price,omitempty"`
	Marketplace   string    `json:"marketplace"`
	Seller        string    `json:"seller,omitempty"`
	Stock         int       `json:"stock"`
	ImageURL      *string   `json:"image_url"`
	Category      string    `json:"category"`
	ExtractedAt   time.Time `json:"extracted_at"`
	BaseProductID uint      `json:"base_product_id"`
}

// SellerInfo is the seller block of a listing detail.
type SellerInfo struct {
	Name   string   `json:"name"`
	Rating *float64 `json:"rating,omitempty"`
	URL    *string  `json:"url,omitempty"`
}

// ListingDetail is the full single-listing view.
type ListingDetail struct {
	ID              uint                  `json:"id"`
	Name            string                `json:"name"`
	Brand           string                `json:"brand"`
	Model           string                `json:"model"`
	SKU             string                `json:"sku"`
	Price           float64               `json:"price"`
	PreviousPrice   *float64              `json:"previous_price,omitempty"`
	Currency        string                `json:"currency"`
	Stock           int                   `json:"stock"`
	URL             string                `json:"url"`
	ImageURL        *string               `json:"image_url"`
	Description     string                `json:"description"`
	Marketplace     string                `json:"marketplace"`
	ExtractedAt     time.Time             `json:"extracted_at"`
	Seller          SellerInfo            `json:"seller"`
	Category        string                `json:"category"`
	Characteristics []CharacteristicValue `json:"characteristics"`
}

// PriceHistoryEntry is one point of a listing's price chart. The marketplace
// tag allows overlaying several listings in one chart.
type PriceHistoryEntry struct {
	Date        time.Time `json:"date"`
	Price       float64   `json:"price"`
	Marketplace string    `json:"marketplace,omitempty"`
}

// StockHistoryEntry is one point of a listing's stock chart.
type StockHistoryEntry struct {
	Date  time.Time `json:"date"`
	Stock int       `json:"stock"`
}

// CharacteristicFacet is one filterable characteristic name with the values
// observed across a category's active listings.
type CharacteristicFacet struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}
