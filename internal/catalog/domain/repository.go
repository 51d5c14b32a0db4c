package domain

import "context"

// CatalogRepository defines the contract for catalog data access.
type CatalogRepository interface {
	// FindActiveBaseProducts returns active base products, restricted to the
	// given categories when the set is non-empty.
	FindActiveBaseProducts(ctx context.Context, categoryIDs []uint) ([]BaseProduct, error)
	// FindBaseProductsByIDs returns base products whose id is in the set.
	FindBaseProductsByIDs(ctx context.Context, ids []uint) ([]BaseProduct, error)
	// FindFilteredListings returns a base product's active listings passing
	// every predicate of the filter, sellers embedded.
	FindFilteredListings(ctx context.Context, baseProductID uint, filter ListingFilter) ([]Listing, error)
	// FindActiveListings returns all of a base product's active listings.
	FindActiveListings(ctx context.Context, baseProductID uint) ([]Listing, error)
	// FindAllListings returns active listings across base products for the
	// flat table view, sellers and categories embedded.
	FindAllListings(ctx context.Context, filter ListingFilter) ([]Listing, error)
	// FindListingByID returns one listing with seller, category and
	// characteristics embedded.
	FindListingByID(ctx context.Context, id uint) (*Listing, error)
	// FindCharacteristics returns a listing's characteristic rows.
	FindCharacteristics(ctx context.Context, listingID uint) ([]Characteristic, error)
	// CharacteristicFacets aggregates distinct characteristic name/value
	// pairs over a category's active listings.
	CharacteristicFacets(ctx context.Context, categoryID uint) ([]CharacteristicFacet, error)
	// PriceHistory returns a listing's price points ascending by timestamp,
	// owning listing embedded for the marketplace tag.
	PriceHistory(ctx context.Context, listingID uint) ([]PricePoint, error)
	// StockHistory returns a listing's stock points ascending by timestamp.
	StockHistory(ctx context.Context, listingID uint) ([]StockPoint, error)
	// Categories returns the category tree rows.
	Categories(ctx context.Context) ([]Category, error)
}
