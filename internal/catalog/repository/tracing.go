package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/nrivas/marketscope/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// GormCatalogRepositoryWithTracing wraps GormCatalogRepository with tracing
// spans for the fan-out-heavy read paths. It overrides the hot methods of
// the repository contract, so the resolver and assembler hit the traced
// variants through the interface; the remaining reads pass through.
type GormCatalogRepositoryWithTracing struct {
	*GormCatalogRepository
}

// NewGormCatalogRepositoryWithTracing creates a new repository with tracing
func NewGormCatalogRepositoryWithTracing(db *gorm.DB) *GormCatalogRepositoryWithTracing {
	return &GormCatalogRepositoryWithTracing{
		GormCatalogRepository: NewGormCatalogRepository(db),
	}
}

// FindActiveBaseProducts traces the base product scan.
func (r *GormCatalogRepositoryWithTracing) FindActiveBaseProducts(ctx context.Context, categoryIDs []uint) ([]domain.BaseProduct, error) {
	ctx, span := tracer.Start(ctx, "repository.FindActiveBaseProducts",
		trace.WithAttributes(
			attribute.Int("filter.category_count", len(categoryIDs)),
		),
	)
	defer span.End()

	products, err := r.GormCatalogRepository.FindActiveBaseProducts(ctx, categoryIDs)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}

// FindFilteredListings traces one per-product listing fetch.
func (r *GormCatalogRepositoryWithTracing) FindFilteredListings(ctx context.Context, baseProductID uint, filter domain.ListingFilter) ([]domain.Listing, error) {
	ctx, span := tracer.Start(ctx, "repository.FindFilteredListings",
		trace.WithAttributes(
			attribute.Int("base_product.id", int(baseProductID)),
			attribute.StringSlice("filter.marketplaces", filter.Marketplaces),
			attribute.Bool("filter.in_stock_only", filter.InStockOnly),
		),
	)
	defer span.End()

	listings, err := r.GormCatalogRepository.FindFilteredListings(ctx, baseProductID, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(listings)))
	return listings, nil
}

// FindActiveListings traces one per-product comparison fetch.
func (r *GormCatalogRepositoryWithTracing) FindActiveListings(ctx context.Context, baseProductID uint) ([]domain.Listing, error) {
	ctx, span := tracer.Start(ctx, "repository.FindActiveListings",
		trace.WithAttributes(
			attribute.Int("base_product.id", int(baseProductID)),
		),
	)
	defer span.End()

	listings, err := r.GormCatalogRepository.FindActiveListings(ctx, baseProductID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(listings)))
	return listings, nil
}

// FindCharacteristics traces a representative characteristic fetch.
func (r *GormCatalogRepositoryWithTracing) FindCharacteristics(ctx context.Context, listingID uint) ([]domain.Characteristic, error) {
	ctx, span := tracer.Start(ctx, "repository.FindCharacteristics",
		trace.WithAttributes(
			attribute.Int("listing.id", int(listingID)),
		),
	)
	defer span.End()

	characteristics, err := r.GormCatalogRepository.FindCharacteristics(ctx, listingID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(characteristics)))
	return characteristics, nil
}

// PriceHistory traces a price series read.
func (r *GormCatalogRepositoryWithTracing) PriceHistory(ctx context.Context, listingID uint) ([]domain.PricePoint, error) {
	ctx, span := tracer.Start(ctx, "repository.PriceHistory",
		trace.WithAttributes(
			attribute.Int("listing.id", int(listingID)),
		),
	)
	defer span.End()

	points, err := r.GormCatalogRepository.PriceHistory(ctx, listingID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(points)))
	return points, nil
}
