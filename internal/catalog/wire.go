//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/nrivas/marketscope/internal/catalog/delivery/http"
	"github.com/nrivas/marketscope/internal/catalog/domain"
	"github.com/nrivas/marketscope/internal/catalog/repository"
	"github.com/nrivas/marketscope/internal/catalog/usecase/query"
)

// ProvideCatalogRepository provides the catalog repository wrapped with tracing
func ProvideCatalogRepository(db *gorm.DB) domain.CatalogRepository {
	return repository.NewGormCatalogRepositoryWithTracing(db)
}

// Query Handlers Providers
func ProvideResolveCatalogHandler(repo domain.CatalogRepository) *query.ResolveCatalogHandler {
	return query.NewResolveCatalogHandler(repo)
}

func ProvideAssembleComparisonHandler(repo domain.CatalogRepository) *query.AssembleComparisonHandler {
	return query.NewAssembleComparisonHandler(repo)
}

func ProvideListListingsHandler(repo domain.CatalogRepository) *query.ListListingsHandler {
	return query.NewListListingsHandler(repo)
}

func ProvideGetListingHandler(repo domain.CatalogRepository) *query.GetListingHandler {
	return query.NewGetListingHandler(repo)
}

func ProvidePriceHistoryHandler(repo domain.CatalogRepository) *query.PriceHistoryHandler {
	return query.NewPriceHistoryHandler(repo)
}

func ProvideStockHistoryHandler(repo domain.CatalogRepository) *query.StockHistoryHandler {
	return query.NewStockHistoryHandler(repo)
}

func ProvideCharacteristicFacetsHandler(repo domain.CatalogRepository) *query.CharacteristicFacetsHandler {
	return query.NewCharacteristicFacetsHandler(repo)
}

func ProvideListCategoriesHandler(repo domain.CatalogRepository) *query.ListCategoriesHandler {
	return query.NewListCategoriesHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCatalogRepository,
)

var QueryHandlerSet = wire.NewSet(
	ProvideResolveCatalogHandler,
	ProvideAssembleComparisonHandler,
	ProvideListListingsHandler,
	ProvideGetListingHandler,
	ProvidePriceHistoryHandler,
	ProvideStockHistoryHandler,
	ProvideCharacteristicFacetsHandler,
	ProvideListCategoriesHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.CatalogHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewCatalogHandlerWithDI,
	)
	return nil, nil
}

// InitializeAssembler initializes the comparison assembler used by the
// report module to rehydrate saved reports.
func InitializeAssembler(db *gorm.DB) (*query.AssembleComparisonHandler, error) {
	wire.Build(
		RepositorySet,
		ProvideAssembleComparisonHandler,
	)
	return nil, nil
}
