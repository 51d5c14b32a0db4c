//go:build wireinject
// +build wireinject

package seller

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/nrivas/marketscope/internal/seller/delivery/http"
	"github.com/nrivas/marketscope/internal/seller/domain"
	"github.com/nrivas/marketscope/internal/seller/repository"
	"github.com/nrivas/marketscope/internal/seller/usecase/query"
)

// ProvideSellerRepository provides the seller repository
func ProvideSellerRepository(db *gorm.DB) domain.SellerRepository {
	return repository.NewGormSellerRepository(db)
}

// Query Handlers Providers
func ProvideListSellersHandler(repo domain.SellerRepository) *query.ListSellersHandler {
	return query.NewListSellersHandler(repo)
}

func ProvideSellerProductsHandler(repo domain.SellerRepository) *query.SellerProductsHandler {
	return query.NewSellerProductsHandler(repo)
}

func ProvideCompareSellersHandler(repo domain.SellerRepository) *query.CompareSellersHandler {
	return query.NewCompareSellersHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideSellerRepository,
)

var QueryHandlerSet = wire.NewSet(
	ProvideListSellersHandler,
	ProvideSellerProductsHandler,
	ProvideCompareSellersHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.SellerHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewSellerHandler,
	)
	return nil, nil
}
