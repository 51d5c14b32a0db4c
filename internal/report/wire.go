//go:build wireinject
// +build wireinject

package report

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/nrivas/marketscope/internal/report/delivery/http"
	"github.com/nrivas/marketscope/internal/report/domain"
	"github.com/nrivas/marketscope/internal/report/repository"
	"github.com/nrivas/marketscope/internal/report/usecase/command"
	"github.com/nrivas/marketscope/internal/report/usecase/query"
	"github.com/nrivas/marketscope/kafka"
)

// ProvideReportRepository provides the report repository
func ProvideReportRepository(db *gorm.DB) domain.ReportRepository {
	return repository.NewGormReportRepository(db)
}

// Command Handlers Providers
func ProvideCreateReportHandler(repo domain.ReportRepository) *command.CreateReportHandler {
	return command.NewCreateReportHandler(repo)
}

func ProvideRenameReportHandler(repo domain.ReportRepository) *command.RenameReportHandler {
	return command.NewRenameReportHandler(repo)
}

func ProvideDeleteReportHandler(repo domain.ReportRepository) *command.DeleteReportHandler {
	return command.NewDeleteReportHandler(repo)
}

// Query Handlers Providers
func ProvideListReportsHandler(repo domain.ReportRepository) *query.ListReportsHandler {
	return query.NewListReportsHandler(repo)
}

func ProvideGetReportHandler(repo domain.ReportRepository, assembler query.ComparisonAssembler) *query.GetReportHandler {
	return query.NewGetReportHandler(repo, assembler)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideReportRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideCreateReportHandler,
	ProvideRenameReportHandler,
	ProvideDeleteReportHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideListReportsHandler,
	ProvideGetReportHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies.
// The assembler comes from the catalog module; kafkaPublisher may be nil.
func InitializeHTTPHandler(db *gorm.DB, assembler query.ComparisonAssembler, kafkaPublisher *kafka.Publisher) (*http.ReportHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewReportHandler,
	)
	return nil, nil
}
