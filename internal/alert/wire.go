//go:build wireinject
// +build wireinject

package alert

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/nrivas/marketscope/internal/alert/delivery/http"
	"github.com/nrivas/marketscope/internal/alert/domain"
	"github.com/nrivas/marketscope/internal/alert/repository"
	"github.com/nrivas/marketscope/internal/alert/usecase/command"
	"github.com/nrivas/marketscope/internal/alert/usecase/query"
)

// ProvideAlertRepository provides the alert repository
func ProvideAlertRepository(db *gorm.DB) domain.AlertRepository {
	return repository.NewGormAlertRepository(db)
}

// Command Handlers Providers
func ProvideSetAlertStatusHandler(repo domain.AlertRepository) *command.SetAlertStatusHandler {
	return command.NewSetAlertStatusHandler(repo)
}

func ProvideMarkNotificationReadHandler(repo domain.AlertRepository) *command.MarkNotificationReadHandler {
	return command.NewMarkNotificationReadHandler(repo)
}

// Query Handlers Providers
func ProvideListAlertsHandler(repo domain.AlertRepository) *query.ListAlertsHandler {
	return query.NewListAlertsHandler(repo)
}

func ProvideListNotificationsHandler(repo domain.AlertRepository) *query.ListNotificationsHandler {
	return query.NewListNotificationsHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideAlertRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideSetAlertStatusHandler,
	ProvideMarkNotificationReadHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideListAlertsHandler,
	ProvideListNotificationsHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.AlertHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewAlertHandler,
	)
	return nil, nil
}
