package di

import (
	"grapheditor/application/commands/bus"
	querybus "grapheditor/application/queries/bus"
	"grapheditor/infrastructure/config"
	"grapheditor/infrastructure/messaging"
	"grapheditor/infrastructure/persistence/memory"
	"grapheditor/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Sessions   *memory.SessionStore
	Hub        *messaging.ViewHub
	Metrics    *observability.Collector
	CommandBus *bus.CommandBus
	QueryBus   *querybus.QueryBus
}
