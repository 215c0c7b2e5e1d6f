//go:build wireinject
// +build wireinject

package di

import (
	"grapheditor/infrastructure/config"

	"github.com/google/wire"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideDomainConfig,
	ProvideViewHub,
	ProvideViewNotifier,
	ProvideViewSubscriber,
	ProvideSessionStore,
	ProvideSessionRepository,
	ProvideMetrics,
	ProvideEventBridgePublisher,
	ProvideEventPublisher,
	ProvideGestureRunner,
	ProvideCommandBus,
	ProvideQueryBus,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container. The returned cleanup
// releases background resources.
func InitializeContainer(cfg *config.Config) (*Container, func(), error) {
	wire.Build(SuperSet)
	return nil, nil, nil // Wire will replace this
}
