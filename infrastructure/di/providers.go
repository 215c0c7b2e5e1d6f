package di

import (
	"context"
	"fmt"

	"grapheditor/application/commands"
	"grapheditor/application/commands/bus"
	commandhandlers "grapheditor/application/commands/handlers"
	"grapheditor/application/ports"
	"grapheditor/application/queries"
	querybus "grapheditor/application/queries/bus"
	queryhandlers "grapheditor/application/queries/handlers"
	domainconfig "grapheditor/domain/config"
	"grapheditor/infrastructure/config"
	"grapheditor/infrastructure/messaging"
	"grapheditor/infrastructure/messaging/eventbridge"
	"grapheditor/infrastructure/persistence/memory"
	"grapheditor/pkg/observability"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"
)

// MetricsNamespace prefixes every exported metric
const MetricsNamespace = "grapheditor"

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	zapCfg.Level = level

	return zapCfg.Build()
}

// ProvideDomainConfig exposes the editor rules from the application config
func ProvideDomainConfig(cfg *config.Config) *domainconfig.DomainConfig {
	return &cfg.Domain
}

// ProvideViewHub creates the hub that feeds view streams
func ProvideViewHub(cfg *config.Config, logger *zap.Logger) *messaging.ViewHub {
	return messaging.NewViewHub(cfg.StreamBufferSize, logger)
}

// ProvideViewNotifier exposes the hub as a port
func ProvideViewNotifier(hub *messaging.ViewHub) ports.ViewNotifier {
	return hub
}

// ProvideViewSubscriber exposes the hub to stream queries
func ProvideViewSubscriber(hub *messaging.ViewHub) ports.ViewSubscriber {
	return hub
}

// ProvideSessionStore creates the in-memory session store. Streams of
// evicted sessions are closed. The cleanup stops the janitor.
func ProvideSessionStore(cfg *config.Config, hub *messaging.ViewHub, logger *zap.Logger) (*memory.SessionStore, func()) {
	store := memory.NewSessionStore(cfg.SessionTTL, cfg.JanitorInterval, logger)
	store.OnEvict(hub.Close)
	return store, store.Close
}

// ProvideSessionRepository exposes the store as a port
func ProvideSessionRepository(store *memory.SessionStore) ports.SessionRepository {
	return store
}

// ProvideMetrics creates the Prometheus collector
func ProvideMetrics(store *memory.SessionStore) *observability.Collector {
	collector := observability.NewCollector(MetricsNamespace)
	collector.TrackSessions(MetricsNamespace, store.Count)
	return collector
}

// ProvideEventBridgePublisher creates the EventBridge forwarder, or nil when
// no event bus is configured
func ProvideEventBridgePublisher(cfg *config.Config, logger *zap.Logger) (*eventbridge.Publisher, error) {
	if cfg.EventBusName == "" {
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	logger.Info("Forwarding events to EventBridge", zap.String("eventBus", cfg.EventBusName))
	return eventbridge.NewPublisher(awseventbridge.NewFromConfig(awsCfg), cfg.EventBusName, logger), nil
}

// ProvideEventPublisher creates the domain event publisher
func ProvideEventPublisher(logger *zap.Logger, metrics *observability.Collector, eb *eventbridge.Publisher) ports.EventPublisher {
	local := messaging.NewLogPublisher(logger, metrics)
	if eb == nil {
		return local
	}
	return messaging.NewFanoutPublisher(local, eb)
}

// ProvideGestureRunner creates the shared gesture pipeline
func ProvideGestureRunner(
	repo ports.SessionRepository,
	publisher ports.EventPublisher,
	notifier ports.ViewNotifier,
	logger *zap.Logger,
) *commandhandlers.GestureRunner {
	return commandhandlers.NewGestureRunner(repo, publisher, notifier, logger)
}

// adaptCommand adapts a typed command handler to the bus interface
func adaptCommand[C bus.Command, R any](handle func(context.Context, C) (R, error)) bus.CommandHandler {
	return bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) (interface{}, error) {
		typed, ok := cmd.(C)
		if !ok {
			return nil, fmt.Errorf("invalid command type %T", cmd)
		}
		return handle(ctx, typed)
	})
}

// adaptQuery adapts a typed query handler to the bus interface
func adaptQuery[Q querybus.Query, R any](handle func(context.Context, Q) (R, error)) querybus.QueryHandler {
	return querybus.QueryHandlerFunc(func(ctx context.Context, query querybus.Query) (interface{}, error) {
		typed, ok := query.(Q)
		if !ok {
			return nil, fmt.Errorf("invalid query type %T", query)
		}
		return handle(ctx, typed)
	})
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	runner *commandhandlers.GestureRunner,
	repo ports.SessionRepository,
	notifier ports.ViewNotifier,
	domainCfg *domainconfig.DomainConfig,
	metrics *observability.Collector,
	logger *zap.Logger,
) (*bus.CommandBus, error) {
	commandBus := bus.NewCommandBus(
		bus.LoggingMiddleware(logger),
		bus.MetricsMiddleware(metrics),
	)

	hover := commandhandlers.NewHoverHandler(runner)

	registrations := []struct {
		cmd     bus.Command
		handler bus.CommandHandler
	}{
		// Sessions
		{commands.StartSessionCommand{}, adaptCommand(commandhandlers.NewStartSessionHandler(repo, runner, domainCfg, logger).Handle)},
		{commands.EndSessionCommand{}, adaptCommand(commandhandlers.NewEndSessionHandler(repo, notifier, logger).Handle)},

		// Nodes and edges
		{commands.CreateNodeCommand{}, adaptCommand(commandhandlers.NewCreateNodeHandler(runner).Handle)},
		{commands.MoveNodeCommand{}, adaptCommand(commandhandlers.NewMoveNodeHandler(runner).Handle)},
		{commands.DeleteNodeCommand{}, adaptCommand(commandhandlers.NewDeleteNodeHandler(runner, logger).Handle)},
		{commands.RemoveElementsCommand{}, adaptCommand(commandhandlers.NewRemoveElementsHandler(runner).Handle)},
		{commands.ConnectCommand{}, adaptCommand(commandhandlers.NewConnectHandler(runner).Handle)},
		{commands.DeleteEdgeCommand{}, adaptCommand(commandhandlers.NewDeleteEdgeHandler(runner).Handle)},

		// Rename panel
		{commands.SelectNodeCommand{}, adaptCommand(commandhandlers.NewSelectNodeHandler(runner).Handle)},
		{commands.EditDraftCommand{}, adaptCommand(commandhandlers.NewEditDraftHandler(runner).Handle)},
		{commands.RenameSelectedCommand{}, adaptCommand(commandhandlers.NewRenameSelectedHandler(runner).Handle)},
		{commands.CancelRenameCommand{}, adaptCommand(commandhandlers.NewCancelRenameHandler(runner).Handle)},

		// Hover affordances
		{commands.HoverNodeCommand{}, adaptCommand(hover.HoverNode)},
		{commands.UnhoverNodeCommand{}, adaptCommand(hover.UnhoverNode)},
		{commands.HoverEdgeCommand{}, adaptCommand(hover.HoverEdge)},
		{commands.UnhoverEdgeCommand{}, adaptCommand(hover.UnhoverEdge)},
		{commands.DeleteHoveredNodeCommand{}, adaptCommand(hover.DeleteHoveredNode)},
		{commands.DeleteHoveredEdgeCommand{}, adaptCommand(hover.DeleteHoveredEdge)},
	}

	for _, reg := range registrations {
		if err := commandBus.Register(reg.cmd, reg.handler); err != nil {
			return nil, err
		}
	}

	return commandBus, nil
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(
	repo ports.SessionRepository,
	subscriber ports.ViewSubscriber,
	metrics *observability.Collector,
) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus(querybus.MetricsMiddleware(metrics))

	if err := queryBus.Register(queries.GetViewQuery{}, adaptQuery(queryhandlers.NewGetViewHandler(repo).Handle)); err != nil {
		return nil, err
	}
	if err := queryBus.Register(queries.ListSessionsQuery{}, adaptQuery(queryhandlers.NewListSessionsHandler(repo).Handle)); err != nil {
		return nil, err
	}
	if err := queryBus.Register(queries.StreamViewQuery{}, adaptQuery(queryhandlers.NewStreamViewHandler(repo, subscriber).Handle)); err != nil {
		return nil, err
	}

	return queryBus, nil
}
