package rest

import (
	"net/http"
	"time"

	"grapheditor/application/commands/bus"
	querybus "grapheditor/application/queries/bus"
	"grapheditor/infrastructure/config"
	"grapheditor/interfaces/http/rest/handlers"
	"grapheditor/interfaces/http/rest/middleware"
	"grapheditor/pkg/common"
	pkgerrors "grapheditor/pkg/errors"
	"grapheditor/pkg/observability"
	"grapheditor/pkg/ratelimit"
	"grapheditor/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// APIVersion is reported in the X-API-Version header
const APIVersion = "v1"

// Router creates and configures the HTTP router
type Router struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	metrics    *observability.Collector
	config     *config.Config
	logger     *zap.Logger
}

// NewRouter creates a new router instance. metrics may be nil.
func NewRouter(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	metrics *observability.Collector,
	cfg *config.Config,
	logger *zap.Logger,
) *Router {
	return &Router{
		commandBus: commandBus,
		queryBus:   queryBus,
		metrics:    metrics,
		config:     cfg,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() *chi.Mux {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger, "/health", "/ready", "/metrics"))
	if rt.metrics != nil {
		router.Use(observability.HTTPMetrics(rt.metrics))
	}
	router.Use(versionMiddleware)

	if rt.config.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: rt.config.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	if rt.metrics != nil && rt.config.EnableMetrics {
		router.Handle("/metrics", rt.metrics.Handler())
	}

	errs := pkgerrors.NewErrorHandler(rt.logger, rt.config.IsDevelopment())
	deps := handlers.Deps{
		CommandBus: rt.commandBus,
		QueryBus:   rt.queryBus,
		Errors:     errs,
		Logger:     rt.logger,
	}
	sessionHandler := handlers.NewSessionHandler(deps)
	nodeHandler := handlers.NewNodeHandler(deps)
	edgeHandler := handlers.NewEdgeHandler(deps)
	selectionHandler := handlers.NewSelectionHandler(deps)
	hoverHandler := handlers.NewHoverHandler(deps)
	streamHandler := handlers.NewStreamHandler(deps, rt.config.AllowedOrigins)

	startSession := http.Handler(http.HandlerFunc(sessionHandler.StartSession))
	if rt.config.SessionCreateLimit > 0 {
		limiter := ratelimit.NewSlidingWindowLimiter(rt.config.SessionCreateLimit, time.Minute)
		startSession = middleware.RateLimit(limiter, errs, rt.logger)(startSession)
	}

	router.Route("/api/v1/sessions", func(r chi.Router) {
		r.Method(http.MethodPost, "/", startSession)
		r.Get("/", sessionHandler.ListSessions)

		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", sessionHandler.GetView)
			r.Delete("/", sessionHandler.EndSession)
			r.Get("/stream", streamHandler.Stream)

			r.Post("/nodes", nodeHandler.CreateNode)
			r.Put("/nodes/{nodeID}/position", nodeHandler.MoveNode)
			r.Delete("/nodes/{nodeID}", nodeHandler.DeleteNode)
			r.Post("/elements/remove", nodeHandler.RemoveElements)

			r.Post("/edges", edgeHandler.Connect)
			r.Delete("/edges/{edgeID}", edgeHandler.DeleteEdge)

			r.Route("/selection", func(r chi.Router) {
				r.Put("/", selectionHandler.SelectNode)
				r.Patch("/", selectionHandler.EditDraft)
				r.Delete("/", selectionHandler.CancelRename)
				r.Post("/save", selectionHandler.RenameSelected)
			})

			r.Route("/hover", func(r chi.Router) {
				r.Put("/node", hoverHandler.HoverNode)
				r.Delete("/node", hoverHandler.UnhoverNode)
				r.Post("/node/delete", hoverHandler.DeleteHoveredNode)
				r.Put("/edge", hoverHandler.HoverEdge)
				r.Delete("/edge", hoverHandler.UnhoverEdge)
				r.Post("/edge/delete", hoverHandler.DeleteHoveredEdge)
			})
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": utils.Timestamp(time.Now()),
	})
}

// readinessCheck reports ready once the buses are wired. Sessions live in
// memory so there is nothing external to probe.
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	if rt.commandBus == nil || rt.queryBus == nil {
		common.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{
		"status":    "ready",
		"timestamp": utils.Timestamp(time.Now()),
	})
}

// versionMiddleware adds API version headers to all responses
func versionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-API-Version", APIVersion)
		next.ServeHTTP(w, r)
	})
}
