package observability

import (
	"net/http"
	"strconv"
	"time"

	"grapheditor/domain/events"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Bus metrics
	Commands        *prometheus.CounterVec
	CommandDuration *prometheus.HistogramVec
	Queries         *prometheus.CounterVec

	// Editor metrics
	NodesCreated prometheus.Counter
	NodesDeleted prometheus.Counter
	NodesRenamed prometheus.Counter
	EdgesCreated prometheus.Counter
	EdgesDeleted prometheus.Counter
}

// NewCollector creates a collector with its own registry, so several
// collectors can coexist in one process (tests, Lambda warm starts).
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		Commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commands_total",
				Help:      "Total number of commands handled",
			},
			[]string{"command", "status"},
		),
		CommandDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "command_duration_seconds",
				Help:      "Command handling duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"command"},
		),
		Queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "queries_total",
				Help:      "Total number of queries handled",
			},
			[]string{"query", "status"},
		),
		NodesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_created_total",
			Help:      "Total number of nodes created",
		}),
		NodesDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_deleted_total",
			Help:      "Total number of nodes deleted",
		}),
		NodesRenamed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_renamed_total",
			Help:      "Total number of node renames",
		}),
		EdgesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_created_total",
			Help:      "Total number of edges created",
		}),
		EdgesDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_deleted_total",
			Help:      "Total number of edges deleted, including cascades",
		}),
	}

	registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.Commands,
		c.CommandDuration,
		c.Queries,
		c.NodesCreated,
		c.NodesDeleted,
		c.NodesRenamed,
		c.EdgesCreated,
		c.EdgesDeleted,
	)

	return c
}

// TrackSessions exposes the live session count as a gauge
func (c *Collector) TrackSessions(namespace string, count func() int) {
	c.registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Number of live editor sessions",
		},
		func() float64 { return float64(count()) },
	))
}

// ObserveCommand records one command outcome
func (c *Collector) ObserveCommand(cmdType string, duration time.Duration, err error) {
	c.Commands.WithLabelValues(cmdType, outcome(err)).Inc()
	c.CommandDuration.WithLabelValues(cmdType).Observe(duration.Seconds())
}

// ObserveQuery records one query outcome
func (c *Collector) ObserveQuery(queryType string, duration time.Duration, err error) {
	c.Queries.WithLabelValues(queryType, outcome(err)).Inc()
}

// ObserveHTTP records one served request
func (c *Collector) ObserveHTTP(method, route string, status int, duration time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordEvent updates the editor counters for a published domain event
func (c *Collector) RecordEvent(event events.DomainEvent) {
	switch e := event.(type) {
	case events.NodeCreated:
		c.NodesCreated.Inc()
	case events.NodeRenamed:
		c.NodesRenamed.Inc()
	case events.NodeDeleted:
		c.NodesDeleted.Inc()
		c.EdgesDeleted.Add(float64(len(e.CascadedEdges)))
	case events.EdgeConnected:
		c.EdgesCreated.Inc()
	case events.EdgeDeleted:
		c.EdgesDeleted.Inc()
	}
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func outcome(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
