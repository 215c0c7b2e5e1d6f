package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"grapheditor/domain/core/valueobjects"
	"grapheditor/domain/events"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordEvent(t *testing.T) {
	c := NewCollector("test")
	now := time.Now()
	n1, _ := valueobjects.NewNodeID("1")
	n2, _ := valueobjects.NewNodeID("2")
	e12, _ := valueobjects.NewEdgeID("e1-2")

	c.RecordEvent(events.NewNodeCreated("g", 1, n1, valueobjects.MustPosition(0, 0), "1", now))
	c.RecordEvent(events.NewEdgeConnected("g", 2, e12, n1, n2, now))
	c.RecordEvent(events.NewNodeRenamed("g", 3, n1, "1", "one", now))
	c.RecordEvent(events.NewNodeDeleted("g", 4, n1, []valueobjects.EdgeID{e12}, now))

	assert.Equal(t, 1.0, testutil.ToFloat64(c.NodesCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.EdgesCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.NodesRenamed))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.NodesDeleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.EdgesDeleted))
}

func TestObserveCommand(t *testing.T) {
	c := NewCollector("test")

	c.ObserveCommand("CreateNodeCommand", time.Millisecond, nil)
	c.ObserveCommand("CreateNodeCommand", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(c.Commands.WithLabelValues("CreateNodeCommand", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Commands.WithLabelValues("CreateNodeCommand", "failure")))
}

func TestHTTPMetricsUsesRoutePattern(t *testing.T) {
	c := NewCollector("test")

	r := chi.NewRouter()
	r.Use(HTTPMetrics(c))
	r.Get("/sessions/{sessionID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/abc", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("GET", "/sessions/{sessionID}", "418")))
}

func TestTrackSessionsAndHandler(t *testing.T) {
	c := NewCollector("test")
	c.TrackSessions("test", func() int { return 3 })

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_sessions_active 3")
}
