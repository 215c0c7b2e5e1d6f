package handlers

import (
	"context"
	"math"
	"testing"
	"time"

	"grapheditor/application/ports"
	"grapheditor/application/queries"
	"grapheditor/domain/core/aggregates"
	pkgerrors "grapheditor/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRepo serves a fixed session list and one session for reads
type stubRepo struct {
	ports.SessionRepository
	summaries []ports.SessionSummary
	session   *aggregates.Session
}

func (r *stubRepo) List(ctx context.Context) ([]ports.SessionSummary, error) {
	out := make([]ports.SessionSummary, len(r.summaries))
	copy(out, r.summaries)
	return out, nil
}

func (r *stubRepo) Read(ctx context.Context, id string, fn func(*aggregates.Session) error) error {
	if r.session == nil || r.session.ID() != id {
		return pkgerrors.ErrSessionNotFound(id)
	}
	return fn(r.session)
}

func TestGetView(t *testing.T) {
	session, err := aggregates.NewSession("s1", nil)
	require.NoError(t, err)
	h := NewGetViewHandler(&stubRepo{session: session})

	view, err := h.Handle(context.Background(), queries.GetViewQuery{SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, "s1", view.SessionID)
	assert.Len(t, view.Nodes, 2)

	_, err = h.Handle(context.Background(), queries.GetViewQuery{SessionID: "s2"})
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestListSessions(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := &stubRepo{summaries: []ports.SessionSummary{
		{ID: "a", CreatedAt: base, LastActive: base.Add(3 * time.Minute)},
		{ID: "b", CreatedAt: base.Add(time.Minute), LastActive: base.Add(time.Minute)},
		{ID: "c", CreatedAt: base.Add(2 * time.Minute), LastActive: base.Add(2 * time.Minute)},
	}}
	h := NewListSessionsHandler(repo)

	tests := []struct {
		name  string
		query queries.ListSessionsQuery
		want  []string
	}{
		{name: "newest first by default", query: queries.ListSessionsQuery{Page: 1, PageSize: 10}, want: []string{"c", "b", "a"}},
		{name: "oldest first", query: queries.ListSessionsQuery{Page: 1, PageSize: 10, Order: "asc"}, want: []string{"a", "b", "c"}},
		{name: "by activity", query: queries.ListSessionsQuery{Page: 1, PageSize: 10, SortBy: "active"}, want: []string{"a", "c", "b"}},
		{name: "second page", query: queries.ListSessionsQuery{Page: 2, PageSize: 2}, want: []string{"a"}},
		{name: "past the end", query: queries.ListSessionsQuery{Page: 5, PageSize: 2}, want: []string{}},
		{name: "last partial page", query: queries.ListSessionsQuery{Page: 2, PageSize: 3}, want: []string{}},
		{name: "page that would overflow the offset", query: queries.ListSessionsQuery{Page: 461168601842738792, PageSize: 20}, want: []string{}},
		{name: "largest page", query: queries.ListSessionsQuery{Page: math.MaxInt, PageSize: 100}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := h.Handle(context.Background(), tt.query)
			require.NoError(t, err)

			ids := []string{}
			for _, s := range result.Sessions {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.want, ids)
			assert.Equal(t, 3, result.TotalCount)
		})
	}
}

func TestPageStart(t *testing.T) {
	assert.Equal(t, 0, pageStart(1, 20, 3))
	assert.Equal(t, 2, pageStart(2, 2, 3))
	assert.Equal(t, 3, pageStart(3, 2, 3))
	assert.Equal(t, 0, pageStart(1, 20, 0))
	assert.Equal(t, 3, pageStart(math.MaxInt/2, 4, 3))
	assert.Equal(t, 3, pageStart(0, 20, 3))
}

type stubSubscription struct {
	views  chan aggregates.View
	closed bool
}

func (s *stubSubscription) Views() <-chan aggregates.View { return s.views }
func (s *stubSubscription) Close()                        { s.closed = true }

type stubSubscriber struct {
	subscribed []string
}

func (s *stubSubscriber) Subscribe(sessionID string) ports.ViewSubscription {
	s.subscribed = append(s.subscribed, sessionID)
	return &stubSubscription{views: make(chan aggregates.View)}
}

func TestStreamView(t *testing.T) {
	session, err := aggregates.NewSession("s1", nil)
	require.NoError(t, err)
	subscriber := &stubSubscriber{}
	h := NewStreamViewHandler(&stubRepo{session: session}, subscriber)

	stream, err := h.Handle(context.Background(), queries.StreamViewQuery{SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, "s1", stream.Initial.SessionID)
	assert.NotNil(t, stream.Subscription)
	assert.Equal(t, []string{"s1"}, subscriber.subscribed)

	_, err = h.Handle(context.Background(), queries.StreamViewQuery{SessionID: "gone"})
	assert.True(t, pkgerrors.IsNotFound(err))
	assert.Len(t, subscriber.subscribed, 1, "no subscription for unknown sessions")
}
