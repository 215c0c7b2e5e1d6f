package handlers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"grapheditor/application/commands"
	"grapheditor/domain/config"
	"grapheditor/domain/core/aggregates"
	"grapheditor/domain/events"
	"grapheditor/infrastructure/messaging"
	"grapheditor/infrastructure/persistence/memory"
	pkgerrors "grapheditor/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePublisher struct {
	mu     sync.Mutex
	events []events.DomainEvent
	err    error
}

func (p *fakePublisher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, batch...)
	return p.err
}

func (p *fakePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.GetEventType())
	}
	return out
}

type fixture struct {
	store     *memory.SessionStore
	hub       *messaging.ViewHub
	publisher *fakePublisher
	runner    *GestureRunner
	sessionID string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := zap.NewNop()
	store := memory.NewSessionStore(time.Hour, 0, logger)
	t.Cleanup(store.Close)
	hub := messaging.NewViewHub(8, logger)
	publisher := &fakePublisher{}
	runner := NewGestureRunner(store, publisher, hub, logger)

	start := NewStartSessionHandler(store, runner, config.DefaultDomainConfig(), logger)
	start.newID = func() string { return "s1" }
	res, err := start.Handle(context.Background(), commands.StartSessionCommand{})
	require.NoError(t, err)
	require.Equal(t, "s1", res.View.SessionID)

	return &fixture{store: store, hub: hub, publisher: publisher, runner: runner, sessionID: "s1"}
}

func viewNodeIDs(v aggregates.View) []string {
	out := []string{}
	for _, n := range v.Nodes {
		out = append(out, n.ID)
	}
	return out
}

func viewEdgeIDs(v aggregates.View) []string {
	out := []string{}
	for _, e := range v.Edges {
		out = append(out, e.ID)
	}
	return out
}

func TestStartSession(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, []string{events.TypeSessionStarted}, f.publisher.types())
	assert.Equal(t, 1, f.store.Count())
}

func TestCreateAndDeleteNodeScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := NewCreateNodeHandler(f.runner).Handle(ctx, commands.CreateNodeCommand{SessionID: f.sessionID})
	require.NoError(t, err)
	assert.Equal(t, "3", created.NodeID)
	assert.Equal(t, []string{"1", "2", "3"}, viewNodeIDs(created.View))

	deleted, err := NewDeleteNodeHandler(f.runner, zap.NewNop()).Handle(ctx, commands.DeleteNodeCommand{
		SessionID: f.sessionID,
		NodeID:    "1",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"e1-2"}, deleted.CascadedEdges)
	assert.Equal(t, []string{"2", "3"}, viewNodeIDs(deleted.View))
	assert.Empty(t, deleted.View.Edges)

	assert.Equal(t, []string{
		events.TypeSessionStarted,
		events.TypeNodeCreated,
		events.TypeNodeDeleted,
	}, f.publisher.types())
}

func TestGestureOnUnknownSession(t *testing.T) {
	_, err := NewCreateNodeHandler(newFixture(t).runner).Handle(context.Background(), commands.CreateNodeCommand{SessionID: "missing"})
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestGestureErrorPublishesNothing(t *testing.T) {
	f := newFixture(t)

	_, err := NewDeleteEdgeHandler(f.runner).Handle(context.Background(), commands.DeleteEdgeCommand{
		SessionID: f.sessionID,
		EdgeID:    "e9-9",
	})
	assert.True(t, pkgerrors.IsNotFound(err))
	assert.Equal(t, []string{events.TypeSessionStarted}, f.publisher.types())
}

func TestPublishFailureDoesNotFailGesture(t *testing.T) {
	f := newFixture(t)
	f.publisher.err = errors.New("bus down")

	res, err := NewConnectHandler(f.runner).Handle(context.Background(), commands.ConnectCommand{
		SessionID: f.sessionID,
		SourceID:  "2",
		TargetID:  "1",
	})
	require.NoError(t, err)
	assert.Equal(t, "e2-1", res.EdgeID)
	assert.Equal(t, []string{"e1-2", "e2-1"}, viewEdgeIDs(res.View))
}

func TestConnectAndDeleteEdge(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	connected, err := NewConnectHandler(f.runner).Handle(ctx, commands.ConnectCommand{
		SessionID: f.sessionID, SourceID: "1", TargetID: "2",
	})
	require.NoError(t, err)
	assert.Equal(t, "e1-2-2", connected.EdgeID)
	require.Len(t, connected.View.Anchors, 2)

	res, err := NewDeleteEdgeHandler(f.runner).Handle(ctx, commands.DeleteEdgeCommand{
		SessionID: f.sessionID, EdgeID: "e1-2",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"e1-2-2"}, viewEdgeIDs(res.View))
	assert.Equal(t, []string{"1", "2"}, viewNodeIDs(res.View))

	_, err = NewConnectHandler(f.runner).Handle(ctx, commands.ConnectCommand{
		SessionID: f.sessionID, SourceID: "1", TargetID: "42",
	})
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestRenameFlow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	selected, err := NewSelectNodeHandler(f.runner).Handle(ctx, commands.SelectNodeCommand{SessionID: f.sessionID, NodeID: "2"})
	require.NoError(t, err)
	require.NotNil(t, selected.View.RenamePanel)
	assert.Equal(t, "2", selected.View.RenamePanel.Draft)

	edited, err := NewEditDraftHandler(f.runner).Handle(ctx, commands.EditDraftCommand{SessionID: f.sessionID, Draft: "Second"})
	require.NoError(t, err)
	assert.True(t, edited.Changed)
	assert.Equal(t, "Second", edited.View.RenamePanel.Draft)

	renamed, err := NewRenameSelectedHandler(f.runner).Handle(ctx, commands.RenameSelectedCommand{SessionID: f.sessionID})
	require.NoError(t, err)
	assert.True(t, renamed.Changed)
	assert.Equal(t, "2", renamed.NodeID)
	assert.Nil(t, renamed.View.RenamePanel)
	assert.Equal(t, "Second", renamed.View.Nodes[1].Data.Label)

	again, err := NewRenameSelectedHandler(f.runner).Handle(ctx, commands.RenameSelectedCommand{SessionID: f.sessionID})
	require.NoError(t, err)
	assert.False(t, again.Changed)
}

func TestCancelRename(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := NewSelectNodeHandler(f.runner).Handle(ctx, commands.SelectNodeCommand{SessionID: f.sessionID, NodeID: "1"})
	require.NoError(t, err)

	res, err := NewCancelRenameHandler(f.runner).Handle(ctx, commands.CancelRenameCommand{SessionID: f.sessionID})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Nil(t, res.View.RenamePanel)
	assert.Equal(t, "1", res.View.Nodes[0].Data.Label)
}

func TestHoverGestures(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	hover := NewHoverHandler(f.runner)

	res, err := hover.HoverEdge(ctx, commands.HoverEdgeCommand{SessionID: f.sessionID, EdgeID: "e1-2"})
	require.NoError(t, err)
	require.NotNil(t, res.View.EdgeDeleteAffordance)
	assert.Equal(t, 10.0, res.View.EdgeDeleteAffordance.Anchor.X())
	assert.Equal(t, 55.0, res.View.EdgeDeleteAffordance.Anchor.Y())

	res, err = hover.DeleteHoveredEdge(ctx, commands.DeleteHoveredEdgeCommand{SessionID: f.sessionID})
	require.NoError(t, err)
	assert.Equal(t, "e1-2", res.EdgeID)
	assert.Empty(t, res.View.Edges)
	assert.Nil(t, res.View.EdgeDeleteAffordance)

	res, err = hover.HoverNode(ctx, commands.HoverNodeCommand{SessionID: f.sessionID, NodeID: "1"})
	require.NoError(t, err)
	require.NotNil(t, res.View.NodeDeleteAffordance)

	res, err = hover.UnhoverNode(ctx, commands.UnhoverNodeCommand{SessionID: f.sessionID})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Nil(t, res.View.NodeDeleteAffordance)

	res, err = hover.UnhoverNode(ctx, commands.UnhoverNodeCommand{SessionID: f.sessionID})
	require.NoError(t, err)
	assert.False(t, res.Changed)

	res, err = hover.DeleteHoveredNode(ctx, commands.DeleteHoveredNodeCommand{SessionID: f.sessionID})
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Len(t, res.View.Nodes, 2)
}

func TestRemoveElements(t *testing.T) {
	f := newFixture(t)

	res, err := NewRemoveElementsHandler(f.runner).Handle(context.Background(), commands.RemoveElementsCommand{
		SessionID: f.sessionID,
		NodeIDs:   []string{"2", "99"},
		EdgeIDs:   []string{"e1-2"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, res.RemovedNodes)
	assert.Equal(t, []string{"e1-2"}, res.CascadedEdges)
	assert.Empty(t, res.RemovedEdges)
	assert.Equal(t, []string{"1"}, viewNodeIDs(res.View))
}

func TestMoveNodeUpdatesAnchors(t *testing.T) {
	f := newFixture(t)

	res, err := NewMoveNodeHandler(f.runner).Handle(context.Background(), commands.MoveNodeCommand{
		SessionID: f.sessionID, NodeID: "2", X: 110, Y: 210,
	})
	require.NoError(t, err)
	require.Len(t, res.View.Anchors, 1)
	assert.Equal(t, 60.0, res.View.Anchors[0].Position.X())
	assert.Equal(t, 110.0, res.View.Anchors[0].Position.Y())
}

func TestChangedGesturesNotifySubscribers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	sub := f.hub.Subscribe(f.sessionID)
	defer sub.Close()

	_, err := NewCreateNodeHandler(f.runner).Handle(ctx, commands.CreateNodeCommand{SessionID: f.sessionID})
	require.NoError(t, err)
	_, err = NewCancelRenameHandler(f.runner).Handle(ctx, commands.CancelRenameCommand{SessionID: f.sessionID})
	require.NoError(t, err)

	require.Len(t, sub.Views(), 1, "no-op gestures are not streamed")
	view := <-sub.Views()
	assert.Equal(t, []string{"1", "2", "3"}, viewNodeIDs(view))
}

func TestEndSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	sub := f.hub.Subscribe(f.sessionID)

	_, err := NewEndSessionHandler(f.store, f.hub, zap.NewNop()).Handle(ctx, commands.EndSessionCommand{SessionID: f.sessionID})
	require.NoError(t, err)

	_, open := <-sub.Views()
	assert.False(t, open)
	assert.Equal(t, 0, f.store.Count())

	_, err = NewEndSessionHandler(f.store, f.hub, zap.NewNop()).Handle(ctx, commands.EndSessionCommand{SessionID: f.sessionID})
	assert.True(t, pkgerrors.IsNotFound(err))
}
