package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"grapheditor/domain/core/aggregates"
	"grapheditor/domain/core/valueobjects"
	"grapheditor/domain/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func viewAt(version int) aggregates.View {
	return aggregates.View{SessionID: "s1", Version: version}
}

func TestViewHubDeliversToSessionSubscribers(t *testing.T) {
	hub := NewViewHub(4, zap.NewNop())
	a := hub.Subscribe("s1")
	b := hub.Subscribe("s1")
	other := hub.Subscribe("s2")

	hub.Notify("s1", viewAt(2))

	assert.Equal(t, 2, (<-a.Views()).Version)
	assert.Equal(t, 2, (<-b.Views()).Version)
	assert.Empty(t, other.Views())
}

func TestViewHubDropsOldestWhenFull(t *testing.T) {
	hub := NewViewHub(2, zap.NewNop())
	sub := hub.Subscribe("s1")

	for v := 1; v <= 5; v++ {
		hub.Notify("s1", viewAt(v))
	}

	require.Len(t, sub.Views(), 2)
	assert.Equal(t, 4, (<-sub.Views()).Version)
	assert.Equal(t, 5, (<-sub.Views()).Version)
}

func TestViewHubClose(t *testing.T) {
	hub := NewViewHub(1, zap.NewNop())
	sub := hub.Subscribe("s1")
	require.Equal(t, 1, hub.SubscriberCount("s1"))

	hub.Close("s1")

	_, open := <-sub.Views()
	assert.False(t, open)
	assert.Equal(t, 0, hub.SubscriberCount("s1"))

	// Closing the subscription afterwards must not panic.
	sub.Close()
	hub.Notify("s1", viewAt(1))
}

func TestSubscriptionClose(t *testing.T) {
	hub := NewViewHub(1, zap.NewNop())
	sub := hub.Subscribe("s1")
	keep := hub.Subscribe("s1")

	sub.Close()
	sub.Close()

	assert.Equal(t, 1, hub.SubscriberCount("s1"))
	hub.Notify("s1", viewAt(3))
	assert.Equal(t, 3, (<-keep.Views()).Version)
}

type recordedEvents struct {
	types []string
}

func (r *recordedEvents) RecordEvent(event events.DomainEvent) {
	r.types = append(r.types, event.GetEventType())
}

func TestLogPublisher(t *testing.T) {
	rec := &recordedEvents{}
	pub := NewLogPublisher(zap.NewNop(), rec)
	id, err := valueobjects.NewNodeID("1")
	require.NoError(t, err)
	now := time.Now()

	err = pub.PublishBatch(context.Background(), []events.DomainEvent{
		events.NewNodeCreated("s1", 2, id, valueobjects.MustPosition(1, 2), "1", now),
		events.NewNodeDeleted("s1", 3, id, nil, now),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{events.TypeNodeCreated, events.TypeNodeDeleted}, rec.types)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = pub.PublishBatch(ctx, []events.DomainEvent{events.NewNodeDeleted("s1", 4, id, nil, now)})
	assert.ErrorIs(t, err, context.Canceled)
}

type failingPublisher struct{ err error }

func (p failingPublisher) PublishBatch(context.Context, []events.DomainEvent) error { return p.err }

func TestFanoutPublisher(t *testing.T) {
	rec := &recordedEvents{}
	boom := errors.New("bus unavailable")
	pub := NewFanoutPublisher(failingPublisher{err: boom}, NewLogPublisher(zap.NewNop(), rec))
	id, err := valueobjects.NewNodeID("1")
	require.NoError(t, err)

	err = pub.PublishBatch(context.Background(), []events.DomainEvent{
		events.NewNodeDeleted("s1", 2, id, nil, time.Now()),
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{events.TypeNodeDeleted}, rec.types, "later publishers still run")

	assert.NoError(t, NewFanoutPublisher().PublishBatch(context.Background(), nil))
}
