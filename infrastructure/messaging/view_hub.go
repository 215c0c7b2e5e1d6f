package messaging

import (
	"sync"

	"grapheditor/application/ports"
	"grapheditor/domain/core/aggregates"

	"go.uber.org/zap"
)

// ViewHub fans the latest view of each session out to its stream subscribers.
// Notify never blocks: a subscriber that falls behind loses its oldest
// pending view, since every view supersedes the ones before it.
type ViewHub struct {
	mu          sync.RWMutex
	subscribers map[string]map[*Subscription]struct{}
	bufferSize  int
	logger      *zap.Logger
}

// Subscription is one stream's view of a session
type Subscription struct {
	sessionID string
	views     chan aggregates.View
	hub       *ViewHub
	closed    bool
}

var (
	_ ports.ViewNotifier     = (*ViewHub)(nil)
	_ ports.ViewSubscriber   = (*ViewHub)(nil)
	_ ports.ViewSubscription = (*Subscription)(nil)
)

// NewViewHub creates a hub whose subscribers buffer up to bufferSize views
func NewViewHub(bufferSize int, logger *zap.Logger) *ViewHub {
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &ViewHub{
		subscribers: make(map[string]map[*Subscription]struct{}),
		bufferSize:  bufferSize,
		logger:      logger,
	}
}

// Subscribe registers a new subscriber for a session
func (h *ViewHub) Subscribe(sessionID string) ports.ViewSubscription {
	sub := &Subscription{
		sessionID: sessionID,
		views:     make(chan aggregates.View, h.bufferSize),
		hub:       h,
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subscribers[sessionID] == nil {
		h.subscribers[sessionID] = make(map[*Subscription]struct{})
	}
	h.subscribers[sessionID][sub] = struct{}{}

	h.logger.Debug("Stream subscribed",
		zap.String("sessionID", sessionID),
		zap.Int("subscribers", len(h.subscribers[sessionID])),
	)
	return sub
}

// Notify delivers view to every subscriber of the session
func (h *ViewHub) Notify(sessionID string, view aggregates.View) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subscribers[sessionID] {
		select {
		case sub.views <- view:
			continue
		default:
		}
		// Full: drop the oldest view to make room.
		select {
		case <-sub.views:
		default:
		}
		select {
		case sub.views <- view:
		default:
		}
	}
}

// Close disconnects every subscriber of the session
func (h *ViewHub) Close(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subscribers[sessionID] {
		sub.closeLocked()
	}
	delete(h.subscribers, sessionID)
}

// SubscriberCount returns the number of subscribers of a session
func (h *ViewHub) SubscriberCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[sessionID])
}

// Views returns the channel views are delivered on. It is closed when the
// subscription ends.
func (s *Subscription) Views() <-chan aggregates.View {
	return s.views
}

// Close unsubscribes. It is safe to call more than once.
func (s *Subscription) Close() {
	s.hub.mu.Lock()
	defer s.hub.mu.Unlock()

	if subs, ok := s.hub.subscribers[s.sessionID]; ok {
		delete(subs, s)
		if len(subs) == 0 {
			delete(s.hub.subscribers, s.sessionID)
		}
	}
	s.closeLocked()
}

func (s *Subscription) closeLocked() {
	if s.closed {
		return
	}
	s.closed = true
	close(s.views)
}
