package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"grapheditor/application/ports"
	"grapheditor/domain/core/aggregates"
	pkgerrors "grapheditor/pkg/errors"

	"go.uber.org/zap"
)

// SessionStore keeps editor sessions in process memory. Each session has its
// own lock so gestures on different sessions never wait on each other.
type SessionStore struct {
	mu      sync.RWMutex
	entries map[string]*entry

	ttl     time.Duration
	logger  *zap.Logger
	now     func() time.Time
	onEvict func(sessionID string)

	stop     chan struct{}
	stopOnce sync.Once
}

type entry struct {
	mu         sync.Mutex
	session    *aggregates.Session
	removed    bool
	lastActive atomic.Int64
}

var _ ports.SessionRepository = (*SessionStore)(nil)

// NewSessionStore creates a store that evicts sessions idle for longer than ttl.
// A janitor goroutine checks every interval until Close is called; a
// non-positive interval disables it.
func NewSessionStore(ttl, interval time.Duration, logger *zap.Logger) *SessionStore {
	s := &SessionStore{
		entries: make(map[string]*entry),
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
		stop:    make(chan struct{}),
	}

	if interval > 0 {
		go s.janitor(interval)
	}

	return s
}

// OnEvict registers a callback run for every session removed by the janitor
func (s *SessionStore) OnEvict(fn func(sessionID string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onEvict = fn
}

// Save stores a new session
func (s *SessionStore) Save(ctx context.Context, session *aggregates.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[session.ID()]; exists {
		return pkgerrors.NewConflictError("session already exists").
			WithDetails(map[string]interface{}{"sessionId": session.ID()})
	}

	e := &entry{session: session}
	e.lastActive.Store(s.now().UnixNano())
	s.entries[session.ID()] = e
	return nil
}

// Update runs fn while holding the session's lock and records the activity
func (s *SessionStore) Update(ctx context.Context, sessionID string, fn func(*aggregates.Session) error) error {
	return s.withSession(ctx, sessionID, true, fn)
}

// Read runs fn while holding the session's lock
func (s *SessionStore) Read(ctx context.Context, sessionID string, fn func(*aggregates.Session) error) error {
	return s.withSession(ctx, sessionID, false, fn)
}

func (s *SessionStore) withSession(ctx context.Context, sessionID string, touch bool, fn func(*aggregates.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	e, ok := s.entries[sessionID]
	s.mu.RUnlock()
	if !ok {
		return pkgerrors.ErrSessionNotFound(sessionID)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// Removed while we were waiting for the lock.
	if e.removed {
		return pkgerrors.ErrSessionNotFound(sessionID)
	}

	if touch {
		now := s.now()
		e.session.Touch(now)
		e.lastActive.Store(now.UnixNano())
	}
	return fn(e.session)
}

// Delete removes a session
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	e, ok := s.entries[sessionID]
	if ok {
		delete(s.entries, sessionID)
	}
	s.mu.Unlock()

	if !ok {
		return pkgerrors.ErrSessionNotFound(sessionID)
	}

	e.mu.Lock()
	e.removed = true
	e.mu.Unlock()
	return nil
}

// List returns a summary of every live session
func (s *SessionStore) List(ctx context.Context) ([]ports.SessionSummary, error) {
	s.mu.RLock()
	entries := make([]*entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	summaries := make([]ports.SessionSummary, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		if !e.removed {
			summaries = append(summaries, ports.SessionSummary{
				ID:         e.session.ID(),
				NodeCount:  e.session.Graph().NodeCount(),
				EdgeCount:  e.session.Graph().EdgeCount(),
				CreatedAt:  e.session.CreatedAt(),
				LastActive: e.session.LastActive(),
			})
		}
		e.mu.Unlock()
	}
	return summaries, nil
}

// Count returns the number of live sessions
func (s *SessionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// EvictIdle removes every session whose last activity is older than the TTL
// and returns their ids.
func (s *SessionStore) EvictIdle() []string {
	cutoff := s.now().Add(-s.ttl).UnixNano()

	s.mu.Lock()
	var evicted []*entry
	var ids []string
	for id, e := range s.entries {
		if e.lastActive.Load() < cutoff {
			delete(s.entries, id)
			evicted = append(evicted, e)
			ids = append(ids, id)
		}
	}
	onEvict := s.onEvict
	s.mu.Unlock()

	for i, e := range evicted {
		e.mu.Lock()
		e.removed = true
		e.mu.Unlock()

		if onEvict != nil {
			onEvict(ids[i])
		}
	}

	if len(ids) > 0 {
		s.logger.Info("Evicted idle sessions",
			zap.Int("count", len(ids)),
			zap.Duration("ttl", s.ttl),
		)
	}
	return ids
}

// Close stops the janitor
func (s *SessionStore) Close() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

// janitor periodically removes idle sessions
func (s *SessionStore) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.EvictIdle()
		case <-s.stop:
			return
		}
	}
}
