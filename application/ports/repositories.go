package ports

import (
	"context"
	"time"

	"grapheditor/domain/core/aggregates"
	"grapheditor/domain/events"
)

// SessionRepository stores live editor sessions.
// This is a port in hexagonal architecture - the domain doesn't know about the implementation
type SessionRepository interface {
	// Save stores a new session
	Save(ctx context.Context, session *aggregates.Session) error

	// Update runs fn with exclusive access to the session. Gestures on one
	// session are applied one at a time, in arrival order.
	Update(ctx context.Context, sessionID string, fn func(*aggregates.Session) error) error

	// Read runs fn with exclusive access to the session without counting as activity
	Read(ctx context.Context, sessionID string, fn func(*aggregates.Session) error) error

	// Delete removes a session
	Delete(ctx context.Context, sessionID string) error

	// List returns a summary of every live session
	List(ctx context.Context) ([]SessionSummary, error)
}

// SessionSummary describes a session without its collections
type SessionSummary struct {
	ID         string    `json:"id"`
	NodeCount  int       `json:"nodeCount"`
	EdgeCount  int       `json:"edgeCount"`
	CreatedAt  time.Time `json:"createdAt"`
	LastActive time.Time `json:"lastActive"`
}

// EventPublisher publishes domain events after a gesture has been applied
type EventPublisher interface {
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}

// ViewNotifier pushes the latest view of a session to its subscribers
type ViewNotifier interface {
	Notify(sessionID string, view aggregates.View)
	Close(sessionID string)
}

// ViewSubscriber registers live view streams
type ViewSubscriber interface {
	Subscribe(sessionID string) ViewSubscription
}

// ViewSubscription receives every view notified after it was created.
// The channel is closed when the session ends or Close is called.
type ViewSubscription interface {
	Views() <-chan aggregates.View
	Close()
}
