package handlers

import (
	"context"

	"grapheditor/application/ports"
	"grapheditor/application/queries"
	"grapheditor/domain/core/aggregates"
)

// StreamViewHandler handles StreamViewQuery
type StreamViewHandler struct {
	repo       ports.SessionRepository
	subscriber ports.ViewSubscriber
}

// NewStreamViewHandler creates a new StreamViewHandler
func NewStreamViewHandler(repo ports.SessionRepository, subscriber ports.ViewSubscriber) *StreamViewHandler {
	return &StreamViewHandler{
		repo:       repo,
		subscriber: subscriber,
	}
}

// Handle subscribes while holding the session lock, so no gesture can land
// between the initial view and the first streamed one.
func (h *StreamViewHandler) Handle(ctx context.Context, query queries.StreamViewQuery) (*queries.ViewStream, error) {
	var stream *queries.ViewStream
	err := h.repo.Read(ctx, query.SessionID, func(s *aggregates.Session) error {
		stream = &queries.ViewStream{
			Initial:      s.View(),
			Subscription: h.subscriber.Subscribe(query.SessionID),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stream, nil
}
