package handlers

import (
	"context"

	"grapheditor/application/ports"
	"grapheditor/application/queries"
	"grapheditor/domain/core/aggregates"
)

// GetViewHandler handles GetViewQuery
type GetViewHandler struct {
	repo ports.SessionRepository
}

// NewGetViewHandler creates a new GetViewHandler
func NewGetViewHandler(repo ports.SessionRepository) *GetViewHandler {
	return &GetViewHandler{repo: repo}
}

// Handle derives the view from the session's current state
func (h *GetViewHandler) Handle(ctx context.Context, query queries.GetViewQuery) (aggregates.View, error) {
	var view aggregates.View
	err := h.repo.Read(ctx, query.SessionID, func(s *aggregates.Session) error {
		view = s.View()
		return nil
	})
	if err != nil {
		return aggregates.View{}, err
	}
	return view, nil
}
