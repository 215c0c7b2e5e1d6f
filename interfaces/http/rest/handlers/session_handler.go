package handlers

import (
	"net/http"

	"grapheditor/application/commands"
	"grapheditor/application/queries"
	"grapheditor/pkg/common"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// SessionHandler handles session lifecycle requests
type SessionHandler struct {
	base
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(deps Deps) *SessionHandler {
	return &SessionHandler{base{deps}}
}

// StartSession handles POST /sessions
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	h.send(w, r, http.StatusCreated, commands.StartSessionCommand{})
}

// ListSessions handles GET /sessions
func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	params := common.ExtractPaginationParams(r)

	result, err := h.QueryBus.Ask(r.Context(), queries.ListSessionsQuery{
		Page:     params.Page,
		PageSize: params.PageSize,
		SortBy:   params.Sort,
		Order:    params.Order,
	})
	if err != nil {
		h.Errors.Handle(w, r, err)
		return
	}

	list, ok := result.(*queries.ListSessionsResult)
	if !ok {
		h.Logger.Error("Unexpected list sessions result", zap.Any("result", result))
		h.Errors.HandleStatus(w, r, http.StatusInternalServerError, "unexpected query result")
		return
	}

	common.RespondWithMeta(w, http.StatusOK, list.Sessions, &common.MetaInfo{
		RequestID:  middleware.GetReqID(r.Context()),
		Pagination: common.BuildPaginationMeta(list.Page, list.PageSize, list.TotalCount),
	})
}

// GetView handles GET /sessions/{sessionID}
func (h *SessionHandler) GetView(w http.ResponseWriter, r *http.Request) {
	h.ask(w, r, queries.GetViewQuery{SessionID: sessionID(r)})
}

// EndSession handles DELETE /sessions/{sessionID}
func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	if _, err := h.CommandBus.Send(r.Context(), commands.EndSessionCommand{SessionID: id}); err != nil {
		h.Errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"sessionId": id,
		"ended":     true,
	})
}
