package handlers

import (
	"net/http"

	"grapheditor/application/commands"

	"github.com/go-chi/chi/v5"
)

// EdgeHandler handles edge gestures
type EdgeHandler struct {
	base
}

// NewEdgeHandler creates a new edge handler
func NewEdgeHandler(deps Deps) *EdgeHandler {
	return &EdgeHandler{base{deps}}
}

// ConnectRequest is the connection proposed by the canvas
type ConnectRequest struct {
	Source string `json:"source" validate:"required"`
	Target string `json:"target" validate:"required"`
}

// Connect handles POST /sessions/{sessionID}/edges
func (h *EdgeHandler) Connect(w http.ResponseWriter, r *http.Request) {
	var req ConnectRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.send(w, r, http.StatusCreated, commands.ConnectCommand{
		SessionID: sessionID(r),
		SourceID:  req.Source,
		TargetID:  req.Target,
	})
}

// DeleteEdge handles DELETE /sessions/{sessionID}/edges/{edgeID}
func (h *EdgeHandler) DeleteEdge(w http.ResponseWriter, r *http.Request) {
	h.send(w, r, http.StatusOK, commands.DeleteEdgeCommand{
		SessionID: sessionID(r),
		EdgeID:    chi.URLParam(r, "edgeID"),
	})
}
