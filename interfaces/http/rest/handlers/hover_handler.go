package handlers

import (
	"net/http"

	"grapheditor/application/commands"
)

// HoverHandler handles pointer enter and leave on canvas elements
type HoverHandler struct {
	base
}

// NewHoverHandler creates a new hover handler
func NewHoverHandler(deps Deps) *HoverHandler {
	return &HoverHandler{base{deps}}
}

// HoverNodeRequest names the node under the pointer
type HoverNodeRequest struct {
	NodeID string `json:"nodeId" validate:"required"`
}

// HoverEdgeRequest names the edge under the pointer
type HoverEdgeRequest struct {
	EdgeID string `json:"edgeId" validate:"required"`
}

// HoverNode handles PUT /sessions/{sessionID}/hover/node
func (h *HoverHandler) HoverNode(w http.ResponseWriter, r *http.Request) {
	var req HoverNodeRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.send(w, r, http.StatusOK, commands.HoverNodeCommand{SessionID: sessionID(r), NodeID: req.NodeID})
}

// UnhoverNode handles DELETE /sessions/{sessionID}/hover/node
func (h *HoverHandler) UnhoverNode(w http.ResponseWriter, r *http.Request) {
	h.send(w, r, http.StatusOK, commands.UnhoverNodeCommand{SessionID: sessionID(r)})
}

// DeleteHoveredNode handles POST /sessions/{sessionID}/hover/node/delete
func (h *HoverHandler) DeleteHoveredNode(w http.ResponseWriter, r *http.Request) {
	h.send(w, r, http.StatusOK, commands.DeleteHoveredNodeCommand{SessionID: sessionID(r)})
}

// HoverEdge handles PUT /sessions/{sessionID}/hover/edge
func (h *HoverHandler) HoverEdge(w http.ResponseWriter, r *http.Request) {
	var req HoverEdgeRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.send(w, r, http.StatusOK, commands.HoverEdgeCommand{SessionID: sessionID(r), EdgeID: req.EdgeID})
}

// UnhoverEdge handles DELETE /sessions/{sessionID}/hover/edge
func (h *HoverHandler) UnhoverEdge(w http.ResponseWriter, r *http.Request) {
	h.send(w, r, http.StatusOK, commands.UnhoverEdgeCommand{SessionID: sessionID(r)})
}

// DeleteHoveredEdge handles POST /sessions/{sessionID}/hover/edge/delete
func (h *HoverHandler) DeleteHoveredEdge(w http.ResponseWriter, r *http.Request) {
	h.send(w, r, http.StatusOK, commands.DeleteHoveredEdgeCommand{SessionID: sessionID(r)})
}
