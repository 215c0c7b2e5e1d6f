package handlers

import (
	"net/http"

	"grapheditor/application/commands"

	"github.com/go-chi/chi/v5"
)

// NodeHandler handles node gestures
type NodeHandler struct {
	base
}

// NewNodeHandler creates a new node handler
func NewNodeHandler(deps Deps) *NodeHandler {
	return &NodeHandler{base{deps}}
}

// MoveNodeRequest is the body of a drag-stop
type MoveNodeRequest struct {
	X *float64 `json:"x" validate:"required"`
	Y *float64 `json:"y" validate:"required"`
}

// RemoveElementsRequest lists the elements removed by the canvas in one batch
type RemoveElementsRequest struct {
	Nodes []string `json:"nodes"`
	Edges []string `json:"edges"`
}

// CreateNode handles POST /sessions/{sessionID}/nodes
func (h *NodeHandler) CreateNode(w http.ResponseWriter, r *http.Request) {
	h.send(w, r, http.StatusCreated, commands.CreateNodeCommand{SessionID: sessionID(r)})
}

// MoveNode handles PUT /sessions/{sessionID}/nodes/{nodeID}/position
func (h *NodeHandler) MoveNode(w http.ResponseWriter, r *http.Request) {
	var req MoveNodeRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.send(w, r, http.StatusOK, commands.MoveNodeCommand{
		SessionID: sessionID(r),
		NodeID:    chi.URLParam(r, "nodeID"),
		X:         *req.X,
		Y:         *req.Y,
	})
}

// DeleteNode handles DELETE /sessions/{sessionID}/nodes/{nodeID}
func (h *NodeHandler) DeleteNode(w http.ResponseWriter, r *http.Request) {
	h.send(w, r, http.StatusOK, commands.DeleteNodeCommand{
		SessionID: sessionID(r),
		NodeID:    chi.URLParam(r, "nodeID"),
	})
}

// RemoveElements handles POST /sessions/{sessionID}/elements/remove
func (h *NodeHandler) RemoveElements(w http.ResponseWriter, r *http.Request) {
	var req RemoveElementsRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.send(w, r, http.StatusOK, commands.RemoveElementsCommand{
		SessionID: sessionID(r),
		NodeIDs:   req.Nodes,
		EdgeIDs:   req.Edges,
	})
}
