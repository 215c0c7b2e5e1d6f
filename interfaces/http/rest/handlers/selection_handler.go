package handlers

import (
	"net/http"

	"grapheditor/application/commands"
)

// SelectionHandler handles the rename panel
type SelectionHandler struct {
	base
}

// NewSelectionHandler creates a new selection handler
func NewSelectionHandler(deps Deps) *SelectionHandler {
	return &SelectionHandler{base{deps}}
}

// SelectNodeRequest opens the rename panel for a node
type SelectNodeRequest struct {
	NodeID string `json:"nodeId" validate:"required"`
}

// EditDraftRequest replaces the draft label. An empty draft is allowed.
type EditDraftRequest struct {
	Draft *string `json:"draft" validate:"required"`
}

// RenameRequest saves the panel. Without a label the current draft is used.
type RenameRequest struct {
	Label *string `json:"label,omitempty"`
}

// SelectNode handles PUT /sessions/{sessionID}/selection
func (h *SelectionHandler) SelectNode(w http.ResponseWriter, r *http.Request) {
	var req SelectNodeRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.send(w, r, http.StatusOK, commands.SelectNodeCommand{SessionID: sessionID(r), NodeID: req.NodeID})
}

// EditDraft handles PATCH /sessions/{sessionID}/selection
func (h *SelectionHandler) EditDraft(w http.ResponseWriter, r *http.Request) {
	var req EditDraftRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.send(w, r, http.StatusOK, commands.EditDraftCommand{SessionID: sessionID(r), Draft: *req.Draft})
}

// RenameSelected handles POST /sessions/{sessionID}/selection/save
func (h *SelectionHandler) RenameSelected(w http.ResponseWriter, r *http.Request) {
	var req RenameRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.send(w, r, http.StatusOK, commands.RenameSelectedCommand{SessionID: sessionID(r), Label: req.Label})
}

// CancelRename handles DELETE /sessions/{sessionID}/selection
func (h *SelectionHandler) CancelRename(w http.ResponseWriter, r *http.Request) {
	h.send(w, r, http.StatusOK, commands.CancelRenameCommand{SessionID: sessionID(r)})
}
