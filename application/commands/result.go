package commands

import "grapheditor/domain/core/aggregates"

// Result is returned by every gesture handler. View is the session's state
// right after the gesture, captured under the session lock.
type Result struct {
	View    aggregates.View `json:"view"`
	Changed bool            `json:"changed"`

	NodeID        string   `json:"nodeId,omitempty"`
	EdgeID        string   `json:"edgeId,omitempty"`
	RemovedNodes  []string `json:"removedNodes,omitempty"`
	RemovedEdges  []string `json:"removedEdges,omitempty"`
	CascadedEdges []string `json:"cascadedEdges,omitempty"`
}
