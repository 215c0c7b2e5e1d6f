package entities

import (
	"grapheditor/domain/core/valueobjects"
	pkgerrors "grapheditor/pkg/errors"
)

// Edge connects a source node to a target node
type Edge struct {
	id     valueobjects.EdgeID
	source valueobjects.NodeID
	target valueobjects.NodeID
}

// NewEdge creates an edge. Self-loops are allowed.
func NewEdge(id valueobjects.EdgeID, source, target valueobjects.NodeID) (*Edge, error) {
	if id.IsZero() {
		return nil, pkgerrors.NewValidationError("edge ID cannot be empty")
	}
	if source.IsZero() || target.IsZero() {
		return nil, pkgerrors.NewValidationError("edge endpoints cannot be empty")
	}
	return &Edge{id: id, source: source, target: target}, nil
}

// ID returns the edge identifier
func (e *Edge) ID() valueobjects.EdgeID {
	return e.id
}

// Source returns the source node id
func (e *Edge) Source() valueobjects.NodeID {
	return e.source
}

// Target returns the target node id
func (e *Edge) Target() valueobjects.NodeID {
	return e.target
}

// Touches reports whether either endpoint is nodeID
func (e *Edge) Touches(nodeID valueobjects.NodeID) bool {
	return e.source.Equals(nodeID) || e.target.Equals(nodeID)
}

// Clone returns an independent copy
func (e *Edge) Clone() *Edge {
	c := *e
	return &c
}
