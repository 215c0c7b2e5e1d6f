package entities

import (
	"unicode/utf8"

	"grapheditor/domain/core/valueobjects"
	pkgerrors "grapheditor/pkg/errors"
)

// Node is a canvas element with a position and a display label
type Node struct {
	id       valueobjects.NodeID
	position valueobjects.Position
	label    string
}

// NewNode creates a node. An empty id is rejected; labels may be empty.
func NewNode(id valueobjects.NodeID, position valueobjects.Position, label string) (*Node, error) {
	if id.IsZero() {
		return nil, pkgerrors.NewValidationError("node ID cannot be empty")
	}
	return &Node{
		id:       id,
		position: position,
		label:    label,
	}, nil
}

// ID returns the node's unique identifier
func (n *Node) ID() valueobjects.NodeID {
	return n.id
}

// Position returns the node's canvas position
func (n *Node) Position() valueobjects.Position {
	return n.position
}

// Label returns the display label
func (n *Node) Label() string {
	return n.label
}

// Rename replaces the label, enforcing maxLength in runes when positive
func (n *Node) Rename(label string, maxLength int) error {
	if maxLength > 0 && utf8.RuneCountInString(label) > maxLength {
		return pkgerrors.NewValidationError("label exceeds maximum length").
			WithDetails(map[string]interface{}{"max_length": maxLength})
	}
	n.label = label
	return nil
}

// MoveTo replaces the node's position
func (n *Node) MoveTo(position valueobjects.Position) {
	n.position = position
}

// Clone returns an independent copy
func (n *Node) Clone() *Node {
	c := *n
	return &c
}
