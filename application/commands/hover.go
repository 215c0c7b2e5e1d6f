package commands

import "grapheditor/pkg/utils"

// HoverNodeCommand is sent when the pointer enters a node
type HoverNodeCommand struct {
	SessionID string `json:"sessionId" validate:"required"`
	NodeID    string `json:"nodeId" validate:"required"`
}

// Validate validates the command
func (c HoverNodeCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// UnhoverNodeCommand is sent when the pointer leaves a node
type UnhoverNodeCommand struct {
	SessionID string `json:"sessionId" validate:"required"`
}

// Validate validates the command
func (c UnhoverNodeCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// HoverEdgeCommand is sent when the pointer enters an edge
type HoverEdgeCommand struct {
	SessionID string `json:"sessionId" validate:"required"`
	EdgeID    string `json:"edgeId" validate:"required"`
}

// Validate validates the command
func (c HoverEdgeCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// UnhoverEdgeCommand is sent when the pointer leaves an edge
type UnhoverEdgeCommand struct {
	SessionID string `json:"sessionId" validate:"required"`
}

// Validate validates the command
func (c UnhoverEdgeCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// DeleteHoveredNodeCommand is the click on the hovered node's delete glyph
type DeleteHoveredNodeCommand struct {
	SessionID string `json:"sessionId" validate:"required"`
}

// Validate validates the command
func (c DeleteHoveredNodeCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// DeleteHoveredEdgeCommand is the click on the hovered edge's delete glyph
type DeleteHoveredEdgeCommand struct {
	SessionID string `json:"sessionId" validate:"required"`
}

// Validate validates the command
func (c DeleteHoveredEdgeCommand) Validate() error {
	return utils.ValidateStruct(c)
}
