package commands

import "grapheditor/pkg/utils"

// CreateNodeCommand appends a node at the default position
type CreateNodeCommand struct {
	SessionID string `json:"sessionId" validate:"required"`
}

// Validate validates the command
func (c CreateNodeCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// MoveNodeCommand stores the position a drag gesture ended at
type MoveNodeCommand struct {
	SessionID string  `json:"sessionId" validate:"required"`
	NodeID    string  `json:"nodeId" validate:"required"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
}

// Validate validates the command
func (c MoveNodeCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// DeleteNodeCommand removes a node together with every edge touching it
type DeleteNodeCommand struct {
	SessionID string `json:"sessionId" validate:"required"`
	NodeID    string `json:"nodeId" validate:"required"`
}

// Validate validates the command
func (c DeleteNodeCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// RemoveElementsCommand deletes a batch of nodes and edges in one gesture.
// Unknown ids are skipped.
type RemoveElementsCommand struct {
	SessionID string   `json:"sessionId" validate:"required"`
	NodeIDs   []string `json:"nodes" validate:"dive,required"`
	EdgeIDs   []string `json:"edges" validate:"dive,required"`
}

// Validate validates the command
func (c RemoveElementsCommand) Validate() error {
	return utils.ValidateStruct(c)
}
