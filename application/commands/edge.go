package commands

import "grapheditor/pkg/utils"

// ConnectCommand appends an edge from source to target
type ConnectCommand struct {
	SessionID string `json:"sessionId" validate:"required"`
	SourceID  string `json:"source" validate:"required"`
	TargetID  string `json:"target" validate:"required"`
}

// Validate validates the command
func (c ConnectCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// DeleteEdgeCommand removes exactly one edge
type DeleteEdgeCommand struct {
	SessionID string `json:"sessionId" validate:"required"`
	EdgeID    string `json:"edgeId" validate:"required"`
}

// Validate validates the command
func (c DeleteEdgeCommand) Validate() error {
	return utils.ValidateStruct(c)
}
