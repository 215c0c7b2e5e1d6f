package commands

import "grapheditor/pkg/utils"

// SelectNodeCommand opens the rename panel for a node
type SelectNodeCommand struct {
	SessionID string `json:"sessionId" validate:"required"`
	NodeID    string `json:"nodeId" validate:"required"`
}

// Validate validates the command
func (c SelectNodeCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// EditDraftCommand replaces the rename panel's text
type EditDraftCommand struct {
	SessionID string `json:"sessionId" validate:"required"`
	Draft     string `json:"draft"`
}

// Validate validates the command
func (c EditDraftCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// RenameSelectedCommand saves the rename panel. A nil Label saves the current draft.
type RenameSelectedCommand struct {
	SessionID string  `json:"sessionId" validate:"required"`
	Label     *string `json:"label,omitempty"`
}

// Validate validates the command
func (c RenameSelectedCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// CancelRenameCommand closes the rename panel without saving
type CancelRenameCommand struct {
	SessionID string `json:"sessionId" validate:"required"`
}

// Validate validates the command
func (c CancelRenameCommand) Validate() error {
	return utils.ValidateStruct(c)
}
