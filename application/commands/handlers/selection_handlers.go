package handlers

import (
	"context"

	"grapheditor/application/commands"
	"grapheditor/domain/core/aggregates"
	"grapheditor/domain/core/valueobjects"
)

// SelectNodeHandler opens the rename panel
type SelectNodeHandler struct {
	runner *GestureRunner
}

// NewSelectNodeHandler creates a new select node handler
func NewSelectNodeHandler(runner *GestureRunner) *SelectNodeHandler {
	return &SelectNodeHandler{runner: runner}
}

// Handle selects the node and seeds the draft with its label
func (h *SelectNodeHandler) Handle(ctx context.Context, cmd commands.SelectNodeCommand) (commands.Result, error) {
	nodeID, err := valueobjects.NewNodeID(cmd.NodeID)
	if err != nil {
		return commands.Result{}, err
	}

	return h.runner.run(ctx, cmd.SessionID, func(s *aggregates.Session) (commands.Result, error) {
		if err := s.SelectNode(nodeID); err != nil {
			return commands.Result{}, err
		}
		return commands.Result{Changed: true, NodeID: nodeID.String()}, nil
	})
}

// EditDraftHandler updates the rename panel's text
type EditDraftHandler struct {
	runner *GestureRunner
}

// NewEditDraftHandler creates a new edit draft handler
func NewEditDraftHandler(runner *GestureRunner) *EditDraftHandler {
	return &EditDraftHandler{runner: runner}
}

// Handle replaces the draft; ignored when nothing is selected
func (h *EditDraftHandler) Handle(ctx context.Context, cmd commands.EditDraftCommand) (commands.Result, error) {
	return h.runner.run(ctx, cmd.SessionID, func(s *aggregates.Session) (commands.Result, error) {
		return commands.Result{Changed: s.EditDraft(cmd.Draft)}, nil
	})
}

// RenameSelectedHandler saves the rename panel
type RenameSelectedHandler struct {
	runner *GestureRunner
}

// NewRenameSelectedHandler creates a new rename handler
func NewRenameSelectedHandler(runner *GestureRunner) *RenameSelectedHandler {
	return &RenameSelectedHandler{runner: runner}
}

// Handle renames the selected node and closes the panel. Without a selection
// nothing happens and Changed is false.
func (h *RenameSelectedHandler) Handle(ctx context.Context, cmd commands.RenameSelectedCommand) (commands.Result, error) {
	return h.runner.run(ctx, cmd.SessionID, func(s *aggregates.Session) (commands.Result, error) {
		sel, hadSelection := s.UI().Selection()

		renamed, err := s.RenameSelected(cmd.Label)
		if err != nil {
			return commands.Result{}, err
		}

		result := commands.Result{Changed: renamed}
		if renamed {
			result.NodeID = sel.NodeID.String()
		} else if hadSelection {
			// the selected node was deleted meanwhile and the panel closed
			result.Changed = true
		}
		return result, nil
	})
}

// CancelRenameHandler closes the rename panel without saving
type CancelRenameHandler struct {
	runner *GestureRunner
}

// NewCancelRenameHandler creates a new cancel rename handler
func NewCancelRenameHandler(runner *GestureRunner) *CancelRenameHandler {
	return &CancelRenameHandler{runner: runner}
}

// Handle discards the draft and clears the selection
func (h *CancelRenameHandler) Handle(ctx context.Context, cmd commands.CancelRenameCommand) (commands.Result, error) {
	return h.runner.run(ctx, cmd.SessionID, func(s *aggregates.Session) (commands.Result, error) {
		return commands.Result{Changed: s.CancelRename()}, nil
	})
}
