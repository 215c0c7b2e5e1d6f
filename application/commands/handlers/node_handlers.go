package handlers

import (
	"context"

	"grapheditor/application/commands"
	"grapheditor/domain/core/aggregates"
	"grapheditor/domain/core/valueobjects"
)

// CreateNodeHandler handles the CreateNodeCommand
type CreateNodeHandler struct {
	runner *GestureRunner
}

// NewCreateNodeHandler creates a new handler instance
func NewCreateNodeHandler(runner *GestureRunner) *CreateNodeHandler {
	return &CreateNodeHandler{runner: runner}
}

// Handle appends a node with a freshly minted id
func (h *CreateNodeHandler) Handle(ctx context.Context, cmd commands.CreateNodeCommand) (commands.Result, error) {
	return h.runner.run(ctx, cmd.SessionID, func(s *aggregates.Session) (commands.Result, error) {
		node, err := s.CreateNode()
		if err != nil {
			return commands.Result{}, err
		}
		return commands.Result{Changed: true, NodeID: node.ID().String()}, nil
	})
}

// MoveNodeHandler handles the MoveNodeCommand
type MoveNodeHandler struct {
	runner *GestureRunner
}

// NewMoveNodeHandler creates a new handler instance
func NewMoveNodeHandler(runner *GestureRunner) *MoveNodeHandler {
	return &MoveNodeHandler{runner: runner}
}

// Handle stores a node's new position
func (h *MoveNodeHandler) Handle(ctx context.Context, cmd commands.MoveNodeCommand) (commands.Result, error) {
	nodeID, err := valueobjects.NewNodeID(cmd.NodeID)
	if err != nil {
		return commands.Result{}, err
	}
	pos, err := valueobjects.NewPosition(cmd.X, cmd.Y)
	if err != nil {
		return commands.Result{}, err
	}

	return h.runner.run(ctx, cmd.SessionID, func(s *aggregates.Session) (commands.Result, error) {
		if err := s.MoveNode(nodeID, pos); err != nil {
			return commands.Result{}, err
		}
		return commands.Result{Changed: true, NodeID: nodeID.String()}, nil
	})
}
