package handlers

import (
	"context"

	"grapheditor/application/commands"
	"grapheditor/domain/core/aggregates"
	"grapheditor/domain/core/valueobjects"
)

// ConnectHandler handles connection gestures
type ConnectHandler struct {
	runner *GestureRunner
}

// NewConnectHandler creates a new connect handler
func NewConnectHandler(runner *GestureRunner) *ConnectHandler {
	return &ConnectHandler{runner: runner}
}

// Handle appends one edge between two existing nodes
func (h *ConnectHandler) Handle(ctx context.Context, cmd commands.ConnectCommand) (commands.Result, error) {
	source, err := valueobjects.NewNodeID(cmd.SourceID)
	if err != nil {
		return commands.Result{}, err
	}
	target, err := valueobjects.NewNodeID(cmd.TargetID)
	if err != nil {
		return commands.Result{}, err
	}

	return h.runner.run(ctx, cmd.SessionID, func(s *aggregates.Session) (commands.Result, error) {
		edge, err := s.Connect(source, target)
		if err != nil {
			return commands.Result{}, err
		}
		return commands.Result{Changed: true, EdgeID: edge.ID().String()}, nil
	})
}

// DeleteEdgeHandler handles edge deletion commands
type DeleteEdgeHandler struct {
	runner *GestureRunner
}

// NewDeleteEdgeHandler creates a new delete edge handler
func NewDeleteEdgeHandler(runner *GestureRunner) *DeleteEdgeHandler {
	return &DeleteEdgeHandler{runner: runner}
}

// Handle removes exactly the edge with the given id
func (h *DeleteEdgeHandler) Handle(ctx context.Context, cmd commands.DeleteEdgeCommand) (commands.Result, error) {
	edgeID, err := valueobjects.NewEdgeID(cmd.EdgeID)
	if err != nil {
		return commands.Result{}, err
	}

	return h.runner.run(ctx, cmd.SessionID, func(s *aggregates.Session) (commands.Result, error) {
		if err := s.DeleteEdge(edgeID); err != nil {
			return commands.Result{}, err
		}
		return commands.Result{Changed: true, EdgeID: edgeID.String()}, nil
	})
}
