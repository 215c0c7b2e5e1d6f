package handlers

import (
	"context"

	"grapheditor/application/commands"
	"grapheditor/domain/core/aggregates"
	"grapheditor/domain/core/valueobjects"

	"go.uber.org/zap"
)

// DeleteNodeHandler handles node deletion commands
type DeleteNodeHandler struct {
	runner *GestureRunner
	logger *zap.Logger
}

// NewDeleteNodeHandler creates a new delete node handler
func NewDeleteNodeHandler(runner *GestureRunner, logger *zap.Logger) *DeleteNodeHandler {
	return &DeleteNodeHandler{
		runner: runner,
		logger: logger,
	}
}

// Handle removes the node and every edge whose source or target is that node
func (h *DeleteNodeHandler) Handle(ctx context.Context, cmd commands.DeleteNodeCommand) (commands.Result, error) {
	nodeID, err := valueobjects.NewNodeID(cmd.NodeID)
	if err != nil {
		return commands.Result{}, err
	}

	result, err := h.runner.run(ctx, cmd.SessionID, func(s *aggregates.Session) (commands.Result, error) {
		cascaded, err := s.DeleteNode(nodeID)
		if err != nil {
			return commands.Result{}, err
		}
		return commands.Result{
			Changed:       true,
			NodeID:        nodeID.String(),
			CascadedEdges: edgeIDStrings(cascaded),
		}, nil
	})
	if err != nil {
		return commands.Result{}, err
	}

	h.logger.Debug("Node deleted",
		zap.String("sessionID", cmd.SessionID),
		zap.String("nodeID", cmd.NodeID),
		zap.Int("cascadedEdges", len(result.CascadedEdges)),
	)
	return result, nil
}
