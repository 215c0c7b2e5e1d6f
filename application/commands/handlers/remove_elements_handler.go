package handlers

import (
	"context"

	"grapheditor/application/commands"
	"grapheditor/domain/core/aggregates"
)

// RemoveElementsHandler deletes a batch of nodes and edges in one gesture
type RemoveElementsHandler struct {
	runner *GestureRunner
}

// NewRemoveElementsHandler creates a new remove elements handler
func NewRemoveElementsHandler(runner *GestureRunner) *RemoveElementsHandler {
	return &RemoveElementsHandler{runner: runner}
}

// Handle removes every listed element that still exists. Node removals cascade.
func (h *RemoveElementsHandler) Handle(ctx context.Context, cmd commands.RemoveElementsCommand) (commands.Result, error) {
	nodeIDs, err := parseNodeIDs(cmd.NodeIDs)
	if err != nil {
		return commands.Result{}, err
	}
	edgeIDs, err := parseEdgeIDs(cmd.EdgeIDs)
	if err != nil {
		return commands.Result{}, err
	}

	return h.runner.run(ctx, cmd.SessionID, func(s *aggregates.Session) (commands.Result, error) {
		removed := s.RemoveElements(nodeIDs, edgeIDs)
		return commands.Result{
			Changed:       len(removed.Nodes) > 0 || len(removed.Edges) > 0,
			RemovedNodes:  nodeIDStrings(removed.Nodes),
			RemovedEdges:  edgeIDStrings(removed.Edges),
			CascadedEdges: edgeIDStrings(removed.CascadedEdges),
		}, nil
	})
}
