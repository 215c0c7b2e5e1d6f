package handlers

import (
	"context"

	"grapheditor/application/commands"
	"grapheditor/domain/core/aggregates"
	"grapheditor/domain/core/valueobjects"
)

// HoverHandler handles pointer enter/leave gestures and the delete glyph clicks
// that only exist while something is hovered.
type HoverHandler struct {
	runner *GestureRunner
}

// NewHoverHandler creates a new hover handler
func NewHoverHandler(runner *GestureRunner) *HoverHandler {
	return &HoverHandler{runner: runner}
}

// HoverNode shows the delete affordance next to a node
func (h *HoverHandler) HoverNode(ctx context.Context, cmd commands.HoverNodeCommand) (commands.Result, error) {
	nodeID, err := valueobjects.NewNodeID(cmd.NodeID)
	if err != nil {
		return commands.Result{}, err
	}
	return h.runner.run(ctx, cmd.SessionID, func(s *aggregates.Session) (commands.Result, error) {
		if err := s.HoverNode(nodeID); err != nil {
			return commands.Result{}, err
		}
		return commands.Result{Changed: true, NodeID: nodeID.String()}, nil
	})
}

// UnhoverNode hides the node delete affordance
func (h *HoverHandler) UnhoverNode(ctx context.Context, cmd commands.UnhoverNodeCommand) (commands.Result, error) {
	return h.runner.run(ctx, cmd.SessionID, func(s *aggregates.Session) (commands.Result, error) {
		_, hovered := s.UI().HoveredNode()
		s.UnhoverNode()
		return commands.Result{Changed: hovered}, nil
	})
}

// HoverEdge shows the delete affordance at an edge's midpoint
func (h *HoverHandler) HoverEdge(ctx context.Context, cmd commands.HoverEdgeCommand) (commands.Result, error) {
	edgeID, err := valueobjects.NewEdgeID(cmd.EdgeID)
	if err != nil {
		return commands.Result{}, err
	}
	return h.runner.run(ctx, cmd.SessionID, func(s *aggregates.Session) (commands.Result, error) {
		if err := s.HoverEdge(edgeID); err != nil {
			return commands.Result{}, err
		}
		return commands.Result{Changed: true, EdgeID: edgeID.String()}, nil
	})
}

// UnhoverEdge hides the edge delete affordance
func (h *HoverHandler) UnhoverEdge(ctx context.Context, cmd commands.UnhoverEdgeCommand) (commands.Result, error) {
	return h.runner.run(ctx, cmd.SessionID, func(s *aggregates.Session) (commands.Result, error) {
		_, hovered := s.UI().HoveredEdge()
		s.UnhoverEdge()
		return commands.Result{Changed: hovered}, nil
	})
}

// DeleteHoveredNode deletes the hovered node, if any
func (h *HoverHandler) DeleteHoveredNode(ctx context.Context, cmd commands.DeleteHoveredNodeCommand) (commands.Result, error) {
	return h.runner.run(ctx, cmd.SessionID, func(s *aggregates.Session) (commands.Result, error) {
		id, hovered := s.UI().HoveredNode()
		deleted, err := s.DeleteHoveredNode()
		if err != nil {
			return commands.Result{}, err
		}
		result := commands.Result{Changed: deleted}
		if deleted && hovered {
			result.NodeID = id.String()
		}
		return result, nil
	})
}

// DeleteHoveredEdge deletes the hovered edge, if any
func (h *HoverHandler) DeleteHoveredEdge(ctx context.Context, cmd commands.DeleteHoveredEdgeCommand) (commands.Result, error) {
	return h.runner.run(ctx, cmd.SessionID, func(s *aggregates.Session) (commands.Result, error) {
		id, hovered := s.UI().HoveredEdge()
		deleted, err := s.DeleteHoveredEdge()
		if err != nil {
			return commands.Result{}, err
		}
		result := commands.Result{Changed: deleted}
		if deleted && hovered {
			result.EdgeID = id.String()
		}
		return result, nil
	})
}
