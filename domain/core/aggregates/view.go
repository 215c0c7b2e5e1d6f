package aggregates

import "grapheditor/domain/core/valueobjects"

// View is everything a canvas client needs to render one session.
// Node and edge shapes follow the {id, position, data:{label}} / {id, source, target}
// convention of node-and-edge diagram libraries.
type View struct {
	SessionID string       `json:"sessionId"`
	Version   int          `json:"version"`
	Nodes     []NodeView   `json:"nodes"`
	Edges     []EdgeView   `json:"edges"`
	Anchors   []EdgeAnchor `json:"edgeAnchors"`

	RenamePanel          *RenamePanel          `json:"renamePanel,omitempty"`
	NodeDeleteAffordance *NodeDeleteAffordance `json:"nodeDeleteAffordance,omitempty"`
	EdgeDeleteAffordance *EdgeDeleteAffordance `json:"edgeDeleteAffordance,omitempty"`
}

// NodeView is a rendered node
type NodeView struct {
	ID       string                `json:"id"`
	Position valueobjects.Position `json:"position"`
	Data     NodeData              `json:"data"`
}

// NodeData carries the display fields of a node
type NodeData struct {
	Label string `json:"label"`
}

// EdgeView is a rendered edge
type EdgeView struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// RenamePanel is visible while a node is selected
type RenamePanel struct {
	NodeID string `json:"nodeId"`
	Draft  string `json:"draft"`
}

// NodeDeleteAffordance is the delete glyph shown next to a hovered node
type NodeDeleteAffordance struct {
	NodeID string                `json:"nodeId"`
	Anchor valueobjects.Position `json:"anchor"`
}

// EdgeDeleteAffordance is the delete glyph shown at a hovered edge's midpoint
type EdgeDeleteAffordance struct {
	EdgeID string                `json:"edgeId"`
	Anchor valueobjects.Position `json:"anchor"`
}

// View derives the render state from the current collections and UI flags.
// Nothing here is cached; every call reflects the latest mutation.
func (s *Session) View() View {
	g := s.graph

	v := View{
		SessionID: s.id,
		Version:   g.Version(),
		Nodes:     make([]NodeView, 0, len(g.nodes)),
		Edges:     make([]EdgeView, 0, len(g.edges)),
		Anchors:   g.EdgeAnchors(),
	}
	for _, n := range g.nodes {
		v.Nodes = append(v.Nodes, NodeView{
			ID:       n.ID().String(),
			Position: n.Position(),
			Data:     NodeData{Label: n.Label()},
		})
	}
	for _, e := range g.edges {
		v.Edges = append(v.Edges, EdgeView{
			ID:     e.ID().String(),
			Source: e.Source().String(),
			Target: e.Target().String(),
		})
	}

	if sel, ok := s.ui.Selection(); ok {
		v.RenamePanel = &RenamePanel{NodeID: sel.NodeID.String(), Draft: sel.Draft}
	}
	if id, ok := s.ui.HoveredNode(); ok {
		if anchor, ok := s.NodeDeleteAnchor(); ok {
			v.NodeDeleteAffordance = &NodeDeleteAffordance{NodeID: id.String(), Anchor: anchor}
		}
	}
	if id, ok := s.ui.HoveredEdge(); ok {
		if mid, ok := g.EdgeMidpoint(id); ok {
			v.EdgeDeleteAffordance = &EdgeDeleteAffordance{EdgeID: id.String(), Anchor: mid}
		}
	}
	return v
}
