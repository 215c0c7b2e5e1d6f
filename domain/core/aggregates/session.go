package aggregates

import (
	"time"

	"grapheditor/domain/config"
	"grapheditor/domain/core/entities"
	"grapheditor/domain/core/valueobjects"
	"grapheditor/domain/events"
	pkgerrors "grapheditor/pkg/errors"
)

// Selection is the node currently open in the rename panel and the text being edited
type Selection struct {
	NodeID valueobjects.NodeID
	Draft  string
}

// UIState holds the transient flags of one editor. None of them are persisted.
type UIState struct {
	selection *Selection

	hoveredNode valueobjects.NodeID
	hoveredEdge valueobjects.EdgeID
}

// Selection returns the current selection, if any
func (u UIState) Selection() (Selection, bool) {
	if u.selection == nil {
		return Selection{}, false
	}
	return *u.selection, true
}

// HoveredNode returns the hovered node id
func (u UIState) HoveredNode() (valueobjects.NodeID, bool) {
	return u.hoveredNode, !u.hoveredNode.IsZero()
}

// HoveredEdge returns the hovered edge id
func (u UIState) HoveredEdge() (valueobjects.EdgeID, bool) {
	return u.hoveredEdge, !u.hoveredEdge.IsZero()
}

// RemovalResult counts what a batch removal actually deleted
type RemovalResult struct {
	Nodes         []valueobjects.NodeID
	Edges         []valueobjects.EdgeID
	CascadedEdges []valueobjects.EdgeID
}

// Session is one editor: the graph plus the UI state derived from gestures on it.
// Callers must serialize access; every method assumes exclusive use.
type Session struct {
	id         string
	graph      *Graph
	ui         UIState
	createdAt  time.Time
	lastActive time.Time
	events     []events.DomainEvent
}

// NewSession creates a session whose graph is seeded from cfg
func NewSession(id string, cfg *config.DomainConfig) (*Session, error) {
	if id == "" {
		return nil, pkgerrors.NewValidationError("session ID cannot be empty")
	}
	graph, err := NewSeededGraph(id, cfg)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	s := &Session{
		id:         id,
		graph:      graph,
		createdAt:  now,
		lastActive: now,
	}
	s.events = append(s.events, events.NewSessionStarted(id, graph.NodeCount(), graph.EdgeCount(), now))
	return s, nil
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Graph exposes the underlying collections for reads
func (s *Session) Graph() *Graph {
	return s.graph
}

// UI returns a copy of the transient UI state
func (s *Session) UI() UIState {
	ui := s.ui
	if s.ui.selection != nil {
		sel := *s.ui.selection
		ui.selection = &sel
	}
	return ui
}

// CreatedAt returns when the session started
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// LastActive returns when the session last handled a gesture
func (s *Session) LastActive() time.Time {
	return s.lastActive
}

// Touch records activity at t
func (s *Session) Touch(t time.Time) {
	s.lastActive = t
}

// CreateNode appends a new node with the next sequence id
func (s *Session) CreateNode() (*entities.Node, error) {
	return s.graph.CreateNode()
}

// SelectNode opens the rename panel for a node, seeding the draft with its label
func (s *Session) SelectNode(id valueobjects.NodeID) error {
	node, ok := s.graph.Node(id)
	if !ok {
		return pkgerrors.ErrNodeNotFound(id.String())
	}
	s.ui.selection = &Selection{NodeID: id, Draft: node.Label()}
	return nil
}

// EditDraft replaces the rename panel text. It reports false when nothing is selected.
func (s *Session) EditDraft(text string) bool {
	if s.ui.selection == nil {
		return false
	}
	s.ui.selection.Draft = text
	return true
}

// RenameSelected applies label (or the current draft when label is nil) to the
// selected node and closes the rename panel. It reports whether a node was renamed.
func (s *Session) RenameSelected(label *string) (bool, error) {
	sel := s.ui.selection
	if sel == nil {
		return false, nil
	}

	newLabel := sel.Draft
	if label != nil {
		newLabel = *label
	}

	if !s.graph.HasNode(sel.NodeID) {
		s.ui.selection = nil
		return false, nil
	}
	if err := s.graph.RenameNode(sel.NodeID, newLabel); err != nil {
		return false, err
	}
	s.ui.selection = nil
	return true, nil
}

// CancelRename closes the rename panel and discards the draft.
// It reports whether a panel was open.
func (s *Session) CancelRename() bool {
	if s.ui.selection == nil {
		return false
	}
	s.ui.selection = nil
	return true
}

// DeleteNode removes a node and cascades to its edges
func (s *Session) DeleteNode(id valueobjects.NodeID) ([]valueobjects.EdgeID, error) {
	cascaded, err := s.graph.RemoveNode(id)
	if err != nil {
		return nil, err
	}
	s.dropDanglingUI()
	return cascaded, nil
}

// DeleteEdge removes exactly one edge
func (s *Session) DeleteEdge(id valueobjects.EdgeID) error {
	if err := s.graph.RemoveEdge(id); err != nil {
		return err
	}
	s.dropDanglingUI()
	return nil
}

// RemoveElements deletes a batch of nodes and edges. Unknown ids are skipped,
// and edges already removed by a node cascade are not reported twice.
func (s *Session) RemoveElements(nodeIDs []valueobjects.NodeID, edgeIDs []valueobjects.EdgeID) RemovalResult {
	result := RemovalResult{
		Nodes:         []valueobjects.NodeID{},
		Edges:         []valueobjects.EdgeID{},
		CascadedEdges: []valueobjects.EdgeID{},
	}
	for _, id := range nodeIDs {
		cascaded, err := s.graph.RemoveNode(id)
		if err != nil {
			continue
		}
		result.Nodes = append(result.Nodes, id)
		result.CascadedEdges = append(result.CascadedEdges, cascaded...)
	}
	for _, id := range edgeIDs {
		if err := s.graph.RemoveEdge(id); err != nil {
			continue
		}
		result.Edges = append(result.Edges, id)
	}
	s.dropDanglingUI()
	return result
}

// Connect appends an edge between two existing nodes
func (s *Session) Connect(source, target valueobjects.NodeID) (*entities.Edge, error) {
	return s.graph.Connect(source, target)
}

// MoveNode applies the end of a drag gesture
func (s *Session) MoveNode(id valueobjects.NodeID, pos valueobjects.Position) error {
	return s.graph.MoveNode(id, pos)
}

// HoverNode marks a node hovered
func (s *Session) HoverNode(id valueobjects.NodeID) error {
	if !s.graph.HasNode(id) {
		return pkgerrors.ErrNodeNotFound(id.String())
	}
	s.ui.hoveredNode = id
	return nil
}

// UnhoverNode clears the hovered node and hides its delete affordance
func (s *Session) UnhoverNode() {
	s.ui.hoveredNode = valueobjects.NodeID{}
}

// NodeDeleteAnchor returns where the hovered node's delete affordance sits:
// the node's current position, so it follows drags.
func (s *Session) NodeDeleteAnchor() (valueobjects.Position, bool) {
	id, ok := s.ui.HoveredNode()
	if !ok {
		return valueobjects.Position{}, false
	}
	node, ok := s.graph.Node(id)
	if !ok {
		return valueobjects.Position{}, false
	}
	return node.Position(), true
}

// HoverEdge marks an edge hovered
func (s *Session) HoverEdge(id valueobjects.EdgeID) error {
	if !s.graph.HasEdge(id) {
		return pkgerrors.ErrEdgeNotFound(id.String())
	}
	s.ui.hoveredEdge = id
	return nil
}

// UnhoverEdge clears the hovered edge
func (s *Session) UnhoverEdge() {
	s.ui.hoveredEdge = valueobjects.EdgeID{}
}

// DeleteHoveredNode is the node delete glyph: it deletes whatever node is hovered.
func (s *Session) DeleteHoveredNode() (bool, error) {
	if s.ui.hoveredNode.IsZero() {
		return false, nil
	}
	if _, err := s.DeleteNode(s.ui.hoveredNode); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteHoveredEdge is the edge delete glyph: it deletes whatever edge is hovered.
func (s *Session) DeleteHoveredEdge() (bool, error) {
	if s.ui.hoveredEdge.IsZero() {
		return false, nil
	}
	if err := s.DeleteEdge(s.ui.hoveredEdge); err != nil {
		return false, err
	}
	return true, nil
}

// GetUncommittedEvents returns session and graph events in the order they happened
func (s *Session) GetUncommittedEvents() []events.DomainEvent {
	out := make([]events.DomainEvent, 0, len(s.events)+len(s.graph.events))
	out = append(out, s.events...)
	return append(out, s.graph.GetUncommittedEvents()...)
}

// MarkEventsAsCommitted clears all uncommitted events
func (s *Session) MarkEventsAsCommitted() {
	s.events = nil
	s.graph.MarkEventsAsCommitted()
}

// dropDanglingUI clears UI flags that point at elements no longer in the graph
func (s *Session) dropDanglingUI() {
	if s.ui.selection != nil && !s.graph.HasNode(s.ui.selection.NodeID) {
		s.ui.selection = nil
	}
	if !s.ui.hoveredNode.IsZero() && !s.graph.HasNode(s.ui.hoveredNode) {
		s.UnhoverNode()
	}
	if !s.ui.hoveredEdge.IsZero() && !s.graph.HasEdge(s.ui.hoveredEdge) {
		s.UnhoverEdge()
	}
}
