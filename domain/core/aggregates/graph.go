package aggregates

import (
	"time"

	"grapheditor/domain/config"
	"grapheditor/domain/core/entities"
	"grapheditor/domain/core/valueobjects"
	"grapheditor/domain/events"
	pkgerrors "grapheditor/pkg/errors"
)

// Graph holds the two ordered collections the editor renders.
// Insertion order is preserved for nodes and edges and is the order of every read.
type Graph struct {
	id    string
	nodes []*entities.Node
	edges []*entities.Edge

	// nextSeq is the last sequence number handed out for a node id.
	// It only grows, so ids freed by deletion are never reused.
	nextSeq uint64

	defaultPosition valueobjects.Position
	maxNodes        int
	maxEdges        int
	maxLabelLength  int

	version int
	events  []events.DomainEvent
	now     func() time.Time
}

// EdgeAnchor is the point where an edge's delete affordance is drawn
type EdgeAnchor struct {
	EdgeID   valueobjects.EdgeID   `json:"edgeId"`
	Position valueobjects.Position `json:"position"`
}

// NewGraph creates an empty graph governed by cfg
func NewGraph(id string, cfg *config.DomainConfig) (*Graph, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	pos, err := valueobjects.NewPosition(cfg.DefaultNodeX, cfg.DefaultNodeY)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "default node position")
	}
	return &Graph{
		id:              id,
		nodes:           []*entities.Node{},
		edges:           []*entities.Edge{},
		defaultPosition: pos,
		maxNodes:        cfg.MaxNodesPerGraph,
		maxEdges:        cfg.MaxEdgesPerGraph,
		maxLabelLength:  cfg.MaxLabelLength,
		version:         1,
		now:             time.Now,
	}, nil
}

// NewSeededGraph creates a graph pre-populated with cfg's seed nodes and edges
func NewSeededGraph(id string, cfg *config.DomainConfig) (*Graph, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	g, err := NewGraph(id, cfg)
	if err != nil {
		return nil, err
	}

	for _, sn := range cfg.SeedNodes {
		nodeID, err := valueobjects.NewNodeID(sn.ID)
		if err != nil {
			return nil, err
		}
		pos, err := valueobjects.NewPosition(sn.X, sn.Y)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "seed node "+sn.ID)
		}
		label := sn.Label
		if label == "" {
			label = sn.ID
		}
		node, err := entities.NewNode(nodeID, pos, label)
		if err != nil {
			return nil, err
		}
		if err := g.AddNode(node); err != nil {
			return nil, err
		}
	}

	for _, se := range cfg.SeedEdges {
		edgeID, err := valueobjects.NewEdgeID(se.ID)
		if err != nil {
			return nil, err
		}
		source, err := valueobjects.NewNodeID(se.Source)
		if err != nil {
			return nil, err
		}
		target, err := valueobjects.NewNodeID(se.Target)
		if err != nil {
			return nil, err
		}
		edge, err := entities.NewEdge(edgeID, source, target)
		if err != nil {
			return nil, err
		}
		if err := g.AddEdge(edge); err != nil {
			return nil, err
		}
	}

	// Seeding is not a user gesture
	g.events = nil
	g.version = 1
	return g, nil
}

// ID returns the graph identifier
func (g *Graph) ID() string {
	return g.id
}

// Version increases by one on every mutation
func (g *Graph) Version() int {
	return g.version
}

// NodeCount returns the number of nodes
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Nodes returns copies of all nodes in insertion order
func (g *Graph) Nodes() []*entities.Node {
	nodes := make([]*entities.Node, len(g.nodes))
	for i, n := range g.nodes {
		nodes[i] = n.Clone()
	}
	return nodes
}

// Edges returns copies of all edges in insertion order
func (g *Graph) Edges() []*entities.Edge {
	edges := make([]*entities.Edge, len(g.edges))
	for i, e := range g.edges {
		edges[i] = e.Clone()
	}
	return edges
}

// Node returns a copy of the node with the given id
func (g *Graph) Node(id valueobjects.NodeID) (*entities.Node, bool) {
	if i := g.nodeIndex(id); i >= 0 {
		return g.nodes[i].Clone(), true
	}
	return nil, false
}

// Edge returns a copy of the edge with the given id
func (g *Graph) Edge(id valueobjects.EdgeID) (*entities.Edge, bool) {
	if i := g.edgeIndex(id); i >= 0 {
		return g.edges[i].Clone(), true
	}
	return nil, false
}

// HasNode checks if a node exists in the graph
func (g *Graph) HasNode(id valueobjects.NodeID) bool {
	return g.nodeIndex(id) >= 0
}

// HasEdge checks if an edge exists in the graph
func (g *Graph) HasEdge(id valueobjects.EdgeID) bool {
	return g.edgeIndex(id) >= 0
}

// AddNode appends an existing node, e.g. from a seed. Numeric ids advance the sequence.
func (g *Graph) AddNode(node *entities.Node) error {
	if node == nil {
		return pkgerrors.NewValidationError("node cannot be nil")
	}
	if g.HasNode(node.ID()) {
		return pkgerrors.ErrDuplicateNode(node.ID().String())
	}
	if len(g.nodes) >= g.maxNodes {
		return pkgerrors.ErrLimitReached("nodes", g.maxNodes)
	}

	if seq, ok := node.ID().Sequence(); ok && seq > g.nextSeq {
		g.nextSeq = seq
	}
	g.nodes = append(g.nodes, node.Clone())
	g.bump()
	g.addEvent(events.NewNodeCreated(g.id, g.version, node.ID(), node.Position(), node.Label(), g.now()))
	return nil
}

// CreateNode appends a node at the default position whose label equals its id
func (g *Graph) CreateNode() (*entities.Node, error) {
	if len(g.nodes) >= g.maxNodes {
		return nil, pkgerrors.ErrLimitReached("nodes", g.maxNodes)
	}

	id := g.mintNodeID()
	node, err := entities.NewNode(id, g.defaultPosition, id.String())
	if err != nil {
		return nil, err
	}

	g.nodes = append(g.nodes, node)
	g.bump()
	g.addEvent(events.NewNodeCreated(g.id, g.version, id, node.Position(), node.Label(), g.now()))
	return node.Clone(), nil
}

// RenameNode replaces a node's label
func (g *Graph) RenameNode(id valueobjects.NodeID, label string) error {
	i := g.nodeIndex(id)
	if i < 0 {
		return pkgerrors.ErrNodeNotFound(id.String())
	}
	node := g.nodes[i]
	old := node.Label()
	if err := node.Rename(label, g.maxLabelLength); err != nil {
		return err
	}

	g.bump()
	g.addEvent(events.NewNodeRenamed(g.id, g.version, id, old, label, g.now()))
	return nil
}

// MoveNode places a node at a new position
func (g *Graph) MoveNode(id valueobjects.NodeID, pos valueobjects.Position) error {
	i := g.nodeIndex(id)
	if i < 0 {
		return pkgerrors.ErrNodeNotFound(id.String())
	}
	node := g.nodes[i]
	old := node.Position()
	node.MoveTo(pos)

	g.bump()
	g.addEvent(events.NewNodeMoved(g.id, g.version, id, old, pos, g.now()))
	return nil
}

// RemoveNode removes a node and every edge whose source or target is that node.
// It returns the ids of the cascaded edges in their original order.
func (g *Graph) RemoveNode(id valueobjects.NodeID) ([]valueobjects.EdgeID, error) {
	i := g.nodeIndex(id)
	if i < 0 {
		return nil, pkgerrors.ErrNodeNotFound(id.String())
	}

	removed := []valueobjects.EdgeID{}
	kept := g.edges[:0:0]
	for _, e := range g.edges {
		if e.Touches(id) {
			removed = append(removed, e.ID())
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept
	g.nodes = append(g.nodes[:i:i], g.nodes[i+1:]...)

	g.bump()
	g.addEvent(events.NewNodeDeleted(g.id, g.version, id, removed, g.now()))
	return removed, nil
}

// RemoveEdge removes exactly the edge with the given id
func (g *Graph) RemoveEdge(id valueobjects.EdgeID) error {
	i := g.edgeIndex(id)
	if i < 0 {
		return pkgerrors.ErrEdgeNotFound(id.String())
	}
	edge := g.edges[i]
	g.edges = append(g.edges[:i:i], g.edges[i+1:]...)

	g.bump()
	g.addEvent(events.NewEdgeDeleted(g.id, g.version, id, edge.Source(), edge.Target(), g.now()))
	return nil
}

// AddEdge appends an existing edge, e.g. from a seed. Both endpoints must exist.
func (g *Graph) AddEdge(edge *entities.Edge) error {
	if edge == nil {
		return pkgerrors.NewValidationError("edge cannot be nil")
	}
	if g.HasEdge(edge.ID()) {
		return pkgerrors.NewConflictError("edge already exists").
			WithDetails(map[string]interface{}{"edge_id": edge.ID().String()})
	}
	if err := g.checkEndpoints(edge.Source(), edge.Target()); err != nil {
		return err
	}
	if len(g.edges) >= g.maxEdges {
		return pkgerrors.ErrLimitReached("edges", g.maxEdges)
	}

	g.edges = append(g.edges, edge.Clone())
	g.bump()
	g.addEvent(events.NewEdgeConnected(g.id, g.version, edge.ID(), edge.Source(), edge.Target(), g.now()))
	return nil
}

// Connect appends one edge from source to target.
// Duplicate connections and self-loops are allowed; each gets its own id.
func (g *Graph) Connect(source, target valueobjects.NodeID) (*entities.Edge, error) {
	if err := g.checkEndpoints(source, target); err != nil {
		return nil, err
	}
	if len(g.edges) >= g.maxEdges {
		return nil, pkgerrors.ErrLimitReached("edges", g.maxEdges)
	}

	var id valueobjects.EdgeID
	for attempt := 1; ; attempt++ {
		id = valueobjects.ConnectionEdgeID(source, target, attempt)
		if !g.HasEdge(id) {
			break
		}
	}

	edge, err := entities.NewEdge(id, source, target)
	if err != nil {
		return nil, err
	}
	g.edges = append(g.edges, edge)
	g.bump()
	g.addEvent(events.NewEdgeConnected(g.id, g.version, id, source, target, g.now()))
	return edge.Clone(), nil
}

// EdgeAnchors derives, for every edge whose endpoints both exist, the midpoint
// of its endpoint positions. It is recomputed on every call.
func (g *Graph) EdgeAnchors() []EdgeAnchor {
	anchors := make([]EdgeAnchor, 0, len(g.edges))
	for _, e := range g.edges {
		if mid, ok := g.midpoint(e); ok {
			anchors = append(anchors, EdgeAnchor{EdgeID: e.ID(), Position: mid})
		}
	}
	return anchors
}

// EdgeMidpoint returns the delete-affordance anchor of a single edge
func (g *Graph) EdgeMidpoint(id valueobjects.EdgeID) (valueobjects.Position, bool) {
	i := g.edgeIndex(id)
	if i < 0 {
		return valueobjects.Position{}, false
	}
	return g.midpoint(g.edges[i])
}

// Validate ensures graph invariants
func (g *Graph) Validate() error {
	seen := make(map[string]struct{}, len(g.nodes))
	for _, n := range g.nodes {
		if _, dup := seen[n.ID().String()]; dup {
			return pkgerrors.NewInternalError("duplicate node id " + n.ID().String())
		}
		seen[n.ID().String()] = struct{}{}
	}
	for _, e := range g.edges {
		if _, ok := seen[e.Source().String()]; !ok {
			return pkgerrors.NewInternalError("edge " + e.ID().String() + " references non-existent source node")
		}
		if _, ok := seen[e.Target().String()]; !ok {
			return pkgerrors.NewInternalError("edge " + e.ID().String() + " references non-existent target node")
		}
	}
	return nil
}

// GetUncommittedEvents returns all uncommitted domain events
func (g *Graph) GetUncommittedEvents() []events.DomainEvent {
	out := make([]events.DomainEvent, len(g.events))
	copy(out, g.events)
	return out
}

// MarkEventsAsCommitted clears all uncommitted events
func (g *Graph) MarkEventsAsCommitted() {
	g.events = nil
}

// Private helper methods

func (g *Graph) mintNodeID() valueobjects.NodeID {
	for {
		g.nextSeq++
		id := valueobjects.NodeIDFromSequence(g.nextSeq)
		if !g.HasNode(id) {
			return id
		}
	}
}

func (g *Graph) checkEndpoints(source, target valueobjects.NodeID) error {
	if !g.HasNode(source) {
		return pkgerrors.ErrNodeNotFound(source.String())
	}
	if !g.HasNode(target) {
		return pkgerrors.ErrNodeNotFound(target.String())
	}
	return nil
}

func (g *Graph) midpoint(e *entities.Edge) (valueobjects.Position, bool) {
	si := g.nodeIndex(e.Source())
	ti := g.nodeIndex(e.Target())
	if si < 0 || ti < 0 {
		return valueobjects.Position{}, false
	}
	return g.nodes[si].Position().Midpoint(g.nodes[ti].Position()), true
}

func (g *Graph) nodeIndex(id valueobjects.NodeID) int {
	for i, n := range g.nodes {
		if n.ID().Equals(id) {
			return i
		}
	}
	return -1
}

func (g *Graph) edgeIndex(id valueobjects.EdgeID) int {
	for i, e := range g.edges {
		if e.ID().Equals(id) {
			return i
		}
	}
	return -1
}

func (g *Graph) bump() {
	g.version++
}

func (g *Graph) addEvent(event events.DomainEvent) {
	g.events = append(g.events, event)
}
