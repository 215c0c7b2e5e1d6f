package events

import (
	"time"

	"grapheditor/domain/core/valueobjects"
)

// Event type names
const (
	TypeSessionStarted = "session.started"
	TypeNodeCreated    = "node.created"
	TypeNodeRenamed    = "node.renamed"
	TypeNodeMoved      = "node.moved"
	TypeNodeDeleted    = "node.deleted"
	TypeEdgeConnected  = "edge.connected"
	TypeEdgeDeleted    = "edge.deleted"
)

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

func newBase(aggregateID, eventType string, version int, ts time.Time) BaseEvent {
	return BaseEvent{
		AggregateID: aggregateID,
		EventType:   eventType,
		Timestamp:   ts,
		Version:     version,
	}
}

// SessionStarted is raised when an editor session is opened
type SessionStarted struct {
	BaseEvent
	NodeCount int `json:"node_count"`
	EdgeCount int `json:"edge_count"`
}

// NewSessionStarted creates a SessionStarted event
func NewSessionStarted(sessionID string, nodeCount, edgeCount int, ts time.Time) SessionStarted {
	return SessionStarted{
		BaseEvent: newBase(sessionID, TypeSessionStarted, 1, ts),
		NodeCount: nodeCount,
		EdgeCount: edgeCount,
	}
}

// Node events

// NodeCreated is raised when createNode appends a node
type NodeCreated struct {
	BaseEvent
	NodeID   valueobjects.NodeID   `json:"node_id"`
	Position valueobjects.Position `json:"position"`
	Label    string                `json:"label"`
}

// NewNodeCreated creates a NodeCreated event
func NewNodeCreated(graphID string, version int, nodeID valueobjects.NodeID, pos valueobjects.Position, label string, ts time.Time) NodeCreated {
	return NodeCreated{
		BaseEvent: newBase(graphID, TypeNodeCreated, version, ts),
		NodeID:    nodeID,
		Position:  pos,
		Label:     label,
	}
}

// NodeRenamed is raised when a node label changes
type NodeRenamed struct {
	BaseEvent
	NodeID   valueobjects.NodeID `json:"node_id"`
	OldLabel string              `json:"old_label"`
	NewLabel string              `json:"new_label"`
}

// NewNodeRenamed creates a NodeRenamed event
func NewNodeRenamed(graphID string, version int, nodeID valueobjects.NodeID, oldLabel, newLabel string, ts time.Time) NodeRenamed {
	return NodeRenamed{
		BaseEvent: newBase(graphID, TypeNodeRenamed, version, ts),
		NodeID:    nodeID,
		OldLabel:  oldLabel,
		NewLabel:  newLabel,
	}
}

// NodeMoved is raised when a drag gesture ends on a new position
type NodeMoved struct {
	BaseEvent
	NodeID      valueobjects.NodeID   `json:"node_id"`
	OldPosition valueobjects.Position `json:"old_position"`
	NewPosition valueobjects.Position `json:"new_position"`
}

// NewNodeMoved creates a NodeMoved event
func NewNodeMoved(graphID string, version int, nodeID valueobjects.NodeID, oldPos, newPos valueobjects.Position, ts time.Time) NodeMoved {
	return NodeMoved{
		BaseEvent:   newBase(graphID, TypeNodeMoved, version, ts),
		NodeID:      nodeID,
		OldPosition: oldPos,
		NewPosition: newPos,
	}
}

// NodeDeleted is raised when a node is removed, together with the edges it took with it
type NodeDeleted struct {
	BaseEvent
	NodeID        valueobjects.NodeID   `json:"node_id"`
	CascadedEdges []valueobjects.EdgeID `json:"cascaded_edges"`
}

// NewNodeDeleted creates a NodeDeleted event
func NewNodeDeleted(graphID string, version int, nodeID valueobjects.NodeID, cascaded []valueobjects.EdgeID, ts time.Time) NodeDeleted {
	return NodeDeleted{
		BaseEvent:     newBase(graphID, TypeNodeDeleted, version, ts),
		NodeID:        nodeID,
		CascadedEdges: cascaded,
	}
}

// Edge events

// EdgeConnected is raised when a connect gesture appends an edge
type EdgeConnected struct {
	BaseEvent
	EdgeID   valueobjects.EdgeID `json:"edge_id"`
	SourceID valueobjects.NodeID `json:"source_id"`
	TargetID valueobjects.NodeID `json:"target_id"`
}

// NewEdgeConnected creates an EdgeConnected event
func NewEdgeConnected(graphID string, version int, edgeID valueobjects.EdgeID, source, target valueobjects.NodeID, ts time.Time) EdgeConnected {
	return EdgeConnected{
		BaseEvent: newBase(graphID, TypeEdgeConnected, version, ts),
		EdgeID:    edgeID,
		SourceID:  source,
		TargetID:  target,
	}
}

// EdgeDeleted is raised when an edge is removed directly (not by cascade)
type EdgeDeleted struct {
	BaseEvent
	EdgeID   valueobjects.EdgeID `json:"edge_id"`
	SourceID valueobjects.NodeID `json:"source_id"`
	TargetID valueobjects.NodeID `json:"target_id"`
}

// NewEdgeDeleted creates an EdgeDeleted event
func NewEdgeDeleted(graphID string, version int, edgeID valueobjects.EdgeID, source, target valueobjects.NodeID, ts time.Time) EdgeDeleted {
	return EdgeDeleted{
		BaseEvent: newBase(graphID, TypeEdgeDeleted, version, ts),
		EdgeID:    edgeID,
		SourceID:  source,
		TargetID:  target,
	}
}
