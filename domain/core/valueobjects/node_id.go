package valueobjects

import (
	"encoding/json"
	"strconv"

	pkgerrors "grapheditor/pkg/errors"
)

// NodeID is a value object representing a unique node identifier
// Value objects are immutable and have no identity beyond their value
type NodeID struct {
	value string
}

// NewNodeID creates a NodeID from an existing string
func NewNodeID(id string) (NodeID, error) {
	if id == "" {
		return NodeID{}, pkgerrors.NewValidationError("node ID cannot be empty")
	}
	return NodeID{value: id}, nil
}

// NodeIDFromSequence formats a sequence number as a NodeID ("1", "2", ...)
func NodeIDFromSequence(seq uint64) NodeID {
	return NodeID{value: strconv.FormatUint(seq, 10)}
}

// Sequence returns the numeric value of a sequence-minted id
func (id NodeID) Sequence() (uint64, bool) {
	n, err := strconv.ParseUint(id.value, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// String returns the string representation of the NodeID
func (id NodeID) String() string {
	return id.value
}

// Equals checks if two NodeIDs are equal
func (id NodeID) Equals(other NodeID) bool {
	return id.value == other.value
}

// IsZero checks if the NodeID is the zero value
func (id NodeID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id NodeID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.value)
}

// UnmarshalJSON implements json.Unmarshaler
func (id *NodeID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return pkgerrors.NewValidationError("node ID must be a string")
	}
	id.value = s
	return nil
}
