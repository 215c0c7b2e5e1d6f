package valueobjects

import (
	"encoding/json"
	"fmt"

	pkgerrors "grapheditor/pkg/errors"
)

// EdgeID identifies an edge independently of its endpoints
type EdgeID struct {
	value string
}

// NewEdgeID creates an EdgeID from an existing string
func NewEdgeID(id string) (EdgeID, error) {
	if id == "" {
		return EdgeID{}, pkgerrors.NewValidationError("edge ID cannot be empty")
	}
	return EdgeID{value: id}, nil
}

// ConnectionEdgeID derives the conventional id for a source→target connection.
// attempt > 1 appends a disambiguating suffix for repeated connections.
func ConnectionEdgeID(source, target NodeID, attempt int) EdgeID {
	base := fmt.Sprintf("e%s-%s", source.value, target.value)
	if attempt > 1 {
		base = fmt.Sprintf("%s-%d", base, attempt)
	}
	return EdgeID{value: base}
}

// String returns the string representation
func (id EdgeID) String() string {
	return id.value
}

// Equals checks if two EdgeIDs are equal
func (id EdgeID) Equals(other EdgeID) bool {
	return id.value == other.value
}

// IsZero checks if the EdgeID is the zero value
func (id EdgeID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id EdgeID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.value)
}

// UnmarshalJSON implements json.Unmarshaler
func (id *EdgeID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return pkgerrors.NewValidationError("edge ID must be a string")
	}
	id.value = s
	return nil
}
