package queries

import "grapheditor/pkg/utils"

// GetViewQuery asks for the current render state of a session
type GetViewQuery struct {
	SessionID string `validate:"required"`
}

// Validate validates the query
func (q GetViewQuery) Validate() error {
	return utils.ValidateStruct(q)
}
