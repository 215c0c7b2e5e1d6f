package queries

import (
	"grapheditor/application/ports"
	"grapheditor/domain/core/aggregates"
	"grapheditor/pkg/utils"
)

// StreamViewQuery opens a live view stream for a session
type StreamViewQuery struct {
	SessionID string `validate:"required"`
}

// Validate validates the query
func (q StreamViewQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// ViewStream is the view at subscription time followed by every later view.
// Callers must Close the subscription.
type ViewStream struct {
	Initial      aggregates.View
	Subscription ports.ViewSubscription
}
