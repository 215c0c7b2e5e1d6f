package commands

import "grapheditor/pkg/utils"

// StartSessionCommand opens a new editor session seeded from the domain config
type StartSessionCommand struct{}

// Validate validates the command
func (c StartSessionCommand) Validate() error {
	return nil
}

// EndSessionCommand discards a session and disconnects its stream subscribers
type EndSessionCommand struct {
	SessionID string `json:"sessionId" validate:"required"`
}

// Validate validates the command
func (c EndSessionCommand) Validate() error {
	return utils.ValidateStruct(c)
}
