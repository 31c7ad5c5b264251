package mcp

import (
	"github.com/ayushsin9h/wanderstay-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Chat answers user messages.
	Chat driving.ChatService

	// History exposes the conversation log.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Chat == nil {
		return ErrMissingChatService
	}
	// History is optional; the resource degrades to an empty list.
	return nil
}
