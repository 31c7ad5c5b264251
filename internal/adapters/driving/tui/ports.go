// Package tui provides an interactive terminal user interface for
// WanderStay. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/ayushsin9h/wanderstay-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Chat answers user messages.
	Chat driving.ChatService

	// History exposes the conversation log.
	History driving.HistoryService

	// HistoryLimit caps how many exchanges the history view shows.
	// Zero selects the default.
	HistoryLimit int
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Chat == nil {
		return ErrMissingChatService
	}
	if p.History == nil {
		return ErrMissingHistoryService
	}
	return nil
}
