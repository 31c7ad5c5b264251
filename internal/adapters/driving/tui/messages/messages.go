// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/ayushsin9h/wanderstay-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewChat is the conversation view.
	ViewChat
	// ViewHistory is the conversation history view.
	ViewHistory
	// ViewAbout is the about view.
	ViewAbout
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewChat:
		return "chat"
	case ViewHistory:
		return "history"
	case ViewAbout:
		return "about"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ResponseReceived carries the chatbot's reply to a user message.
type ResponseReceived struct {
	Entry domain.ChatLogEntry
	Err   error
}

// HistoryLoaded carries the conversation log from the service.
type HistoryLoaded struct {
	Entries []domain.ChatLogEntry
	Err     error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
