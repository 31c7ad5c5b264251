package domain

import "time"

// ChatLogEntry is one completed exchange. Entries are appended to the
// chat log and never mutated or deleted.
type ChatLogEntry struct {
	// ID is the unique identifier for the entry.
	ID string

	// UserInput is the raw text the user sent.
	UserInput string

	// Response is the reply that was returned.
	Response string

	// Tag is the intent label the classifier predicted for UserInput.
	Tag string

	// CreatedAt is when the exchange happened.
	CreatedAt time.Time
}

// LogTimeFormat is the timestamp layout used when exporting the chat
// log, matching the original CSV log format.
const LogTimeFormat = "2006-01-02 15:04:05"
