// Package memory provides in-memory store implementations used by tests
// and as lightweight fallbacks when no database is configured.
package memory

import (
	"context"
	"sync"

	"github.com/ayushsin9h/wanderstay-cli/internal/core/domain"
	"github.com/ayushsin9h/wanderstay-cli/internal/core/ports/driven"
)

// ChatLogStore keeps chat log entries in memory, in append order.
type ChatLogStore struct {
	mu      sync.RWMutex
	entries []domain.ChatLogEntry
}

var _ driven.ChatLogStore = (*ChatLogStore)(nil)

// NewChatLogStore creates an empty in-memory chat log.
func NewChatLogStore() *ChatLogStore {
	return &ChatLogStore{}
}

// Append adds an entry to the log.
func (s *ChatLogStore) Append(_ context.Context, entry domain.ChatLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

// List returns entries newest first. A limit of zero or less means no
// limit.
func (s *ChatLogStore) List(_ context.Context, limit, offset int) ([]domain.ChatLogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if offset < 0 {
		offset = 0
	}
	if offset >= len(s.entries) {
		return nil, nil
	}

	// entries is oldest first; walk it backwards.
	remaining := len(s.entries) - offset
	if limit <= 0 || limit > remaining {
		limit = remaining
	}

	out := make([]domain.ChatLogEntry, 0, limit)
	for i := len(s.entries) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.entries[i])
	}
	return out, nil
}

// Count returns the number of logged entries.
func (s *ChatLogStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}

// Close is a no-op for the in-memory store.
func (s *ChatLogStore) Close() error {
	return nil
}
