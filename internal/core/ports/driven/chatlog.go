package driven

import (
	"context"

	"github.com/ayushsin9h/wanderstay-cli/internal/core/domain"
)

// ChatLogStore persists completed exchanges.
// The log is append-only: entries are never mutated or deleted.
// Implementations must serialise writes so concurrent sessions never
// interleave or truncate rows.
type ChatLogStore interface {
	// Append stores one entry.
	Append(ctx context.Context, entry domain.ChatLogEntry) error

	// List returns entries newest first. A limit <= 0 means no limit.
	List(ctx context.Context, limit, offset int) ([]domain.ChatLogEntry, error)

	// Count returns the total number of entries.
	Count(ctx context.Context) (int, error)

	// Close releases the underlying storage.
	Close() error
}
