package driving

import (
	"context"
	"io"

	"github.com/ayushsin9h/wanderstay-cli/internal/core/domain"
)

// HistoryService exposes the chat log to external actors.
type HistoryService interface {
	// List returns logged exchanges, newest first.
	List(ctx context.Context, limit, offset int) ([]domain.ChatLogEntry, error)

	// ExportCSV writes the full log to w as CSV with a header row.
	ExportCSV(ctx context.Context, w io.Writer) error
}
