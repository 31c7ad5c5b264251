package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ayushsin9h/wanderstay-cli/internal/core/domain"
	"github.com/ayushsin9h/wanderstay-cli/internal/core/ports/driven"
	"github.com/ayushsin9h/wanderstay-cli/internal/core/ports/driving"
)

// csvHeader matches the layout of the exported conversation log.
var csvHeader = []string{"User Input", "Chatbot Response", "Timestamp"}

// exportPageSize bounds how many entries ExportCSV pulls per query.
const exportPageSize = 500

// History implements the HistoryService driving port on top of the
// chat log store.
type History struct {
	chatLog driven.ChatLogStore
}

var _ driving.HistoryService = (*History)(nil)

// NewHistory creates the history service.
func NewHistory(chatLog driven.ChatLogStore) *History {
	return &History{chatLog: chatLog}
}

// List returns logged exchanges, newest first.
func (h *History) List(ctx context.Context, limit, offset int) ([]domain.ChatLogEntry, error) {
	entries, err := h.chatLog.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list chat log: %w", err)
	}
	return entries, nil
}

// ExportCSV writes the full chat log to w in chronological order, with
// a header row.
func (h *History) ExportCSV(ctx context.Context, w io.Writer) error {
	var all []domain.ChatLogEntry
	for offset := 0; ; offset += exportPageSize {
		page, err := h.chatLog.List(ctx, exportPageSize, offset)
		if err != nil {
			return fmt.Errorf("list chat log: %w", err)
		}
		if len(page) == 0 {
			break
		}
		all = append(all, page...)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	// List returns newest first; the export reads oldest first.
	for i := len(all) - 1; i >= 0; i-- {
		entry := all[i]
		record := []string{
			entry.UserInput,
			entry.Response,
			entry.CreatedAt.Format(domain.LogTimeFormat),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
