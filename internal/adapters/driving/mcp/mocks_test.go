package mcp

import (
	"context"
	"io"

	"github.com/ayushsin9h/wanderstay-cli/internal/core/domain"
)

// mockChatService is a mock implementation of driving.ChatService.
type mockChatService struct {
	entry       domain.ChatLogEntry
	initErr     error
	respondErr  error
	initialized bool
}

func (m *mockChatService) Initialize(_ context.Context) error {
	if m.initErr == nil {
		m.initialized = true
	}
	return m.initErr
}

func (m *mockChatService) Respond(_ context.Context, _ string) (domain.ChatLogEntry, error) {
	return m.entry, m.respondErr
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	entries []domain.ChatLogEntry
	err     error
}

func (m *mockHistoryService) List(_ context.Context, _, _ int) ([]domain.ChatLogEntry, error) {
	return m.entries, m.err
}

func (m *mockHistoryService) ExportCSV(_ context.Context, _ io.Writer) error {
	return m.err
}
