package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ayushsin9h/wanderstay-cli/internal/core/domain"
	"github.com/ayushsin9h/wanderstay-cli/internal/core/ports/driving"
)

type mockChatService struct {
	initErr    error
	respondErr error
	responses  map[string]string
	initCalls  int
}

var _ driving.ChatService = (*mockChatService)(nil)

func (m *mockChatService) Initialize(_ context.Context) error {
	m.initCalls++
	return m.initErr
}

func (m *mockChatService) Respond(_ context.Context, input string) (domain.ChatLogEntry, error) {
	if m.respondErr != nil {
		return domain.ChatLogEntry{}, m.respondErr
	}

	response, ok := m.responses[input]
	if !ok {
		response = "I'm not sure I understand."
	}
	return domain.ChatLogEntry{
		ID:        "test-id",
		UserInput: input,
		Response:  response,
		CreatedAt: time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC),
	}, nil
}

type mockHistoryService struct {
	entries []domain.ChatLogEntry
	listErr error
}

var _ driving.HistoryService = (*mockHistoryService)(nil)

func (m *mockHistoryService) List(_ context.Context, limit, offset int) ([]domain.ChatLogEntry, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	if offset >= len(m.entries) {
		return nil, nil
	}
	entries := m.entries[offset:]
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

func (m *mockHistoryService) ExportCSV(_ context.Context, w io.Writer) error {
	if m.listErr != nil {
		return m.listErr
	}
	if _, err := fmt.Fprintln(w, "User Input,Chatbot Response,Timestamp"); err != nil {
		return err
	}
	for i := len(m.entries) - 1; i >= 0; i-- {
		entry := m.entries[i]
		if _, err := fmt.Fprintf(w, "%s,%s,%s\n",
			entry.UserInput, entry.Response, entry.CreatedAt.Format(domain.LogTimeFormat)); err != nil {
			return err
		}
	}
	return nil
}

// setupTestServices injects mock services and restores the previous
// ones when the test finishes.
func setupTestServices(chat driving.ChatService, history driving.HistoryService) func() {
	prevChat := chatService
	prevHistory := historyService
	chatService = chat
	historyService = history
	return func() {
		chatService = prevChat
		historyService = prevHistory
	}
}
