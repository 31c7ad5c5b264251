package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayushsin9h/wanderstay-cli/internal/core/domain"
)

func readResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}
}

func TestServer_handleHistoryResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns history as json", func(t *testing.T) {
		mockHistory := &mockHistoryService{
			entries: []domain.ChatLogEntry{
				{
					UserInput: "hello",
					Response:  "Hi there!",
					Tag:       "greeting",
					CreatedAt: time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC),
				},
			},
		}

		ports := &Ports{Chat: &mockChatService{}, History: mockHistory}
		server, err := NewServer(ports)
		require.NoError(t, err)

		result, err := server.handleHistoryResource(ctx, readResourceRequest(uriScheme+"history"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)

		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, `"user_input": "hello"`)
		assert.Contains(t, result.Contents[0].Text, `"response": "Hi there!"`)
		assert.Contains(t, result.Contents[0].Text, "2026-08-23 10:30:00")
	})

	t.Run("empty list without history service", func(t *testing.T) {
		ports := &Ports{Chat: &mockChatService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		result, err := server.handleHistoryResource(ctx, readResourceRequest(uriScheme+"history"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})
}
