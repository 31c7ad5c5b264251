package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ayushsin9h/wanderstay-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for WanderStay resources.
	uriScheme = "wanderstay://"

	// historyResourceLimit caps how many exchanges the resource returns.
	historyResourceLimit = 100
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Recent chatbot conversation history, newest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

// handleHistoryResource returns the recent conversation log.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	entries, err := s.ports.History.List(ctx, historyResourceLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	type exchangeInfo struct {
		UserInput string `json:"user_input"`
		Response  string `json:"response"`
		Tag       string `json:"tag,omitempty"`
		Timestamp string `json:"timestamp"`
	}

	infos := make([]exchangeInfo, len(entries))
	for i, entry := range entries {
		infos[i] = exchangeInfo{
			UserInput: entry.UserInput,
			Response:  entry.Response,
			Tag:       entry.Tag,
			Timestamp: entry.CreatedAt.Format(domain.LogTimeFormat),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
