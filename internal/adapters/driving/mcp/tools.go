package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RespondInput is the input schema for the respond tool.
type RespondInput struct {
	Message string `json:"message" jsonschema:"the user message to answer"`
}

// RespondOutput is the output schema for the respond tool.
type RespondOutput struct {
	Response string `json:"response"`
	Tag      string `json:"tag,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "respond",
		Description: "Send a message to the WanderStay hotel chatbot and get its reply",
	}, s.handleRespond)
}

// handleRespond handles the respond tool invocation.
func (s *Server) handleRespond(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RespondInput,
) (*mcp.CallToolResult, RespondOutput, error) {
	entry, err := s.ports.Chat.Respond(ctx, input.Message)
	if err != nil {
		return nil, RespondOutput{}, err
	}

	return nil, RespondOutput{
		Response: entry.Response,
		Tag:      entry.Tag,
	}, nil
}
