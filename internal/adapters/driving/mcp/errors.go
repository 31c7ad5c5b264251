// Package mcp provides an MCP (Model Context Protocol) server adapter
// for WanderStay. It lets AI assistants talk to the chatbot and read
// its conversation history.
package mcp

import "errors"

// ErrMissingChatService is returned when the chat service is not provided.
var ErrMissingChatService = errors.New("mcp: chat service is required")
