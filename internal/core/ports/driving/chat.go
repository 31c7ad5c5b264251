package driving

import (
	"context"

	"github.com/ayushsin9h/wanderstay-cli/internal/core/domain"
)

// ChatService is the narrow interface the presentation layer calls.
type ChatService interface {
	// Initialize loads the corpus and trains the classifier, exactly
	// once per process lifetime. Concurrent callers all observe the
	// outcome of the single load/train run.
	Initialize(ctx context.Context) error

	// Respond classifies the text, picks a response, and appends the
	// exchange to the chat log. It always produces a response string
	// for any input; the error is reserved for calling it before
	// Initialize succeeded.
	Respond(ctx context.Context, text string) (domain.ChatLogEntry, error)
}
