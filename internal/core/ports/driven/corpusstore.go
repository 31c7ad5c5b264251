package driven

import (
	"context"

	"github.com/ayushsin9h/wanderstay-cli/internal/core/domain"
)

// CorpusStore reads the intent corpus from its source.
// The corpus is loaded once at startup and never reloaded.
type CorpusStore interface {
	// Load reads and validates the corpus. It returns an error wrapping
	// domain.ErrCorpusNotFound when the source is missing and
	// domain.ErrCorpusEmpty when no training texts can be derived.
	Load(ctx context.Context) (domain.Corpus, error)
}
