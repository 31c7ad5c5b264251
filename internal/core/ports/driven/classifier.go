package driven

import (
	"context"

	"github.com/ayushsin9h/wanderstay-cli/internal/core/domain"
)

// IntentClassifier maps free text to one of the tags seen during
// training. Implementations must be safe for concurrent Classify calls
// once Train has returned.
type IntentClassifier interface {
	// Train fits the classifier on the flattened corpus. It is called
	// exactly once per process lifetime.
	Train(ctx context.Context, examples []domain.TrainingExample) error

	// Classify returns the single best-scoring tag for the text. Every
	// input yields a tag, including empty strings and text entirely
	// outside the training vocabulary. It returns
	// domain.ErrNotTrained when called before Train.
	Classify(ctx context.Context, text string) (string, error)
}
