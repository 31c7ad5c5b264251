package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Corpus errors. Both are fatal at startup: there is no sensible
	// classifier without training data.

	// ErrCorpusNotFound indicates the corpus source does not exist.
	ErrCorpusNotFound = errors.New("corpus not found")

	// ErrCorpusEmpty indicates the corpus yields zero training texts
	// (no records, or every record has an empty pattern list).
	ErrCorpusEmpty = errors.New("corpus has no trainable patterns")

	// Classifier errors.

	// ErrNotTrained indicates Classify was called before Train.
	ErrNotTrained = errors.New("classifier not trained")

	// ErrNotInitialized indicates the chat service was used before
	// Initialize completed successfully.
	ErrNotInitialized = errors.New("chat service not initialized")
)
