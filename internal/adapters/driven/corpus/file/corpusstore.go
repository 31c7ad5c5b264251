// Package file loads the intent corpus from a JSON patterns file on
// disk and watches it for changes.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ayushsin9h/wanderstay-cli/internal/core/domain"
	"github.com/ayushsin9h/wanderstay-cli/internal/core/ports/driven"
	"github.com/ayushsin9h/wanderstay-cli/internal/logger"
)

// CorpusStore reads intent records from a JSON file. Two layouts are
// accepted: a bare array of records, or an object wrapping the array
// under an "intents" key.
type CorpusStore struct {
	path string
}

var _ driven.CorpusStore = (*CorpusStore)(nil)

// NewCorpusStore creates a store reading from path.
func NewCorpusStore(path string) *CorpusStore {
	return &CorpusStore{path: path}
}

// Path returns the corpus file path.
func (s *CorpusStore) Path() string {
	return s.path
}

// Load reads and validates the corpus file.
func (s *CorpusStore) Load(ctx context.Context) (domain.Corpus, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", s.path, domain.ErrCorpusNotFound)
		}
		return nil, fmt.Errorf("read corpus %s: %w", s.path, err)
	}

	corpus, err := decodeCorpus(data)
	if err != nil {
		return nil, fmt.Errorf("parse corpus %s: %w", s.path, err)
	}

	// Zero trainable texts is the aggregate failure, reported before any
	// per-record complaint: a corpus of records with empty pattern lists
	// is empty, not malformed.
	if corpus.TotalPatterns() == 0 {
		return nil, fmt.Errorf("%s: %w", s.path, domain.ErrCorpusEmpty)
	}
	for i, record := range corpus {
		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("corpus %s: record %d (tag %q): %w", s.path, i, record.Tag, err)
		}
	}

	logger.Debug("loaded corpus %s: %d intents, %d patterns",
		s.path, len(corpus), corpus.TotalPatterns())
	return corpus, nil
}

// decodeCorpus accepts both the bare-array and wrapped-object layouts.
func decodeCorpus(data []byte) (domain.Corpus, error) {
	var records []domain.IntentRecord
	if err := json.Unmarshal(data, &records); err == nil {
		return domain.Corpus(records), nil
	}

	var wrapped struct {
		Intents []domain.IntentRecord `json:"intents"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, err
	}
	if wrapped.Intents == nil {
		return nil, fmt.Errorf("no intents found: %w", domain.ErrInvalidInput)
	}
	return domain.Corpus(wrapped.Intents), nil
}
