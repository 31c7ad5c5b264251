// Package services implements the core chat and history services behind
// the driving ports, orchestrating the corpus store, the classifier,
// and the chat log.
package services

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ayushsin9h/wanderstay-cli/internal/core/domain"
)

// FallbackResponse is returned when no response can be resolved for the
// predicted intent.
const FallbackResponse = "I'm not sure I understand."

// Resolver picks a response for a classified intent, uniformly at
// random among the intent's responses.
type Resolver struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewResolver creates a resolver. Pass a seeded rand.Rand for
// deterministic selection in tests; nil uses a time-seeded source.
func NewResolver(rng *rand.Rand) *Resolver {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Resolver{rng: rng}
}

// Resolve returns one of the responses registered for tag in the
// corpus, or FallbackResponse when the tag is unknown or has no
// responses.
func (r *Resolver) Resolve(corpus domain.Corpus, tag string) string {
	record, ok := corpus.FindByTag(tag)
	if !ok || len(record.Responses) == 0 {
		return FallbackResponse
	}
	if len(record.Responses) == 1 {
		return record.Responses[0]
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return record.Responses[r.rng.Intn(len(record.Responses))]
}
