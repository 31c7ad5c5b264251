package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayushsin9h/wanderstay-cli/internal/core/domain"
	"github.com/ayushsin9h/wanderstay-cli/internal/core/ports/driven"
	"github.com/ayushsin9h/wanderstay-cli/internal/core/ports/driving"
	"github.com/ayushsin9h/wanderstay-cli/internal/logger"
)

// Chat implements the ChatService driving port. Initialize runs the
// corpus load and classifier training exactly once; Respond then serves
// any number of concurrent callers.
type Chat struct {
	corpusStore driven.CorpusStore
	classifier  driven.IntentClassifier
	chatLog     driven.ChatLogStore
	resolver    *Resolver

	initOnce sync.Once
	initErr  error

	mu     sync.RWMutex
	corpus domain.Corpus
}

var _ driving.ChatService = (*Chat)(nil)

// NewChat creates the chat service. A nil resolver gets a time-seeded
// one.
func NewChat(corpusStore driven.CorpusStore, classifier driven.IntentClassifier, chatLog driven.ChatLogStore, resolver *Resolver) *Chat {
	if resolver == nil {
		resolver = NewResolver(nil)
	}
	return &Chat{
		corpusStore: corpusStore,
		classifier:  classifier,
		chatLog:     chatLog,
		resolver:    resolver,
	}
}

// Initialize loads the corpus and trains the classifier. Repeated and
// concurrent calls share a single load/train run and all return its
// outcome.
func (c *Chat) Initialize(ctx context.Context) error {
	c.initOnce.Do(func() {
		start := time.Now()

		corpus, err := c.corpusStore.Load(ctx)
		if err != nil {
			c.initErr = fmt.Errorf("load corpus: %w", err)
			return
		}

		if err := c.classifier.Train(ctx, corpus.TrainingExamples()); err != nil {
			c.initErr = fmt.Errorf("train classifier: %w", err)
			return
		}

		c.mu.Lock()
		c.corpus = corpus
		c.mu.Unlock()

		logger.Info("initialized: %d intents, %d patterns, took %s",
			len(corpus), corpus.TotalPatterns(), time.Since(start).Round(time.Millisecond))
	})
	return c.initErr
}

// Respond classifies the text, resolves a response, and records the
// exchange. It produces a response for any input; classification or
// log-append problems degrade to the fallback response or a warning,
// never to a failed exchange.
func (c *Chat) Respond(ctx context.Context, text string) (domain.ChatLogEntry, error) {
	c.mu.RLock()
	corpus := c.corpus
	c.mu.RUnlock()
	if corpus == nil {
		return domain.ChatLogEntry{}, domain.ErrNotInitialized
	}

	var response string
	tag, err := c.classifier.Classify(ctx, text)
	if err != nil {
		logger.Warn("classification failed: %v", err)
		response = FallbackResponse
	} else {
		response = c.resolver.Resolve(corpus, tag)
	}

	entry := domain.ChatLogEntry{
		ID:        uuid.NewString(),
		UserInput: text,
		Response:  response,
		Tag:       tag,
		CreatedAt: time.Now().UTC(),
	}

	if err := c.chatLog.Append(ctx, entry); err != nil {
		// The conversation continues even if the log is broken.
		logger.Warn("append chat log entry: %v", err)
	}

	return entry, nil
}
