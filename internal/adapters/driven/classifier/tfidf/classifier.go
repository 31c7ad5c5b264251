package tfidf

import (
	"context"
	"fmt"
	"sync"

	"github.com/ayushsin9h/wanderstay-cli/internal/core/domain"
	"github.com/ayushsin9h/wanderstay-cli/internal/core/ports/driven"
	"github.com/ayushsin9h/wanderstay-cli/internal/logger"
)

// Config tunes the classifier. The zero value selects the defaults.
type Config struct {
	// MinNGram and MaxNGram bound the word n-gram lengths extracted as
	// features. Defaults: 1 and 4.
	MinNGram int
	MaxNGram int

	// MaxIter caps the gradient descent iterations. Default: 10000.
	MaxIter int

	// LearnRate is the gradient descent step size. Default: 0.5.
	LearnRate float64

	// Tolerance stops training early once the largest weight update in
	// an iteration falls below it. Default: 1e-6.
	Tolerance float64

	// Seed perturbs the initial weights. Training and classification
	// are deterministic for a fixed seed and training set.
	Seed int64
}

func (c Config) withDefaults() Config {
	if c.MinNGram == 0 {
		c.MinNGram = 1
	}
	if c.MaxNGram == 0 {
		c.MaxNGram = 4
	}
	if c.MaxIter == 0 {
		c.MaxIter = 10000
	}
	if c.LearnRate == 0 {
		c.LearnRate = 0.5
	}
	if c.Tolerance == 0 {
		c.Tolerance = 1e-6
	}
	return c
}

// fitted bundles the trained vectorizer and model. It is built once by
// Train and read-only afterwards, so Classify can run concurrently.
type fitted struct {
	vectorizer *Vectorizer
	model      *model
}

// Classifier trains a TF-IDF softmax regression model on labelled
// patterns and assigns intent tags to free text.
type Classifier struct {
	cfg Config

	mu     sync.RWMutex
	fitted *fitted
}

var _ driven.IntentClassifier = (*Classifier)(nil)

// NewClassifier creates a classifier with the given configuration.
func NewClassifier(cfg Config) *Classifier {
	return &Classifier{cfg: cfg.withDefaults()}
}

// Train fits the vectorizer and model on the examples. Every distinct
// tag in the examples becomes a class the classifier can predict.
func (c *Classifier) Train(ctx context.Context, examples []domain.TrainingExample) error {
	if len(examples) == 0 {
		return fmt.Errorf("train classifier: no examples: %w", domain.ErrInvalidInput)
	}

	texts := make([]string, len(examples))
	tags := make([]string, len(examples))
	for i, ex := range examples {
		texts[i] = ex.Text
		tags[i] = ex.Tag
	}

	vectorizer := NewVectorizer(c.cfg.MinNGram, c.cfg.MaxNGram)
	vectorizer.Fit(texts)

	docs := make([][]feature, len(texts))
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("train classifier: %w", err)
		}
		docs[i] = vectorizer.Transform(text)
	}

	classes, lookup := sortedClasses(tags)
	labels := make([]int, len(tags))
	for i, tag := range tags {
		labels[i] = lookup[tag]
	}

	model := fitSoftmax(docs, labels, classes, vectorizer.Dimensions(), trainConfig{
		maxIter:   c.cfg.MaxIter,
		learnRate: c.cfg.LearnRate,
		tolerance: c.cfg.Tolerance,
		l2:        1e-4,
		seed:      c.cfg.Seed,
	})

	c.mu.Lock()
	c.fitted = &fitted{vectorizer: vectorizer, model: model}
	c.mu.Unlock()

	logger.Debug("classifier trained: %d examples, %d classes, %d features",
		len(examples), len(classes), vectorizer.Dimensions())
	return nil
}

// Classify returns the best-matching intent tag for the text. It never
// refuses an input: empty or fully out-of-vocabulary text still maps to
// the highest-scoring class.
func (c *Classifier) Classify(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("classify: %w", err)
	}

	c.mu.RLock()
	f := c.fitted
	c.mu.RUnlock()
	if f == nil {
		return "", domain.ErrNotTrained
	}

	return f.model.predict(f.vectorizer.Transform(text)), nil
}
