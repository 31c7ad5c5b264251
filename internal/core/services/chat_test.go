package services

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayushsin9h/wanderstay-cli/internal/adapters/driven/classifier/tfidf"
	"github.com/ayushsin9h/wanderstay-cli/internal/adapters/driven/storage/memory"
	"github.com/ayushsin9h/wanderstay-cli/internal/core/domain"
)

// mockCorpusStore returns a fixed corpus and counts loads.
type mockCorpusStore struct {
	mu     sync.Mutex
	corpus domain.Corpus
	err    error
	loads  int
}

func (m *mockCorpusStore) Load(_ context.Context) (domain.Corpus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
	return m.corpus, m.err
}

// mockClassifier routes text containing a keyword to that keyword's tag
// and counts training runs.
type mockClassifier struct {
	mu       sync.Mutex
	routes   map[string]string
	fallback string
	err      error
	trains   int
}

func (m *mockClassifier) Train(_ context.Context, examples []domain.TrainingExample) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trains++
	return m.err
}

func (m *mockClassifier) Classify(_ context.Context, text string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	lower := strings.ToLower(text)
	for keyword, tag := range m.routes {
		if strings.Contains(lower, keyword) {
			return tag, nil
		}
	}
	return m.fallback, nil
}

// failingChatLog always fails to append.
type failingChatLog struct {
	memory.ChatLogStore
}

func (f *failingChatLog) Append(_ context.Context, _ domain.ChatLogEntry) error {
	return errors.New("disk full")
}

func testCorpus() domain.Corpus {
	return domain.Corpus{
		{
			Tag:       "greeting",
			Patterns:  []string{"hi", "hello"},
			Responses: []string{"Hello! Welcome to WanderStay."},
		},
		{
			Tag:       "goodbye",
			Patterns:  []string{"bye", "goodbye"},
			Responses: []string{"Goodbye"},
		},
	}
}

func newTestChat(store *mockCorpusStore, classifier *mockClassifier) (*Chat, *memory.ChatLogStore) {
	log := memory.NewChatLogStore()
	resolver := NewResolver(rand.New(rand.NewSource(1)))
	return NewChat(store, classifier, log, resolver), log
}

func TestInitializeLoadsAndTrains(t *testing.T) {
	store := &mockCorpusStore{corpus: testCorpus()}
	classifier := &mockClassifier{fallback: "greeting"}
	chat, _ := newTestChat(store, classifier)

	require.NoError(t, chat.Initialize(context.Background()))
	assert.Equal(t, 1, store.loads)
	assert.Equal(t, 1, classifier.trains)
}

func TestInitializeRunsExactlyOnce(t *testing.T) {
	store := &mockCorpusStore{corpus: testCorpus()}
	classifier := &mockClassifier{fallback: "greeting"}
	chat, _ := newTestChat(store, classifier)

	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, chat.Initialize(ctx))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, store.loads)
	assert.Equal(t, 1, classifier.trains)
}

func TestInitializeCorpusError(t *testing.T) {
	store := &mockCorpusStore{err: domain.ErrCorpusNotFound}
	chat, _ := newTestChat(store, &mockClassifier{})

	err := chat.Initialize(context.Background())
	assert.ErrorIs(t, err, domain.ErrCorpusNotFound)

	// A failed initialization is sticky.
	err = chat.Initialize(context.Background())
	assert.ErrorIs(t, err, domain.ErrCorpusNotFound)
	assert.Equal(t, 1, store.loads)
}

func TestRespondBeforeInitialize(t *testing.T) {
	chat, _ := newTestChat(&mockCorpusStore{corpus: testCorpus()}, &mockClassifier{})

	_, err := chat.Respond(context.Background(), "hello")
	assert.ErrorIs(t, err, domain.ErrNotInitialized)
}

func TestRespondRoutesToIntent(t *testing.T) {
	store := &mockCorpusStore{corpus: testCorpus()}
	classifier := &mockClassifier{
		routes:   map[string]string{"hello": "greeting", "bye": "goodbye"},
		fallback: "greeting",
	}
	chat, log := newTestChat(store, classifier)

	ctx := context.Background()
	require.NoError(t, chat.Initialize(ctx))

	entry, err := chat.Respond(ctx, "hello there")
	require.NoError(t, err)
	assert.Equal(t, "greeting", entry.Tag)
	assert.Equal(t, "Hello! Welcome to WanderStay.", entry.Response)
	assert.Equal(t, "hello there", entry.UserInput)
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())

	entry, err = chat.Respond(ctx, "bye now")
	require.NoError(t, err)
	assert.Equal(t, "Goodbye", entry.Response)

	count, err := log.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRespondNeverFailsOnOddInput(t *testing.T) {
	store := &mockCorpusStore{corpus: testCorpus()}
	classifier := &mockClassifier{fallback: "greeting"}
	chat, _ := newTestChat(store, classifier)

	ctx := context.Background()
	require.NoError(t, chat.Initialize(ctx))

	for _, input := range []string{"", "?!...", "   ", "zzz unknown words"} {
		entry, err := chat.Respond(ctx, input)
		require.NoError(t, err, "input %q", input)
		assert.NotEmpty(t, entry.Response)
	}
}

func TestRespondFallbackOnUnknownTag(t *testing.T) {
	store := &mockCorpusStore{corpus: testCorpus()}
	classifier := &mockClassifier{fallback: "no-such-tag"}
	chat, _ := newTestChat(store, classifier)

	ctx := context.Background()
	require.NoError(t, chat.Initialize(ctx))

	entry, err := chat.Respond(ctx, "something")
	require.NoError(t, err)
	assert.Equal(t, FallbackResponse, entry.Response)
}

func TestRespondSurvivesLogAppendFailure(t *testing.T) {
	store := &mockCorpusStore{corpus: testCorpus()}
	classifier := &mockClassifier{fallback: "greeting"}
	resolver := NewResolver(rand.New(rand.NewSource(1)))
	chat := NewChat(store, classifier, &failingChatLog{}, resolver)

	ctx := context.Background()
	require.NoError(t, chat.Initialize(ctx))

	entry, err := chat.Respond(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, "Hello! Welcome to WanderStay.", entry.Response)
}

// End to end through the real classifier: a two-intent corpus must
// answer its own patterns correctly and answer gibberish with one of
// the trained responses, never a third outcome.
func TestRespondEndToEnd(t *testing.T) {
	corpus := domain.Corpus{
		{Tag: "greeting", Patterns: []string{"hi", "hello"}, Responses: []string{"Hello!"}},
		{Tag: "bye", Patterns: []string{"bye", "goodbye"}, Responses: []string{"Goodbye!"}},
	}
	store := &mockCorpusStore{corpus: corpus}
	log := memory.NewChatLogStore()
	resolver := NewResolver(rand.New(rand.NewSource(1)))
	chat := NewChat(store, tfidf.NewClassifier(tfidf.Config{}), log, resolver)

	ctx := context.Background()
	require.NoError(t, chat.Initialize(ctx))

	hi, err := chat.Respond(ctx, "hi")
	require.NoError(t, err)
	assert.Equal(t, "Hello!", hi.Response)

	bye, err := chat.Respond(ctx, "bye")
	require.NoError(t, err)
	assert.Equal(t, "Goodbye!", bye.Response)

	odd, err := chat.Respond(ctx, "xyz123")
	require.NoError(t, err)
	assert.Contains(t, []string{"Hello!", "Goodbye!"}, odd.Response)

	count, err := log.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
