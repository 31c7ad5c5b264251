package file

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayushsin9h/wanderstay-cli/internal/core/domain"
	"github.com/ayushsin9h/wanderstay-cli/internal/logger"
)

func TestLoadBareArray(t *testing.T) {
	store := NewCorpusStore(filepath.Join("testdata", "patterns.json"))

	corpus, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, corpus, 3)
	assert.Equal(t, "greeting", corpus[0].Tag)
	assert.Equal(t, 10, corpus.TotalPatterns())
}

func TestLoadWrappedObject(t *testing.T) {
	store := NewCorpusStore(filepath.Join("testdata", "patterns_wrapped.json"))

	corpus, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, corpus, 1)
	assert.Equal(t, "amenities", corpus[0].Tag)
}

func TestLoadMissingFile(t *testing.T) {
	store := NewCorpusStore(filepath.Join(t.TempDir(), "nope.json"))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrCorpusNotFound)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewCorpusStore(path).Load(context.Background())
	assert.Error(t, err)
}

func TestLoadWrappedWithoutIntentsKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"other": []}`), 0o644))

	_, err := NewCorpusStore(path).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoadEmptyCorpus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	_, err := NewCorpusStore(path).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrCorpusEmpty)
}

func TestLoadAllPatternsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")
	raw := `[{"tag": "greeting", "patterns": [], "responses": ["hi"]}]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	_, err := NewCorpusStore(path).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrCorpusEmpty)
}

func TestLoadInvalidRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")
	raw := `[{"tag": "greeting", "patterns": ["hi"], "responses": []}]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	_, err := NewCorpusStore(path).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// syncBuffer is a goroutine-safe bytes.Buffer for capturing log output
// written by the watcher goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatcherWarnsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patterns.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	var buf syncBuffer
	logger.SetOutput(&buf)
	defer logger.SetOutput(os.Stderr)

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte(`[{}]`), 0o644))

	assert.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "changed on disk")
	}, 3*time.Second, 20*time.Millisecond)
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patterns.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	var buf syncBuffer
	logger.SetOutput(&buf)
	defer logger.SetOutput(os.Stderr)

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	time.Sleep(200 * time.Millisecond)
	assert.NotContains(t, buf.String(), "changed on disk")
}
