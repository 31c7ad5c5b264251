package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStoreDefaults(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	config := store.Config()
	assert.Equal(t, "patterns.json", config.CorpusPath)
	assert.Equal(t, 50, config.HistoryLimit)
	assert.Empty(t, config.DataDir)
}

func TestUpdatePersists(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Update(func(c *Config) {
		c.CorpusPath = "/data/patterns.json"
		c.HistoryLimit = 10
		c.Classifier.Seed = 42
	}))

	// A fresh store picks up the saved values.
	store, err = NewConfigStore(dir)
	require.NoError(t, err)

	config := store.Config()
	assert.Equal(t, "/data/patterns.json", config.CorpusPath)
	assert.Equal(t, 10, config.HistoryLimit)
	assert.Equal(t, int64(42), config.Classifier.Seed)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	raw := "corpus_path = \"custom.json\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(raw), 0o600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	config := store.Config()
	assert.Equal(t, "custom.json", config.CorpusPath)
	assert.Equal(t, 50, config.HistoryLimit)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not toml ["), 0o600))

	_, err := NewConfigStore(dir)
	assert.Error(t, err)
}

func TestPath(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}
