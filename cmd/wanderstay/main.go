package main

import (
	"fmt"
	"os"

	"github.com/ayushsin9h/wanderstay-cli/internal/adapters/driven/classifier/tfidf"
	configfile "github.com/ayushsin9h/wanderstay-cli/internal/adapters/driven/config/file"
	corpusfile "github.com/ayushsin9h/wanderstay-cli/internal/adapters/driven/corpus/file"
	"github.com/ayushsin9h/wanderstay-cli/internal/adapters/driven/storage/sqlite"
	"github.com/ayushsin9h/wanderstay-cli/internal/adapters/driving/cli"
	"github.com/ayushsin9h/wanderstay-cli/internal/core/ports/driving"
	"github.com/ayushsin9h/wanderstay-cli/internal/core/services"
	"github.com/ayushsin9h/wanderstay-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetServiceFactory(buildServices)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// buildServices wires the driven adapters into the core services. Flag
// values override the config file; empty values fall back to it.
func buildServices(corpusPath, dataDir string) (driving.ChatService, driving.HistoryService, func(), error) {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening config: %w", err)
	}
	if err := configStore.Load(); err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}
	cfg := configStore.Config()

	if corpusPath == "" {
		corpusPath = cfg.CorpusPath
	}
	if dataDir == "" {
		dataDir = cfg.DataDir
	}

	chatLog, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening chat log: %w", err)
	}

	corpusStore := corpusfile.NewCorpusStore(corpusPath)
	classifier := tfidf.NewClassifier(tfidf.Config{
		Seed:    cfg.Classifier.Seed,
		MaxIter: cfg.Classifier.MaxIter,
	})

	chat := services.NewChat(corpusStore, classifier, chatLog, nil)
	history := services.NewHistory(chatLog)

	watcher, err := corpusfile.NewWatcher(corpusPath)
	if err != nil {
		logger.Debug("corpus watcher unavailable: %v", err)
	}

	cleanup := func() {
		if watcher != nil {
			watcher.Close()
		}
		if err := chatLog.Close(); err != nil {
			logger.Debug("closing chat log: %v", err)
		}
	}

	return chat, history, cleanup, nil
}
