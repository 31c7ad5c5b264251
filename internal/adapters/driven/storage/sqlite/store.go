package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/ayushsin9h/wanderstay-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/ayushsin9h/wanderstay-cli/internal/core/domain"
	"github.com/ayushsin9h/wanderstay-cli/internal/core/ports/driven"
)

// Store is the SQLite-backed chat log store.
type Store struct {
	db   *sql.DB
	path string
}

var _ driven.ChatLogStore = (*Store)(nil)

// NewStore creates a SQLite store in the specified data directory.
// If dataDir is empty, defaults to ~/.wanderstay/data/chatlog.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".wanderstay", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "chatlog.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Append inserts a chat log entry.
func (s *Store) Append(ctx context.Context, entry domain.ChatLogEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("chat log entry has no id: %w", domain.ErrInvalidInput)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chat_log (id, user_input, response, tag, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, entry.ID, entry.UserInput, entry.Response, entry.Tag, entry.CreatedAt.UTC())

	if err != nil {
		return fmt.Errorf("appending chat log entry: %w", err)
	}
	return nil
}

// List returns entries newest first. A limit of zero or less means no
// limit.
func (s *Store) List(ctx context.Context, limit, offset int) ([]domain.ChatLogEntry, error) {
	if limit <= 0 {
		limit = -1 // SQLite treats a negative LIMIT as unbounded
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_input, response, tag, created_at
		FROM chat_log
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying chat log: %w", err)
	}
	defer rows.Close()

	var entries []domain.ChatLogEntry //nolint:prealloc // size unknown from query
	for rows.Next() {
		var entry domain.ChatLogEntry
		var createdAt sql.NullTime
		if err := rows.Scan(&entry.ID, &entry.UserInput, &entry.Response, &entry.Tag, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning chat log entry: %w", err)
		}
		if createdAt.Valid {
			entry.CreatedAt = createdAt.Time.UTC()
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chat log: %w", err)
	}

	return entries, nil
}

// Count returns the number of logged entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chat_log").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting chat log entries: %w", err)
	}
	return count, nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_chat_log.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
