// Package sqlite implements the ChangeCache port over a local SQLite
// database, so a previously fetched tag range can be re-rendered without
// touching the host. Only complete fetch results are written.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/relnotes-cli/internal/adapters/driven/cache/sqlite/migrations"
	"github.com/custodia-labs/relnotes-cli/internal/core/domain"
	"github.com/custodia-labs/relnotes-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ChangeCache = (*Store)(nil)

// Store is the SQLite-backed change cache.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the cache database under dataDir.
// If dataDir is empty, defaults to ~/.relnotes/cache.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".relnotes", "cache")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "changes.db")

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

// Get returns the cached changes for a key, with ok=false on miss.
func (s *Store) Get(ctx context.Context, key domain.FetchKey) ([]domain.Change, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `
		SELECT changes_json FROM fetches
		WHERE source = ? AND owner = ? AND repo = ? AND from_tag = ? AND to_tag = ?`,
		key.Source, key.Owner, key.Repo, key.From, key.To,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query cache: %w", err)
	}

	var changes []domain.Change
	if err := json.Unmarshal([]byte(payload), &changes); err != nil {
		return nil, false, fmt.Errorf("decode cached changes: %w", err)
	}
	return changes, true, nil
}

// Put stores a complete fetch result, replacing any previous entry for
// the same key.
func (s *Store) Put(ctx context.Context, key domain.FetchKey, changes []domain.Change) error {
	payload, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("encode changes: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO fetches (source, owner, repo, from_tag, to_tag, changes_json)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (source, owner, repo, from_tag, to_tag)
		DO UPDATE SET changes_json = excluded.changes_json, fetched_at = CURRENT_TIMESTAMP`,
		key.Source, key.Owner, key.Repo, key.From, key.To, string(payload),
	)
	if err != nil {
		return fmt.Errorf("store changes: %w", err)
	}
	return nil
}

// Clear removes all cached fetch results.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM fetches"); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

// migrate applies any unapplied .up.sql files in version order.
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
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
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
