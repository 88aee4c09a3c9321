package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates or opens a SQLite database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS results (
			path TEXT PRIMARY KEY,
			hash TEXT,
			component_count INTEGER,
			violations JSON,
			linted_at INTEGER
		);`,
		`CREATE INDEX IF NOT EXISTS idx_results_hash ON results(hash);`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, path, hash string) (*CachedResult, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT path, hash, component_count, violations, linted_at FROM results WHERE path = ?", path)

	var res CachedResult
	var violations []byte
	if err := row.Scan(&res.Path, &res.Hash, &res.ComponentCount, &violations, &res.LintedAtMilli); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if res.Hash != hash {
		// Stale entry; the caller re-lints and overwrites it.
		return nil, nil
	}
	if len(violations) > 0 {
		if err := json.Unmarshal(violations, &res.Violations); err != nil {
			return nil, fmt.Errorf("failed to decode cached violations for %s: %w", path, err)
		}
	}
	return &res, nil
}

func (s *SQLiteStore) Put(ctx context.Context, res *CachedResult) error {
	violations, err := json.Marshal(res.Violations)
	if err != nil {
		return err
	}
	if res.Violations == nil {
		violations = []byte("[]")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO results (path, hash, component_count, violations, linted_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			hash=excluded.hash,
			component_count=excluded.component_count,
			violations=excluded.violations,
			linted_at=excluded.linted_at
	`, res.Path, res.Hash, res.ComponentCount, violations, res.LintedAtMilli)

	return err
}

// PruneExcept deletes every cached result whose path is not in keep.
func (s *SQLiteStore) PruneExcept(ctx context.Context, keep []string) error {
	if len(keep) == 0 {
		_, err := s.db.ExecContext(ctx, "DELETE FROM results")
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "CREATE TEMP TABLE keep_paths (path TEXT PRIMARY KEY)"); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT OR IGNORE INTO keep_paths (path) VALUES (?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range keep {
		if _, err := stmt.Exec(p); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM results WHERE path NOT IN (SELECT path FROM keep_paths)"); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DROP TABLE keep_paths"); err != nil {
		return err
	}

	return tx.Commit()
}
