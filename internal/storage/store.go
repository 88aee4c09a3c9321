package storage

import (
	"context"

	"reactlint/internal/rules"
)

// CachedResult is one file's lint outcome keyed by content hash, so an
// unchanged file is never re-parsed.
type CachedResult struct {
	Path           string
	Hash           string
	ComponentCount int
	Violations     []rules.Violation
	LintedAtMilli  int64
}

// ResultStore defines operations for persisting per-file lint results.
type ResultStore interface {
	// Get retrieves the cached result for path, or nil when the stored
	// hash does not match.
	Get(ctx context.Context, path, hash string) (*CachedResult, error)

	// Put upserts the result for path.
	Put(ctx context.Context, res *CachedResult) error

	// PruneExcept removes entries for files no longer in the project.
	PruneExcept(ctx context.Context, keep []string) error

	Close() error
}
