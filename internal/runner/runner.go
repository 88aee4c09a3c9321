package runner

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"reactlint/internal/components"
	"reactlint/internal/config"
	"reactlint/internal/crawler"
	"reactlint/internal/jsast"
	"reactlint/internal/report"
	"reactlint/internal/rules"
	"reactlint/internal/storage"
)

// Runner wires crawling, caching, detection and rules into one lint run.
// The store may be nil, in which case every file is linted fresh.
type Runner struct {
	cfg   *config.Config
	store storage.ResultStore
}

func New(cfg *config.Config, store storage.ResultStore) *Runner {
	return &Runner{cfg: cfg, store: store}
}

// FileResult is the lint outcome for one file.
type FileResult struct {
	Path       string
	Components int
	Violations []rules.Violation
	FromCache  bool
}

// LintProject lints every JS/JSX file under root and returns the
// aggregated report. Files whose content hash matches the cache are
// skipped; stale cache entries are pruned at the end.
func (r *Runner) LintProject(ctx context.Context, root string) (*report.Report, error) {
	rep := &report.Report{Root: root}
	var seen []string

	c := crawler.NewCrawler()
	err := c.ScanProject(root, func(path string) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := r.LintFile(ctx, path)
		if err != nil {
			// A file the parser rejects should not sink the whole run.
			fmt.Fprintf(os.Stderr, "reactlint: skipping %s: %v\n", path, err)
			return nil
		}

		seen = append(seen, path)
		rep.Files++
		rep.Components += res.Components
		rep.Violations = append(rep.Violations, res.Violations...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if r.store != nil {
		if err := r.store.PruneExcept(ctx, seen); err != nil {
			return nil, fmt.Errorf("failed to prune cache: %w", err)
		}
	}

	rules.Sort(rep.Violations)
	rep.GeneratedAtMilli = time.Now().UnixMilli()
	return rep, nil
}

// LintFile lints one file, consulting and updating the cache.
func (r *Runner) LintFile(ctx context.Context, path string) (*FileResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	hash := hashContent(content)
	if r.store != nil {
		cached, err := r.store.Get(ctx, path, hash)
		if err != nil {
			return nil, err
		}
		if cached != nil {
			return &FileResult{
				Path:       path,
				Components: cached.ComponentCount,
				Violations: cached.Violations,
				FromCache:  true,
			}, nil
		}
	}

	res, err := LintSource(ctx, content, path, r.cfg)
	if err != nil {
		return nil, err
	}

	if r.store != nil {
		put := &storage.CachedResult{
			Path:           path,
			Hash:           hash,
			ComponentCount: res.Components,
			Violations:     res.Violations,
			LintedAtMilli:  time.Now().UnixMilli(),
		}
		if err := r.store.Put(ctx, put); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// LintSource parses content and runs detection plus the configured rules
// over it in a single traversal.
func LintSource(ctx context.Context, content []byte, path string, cfg *config.Config) (*FileResult, error) {
	f, err := jsast.Parse(ctx, content, path)
	if err != nil {
		return nil, err
	}

	det := components.NewDetector(f, cfg.DetectorConfig())

	res := &FileResult{Path: path}
	rctx := &rules.Context{
		File:     f,
		Detector: det,
		Report: func(v rules.Violation) {
			res.Violations = append(res.Violations, v)
		},
	}

	w := jsast.NewWalker()
	det.Install(w)
	ruleSet := rules.Defaults(cfg.Rules.MaxComponentsPerFile)
	for _, rule := range ruleSet {
		rule.Install(w, rctx)
	}

	w.Walk(f)

	for _, rule := range ruleSet {
		rule.Finish(rctx)
	}

	res.Components = det.ComponentCount()
	rules.Sort(res.Violations)
	return res, nil
}

func hashContent(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
