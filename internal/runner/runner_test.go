package runner

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reactlint/internal/config"
	"reactlint/internal/storage"
)

func TestLintProject_Fixture(t *testing.T) {
	cfg := config.Default()
	r := New(cfg, nil)

	rep, err := r.LintProject(context.Background(), filepath.Join("testdata", "project"))
	require.NoError(t, err)

	assert.Equal(t, 3, rep.Files)
	assert.Equal(t, 2, rep.Components, "App and Header; the this-using Profile is banned")

	require.Len(t, rep.Violations, 1)
	v := rep.Violations[0]
	assert.Equal(t, "no-this-in-function-component", v.RuleID)
	assert.Contains(t, v.File, "legacy.js")
	assert.Equal(t, 2, v.Line)
}

func TestLintProject_UsesCache(t *testing.T) {
	cfg := config.Default()
	store, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer store.Close()

	r := New(cfg, store)
	ctx := context.Background()
	root := filepath.Join("testdata", "project")

	first, err := r.LintProject(ctx, root)
	require.NoError(t, err)

	second, err := r.LintProject(ctx, root)
	require.NoError(t, err)

	assert.Equal(t, first.Files, second.Files)
	assert.Equal(t, first.Components, second.Components)
	assert.Equal(t, first.Violations, second.Violations)

	res, err := r.LintFile(ctx, filepath.Join(root, "src", "App.jsx"))
	require.NoError(t, err)
	assert.True(t, res.FromCache)
	assert.Equal(t, 2, res.Components)
}

func TestLintSource_MaxComponentsRule(t *testing.T) {
	cfg := config.Default()
	cfg.Rules.MaxComponentsPerFile = 1

	src := []byte(`const A = () => <div/>;
const B = () => <span/>;`)

	res, err := LintSource(context.Background(), src, "two.jsx", cfg)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Components)
	require.Len(t, res.Violations, 1)
	assert.Equal(t, "max-components-per-file", res.Violations[0].RuleID)
}

func TestLintSource_ParseFailure(t *testing.T) {
	_, err := LintSource(context.Background(), []byte{0xff, 0xfe}, "bad.js", config.Default())
	assert.Error(t, err)
}
