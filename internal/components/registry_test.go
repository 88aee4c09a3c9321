package components

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reactlint/internal/jsast"
)

func parseFile(t *testing.T, src string) *jsast.File {
	t.Helper()
	f, err := jsast.Parse(context.Background(), []byte(src), "test.jsx")
	require.NoError(t, err)
	return f
}

func twoNodes(t *testing.T) (*jsast.Node, *jsast.Node) {
	t.Helper()
	f := parseFile(t, `const a = () => 1; const b = () => 2;`)
	var arrows []*jsast.Node
	for _, n := range f.Nodes {
		if n.Kind == jsast.KindArrowFunction {
			arrows = append(arrows, n)
		}
	}
	require.Len(t, arrows, 2)
	return arrows[0], arrows[1]
}

func TestRegistry_MonotonicMax(t *testing.T) {
	n, _ := twoNodes(t)
	r := NewRegistry()

	r.Add(n, Confirmed)
	r.Add(n, Maybe)

	c := r.Get(n)
	require.NotNil(t, c)
	assert.Equal(t, Confirmed, c.Confidence, "lower re-add must not downgrade")
	assert.Equal(t, 1, r.Count())
}

func TestRegistry_BanAbsorbsRegardlessOfOrder(t *testing.T) {
	t.Run("Ban then confirm", func(t *testing.T) {
		n, _ := twoNodes(t)
		r := NewRegistry()
		r.Add(n, Banned)
		r.Add(n, Confirmed)
		assert.Equal(t, Banned, r.Get(n).Confidence)
		assert.Equal(t, 0, r.Count())
	})

	t.Run("Confirm then ban", func(t *testing.T) {
		n, _ := twoNodes(t)
		r := NewRegistry()
		r.Add(n, Confirmed)
		r.Add(n, Banned)
		assert.Equal(t, Banned, r.Get(n).Confidence)
		assert.Equal(t, 0, r.Count())
	})
}

func TestRegistry_FilterInvariant(t *testing.T) {
	a, b := twoNodes(t)
	r := NewRegistry()

	r.Add(a, Maybe)
	r.Add(b, Confirmed)

	all := r.All()
	require.Len(t, all, 1)
	assert.Equal(t, b.Index, all[0].Node.Index)
	assert.Equal(t, 1, r.Count())
	assert.NotNil(t, r.Get(a), "maybes stay tracked, just not exposed")
}

func TestRegistry_AllIsSortedByDocumentOrder(t *testing.T) {
	a, b := twoNodes(t)
	r := NewRegistry()

	r.Add(b, Confirmed)
	r.Add(a, Confirmed)

	all := r.All()
	require.Len(t, all, 2)
	assert.Less(t, all[0].Node.Index, all[1].Node.Index)
}

func TestRegistry_SetMergesIntoNearestAncestor(t *testing.T) {
	f := parseFile(t, `const Foo = () => <div>{x}</div>;`)

	arrow := findNode(f, jsast.KindArrowFunction)
	require.NotNil(t, arrow)
	inner := findNode(f, jsast.KindJSXExpression)
	require.NotNil(t, inner)

	r := NewRegistry()
	r.Add(arrow, Confirmed)

	r.Set(inner, "usesExpressions", true)
	c := r.Get(arrow)
	require.NotNil(t, c)
	assert.Equal(t, true, c.Extra["usesExpressions"])

	// No registered node on the path: silently ignored.
	fresh := NewRegistry()
	fresh.Set(inner, "k", "v")
	assert.Nil(t, fresh.Get(arrow))
}

func findNode(f *jsast.File, kind string) *jsast.Node {
	for _, n := range f.Nodes {
		if n.Kind == kind {
			return n
		}
	}
	return nil
}
