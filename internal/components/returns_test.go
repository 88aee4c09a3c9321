package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reactlint/internal/jsast"
)

// firstFunction returns the first function-like node of the parsed
// source along with a detector bound to the file.
func firstFunction(t *testing.T, src string) (*Detector, *jsast.Node) {
	t.Helper()
	f := parseFile(t, src)
	d := NewDetector(f, Config{})
	for _, n := range f.Nodes {
		if jsast.IsFunctionLike(n.Kind) {
			return d, n
		}
	}
	t.Fatalf("no function-like node in %q", src)
	return nil, nil
}

func TestReturnsRenderable_Basics(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want bool
	}{
		{"JSX return", `function f() { return <div/>; }`, true},
		{"Fragment return", `function f() { return <></>; }`, true},
		{"Concise arrow body", `const f = () => <div/>;`, true},
		{"Plain value", `function f() { return 42; }`, false},
		{"No return", `function f() { doWork(); }`, false},
		{"Conditional return", `function f(x) { if (x) { return <div/>; } return 0; }`, true},
		{"JSX from nested function only", `function f() { const g = () => <div/>; return g; }`, false},
		{"Parenthesized JSX", `function f() { return (<div/>); }`, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, fn := firstFunction(t, tc.src)
			assert.Equal(t, tc.want, d.ReturnsRenderable(fn, ReturnOptions{}))
		})
	}
}

func TestReturnsRenderable_NullHandling(t *testing.T) {
	d, fn := firstFunction(t, `function f() { return null; }`)
	assert.True(t, d.ReturnsRenderable(fn, ReturnOptions{}))
	assert.False(t, d.ReturnsRenderable(fn, ReturnOptions{IgnoreNull: true}))
}

func TestReturnsRenderable_CreationCall(t *testing.T) {
	d, fn := firstFunction(t, `import React from 'react';
function f() { return React.createElement('div'); }`)
	assert.True(t, d.ReturnsRenderable(fn, ReturnOptions{}))

	d, fn = firstFunction(t, `function f() { return somethingElse('div'); }`)
	assert.False(t, d.ReturnsRenderable(fn, ReturnOptions{}))
}

func TestReturnsRenderable_Conditionals(t *testing.T) {
	t.Run("Non-strict descends branches", func(t *testing.T) {
		d, fn := firstFunction(t, `function f(x) { return x ? <div/> : 0; }`)
		assert.True(t, d.ReturnsRenderable(fn, ReturnOptions{}))
	})

	t.Run("Strict requires both branches", func(t *testing.T) {
		d, fn := firstFunction(t, `function f(x) { return x ? <div/> : 0; }`)
		assert.False(t, d.ReturnsRenderable(fn, ReturnOptions{Strict: true}))

		d, fn = firstFunction(t, `function f(x) { return x ? <div/> : <span/>; }`)
		assert.True(t, d.ReturnsRenderable(fn, ReturnOptions{Strict: true}))
	})

	t.Run("Logical operators", func(t *testing.T) {
		d, fn := firstFunction(t, `function f(x) { return x && <div/>; }`)
		assert.True(t, d.ReturnsRenderable(fn, ReturnOptions{}))
		assert.False(t, d.ReturnsRenderable(fn, ReturnOptions{Strict: true}))
	})

	t.Run("Sequence tail decides", func(t *testing.T) {
		d, fn := firstFunction(t, `function f(x) { return (x++, <div/>); }`)
		assert.True(t, d.ReturnsRenderable(fn, ReturnOptions{}))
	})
}

func TestReturnsOnlyNull(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want bool
	}{
		{"Single null return", `function f() { return null; }`, true},
		{"Concise null", `const f = () => null;`, true},
		{"Both ternary branches null", `function f(x) { return x ? null : null; }`, true},
		{"Mixed returns", `function f(x) { if (x) { return null; } return <div/>; }`, false},
		{"No returns", `function f() {}`, false},
		{"Value return", `function f() { return 1; }`, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, fn := firstFunction(t, tc.src)
			assert.Equal(t, tc.want, d.ReturnsOnlyNull(fn))
		})
	}
}

func TestReturnStatements_SkipNestedFunctions(t *testing.T) {
	_, fn := firstFunction(t, `function f() {
  const g = function () { return 1; };
  return 2;
}`)
	rets := returnStatements(fn)
	require.Len(t, rets, 1)
	assert.Contains(t, rets[0].Text(), "return 2")
}
