package jsast

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *File {
	t.Helper()
	f, err := Parse(context.Background(), []byte(src), "test.jsx")
	require.NoError(t, err)
	return f
}

func TestParse_ArenaInvariants(t *testing.T) {
	f := parse(t, `
import React from 'react';

function Foo() {
  return <div className="x">hi</div>;
}

const Bar = () => <Foo />;
`)

	require.NotNil(t, f.Root)
	assert.Equal(t, KindProgram, f.Root.Kind)
	assert.Equal(t, 0, f.Root.Index)

	for i, n := range f.Nodes {
		assert.Equal(t, i, n.Index, "arena slot must match node index")
		if n.Parent != nil {
			assert.Less(t, n.Parent.Index, n.Index, "pre-order: parent before child")
		}
	}
}

func TestParse_JSXKinds(t *testing.T) {
	f := parse(t, `const App = () => <main><Widget id="a" />{null}</main>;`)

	kinds := map[string]bool{}
	for _, n := range f.Nodes {
		kinds[n.Kind] = true
	}

	assert.True(t, kinds[KindJSXElement])
	assert.True(t, kinds[KindJSXSelfClosing])
	assert.True(t, kinds[KindArrowFunction])
}

func TestParse_FunctionExpressionKind(t *testing.T) {
	f := parse(t, `const f = function named() { return 1; };`)

	found := false
	for _, n := range f.Nodes {
		if IsFunctionExpressionKind(n.Kind) {
			found = true
			assert.True(t, IsFunctionLike(n.Kind))
		}
	}
	assert.True(t, found, "function expression node should be present")
}

func TestParse_NodeAccessors(t *testing.T) {
	f := parse(t, "const x = 1;\nconst y = (2);\n")

	var decls []*Node
	for _, n := range f.Nodes {
		if n.Kind == KindVariableDeclarator {
			decls = append(decls, n)
		}
	}
	require.Len(t, decls, 2)

	assert.Equal(t, "x", decls[0].ChildByField("name").Text())
	assert.Equal(t, 1, decls[0].Line())
	assert.Equal(t, 2, decls[1].Line())

	paren := decls[1].ChildByField("value")
	require.Equal(t, KindParenthesized, paren.Kind)
	assert.Equal(t, "2", Unparenthesized(paren).Text())
	assert.Same(t, paren, OuterExpression(Unparenthesized(paren)))
}

func TestParse_RejectsOversizedAndBinary(t *testing.T) {
	ctx := context.Background()

	_, err := Parse(ctx, make([]byte, MaxFileSize+1), "big.js")
	assert.Error(t, err)

	_, err = Parse(ctx, []byte{0xff, 0xfe, 0x00}, "bin.js")
	assert.Error(t, err)
}

func TestParse_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Parse(ctx, []byte("const x = 1;"), "x.js")
	assert.Error(t, err)
}
