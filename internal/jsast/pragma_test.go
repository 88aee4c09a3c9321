package jsast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func firstCall(f *File) *Node {
	return findKind(f, KindCallExpression)
}

func TestPragma_DefaultImportAlias(t *testing.T) {
	f := parse(t, `import R from 'react';
const el = R.createElement('div');`)

	p := NewPragma(f, "", "")
	assert.Equal(t, "R", p.Alias())
	require.NotNil(t, firstCall(f))
	assert.True(t, p.IsCreationCall(firstCall(f)))
}

func TestPragma_NamespaceImport(t *testing.T) {
	f := parse(t, `import * as Lib from 'react';`)

	p := NewPragma(f, "", "")
	assert.Equal(t, "Lib", p.Alias())
}

func TestPragma_NamedImportsAreDestructured(t *testing.T) {
	f := parse(t, `import { createElement, memo as cached } from 'react';
const el = createElement('div');`)

	p := NewPragma(f, "", "")
	assert.True(t, p.IsBoundToReactImport("createElement"))
	assert.True(t, p.IsBoundToReactImport("cached"))
	assert.False(t, p.IsBoundToReactImport("memo"))
	assert.True(t, p.IsCreationCall(firstCall(f)))
}

func TestPragma_BareCreateElementNeedsImport(t *testing.T) {
	f := parse(t, `const el = createElement('div');`)

	p := NewPragma(f, "", "")
	assert.False(t, p.IsCreationCall(firstCall(f)))
}

func TestPragma_RequireForms(t *testing.T) {
	t.Run("Whole module", func(t *testing.T) {
		f := parse(t, `const MyReact = require('react');`)
		p := NewPragma(f, "", "")
		assert.Equal(t, "MyReact", p.Alias())
	})

	t.Run("Destructured", func(t *testing.T) {
		f := parse(t, `const { createElement } = require('react');`)
		p := NewPragma(f, "", "")
		assert.True(t, p.IsBoundToReactImport("createElement"))
	})

	t.Run("Other module ignored", func(t *testing.T) {
		f := parse(t, `const React = require('preact');`)
		p := NewPragma(f, "", "")
		assert.False(t, p.IsBoundToReactImport("createElement"))
	})
}

func TestPragma_FactoryCall(t *testing.T) {
	p := NewPragma(nil, "", "")

	f := parse(t, `const C = createReactClass({});`)
	assert.True(t, p.IsFactoryCall(firstCall(f)))

	f = parse(t, `const C = React.createClass({});`)
	assert.True(t, p.IsFactoryCall(firstCall(f)))

	f = parse(t, `const C = makeClass({});`)
	assert.False(t, p.IsFactoryCall(firstCall(f)))

	custom := NewPragma(nil, "", "makeClass")
	assert.True(t, custom.IsFactoryCall(firstCall(f)))
}

func TestPragma_ConfiguredAliasOverride(t *testing.T) {
	f := parse(t, `const el = Preact.createElement('div');`)

	p := NewPragma(f, "Preact", "")
	assert.Equal(t, "Preact", p.Alias())
	assert.True(t, p.IsCreationCall(firstCall(f)))
}
