package jsast

import "strings"

// Pragma tracks how React enters a file: the alias its default or
// namespace import is bound to, the names pulled out of it via named
// imports or destructured requires, and the create-class factory alias.
// Detection logic asks a Pragma whether an identifier or call expression
// actually refers to React rather than matching names textually.
type Pragma struct {
	alias        string
	factory      string
	destructured map[string]bool
}

const (
	defaultAlias   = "React"
	defaultFactory = "createReactClass"
)

// NewPragma scans the file's top-level imports and requires. alias and
// factory override the defaults when non-empty (project configuration).
func NewPragma(f *File, alias, factory string) *Pragma {
	p := &Pragma{
		alias:        defaultAlias,
		factory:      defaultFactory,
		destructured: make(map[string]bool),
	}
	if alias != "" {
		p.alias = alias
	}
	if factory != "" {
		p.factory = factory
	}
	if f != nil {
		p.scan(f)
	}
	return p
}

// Alias returns the identifier the React module object is bound to.
func (p *Pragma) Alias() string { return p.alias }

// FactoryName returns the create-class factory identifier.
func (p *Pragma) FactoryName() string { return p.factory }

// IsBoundToReactImport reports whether name was imported or destructured
// from the react module in this file.
func (p *Pragma) IsBoundToReactImport(name string) bool {
	return p.destructured[name]
}

// IsCreationCall reports whether call is an element creation call:
// React.createElement(...) through the tracked alias, or a bare
// createElement(...) where createElement came from the react import.
func (p *Pragma) IsCreationCall(call *Node) bool {
	if call == nil || call.Kind != KindCallExpression {
		return false
	}
	callee := Unparenthesized(call.ChildByField("function"))
	if callee == nil {
		return false
	}
	switch callee.Kind {
	case KindMemberExpression:
		obj := Unparenthesized(callee.ChildByField("object"))
		prop := callee.ChildByField("property")
		return obj != nil && prop != nil &&
			obj.Kind == KindIdentifier && obj.Text() == p.alias &&
			prop.Text() == "createElement"
	case KindIdentifier:
		return callee.Text() == "createElement" && p.destructured["createElement"]
	}
	return false
}

// IsFactoryCall reports whether call invokes the create-class factory,
// either bare (createReactClass({...})) or through the legacy
// React.createClass member.
func (p *Pragma) IsFactoryCall(call *Node) bool {
	if call == nil || call.Kind != KindCallExpression {
		return false
	}
	callee := Unparenthesized(call.ChildByField("function"))
	if callee == nil {
		return false
	}
	switch callee.Kind {
	case KindIdentifier:
		return callee.Text() == p.factory
	case KindMemberExpression:
		obj := Unparenthesized(callee.ChildByField("object"))
		prop := callee.ChildByField("property")
		return obj != nil && prop != nil &&
			obj.Kind == KindIdentifier && obj.Text() == p.alias &&
			prop.Text() == "createClass"
	}
	return false
}

func (p *Pragma) scan(f *File) {
	for _, n := range f.Nodes {
		switch n.Kind {
		case KindImportStatement:
			p.scanImport(n)
		case KindVariableDeclarator:
			p.scanRequire(n)
		}
	}
}

// scanImport handles `import React from 'react'`,
// `import * as React from 'react'` and `import { useState } from 'react'`.
func (p *Pragma) scanImport(n *Node) {
	if !isReactModule(n.ChildByField("source")) {
		return
	}
	clause := firstChildOfKind(n, KindImportClause)
	if clause == nil {
		return
	}
	for _, c := range clause.Children {
		switch c.Kind {
		case KindIdentifier:
			p.alias = c.Text()
		case KindNamespaceImport:
			if id := lastChildOfKind(c, KindIdentifier); id != nil {
				p.alias = id.Text()
			}
		case KindNamedImports:
			for _, spec := range c.NamedChildren() {
				if spec.Kind != KindImportSpecifier {
					continue
				}
				local := spec.ChildByField("alias")
				if local == nil {
					local = spec.ChildByField("name")
				}
				if local != nil {
					p.destructured[local.Text()] = true
				}
			}
		}
	}
}

// scanRequire handles `const React = require('react')` and
// `const { createElement } = require('react')`.
func (p *Pragma) scanRequire(n *Node) {
	value := Unparenthesized(n.ChildByField("value"))
	if value == nil || value.Kind != KindCallExpression {
		return
	}
	callee := value.ChildByField("function")
	if callee == nil || callee.Kind != KindIdentifier || callee.Text() != "require" {
		return
	}
	args := value.ChildByField("arguments")
	if args == nil || !isReactModule(args.FirstNamedChild()) {
		return
	}
	name := n.ChildByField("name")
	if name == nil {
		return
	}
	switch name.Kind {
	case KindIdentifier:
		p.alias = name.Text()
	case KindObjectPattern:
		for _, id := range patternIdentifiers(name) {
			p.destructured[id.Text()] = true
		}
	}
}

func isReactModule(source *Node) bool {
	if source == nil || source.Kind != KindString {
		return false
	}
	return strings.Trim(source.Text(), `'"`) == "react"
}

func firstChildOfKind(n *Node, kind string) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

func lastChildOfKind(n *Node, kind string) *Node {
	for i := len(n.Children) - 1; i >= 0; i-- {
		if n.Children[i].Kind == kind {
			return n.Children[i]
		}
	}
	return nil
}
