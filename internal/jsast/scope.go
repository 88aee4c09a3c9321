package jsast

// Scope is one level of the lexical scope tree: the program, a
// function-like construct, a class body, or a statement block. Scopes are
// pure data built once during traversal setup; lookups walk the parent
// links outward.
type Scope struct {
	Owner  *Node // the node introducing the scope
	Parent *Scope
	Vars   map[string]*Variable
}

// Variable is a name declared in a scope together with the node that
// defines it. Init is the concrete defining expression (a declarator's
// value, the class node, the function node) when one exists.
type Variable struct {
	Name string
	Decl *Node
	Init *Node
}

// Lookup resolves name through the scope chain, innermost first.
func (s *Scope) Lookup(name string) *Variable {
	for cur := s; cur != nil; cur = cur.Parent {
		if v, ok := cur.Vars[name]; ok {
			return v
		}
	}
	return nil
}

// NearestFunction returns the innermost scope (including s) owned by a
// function-like node, or nil.
func (s *Scope) NearestFunction() *Scope {
	for cur := s; cur != nil; cur = cur.Parent {
		if IsFunctionLike(cur.Owner.Kind) {
			return cur
		}
	}
	return nil
}

// NearestClass returns the innermost scope (including s) owned by a class,
// or nil.
func (s *Scope) NearestClass() *Scope {
	for cur := s; cur != nil; cur = cur.Parent {
		if IsClassKind(cur.Owner.Kind) {
			return cur
		}
	}
	return nil
}

// ScopeOf returns the scope visible at n: the scope owned by n itself if
// it introduces one, otherwise the scope of the nearest enclosing owner.
func (f *File) ScopeOf(n *Node) *Scope {
	for cur := n; cur != nil; cur = cur.Parent {
		if s, ok := f.scopes[cur.Index]; ok {
			return s
		}
	}
	return f.scopes[f.Root.Index]
}

func introducesScope(kind string) bool {
	return kind == KindProgram || kind == KindStatementBlock ||
		IsFunctionLike(kind) || IsClassKind(kind)
}

// hoistTarget reports whether a scope absorbs var/function declarations
// hoisted out of blocks.
func hoistTarget(kind string) bool {
	return kind == KindProgram || IsFunctionLike(kind)
}

// buildScopes walks the arena once, creating scopes and declaring every
// binding form the classifier cares about: variable declarators, function
// and class declarations, parameters and import bindings. Destructuring
// patterns declare their identifiers without an initializer.
func (f *File) buildScopes() {
	f.scopes = make(map[int]*Scope)

	var walk func(n *Node, enclosing *Scope)
	walk = func(n *Node, enclosing *Scope) {
		scope := enclosing
		if introducesScope(n.Kind) {
			scope = &Scope{Owner: n, Parent: enclosing, Vars: make(map[string]*Variable)}
			f.scopes[n.Index] = scope
		}

		f.declare(n, scope, enclosing)

		for _, c := range n.Children {
			walk(c, scope)
		}
	}
	walk(f.Root, nil)
}

// declare records the bindings introduced by n. The scope a binding lands
// in depends on the form: var and function declarations hoist to the
// nearest function or program scope, everything else binds where it
// appears.
func (f *File) declare(n *Node, scope, enclosing *Scope) {
	switch n.Kind {
	case KindVariableDeclarator:
		target := scope
		if decl := n.Parent; decl != nil && decl.Kind == KindVariableDeclaration {
			target = hoistScope(scope)
		}
		name := n.ChildByField("name")
		value := n.ChildByField("value")
		if name == nil {
			return
		}
		if name.Kind == KindIdentifier {
			bind(target, name.Text(), n, Unparenthesized(value))
			return
		}
		// Destructuring: declare each identifier, with no single
		// defining expression to point at.
		for _, id := range patternIdentifiers(name) {
			bind(target, id.Text(), n, nil)
		}

	case KindFunctionDeclaration, KindGeneratorFunctionDeclaration:
		if name := n.ChildByField("name"); name != nil && enclosing != nil {
			bind(hoistScope(enclosing), name.Text(), n, n)
		}

	case KindClassDeclaration:
		if name := n.ChildByField("name"); name != nil && enclosing != nil {
			bind(enclosing, name.Text(), n, n)
		}

	case KindFormalParameters:
		fn := n.Parent
		if fn == nil || !IsFunctionLike(fn.Kind) {
			return
		}
		fnScope := f.scopes[fn.Index]
		for _, id := range patternIdentifiers(n) {
			bind(fnScope, id.Text(), id, nil)
		}

	case KindArrowFunction:
		// Single-parameter arrows without parentheses: x => ...
		if p := n.ChildByField("parameter"); p != nil && p.Kind == KindIdentifier {
			bind(f.scopes[n.Index], p.Text(), p, nil)
		}

	case KindImportSpecifier:
		id := n.ChildByField("alias")
		if id == nil {
			id = n.ChildByField("name")
		}
		if id != nil && id.Kind == KindIdentifier {
			bind(hoistScope(scope), id.Text(), n, nil)
		}

	case KindImportClause:
		for _, c := range n.Children {
			if c.Kind == KindIdentifier { // default import
				bind(hoistScope(scope), c.Text(), c, nil)
			}
		}

	case KindNamespaceImport:
		for _, c := range n.Children {
			if c.Kind == KindIdentifier {
				bind(hoistScope(scope), c.Text(), c, nil)
			}
		}
	}
}

func hoistScope(s *Scope) *Scope {
	for cur := s; cur != nil; cur = cur.Parent {
		if hoistTarget(cur.Owner.Kind) {
			return cur
		}
	}
	return s
}

func bind(s *Scope, name string, decl, init *Node) {
	if s == nil || name == "" {
		return
	}
	s.Vars[name] = &Variable{Name: name, Decl: decl, Init: init}
}

// patternIdentifiers collects the binding identifiers inside a parameter
// list or destructuring pattern, skipping property keys and default-value
// expressions.
func patternIdentifiers(n *Node) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		switch cur.Kind {
		case KindIdentifier, KindShorthandPropertyPattern:
			out = append(out, cur)
			return
		case KindPairPattern:
			if v := cur.ChildByField("value"); v != nil {
				walk(v)
			}
			return
		}
		for _, c := range cur.Children {
			if c.Named {
				walk(c)
			}
		}
	}
	for _, c := range n.Children {
		if c.Named {
			walk(c)
		}
	}
	return out
}
