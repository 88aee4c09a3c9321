package jsast

// Node is one entry in the arena built from a tree-sitter parse tree.
// Nodes are assigned a stable integer index in document (pre-order)
// position, so a parent's index is always smaller than its children's.
// The index doubles as the node's identity for downstream registries.
type Node struct {
	Index    int
	Kind     string
	Field    string // field name within the parent, "" when unnamed
	Start    uint32 // byte offset in the source
	End      uint32
	StartRow uint32 // zero-based line
	Named    bool
	Parent   *Node
	Children []*Node

	file *File
}

// Text returns the source text covered by the node.
func (n *Node) Text() string {
	return string(n.file.Source[n.Start:n.End])
}

// Line returns the one-based line number the node starts on.
func (n *Node) Line() int {
	return int(n.StartRow) + 1
}

// ChildByField returns the first child carrying the given field name.
func (n *Node) ChildByField(field string) *Node {
	for _, c := range n.Children {
		if c.Field == field {
			return c
		}
	}
	return nil
}

// NamedChildren returns the node's named children in document order.
func (n *Node) NamedChildren() []*Node {
	out := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Named {
			out = append(out, c)
		}
	}
	return out
}

// FirstNamedChild returns the first named child, or nil.
func (n *Node) FirstNamedChild() *Node {
	for _, c := range n.Children {
		if c.Named {
			return c
		}
	}
	return nil
}

// LastNamedChild returns the last named child, or nil.
func (n *Node) LastNamedChild() *Node {
	for i := len(n.Children) - 1; i >= 0; i-- {
		if n.Children[i].Named {
			return n.Children[i]
		}
	}
	return nil
}

// HasKeywordChild reports whether an anonymous child with the given
// spelling is present (e.g. "default" inside an export statement).
func (n *Node) HasKeywordChild(keyword string) bool {
	for _, c := range n.Children {
		if !c.Named && c.Kind == keyword {
			return true
		}
	}
	return false
}

// Unparenthesized unwraps any number of enclosing parenthesized
// expressions and returns the inner node.
func Unparenthesized(n *Node) *Node {
	for n != nil && n.Kind == KindParenthesized {
		n = n.FirstNamedChild()
	}
	return n
}

// OuterExpression climbs out of any parenthesized expressions wrapping n
// and returns the outermost wrapper (or n itself when unwrapped). Useful
// when a node's syntactic position is what matters, not its spelling.
func OuterExpression(n *Node) *Node {
	for n != nil && n.Parent != nil && n.Parent.Kind == KindParenthesized {
		n = n.Parent
	}
	return n
}
