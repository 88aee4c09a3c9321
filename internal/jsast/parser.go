package jsast

import (
	"context"
	"fmt"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// File is the result of parsing a single JavaScript/JSX source file:
// the arena of nodes, the lexical scope tree, and the source bytes they
// reference. A File is immutable once built and safe for concurrent reads.
type File struct {
	Path   string
	Source []byte
	Root   *Node
	Nodes  []*Node // arena, indexed by Node.Index, in pre-order

	scopes map[int]*Scope // keyed by owner node index
}

// MaxFileSize is the largest source file Parse will accept.
const MaxFileSize = 10 * 1024 * 1024

// Parse parses JavaScript/JSX source into an arena-backed syntax tree with
// lexical scopes attached. The tree-sitter tree is released before
// returning; all later work happens on the arena.
func Parse(ctx context.Context, content []byte, path string) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse canceled before start: %w", err)
	}
	if len(content) > MaxFileSize {
		return nil, fmt.Errorf("file %s exceeds %d bytes", path, MaxFileSize)
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("file %s is not valid UTF-8", path)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed for %s: %w", path, err)
	}
	defer tree.Close()

	f := &File{
		Path:   path,
		Source: content,
		Nodes:  make([]*Node, 0, 256),
	}
	f.Root = f.build(tree.RootNode(), nil, "")
	f.buildScopes()

	return f, nil
}

// build copies one tree-sitter node (and its subtree) into the arena.
// Index assignment follows the pre-order visit, so document order and
// index order coincide.
func (f *File) build(ts *sitter.Node, parent *Node, field string) *Node {
	n := &Node{
		Index:    len(f.Nodes),
		Kind:     ts.Type(),
		Field:    field,
		Start:    ts.StartByte(),
		End:      ts.EndByte(),
		StartRow: ts.StartPoint().Row,
		Named:    ts.IsNamed(),
		Parent:   parent,
		file:     f,
	}
	f.Nodes = append(f.Nodes, n)

	count := int(ts.ChildCount())
	if count > 0 {
		n.Children = make([]*Node, 0, count)
		for i := 0; i < count; i++ {
			child := ts.Child(i)
			if child == nil {
				continue
			}
			n.Children = append(n.Children, f.build(child, n, ts.FieldNameForChild(i)))
		}
	}
	return n
}
