package jsast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalker_RegistrationOrderPerNode(t *testing.T) {
	f := parse(t, `const a = 1; const b = 2;`)

	var events []string
	w := NewWalker()
	w.On(KindVariableDeclarator, func(n *Node) {
		events = append(events, "first:"+n.ChildByField("name").Text())
	})
	w.On(KindVariableDeclarator, func(n *Node) {
		events = append(events, "second:"+n.ChildByField("name").Text())
	})
	w.Walk(f)

	assert.Equal(t, []string{"first:a", "second:a", "first:b", "second:b"}, events)
}

func TestWalker_VisitsInDocumentOrder(t *testing.T) {
	f := parse(t, `function outer() { function inner() {} }`)

	var names []string
	w := NewWalker()
	w.On(KindFunctionDeclaration, func(n *Node) {
		names = append(names, n.ChildByField("name").Text())
	})
	w.Walk(f)

	assert.Equal(t, []string{"outer", "inner"}, names)
}
