package rules

import (
	"fmt"

	"reactlint/internal/jsast"
)

// NoThisInFunctionComponent flags `this` usage inside function-style
// components. The detector already bans such candidates from its
// confirmed set; this rule turns the same evidence into a diagnostic.
type NoThisInFunctionComponent struct{}

func (r *NoThisInFunctionComponent) ID() string { return "no-this-in-function-component" }

func (r *NoThisInFunctionComponent) Install(w *jsast.Walker, ctx *Context) {
	w.On(jsast.KindThis, func(n *jsast.Node) {
		if n.Parent == nil || n.Parent.Kind != jsast.KindMemberExpression || n.Field != "object" {
			return
		}
		comp := ctx.Detector.EnclosingComponent(n)
		if comp == nil || !jsast.IsFunctionLike(comp.Kind) {
			return
		}
		prop := ""
		if p := n.Parent.ChildByField("property"); p != nil {
			prop = p.Text()
		}
		ctx.Report(Violation{
			RuleID:  r.ID(),
			File:    ctx.File.Path,
			Line:    n.Line(),
			Message: fmt.Sprintf("function component uses this.%s; function components receive props as arguments", prop),
		})
	})
}

func (r *NoThisInFunctionComponent) Finish(*Context) {}
