package components

import "reactlint/internal/jsast"

// ReturnOptions tune how a function's return sites are judged.
//
// Strict requires conditional expressions to produce element literals on
// every branch instead of descending into them. IgnoreNull makes a bare
// null return count as non-renderable instead of renderable.
type ReturnOptions struct {
	Strict     bool
	IgnoreNull bool
}

// ReturnsRenderable reports whether fn can yield renderable output: its
// concise body, or any of its return statements, produces an element
// literal, a creation call, or (unless IgnoreNull) null.
func (d *Detector) ReturnsRenderable(fn *jsast.Node, opts ReturnOptions) bool {
	if fn == nil || !jsast.IsFunctionLike(fn.Kind) {
		return false
	}
	if body := conciseBody(fn); body != nil {
		return d.returnExprRenderable(body, opts)
	}
	for _, ret := range returnStatements(fn) {
		if expr := ret.FirstNamedChild(); expr != nil && d.returnExprRenderable(expr, opts) {
			return true
		}
	}
	return false
}

// ReturnsOnlyNull reports whether every return site of fn yields null:
// a concise null body, or return statements that all produce null
// (including ternaries with null on both branches). A function with no
// return sites does not count.
func (d *Detector) ReturnsOnlyNull(fn *jsast.Node) bool {
	if fn == nil || !jsast.IsFunctionLike(fn.Kind) {
		return false
	}
	if body := conciseBody(fn); body != nil {
		return exprIsNull(body)
	}
	rets := returnStatements(fn)
	if len(rets) == 0 {
		return false
	}
	for _, ret := range rets {
		expr := ret.FirstNamedChild()
		if expr == nil || !exprIsNull(expr) {
			return false
		}
	}
	return true
}

// returnExprRenderable judges a single returned expression. Element
// literals and creation calls win immediately; null wins unless ignored;
// conditionals either require element literals on all branches (strict)
// or are searched branch by branch; anything else is searched through its
// named children. Nested function bodies are opaque.
func (d *Detector) returnExprRenderable(expr *jsast.Node, opts ReturnOptions) bool {
	expr = jsast.Unparenthesized(expr)
	if expr == nil {
		return false
	}
	switch {
	case jsast.IsJSXLiteral(expr.Kind):
		return true
	case expr.Kind == jsast.KindNull:
		return !opts.IgnoreNull
	case expr.Kind == jsast.KindCallExpression:
		if d.pragma.IsCreationCall(expr) {
			return true
		}
		return false
	case jsast.IsFunctionLike(expr.Kind):
		return false
	case expr.Kind == jsast.KindTernaryExpression:
		if opts.Strict {
			return d.branchIsElement(expr.ChildByField("consequence")) &&
				d.branchIsElement(expr.ChildByField("alternative"))
		}
		return d.returnExprRenderable(expr.ChildByField("consequence"), opts) ||
			d.returnExprRenderable(expr.ChildByField("alternative"), opts)
	case expr.Kind == jsast.KindBinaryExpression:
		op := binaryOperator(expr)
		if op != "&&" && op != "||" {
			return false
		}
		if opts.Strict {
			return d.branchIsElement(expr.ChildByField("left")) &&
				d.branchIsElement(expr.ChildByField("right"))
		}
		return d.returnExprRenderable(expr.ChildByField("left"), opts) ||
			d.returnExprRenderable(expr.ChildByField("right"), opts)
	case expr.Kind == jsast.KindSequenceExpression:
		return d.returnExprRenderable(expr.LastNamedChild(), opts)
	}
	for _, c := range expr.NamedChildren() {
		if jsast.IsFunctionLike(c.Kind) {
			continue
		}
		if d.returnExprRenderable(c, opts) {
			return true
		}
	}
	return false
}

// branchIsElement is the strict-mode branch test: only a direct element
// literal or creation call qualifies.
func (d *Detector) branchIsElement(expr *jsast.Node) bool {
	expr = jsast.Unparenthesized(expr)
	if expr == nil {
		return false
	}
	return jsast.IsJSXLiteral(expr.Kind) || d.pragma.IsCreationCall(expr)
}

func exprIsNull(expr *jsast.Node) bool {
	expr = jsast.Unparenthesized(expr)
	if expr == nil {
		return false
	}
	if expr.Kind == jsast.KindNull {
		return true
	}
	if expr.Kind == jsast.KindTernaryExpression {
		return exprIsNull(expr.ChildByField("consequence")) &&
			exprIsNull(expr.ChildByField("alternative"))
	}
	return false
}

// conciseBody returns the expression body of an arrow function, or nil
// when the function has a block body.
func conciseBody(fn *jsast.Node) *jsast.Node {
	if fn.Kind != jsast.KindArrowFunction {
		return nil
	}
	body := fn.ChildByField("body")
	if body == nil || body.Kind == jsast.KindStatementBlock {
		return nil
	}
	return body
}

// returnStatements collects the return statements belonging to fn itself,
// not to functions nested inside it.
func returnStatements(fn *jsast.Node) []*jsast.Node {
	var out []*jsast.Node
	var walk func(*jsast.Node)
	walk = func(n *jsast.Node) {
		for _, c := range n.Children {
			if jsast.IsFunctionLike(c.Kind) {
				continue
			}
			if c.Kind == jsast.KindReturnStatement {
				out = append(out, c)
			}
			walk(c)
		}
	}
	if body := fn.ChildByField("body"); body != nil {
		if body.Kind == jsast.KindReturnStatement {
			out = append(out, body)
		} else {
			walk(body)
		}
	}
	return out
}

// binaryOperator returns the operator spelling of a binary expression.
func binaryOperator(expr *jsast.Node) string {
	if op := expr.ChildByField("operator"); op != nil {
		return op.Kind
	}
	return ""
}
