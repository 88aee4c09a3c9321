package components

import "reactlint/internal/jsast"

// PragmaObject marks a wrapper whose object position is the React import
// alias, whatever that alias is in the file under analysis.
const PragmaObject = "pragma"

// WrapperSpec names a higher-order call that yields a component when fed
// one: Property is the callee name, Object the required member object
// ("" for a bare call, PragmaObject for the React alias).
type WrapperSpec struct {
	Property string `yaml:"property" json:"property"`
	Object   string `yaml:"object,omitempty" json:"object,omitempty"`
}

// builtinWrappers are always recognized, in both bare and member form.
var builtinWrappers = []WrapperSpec{
	{Property: "memo", Object: PragmaObject},
	{Property: "forwardRef", Object: PragmaObject},
}

// IsWrapperCall reports whether call invokes a known component wrapper.
// Member calls match the configured object or the React alias; bare calls
// additionally require the name to be bound to the react import, so an
// unrelated local memo() is not mistaken for React.memo.
func (d *Detector) IsWrapperCall(call *jsast.Node) bool {
	if call == nil || call.Kind != jsast.KindCallExpression {
		return false
	}
	callee := jsast.Unparenthesized(call.ChildByField("function"))
	if callee == nil {
		return false
	}
	for _, w := range d.wrappers {
		switch callee.Kind {
		case jsast.KindIdentifier:
			if callee.Text() != w.Property {
				continue
			}
			if w.Object == PragmaObject {
				if d.pragma.IsBoundToReactImport(w.Property) {
					return true
				}
				continue
			}
			if w.Object == "" {
				return true
			}
		case jsast.KindMemberExpression:
			obj := jsast.Unparenthesized(callee.ChildByField("object"))
			prop := callee.ChildByField("property")
			if obj == nil || prop == nil || obj.Kind != jsast.KindIdentifier {
				continue
			}
			if prop.Text() != w.Property {
				continue
			}
			want := w.Object
			if want == PragmaObject {
				want = d.pragma.Alias()
			}
			if want != "" && obj.Text() == want {
				return true
			}
		}
	}
	return false
}

// OutermostWrapperCall climbs from fn through nested wrapper calls
// (memo(forwardRef(fn))) and returns the outermost one, or nil when fn
// is not a wrapper argument.
func (d *Detector) OutermostWrapperCall(fn *jsast.Node) *jsast.Node {
	call := enclosingCall(fn)
	if call == nil || !d.IsWrapperCall(call) {
		return nil
	}
	for {
		outer := enclosingCall(call)
		if outer == nil || !d.IsWrapperCall(outer) {
			return call
		}
		call = outer
	}
}

// WrapsKnownComponent reports whether call is a wrapper invocation whose
// function argument does nothing but render one identified component:
// () => <Foo />, where Foo resolves in scope to a registered,
// unbanned candidate.
func (d *Detector) WrapsKnownComponent(call *jsast.Node) bool {
	if !d.IsWrapperCall(call) {
		return false
	}
	fn := wrappedFunctionArg(call)
	if fn == nil {
		return false
	}
	tag := trivialRenderTarget(fn)
	if tag == nil {
		return false
	}
	v := d.file.ScopeOf(fn).Lookup(tag.Text())
	if v == nil || v.Init == nil {
		return false
	}
	c := d.reg.Get(v.Init)
	return c != nil && !c.banned
}

// WrappedComponentName returns the name of the variable a wrapper call's
// result is assigned to, or "".
func WrappedComponentName(call *jsast.Node) string {
	outer := jsast.OuterExpression(call)
	if outer == nil || outer.Parent == nil {
		return ""
	}
	switch outer.Parent.Kind {
	case jsast.KindVariableDeclarator:
		if name := outer.Parent.ChildByField("name"); name != nil && name.Kind == jsast.KindIdentifier {
			return name.Text()
		}
	case jsast.KindAssignmentExpression:
		if left := outer.Parent.ChildByField("left"); left != nil && left.Kind == jsast.KindIdentifier {
			return left.Text()
		}
	}
	return ""
}

// enclosingCall returns the call expression n is an argument of, or nil.
func enclosingCall(n *jsast.Node) *jsast.Node {
	outer := jsast.OuterExpression(n)
	if outer == nil || outer.Parent == nil || outer.Parent.Kind != jsast.KindArguments {
		return nil
	}
	call := outer.Parent.Parent
	if call == nil || call.Kind != jsast.KindCallExpression {
		return nil
	}
	return call
}

// wrappedFunctionArg returns the sole function-valued argument of a
// wrapper call, unwrapping nested wrapper calls along the way.
func wrappedFunctionArg(call *jsast.Node) *jsast.Node {
	args := call.ChildByField("arguments")
	if args == nil {
		return nil
	}
	arg := jsast.Unparenthesized(args.FirstNamedChild())
	if arg == nil {
		return nil
	}
	if jsast.IsFunctionExpressionKind(arg.Kind) {
		return arg
	}
	if arg.Kind == jsast.KindCallExpression {
		return wrappedFunctionArg(arg)
	}
	return nil
}

// trivialRenderTarget returns the identifier of the component rendered by
// a function whose whole job is `return <Foo />` (or the concise-body
// equivalent), or nil when the body does anything else.
func trivialRenderTarget(fn *jsast.Node) *jsast.Node {
	expr := conciseBody(fn)
	if expr == nil {
		body := fn.ChildByField("body")
		if body == nil || body.Kind != jsast.KindStatementBlock {
			return nil
		}
		stmts := body.NamedChildren()
		if len(stmts) != 1 || stmts[0].Kind != jsast.KindReturnStatement {
			return nil
		}
		expr = stmts[0].FirstNamedChild()
	}
	expr = jsast.Unparenthesized(expr)
	if expr == nil {
		return nil
	}
	var opening *jsast.Node
	switch expr.Kind {
	case jsast.KindJSXSelfClosing:
		opening = expr
	case jsast.KindJSXElement:
		opening = expr.ChildByField("open_tag")
		if opening == nil {
			opening = expr.FirstNamedChild()
		}
	default:
		return nil
	}
	name := opening.ChildByField("name")
	if name == nil || name.Kind != jsast.KindIdentifier {
		return nil
	}
	return name
}
