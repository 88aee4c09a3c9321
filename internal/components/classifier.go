package components

import (
	"unicode"
	"unicode/utf8"

	"reactlint/internal/jsast"
)

// Classify decides whether a function-like node defines a stateless
// component. It returns the node to register (the function itself, or
// the outermost wrapper call when the function is wrapped), or nil.
//
// The checks run in a fixed order and the first one that matches decides;
// reordering them changes which of the overlapping heuristics wins on
// real-world code, so the order is part of the contract.
func (d *Detector) Classify(fn *jsast.Node) *jsast.Node {
	if fn == nil || !jsast.IsFunctionLike(fn.Kind) {
		return nil
	}

	// Function declarations: anonymous or capitalized, returning a
	// renderable shape. Nothing below applies to statement positions.
	if fn.Kind == jsast.KindFunctionDeclaration || fn.Kind == jsast.KindGeneratorFunctionDeclaration {
		name := fn.ChildByField("name")
		if (name == nil || isCapitalized(name.Text())) && d.ReturnsRenderable(fn, ReturnOptions{}) {
			return fn
		}
		return nil
	}

	pos := jsast.OuterExpression(fn)
	parent := pos.Parent

	// Direct default export: `export default () => <div />`.
	if parent != nil && parent.Kind == jsast.KindExportStatement && parent.HasKeywordChild("default") {
		if d.ReturnsRenderable(fn, ReturnOptions{IgnoreNull: true}) {
			return fn
		}
		return nil
	}

	renderableOrNull := d.ReturnsRenderable(fn, ReturnOptions{})

	// Variable-bound: `const Foo = () => <div />`. Lowercase names are
	// rejected outright, not left undecided.
	if parent != nil && parent.Kind == jsast.KindVariableDeclarator {
		name := parent.ChildByField("name")
		if renderableOrNull && name != nil && name.Kind == jsast.KindIdentifier && isCapitalized(name.Text()) {
			return fn
		}
		return nil
	}

	// Returned functions and computed-key property values that yield
	// plain data are factories, not components.
	if parent != nil && (parent.Kind == jsast.KindReturnStatement || isComputedPairValue(pos, parent)) {
		if !d.ReturnsRenderable(fn, ReturnOptions{IgnoreNull: true}) && !d.ReturnsOnlyNull(fn) {
			return nil
		}
	}

	// Wrapped functions: the wrapper call, not the function, is the
	// component — unless the wrapper only forwards an existing one.
	if wrapper := d.OutermostWrapperCall(fn); wrapper != nil && renderableOrNull {
		if inner := enclosingCall(fn); inner == nil || !d.WrapsKnownComponent(inner) {
			return wrapper
		}
	}

	if !d.inAllowedPosition(fn) || !renderableOrNull {
		return nil
	}

	// Ordinary object methods that take arguments and happen to return
	// element-shaped values (template helpers) on objects not known to
	// be components.
	if key, obj := objectMemberKey(fn, parent); key != nil && !isCapitalized(key.Text()) &&
		paramCount(fn) > 0 && obj != nil && d.reg.Get(obj) == nil {
		return nil
	}

	// Shorthand methods with lowercase keys are held to the strict bar:
	// every conditional branch must be an element, null does not count.
	if fn.Kind == jsast.KindMethodDefinition {
		if key := fn.ChildByField("name"); key != nil && !isCapitalized(key.Text()) {
			if d.ReturnsRenderable(fn, ReturnOptions{Strict: true, IgnoreNull: true}) {
				return fn
			}
			return nil
		}
	}

	// Named function expressions follow the capitalization convention.
	if name := fn.ChildByField("name"); name != nil {
		if isCapitalized(name.Text()) {
			return fn
		}
		return nil
	}

	// `obj.prop = function () {...}` with a lowercase property is a
	// plain method; module.exports is the one blessed exception.
	if parent != nil && parent.Kind == jsast.KindAssignmentExpression {
		if left := parent.ChildByField("left"); left != nil && left.Kind == jsast.KindMemberExpression {
			prop := left.ChildByField("property")
			if prop != nil && !isCapitalized(prop.Text()) && !isModuleExports(left) {
				return nil
			}
		}
	}

	return fn
}

// inAllowedPosition reports whether fn sits where a component definition
// conventionally appears: bound to a variable, assigned, a property or
// field value, returned, default-exported, an arrow's concise body, or
// the tail of a sequence expression that itself sits in such a position.
func (d *Detector) inAllowedPosition(fn *jsast.Node) bool {
	if fn.Kind == jsast.KindMethodDefinition {
		// Object shorthand methods only; class methods belong to the
		// class, which is judged by its own heritage.
		p := fn.Parent
		return p != nil && p.Kind == jsast.KindObject
	}
	return allowedExpressionPosition(fn)
}

func allowedExpressionPosition(n *jsast.Node) bool {
	outer := jsast.OuterExpression(n)
	parent := outer.Parent
	if parent == nil {
		return false
	}
	switch parent.Kind {
	case jsast.KindVariableDeclarator:
		return outer.Field == "value"
	case jsast.KindAssignmentExpression:
		return outer.Field == "right"
	case jsast.KindPair, jsast.KindFieldDefinition:
		return outer.Field == "value"
	case jsast.KindReturnStatement:
		return true
	case jsast.KindExportStatement:
		return parent.HasKeywordChild("default")
	case jsast.KindArrowFunction:
		return outer.Field == "body"
	case jsast.KindSequenceExpression:
		return outer == parent.LastNamedChild() && allowedExpressionPosition(parent)
	}
	return false
}

// objectMemberKey returns the lowercase-able key of the object-literal
// member fn defines, together with the object literal itself.
func objectMemberKey(fn, parent *jsast.Node) (key, obj *jsast.Node) {
	switch {
	case parent != nil && parent.Kind == jsast.KindPair:
		k := parent.ChildByField("key")
		if k == nil || k.Kind == jsast.KindComputedPropertyName {
			return nil, nil
		}
		return k, parent.Parent
	case fn.Kind == jsast.KindMethodDefinition && fn.Parent != nil && fn.Parent.Kind == jsast.KindObject:
		return fn.ChildByField("name"), fn.Parent
	}
	return nil, nil
}

func isComputedPairValue(pos, parent *jsast.Node) bool {
	if parent.Kind != jsast.KindPair || pos.Field != "value" {
		return false
	}
	key := parent.ChildByField("key")
	return key != nil && key.Kind == jsast.KindComputedPropertyName
}

func paramCount(fn *jsast.Node) int {
	if p := fn.ChildByField("parameters"); p != nil {
		return len(p.NamedChildren())
	}
	if p := fn.ChildByField("parameter"); p != nil {
		return 1
	}
	return 0
}

func isModuleExports(member *jsast.Node) bool {
	obj := jsast.Unparenthesized(member.ChildByField("object"))
	prop := member.ChildByField("property")
	return obj != nil && prop != nil &&
		obj.Kind == jsast.KindIdentifier && obj.Text() == "module" &&
		prop.Text() == "exports"
}

func isCapitalized(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return r != utf8.RuneError && unicode.IsUpper(r)
}
