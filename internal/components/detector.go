package components

import "reactlint/internal/jsast"

// Config carries the detection settings a project can override: the
// React import alias, the legacy create-class factory name, and extra
// wrapper functions beyond the built-in memo/forwardRef pair.
type Config struct {
	PragmaAlias string
	Factory     string
	Wrappers    []WrapperSpec
}

// Detector finds React component definitions in one parsed file. All of
// its state lives for a single traversal pass; a fresh Detector is built
// per file and discarded with it.
type Detector struct {
	file     *jsast.File
	pragma   *jsast.Pragma
	reg      *Registry
	wrappers []WrapperSpec
}

func NewDetector(f *jsast.File, cfg Config) *Detector {
	return &Detector{
		file:     f,
		pragma:   jsast.NewPragma(f, cfg.PragmaAlias, cfg.Factory),
		reg:      NewRegistry(),
		wrappers: append(append([]WrapperSpec{}, builtinWrappers...), cfg.Wrappers...),
	}
}

// Registry exposes the candidate registry for rules that track per-node
// facts during the pass.
func (d *Detector) Registry() *Registry { return d.reg }

// Pragma exposes the file's React import tracking.
func (d *Detector) Pragma() *jsast.Pragma { return d.pragma }

// Components returns the confirmed components in document order.
func (d *Detector) Components() []*Candidate { return d.reg.All() }

// ComponentCount returns the number of confirmed components.
func (d *Detector) ComponentCount() int { return d.reg.Count() }

// Install registers the built-in detection handlers on w. Rules that
// share the walker register afterwards, so on any given node the
// detector has already run when rule callbacks see it.
func (d *Detector) Install(w *jsast.Walker) {
	w.OnAny([]string{jsast.KindClassDeclaration, jsast.KindClassExpression}, d.visitClass)
	w.On(jsast.KindFieldDefinition, d.visitClassField)
	w.On(jsast.KindObject, d.visitObject)
	w.OnAny([]string{
		jsast.KindFunctionDeclaration, jsast.KindGeneratorFunctionDeclaration,
		jsast.KindFunctionExpression, jsast.KindFunctionExpressionLegacy,
		jsast.KindGeneratorFunction, jsast.KindMethodDefinition,
	}, d.visitFunction)
	w.On(jsast.KindArrowFunction, d.visitArrow)
	w.On(jsast.KindThis, d.visitThis)
	w.On(jsast.KindReturnStatement, d.visitReturn)
}

func (d *Detector) visitClass(n *jsast.Node) {
	if d.IsES6Component(n) {
		d.reg.Add(n, Confirmed)
	}
}

func (d *Detector) visitClassField(n *jsast.Node) {
	if comp := d.EnclosingComponent(n); comp != nil {
		d.reg.Add(comp, Confirmed)
	}
}

// visitObject confirms the settings object of a create-class factory
// call: createReactClass({ render() {...} }).
func (d *Detector) visitObject(n *jsast.Node) {
	if call := enclosingCall(n); call != nil && d.pragma.IsFactoryCall(call) {
		d.reg.Add(n, Confirmed)
	}
}

func (d *Detector) visitFunction(n *jsast.Node) {
	if comp := d.EnclosingComponent(n); comp != nil {
		d.reg.Add(comp, Maybe)
	}
}

// visitArrow confirms arrows whose concise body is directly renderable;
// anything else an arrow encloses starts as a maybe, to be confirmed by
// a later return-statement visit.
func (d *Detector) visitArrow(n *jsast.Node) {
	comp := d.EnclosingComponent(n)
	if comp == nil {
		return
	}
	if body := conciseBody(n); body != nil && d.returnExprRenderable(body, ReturnOptions{}) {
		d.reg.Add(comp, Confirmed)
		return
	}
	d.reg.Add(comp, Maybe)
}

// visitThis disqualifies function-style candidates that touch instance
// state: a `this.x` access inside a stateless candidate bans it for the
// rest of the pass.
func (d *Detector) visitThis(n *jsast.Node) {
	if n.Parent == nil || n.Parent.Kind != jsast.KindMemberExpression || n.Field != "object" {
		return
	}
	comp := d.enclosingStatelessComponent(n)
	if comp == nil || !jsast.IsFunctionLike(comp.Kind) {
		return
	}
	d.reg.Add(comp, Banned)
}

func (d *Detector) visitReturn(n *jsast.Node) {
	expr := n.FirstNamedChild()
	if expr == nil || !d.returnExprRenderable(expr, ReturnOptions{}) {
		return
	}
	if comp := d.EnclosingComponent(n); comp != nil {
		d.reg.Add(comp, Confirmed)
	}
}

// IsES6Component reports whether class extends the framework base class:
// React.Component, React.PureComponent (through the tracked alias), or a
// bare Component/PureComponent imported from react.
func (d *Detector) IsES6Component(class *jsast.Node) bool {
	heritage := firstClassHeritage(class)
	if heritage == nil {
		return false
	}
	super := jsast.Unparenthesized(heritage.FirstNamedChild())
	if super == nil {
		return false
	}
	switch super.Kind {
	case jsast.KindMemberExpression:
		obj := jsast.Unparenthesized(super.ChildByField("object"))
		prop := super.ChildByField("property")
		return obj != nil && prop != nil &&
			obj.Kind == jsast.KindIdentifier && obj.Text() == d.pragma.Alias() &&
			isBaseClassName(prop.Text())
	case jsast.KindIdentifier:
		name := super.Text()
		return isBaseClassName(name) && d.pragma.IsBoundToReactImport(name)
	}
	return false
}

func isBaseClassName(name string) bool {
	return name == "Component" || name == "PureComponent"
}

func firstClassHeritage(class *jsast.Node) *jsast.Node {
	for _, c := range class.Children {
		if c.Kind == jsast.KindClassHeritage {
			return c
		}
	}
	return nil
}

// EnclosingComponent finds the component definition whose scope contains
// n: the nearest qualifying ES6 class, failing that the settings object
// of an enclosing create-class factory call, failing that the nearest
// function-like scope that classifies as a stateless component.
func (d *Detector) EnclosingComponent(n *jsast.Node) *jsast.Node {
	if c := d.enclosingES6Component(n); c != nil {
		return c
	}
	if c := d.enclosingES5Component(n); c != nil {
		return c
	}
	return d.enclosingStatelessComponent(n)
}

func (d *Detector) enclosingES6Component(n *jsast.Node) *jsast.Node {
	s := d.file.ScopeOf(n).NearestClass()
	if s != nil && d.IsES6Component(s.Owner) {
		return s.Owner
	}
	return nil
}

// enclosingES5Component walks function scopes outward looking for a
// method whose containing object literal is the argument of a factory
// call; that object is the component.
func (d *Detector) enclosingES5Component(n *jsast.Node) *jsast.Node {
	for s := d.file.ScopeOf(n); s != nil; s = s.Parent {
		if !jsast.IsFunctionLike(s.Owner.Kind) {
			continue
		}
		obj := memberObjectOf(s.Owner)
		if obj == nil {
			continue
		}
		if call := enclosingCall(obj); call != nil && d.pragma.IsFactoryCall(call) {
			return obj
		}
	}
	return nil
}

func (d *Detector) enclosingStatelessComponent(n *jsast.Node) *jsast.Node {
	for s := d.file.ScopeOf(n); s != nil; s = s.Parent {
		if !jsast.IsFunctionLike(s.Owner.Kind) {
			continue
		}
		if comp := d.Classify(s.Owner); comp != nil {
			return comp
		}
	}
	return nil
}

// memberObjectOf returns the object literal fn is a member of, either as
// a shorthand method or a pair value.
func memberObjectOf(fn *jsast.Node) *jsast.Node {
	if fn.Kind == jsast.KindMethodDefinition {
		if fn.Parent != nil && fn.Parent.Kind == jsast.KindObject {
			return fn.Parent
		}
		return nil
	}
	outer := jsast.OuterExpression(fn)
	if outer.Parent != nil && outer.Parent.Kind == jsast.KindPair && outer.Field == "value" {
		if obj := outer.Parent.Parent; obj != nil && obj.Kind == jsast.KindObject {
			return obj
		}
	}
	return nil
}
