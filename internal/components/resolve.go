package components

import "reactlint/internal/jsast"

// ResolveMemberChain follows a plain member chain (Foo.Bar.Baz) from the
// scope binding of its root identifier through nested object literals,
// and returns the candidate registered for the expression the chain lands
// on. Computed access, non-identifier segments and unresolvable roots all
// yield nil: resolution degrades to a miss, never an error.
func (d *Detector) ResolveMemberChain(n *jsast.Node) *Candidate {
	n = jsast.Unparenthesized(n)
	if n == nil {
		return nil
	}

	segments, root := flattenChain(n)
	if root == nil {
		return nil
	}

	v := d.file.ScopeOf(n).Lookup(root.Text())
	if v == nil || v.Init == nil {
		return nil
	}

	target := v.Init
	for _, seg := range segments {
		target = jsast.Unparenthesized(target)
		if target == nil || target.Kind != jsast.KindObject {
			return nil
		}
		target = objectMember(target, seg)
		if target == nil {
			return nil
		}
	}
	return d.reg.Get(jsast.Unparenthesized(target))
}

// flattenChain splits a member chain into its root identifier and the
// property names accessed off it, outermost last. Subscript access or a
// non-identifier root aborts the flatten.
func flattenChain(n *jsast.Node) (segments []string, root *jsast.Node) {
	var names []string
	cur := n
	for cur != nil && cur.Kind == jsast.KindMemberExpression {
		prop := cur.ChildByField("property")
		if prop == nil {
			return nil, nil
		}
		names = append(names, prop.Text())
		cur = jsast.Unparenthesized(cur.ChildByField("object"))
	}
	if cur == nil || cur.Kind != jsast.KindIdentifier {
		return nil, nil
	}
	// names were collected outermost first; reverse into access order.
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return names, cur
}

// objectMember finds the value bound to name inside an object literal:
// a pair's value, or a method definition node itself.
func objectMember(obj *jsast.Node, name string) *jsast.Node {
	for _, m := range obj.NamedChildren() {
		switch m.Kind {
		case jsast.KindPair:
			key := m.ChildByField("key")
			if key != nil && key.Kind != jsast.KindComputedPropertyName && key.Text() == name {
				return m.ChildByField("value")
			}
		case jsast.KindMethodDefinition:
			key := m.ChildByField("name")
			if key != nil && key.Text() == name {
				return m
			}
		}
	}
	return nil
}
