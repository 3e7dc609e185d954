package portablehtml

// wrapMarks applies a span's mark references around leaf. Marks apply left to
// right, each wrapping the result so far: the first listed mark ends up
// innermost, the last listed mark outermost.
//
// A reference matching a markDef key resolves the definition's type through
// the marks namespace with the definition's fields as props; anything else is
// treated as a plain decorator name with no props. A component that renders
// nothing leaves the current result unwrapped — text is never dropped.
func wrapMarks(leaf *Node, marks []string, defs []MarkDef, c Components) (*Node, error) {
	node := leaf
	for _, mark := range marks {
		name := mark
		var props Props
		if def := findMarkDef(defs, mark); def != nil {
			name = def.Type
			props = Props(def.Raw)
		}

		comp, err := c.resolve(nsMarks, name)
		if err != nil {
			return nil, err
		}
		if wrapped := comp.render(props, []*Node{node}); wrapped != nil {
			node = wrapped
		}
	}
	return node, nil
}

func findMarkDef(defs []MarkDef, key string) *MarkDef {
	for i := range defs {
		if defs[i].Key == key {
			return &defs[i]
		}
	}
	return nil
}
