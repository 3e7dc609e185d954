package portablehtml

import "github.com/ptxgo/portablehtml/canonical"

// The canonical walker has its own input and output shapes. This adapter
// feeds it the document in raw object form, translates the four-namespace
// Components registry into its handler table, and converts its node tree
// back. Registry fallbacks carry through unchanged, so the never-fails
// lookup guarantee holds on this path too.

func renderCanonical(doc Document, c Components) (*Node, error) {
	var resolveErr error
	resolve := func(ns namespace, key string) Component {
		comp, err := c.resolve(ns, key)
		if err != nil {
			if resolveErr == nil {
				resolveErr = err
			}
			return Identity()
		}
		return comp
	}

	h := canonical.Handlers{
		Block: func(style string, kids []*canonical.VNode) *canonical.VNode {
			return toVNode(resolve(nsStyles, style).render(Props{}, fromVNodes(kids)))
		},
		List: func(style string, kids []*canonical.VNode) *canonical.VNode {
			return toVNode(resolve(nsLists, style).render(Props{}, fromVNodes(kids)))
		},
		ListItem: func(kids []*canonical.VNode) *canonical.VNode {
			return toVNode(c.listItem().render(Props{}, fromVNodes(kids)))
		},
		Mark: func(name string, def map[string]any, kids []*canonical.VNode) *canonical.VNode {
			n := resolve(nsMarks, name).render(Props(def), fromVNodes(kids))
			if n == nil {
				// never drop text
				return &canonical.VNode{Kids: kids}
			}
			return toVNode(n)
		},
		Object: func(typ string, props map[string]any) *canonical.VNode {
			return toVNode(resolve(nsTypes, typ).render(Props(props), nil))
		},
	}

	v := canonical.Render(documentObjects(doc), h)
	if resolveErr != nil {
		return nil, resolveErr
	}
	return fromVNode(v), nil
}

// documentObjects re-expands the decoded document into the raw object shape
// the canonical walker consumes.
func documentObjects(doc Document) []map[string]any {
	out := make([]map[string]any, 0, len(doc))
	for i := range doc {
		out = append(out, blockObject(&doc[i]))
	}
	return out
}

func blockObject(b *Block) map[string]any {
	m := make(map[string]any, len(b.Raw)+8)
	for k, v := range b.Raw {
		m[k] = v
	}
	m["_type"] = b.Type
	if b.Key != "" {
		m["_key"] = b.Key
	}
	if b.Style != "" {
		m["style"] = b.Style
	}
	if b.ListItem != "" {
		m["listItem"] = b.ListItem
	}
	if b.Level != 0 {
		m["level"] = b.Level
	}
	if b.Children != nil {
		children := make([]any, 0, len(b.Children))
		for i := range b.Children {
			children = append(children, spanObject(&b.Children[i]))
		}
		m["children"] = children
	}
	if b.MarkDefs != nil {
		defs := make([]any, 0, len(b.MarkDefs))
		for i := range b.MarkDefs {
			defs = append(defs, markDefObject(&b.MarkDefs[i]))
		}
		m["markDefs"] = defs
	}
	return m
}

func spanObject(s *Span) map[string]any {
	m := make(map[string]any, len(s.Raw)+3)
	for k, v := range s.Raw {
		m[k] = v
	}
	m["_type"] = s.Type
	if s.Text != nil {
		m["text"] = *s.Text
	}
	if s.Marks != nil {
		marks := make([]any, 0, len(s.Marks))
		for _, mark := range s.Marks {
			marks = append(marks, mark)
		}
		m["marks"] = marks
	}
	return m
}

func markDefObject(md *MarkDef) map[string]any {
	m := make(map[string]any, len(md.Raw)+2)
	for k, v := range md.Raw {
		m[k] = v
	}
	m["_type"] = md.Type
	if md.Key != "" {
		m["_key"] = md.Key
	}
	return m
}

//
// Node shape bridging
//

func toVNode(n *Node) *canonical.VNode {
	if n == nil {
		return nil
	}
	v := &canonical.VNode{Tag: n.Tag, Attrs: n.Props, Text: n.Text}
	for _, c := range n.Children {
		if cv := toVNode(c); cv != nil {
			v.Kids = append(v.Kids, cv)
		}
	}
	return v
}

func fromVNode(v *canonical.VNode) *Node {
	if v == nil {
		return nil
	}
	n := &Node{Tag: v.Tag, Props: Props(v.Attrs), Text: v.Text}
	for _, k := range v.Kids {
		if kn := fromVNode(k); kn != nil {
			n.Children = append(n.Children, kn)
		}
	}
	return n
}

func fromVNodes(vs []*canonical.VNode) []*Node {
	if len(vs) == 0 {
		return nil
	}
	out := make([]*Node, 0, len(vs))
	for _, v := range vs {
		if n := fromVNode(v); n != nil {
			out = append(out, n)
		}
	}
	return out
}
