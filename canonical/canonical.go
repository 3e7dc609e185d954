// Package canonical renders Portable Text with canonical mark nesting:
// annotation marks (those backed by a markDef) always wrap plain decorators.
// It consumes the raw JSON object shape directly and reports through a
// caller-supplied handler table, so it has no dependency on any particular
// view-node representation.
package canonical

import "encoding/json"

// VNode is the walker's output element: a tag with attributes and children,
// or a text leaf (Tag empty).
type VNode struct {
	Tag   string
	Attrs map[string]any
	Text  string
	Kids  []*VNode
}

// Handlers maps document structure to output nodes. Nil handlers fall back
// to pass-through defaults, so a partially filled table is always usable.
type Handlers struct {
	// Block wraps a text block's rendered spans for the given style.
	Block func(style string, kids []*VNode) *VNode
	// List wraps grouped entries for the given listItem style.
	List func(style string, kids []*VNode) *VNode
	// ListItem wraps one list entry.
	ListItem func(kids []*VNode) *VNode
	// Mark wraps text for a decorator name or annotation type; def carries
	// the annotation's fields and is nil for plain decorators.
	Mark func(name string, def map[string]any, kids []*VNode) *VNode
	// Object renders a custom block or inline object from its payload.
	Object func(typ string, props map[string]any) *VNode
}

// Render walks blocks in order and returns a fragment VNode holding the
// rendered sequence. Blocks without a usable _type are skipped.
func Render(blocks []map[string]any, h Handlers) *VNode {
	h = h.withDefaults()
	return &VNode{Kids: renderBlocks(blocks, h)}
}

func (h Handlers) withDefaults() Handlers {
	if h.Block == nil {
		h.Block = func(_ string, kids []*VNode) *VNode { return &VNode{Tag: "p", Kids: kids} }
	}
	if h.List == nil {
		h.List = func(_ string, kids []*VNode) *VNode { return &VNode{Tag: "ul", Kids: kids} }
	}
	if h.ListItem == nil {
		h.ListItem = func(kids []*VNode) *VNode { return &VNode{Tag: "li", Kids: kids} }
	}
	if h.Mark == nil {
		h.Mark = func(_ string, _ map[string]any, kids []*VNode) *VNode { return &VNode{Kids: kids} }
	}
	if h.Object == nil {
		h.Object = func(string, map[string]any) *VNode { return nil }
	}
	return h
}

type frame struct {
	style string
	level int
	items []*VNode
}

func renderBlocks(blocks []map[string]any, h Handlers) []*VNode {
	var out []*VNode
	var stack []*frame

	attach := func(v *VNode) {
		if v == nil {
			return
		}
		if len(stack) == 0 {
			out = append(out, v)
			return
		}
		top := stack[len(stack)-1]
		if len(top.items) == 0 {
			top.items = append(top.items, h.ListItem(nil))
		}
		if li := top.items[len(top.items)-1]; li != nil {
			li.Kids = append(li.Kids, v)
		}
	}
	closeOne := func() {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		attach(h.List(f.style, f.items))
	}
	closeAll := func() {
		for len(stack) > 0 {
			closeOne()
		}
	}

	for _, m := range blocks {
		typ := str(m, "_type")
		if typ == "" {
			continue
		}

		if typ != "block" {
			closeAll()
			attach(h.Object(typ, payload(m)))
			continue
		}

		style, level := str(m, "listItem"), intOr(m, "level", 1)
		if style == "" {
			closeAll()
			attach(h.Block(styleOf(m), renderSpans(m, h)))
			continue
		}

		for len(stack) > 0 && stack[len(stack)-1].level > level {
			closeOne()
		}
		if len(stack) > 0 && stack[len(stack)-1].level == level && stack[len(stack)-1].style != style {
			closeOne()
		}
		if len(stack) == 0 {
			for l := 1; l <= level; l++ {
				stack = append(stack, &frame{style: style, level: l})
			}
		} else {
			for l := stack[len(stack)-1].level + 1; l <= level; l++ {
				stack = append(stack, &frame{style: style, level: l})
			}
		}

		kids := renderSpans(m, h)
		if s := styleOf(m); s != "normal" {
			if wrapped := h.Block(s, kids); wrapped != nil {
				kids = []*VNode{wrapped}
			}
		}
		top := stack[len(stack)-1]
		top.items = append(top.items, h.ListItem(kids))
	}
	closeAll()

	return out
}

func renderSpans(block map[string]any, h Handlers) []*VNode {
	children, _ := block["children"].([]any)
	defs := markDefs(block)

	var out []*VNode
	for _, c := range children {
		m, ok := c.(map[string]any)
		if !ok {
			continue
		}
		typ := str(m, "_type")
		switch {
		case typ == "":
		case typ != "span":
			if v := h.Object(typ, payload(m)); v != nil {
				out = append(out, v)
			}
		default:
			node := &VNode{Text: str(m, "text")}
			for _, mark := range orderedMarks(m, defs) {
				def := defs[mark]
				name := mark
				if def != nil {
					name = str(def, "_type")
				}
				if wrapped := h.Mark(name, payload(def), []*VNode{node}); wrapped != nil {
					node = wrapped
				}
			}
			out = append(out, node)
		}
	}
	return out
}

// orderedMarks returns the span's marks in application order: decorators
// first (innermost), annotations last (outermost). Order within each group
// follows the document.
func orderedMarks(span map[string]any, defs map[string]map[string]any) []string {
	raw, _ := span["marks"].([]any)
	var decorators, annotations []string
	for _, v := range raw {
		mark, ok := v.(string)
		if !ok {
			continue
		}
		if defs[mark] != nil {
			annotations = append(annotations, mark)
		} else {
			decorators = append(decorators, mark)
		}
	}
	return append(decorators, annotations...)
}

func markDefs(block map[string]any) map[string]map[string]any {
	raw, _ := block["markDefs"].([]any)
	if len(raw) == 0 {
		return nil
	}
	defs := make(map[string]map[string]any, len(raw))
	for _, v := range raw {
		if m, ok := v.(map[string]any); ok {
			if key := str(m, "_key"); key != "" {
				defs[key] = m
			}
		}
	}
	return defs
}

// payload strips structural keys, leaving the fields a renderer should see.
func payload(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch k {
		case "_type", "_key", "children", "markDefs", "style", "listItem", "level", "marks", "text":
		default:
			out[k] = v
		}
	}
	return out
}

func styleOf(m map[string]any) string {
	if s := str(m, "style"); s != "" {
		return s
	}
	return "normal"
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func intOr(m map[string]any, key string, fallback int) int {
	switch v := m[key].(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil && i > 0 {
			return int(i)
		}
	case float64:
		if v > 0 {
			return int(v)
		}
	case int:
		if v > 0 {
			return v
		}
	}
	return fallback
}
