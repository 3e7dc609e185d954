package portablehtml

// RenderOption configures a render call.
type RenderOption func(*renderConfig)

type renderConfig struct {
	components Components
	canonical  bool
}

// WithComponents supplies registry overrides. Absent namespaces and names
// fall back to the built-in defaults.
func WithComponents(c Components) RenderOption {
	return func(cfg *renderConfig) {
		cfg.components = c
	}
}

// WithCanonicalWalker selects the canonical-nesting walker (the canonical
// subpackage) instead of the classic walker. Both produce the same semantic
// content; they may nest marks differently.
func WithCanonicalWalker(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.canonical = enabled
	}
}

// Render turns a document into a view-node tree. A nil or empty document
// renders an empty fragment. Rendering is a pure function of its inputs:
// malformed or unknown content degrades (skipped blocks, unwrapped text)
// rather than erroring; the only error is a MissingComponentError from a
// broken built-in table.
func Render(doc Document, opts ...RenderOption) (*Node, error) {
	var cfg renderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.canonical {
		return renderCanonical(doc, cfg.components)
	}
	return renderClassic(doc, cfg.components)
}

// renderClassic is the direct walker: group list runs, then dispatch each
// top-level renderable.
func renderClassic(doc Document, c Components) (*Node, error) {
	root := Fragment()
	for _, f := range groupBlocks(doc) {
		var n *Node
		var err error
		if f.list != nil {
			n, err = renderList(f.list, c)
		} else {
			n, err = renderBlock(f.block, c)
		}
		if err != nil {
			return nil, err
		}
		if n != nil {
			root.Children = append(root.Children, n)
		}
	}
	return root, nil
}

// renderBlock dispatches one block. Text blocks resolve their style wrapper;
// custom blocks resolve their type with the raw payload as props and no
// children. Blocks without a type render nothing.
func renderBlock(b *Block, c Components) (*Node, error) {
	if b == nil || b.Type == "" {
		return nil, nil
	}

	if !b.IsText() {
		comp, err := c.resolve(nsTypes, b.Type)
		if err != nil {
			return nil, err
		}
		return comp.render(Props(b.Raw), nil), nil
	}

	kids, err := renderSpans(b, c)
	if err != nil {
		return nil, err
	}
	comp, err := c.resolve(nsStyles, b.GetStyle())
	if err != nil {
		return nil, err
	}
	return comp.render(Props{}, kids), nil
}

func renderSpans(b *Block, c Components) ([]*Node, error) {
	var out []*Node
	for i := range b.Children {
		s := &b.Children[i]
		switch {
		case s.Type == "":
			// malformed inline node, skip
		case s.Type != "span":
			// inline object
			comp, err := c.resolve(nsTypes, s.Type)
			if err != nil {
				return nil, err
			}
			if n := comp.render(Props(s.Raw), nil); n != nil {
				out = append(out, n)
			}
		default:
			var text string
			if s.Text != nil {
				text = *s.Text
			}
			n, err := wrapMarks(TextNode(text), s.Marks, b.MarkDefs, c)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
	}
	return out, nil
}

// renderList materializes one grouped container: the container through the
// lists namespace, each entry through the list-item wrapper, nested
// containers inside the entry that precedes them.
func renderList(l *listNode, c Components) (*Node, error) {
	container, err := c.resolve(nsLists, l.style)
	if err != nil {
		return nil, err
	}
	item := c.listItem()

	var entries []*Node
	for _, it := range l.items {
		var kids []*Node
		if it.block != nil {
			content, err := renderListEntry(it.block, c)
			if err != nil {
				return nil, err
			}
			kids = append(kids, content...)
		}
		for _, sub := range it.sublists {
			n, err := renderList(sub, c)
			if err != nil {
				return nil, err
			}
			if n != nil {
				kids = append(kids, n)
			}
		}
		if n := item.render(Props{}, kids); n != nil {
			entries = append(entries, n)
		}
	}
	return container.render(Props{}, entries), nil
}

// renderListEntry renders a list entry's content. The default style stays
// inline inside the item; any other style keeps its wrapper, so a heading
// list entry renders as <li><h2>...</h2></li>.
func renderListEntry(b *Block, c Components) ([]*Node, error) {
	kids, err := renderSpans(b, c)
	if err != nil {
		return nil, err
	}
	if style := b.GetStyle(); style != "normal" {
		comp, err := c.resolve(nsStyles, style)
		if err != nil {
			return nil, err
		}
		if n := comp.render(Props{}, kids); n != nil {
			return []*Node{n}, nil
		}
	}
	return kids, nil
}
