package portablehtml

import "sync"

type namespace string

const (
	nsTypes  namespace = "types"
	nsMarks  namespace = "marks"
	nsStyles namespace = "styles"
	nsLists  namespace = "lists"
)

// Fallback is the registry key consulted when no exact entry matches.
// Register it in any namespace to override how unknown names render.
const Fallback = "*"

// ListItemKey is the Lists entry used to wrap individual list entries.
const ListItemKey = "item"

// RenderFunc builds a view node from props and already-rendered children.
// Returning nil renders nothing.
type RenderFunc func(props Props, children []*Node) *Node

// Component is a renderable registry value: a plain element tag, a render
// function, or a lazily loaded component. The zero Component renders its
// children unchanged.
type Component struct {
	tag  string
	fn   RenderFunc
	lazy *lazyComponent
}

type lazyComponent struct {
	load        func() (Component, error)
	placeholder Component

	once   sync.Once
	loaded Component
	failed bool
}

// Tag wraps children in the named element.
func Tag(name string) Component { return Component{tag: name} }

// Func renders through fn.
func Func(fn RenderFunc) Component { return Component{fn: fn} }

// Lazy defers to load on first use. If load fails or returns a zero
// component, placeholder is used instead. load is called at most once.
func Lazy(load func() (Component, error), placeholder Component) Component {
	return Component{lazy: &lazyComponent{load: load, placeholder: placeholder}}
}

// Skip returns a component that renders nothing.
func Skip() Component {
	return Func(func(Props, []*Node) *Node { return nil })
}

// Identity returns a component that renders its children unchanged.
func Identity() Component {
	return Func(func(_ Props, children []*Node) *Node { return Fragment(children...) })
}

func (c Component) isZero() bool { return c.tag == "" && c.fn == nil && c.lazy == nil }

// materialize normalizes the component to a directly invocable one,
// resolving lazy loaders.
func (c Component) materialize() Component {
	if c.lazy == nil {
		return c
	}
	l := c.lazy
	l.once.Do(func() {
		loaded, err := l.load()
		if err != nil || loaded.isZero() {
			l.failed = true
			return
		}
		l.loaded = loaded
	})
	if l.failed {
		return l.placeholder.materialize()
	}
	return l.loaded.materialize()
}

func (c Component) render(props Props, children []*Node) *Node {
	c = c.materialize()
	switch {
	case c.tag != "":
		return Element(c.tag, props, children...)
	case c.fn != nil:
		return c.fn(props, children)
	default:
		return Fragment(children...)
	}
}

// Components maps content names to renderers across four independent
// namespaces. All maps are optional; lookups fall back to built-in defaults.
// A Components value is treated as immutable configuration: pass it to every
// render call rather than sharing a mutated global.
type Components struct {
	Types  map[string]Component // custom block and inline object types
	Marks  map[string]Component // decorators and annotation types
	Styles map[string]Component // text block styles
	Lists  map[string]Component // listItem styles, plus ListItemKey
}

func (c Components) table(ns namespace) map[string]Component {
	switch ns {
	case nsTypes:
		return c.Types
	case nsMarks:
		return c.Marks
	case nsStyles:
		return c.Styles
	case nsLists:
		return c.Lists
	}
	return nil
}

// resolve looks up a component: user exact, user fallback, built-in exact,
// built-in fallback. The built-in tables always carry a fallback, so an error
// here means the defaults themselves were broken.
func (c Components) resolve(ns namespace, key string) (Component, error) {
	if m := c.table(ns); m != nil {
		if comp, ok := m[key]; ok {
			return comp, nil
		}
		if comp, ok := m[Fallback]; ok {
			return comp, nil
		}
	}
	if m := builtin.table(ns); m != nil {
		if comp, ok := m[key]; ok {
			return comp, nil
		}
		if comp, ok := m[Fallback]; ok {
			return comp, nil
		}
	}
	return Component{}, &MissingComponentError{Namespace: string(ns), Key: key}
}

// listItem resolves the wrapper for individual list entries. The Fallback
// entry is deliberately not consulted: it describes unknown list styles, not
// the entry wrapper.
func (c Components) listItem() Component {
	if comp, ok := c.Lists[ListItemKey]; ok {
		return comp
	}
	return builtin.Lists[ListItemKey]
}

var builtin = Components{
	Types: map[string]Component{
		// Unknown block types render nothing rather than failing.
		Fallback: Skip(),
	},
	Marks: map[string]Component{
		"strong":         Tag("strong"),
		"em":             Tag("em"),
		"code":           Tag("code"),
		"underline":      Tag("u"),
		"strike-through": Tag("del"),
		// link renders through a func so only href reaches the attributes.
		"link": Func(func(props Props, children []*Node) *Node {
			attrs := Props{}
			if href, ok := props["href"].(string); ok {
				attrs["href"] = href
			}
			return Element("a", attrs, children...)
		}),
		// Unknown marks must never drop text.
		Fallback: Identity(),
	},
	Styles: map[string]Component{
		"normal":     Tag("p"),
		"h1":         Tag("h1"),
		"h2":         Tag("h2"),
		"h3":         Tag("h3"),
		"h4":         Tag("h4"),
		"h5":         Tag("h5"),
		"h6":         Tag("h6"),
		"blockquote": Tag("blockquote"),
		Fallback:     Tag("p"),
	},
	Lists: map[string]Component{
		"bullet":    Tag("ul"),
		"number":    Tag("ol"),
		ListItemKey: Tag("li"),
		Fallback:    Tag("ul"),
	},
}
