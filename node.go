package portablehtml

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"sort"
	"strings"
)

// Props carries the attributes/fields handed to a component when it renders.
type Props map[string]any

// Node is an abstract view element: a tag with props and children, a text
// leaf (Tag empty, Text set), or a fragment (Tag and Text empty). Node trees
// are what rendering produces; turning them into markup is the host's job,
// with WriteHTML provided as the default host.
type Node struct {
	Tag      string
	Props    Props
	Text     string
	Children []*Node
}

// TextNode creates a text leaf.
func TextNode(text string) *Node { return &Node{Text: text} }

// Element creates an element node. Nil children are dropped.
func Element(tag string, props Props, children ...*Node) *Node {
	n := &Node{Tag: tag, Props: props}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Fragment creates a tagless node that renders as its children.
func Fragment(children ...*Node) *Node { return Element("", nil, children...) }

// IsText reports whether the node is a text leaf.
func (n *Node) IsText() bool { return n != nil && n.Tag == "" && len(n.Children) == 0 && n.Text != "" }

// PlainText concatenates the text leaves under the node.
func (n *Node) PlainText() string {
	if n == nil {
		return ""
	}
	var buf strings.Builder
	n.plainText(&buf)
	return buf.String()
}

func (n *Node) plainText(buf *strings.Builder) {
	buf.WriteString(n.Text)
	for _, c := range n.Children {
		c.plainText(buf)
	}
}

// Elements without closing tags.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// WriteHTML serializes the node tree as HTML. Text and attribute values are
// escaped; attributes are written in sorted order so output is deterministic.
func (n *Node) WriteHTML(w io.Writer) error {
	if n == nil {
		return nil
	}
	if n.Tag == "" {
		if n.Text != "" {
			if _, err := io.WriteString(w, html.EscapeString(n.Text)); err != nil {
				return err
			}
		}
		for _, c := range n.Children {
			if err := c.WriteHTML(w); err != nil {
				return err
			}
		}
		return nil
	}

	if _, err := io.WriteString(w, "<"+n.Tag+attrString(n.Props)+">"); err != nil {
		return err
	}
	if voidElements[n.Tag] {
		return nil
	}
	if n.Text != "" {
		if _, err := io.WriteString(w, html.EscapeString(n.Text)); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := c.WriteHTML(w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+n.Tag+">")
	return err
}

// HTML is a convenience wrapper for WriteHTML.
func (n *Node) HTML() string {
	var buf strings.Builder
	_ = n.WriteHTML(&buf) // strings.Builder never errors
	return buf.String()
}

func attrString(props Props) string {
	if len(props) == 0 {
		return ""
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf strings.Builder
	for _, k := range keys {
		v, ok := attrValue(props[k])
		if !ok {
			continue
		}
		buf.WriteString(" ")
		buf.WriteString(k)
		if v != "" {
			buf.WriteString(`="` + html.EscapeString(v) + `"`)
		}
	}
	return buf.String()
}

// attrValue flattens a prop to an attribute value. Booleans become bare
// attributes when true and disappear when false; composite values are skipped.
func attrValue(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case bool:
		return "", x
	case json.Number:
		return x.String(), true
	case int, int64, float64:
		return fmt.Sprint(x), true
	default:
		return "", false
	}
}
