package portablehtml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteHTMLEscapesText(t *testing.T) {
	n := Element("p", nil, TextNode("a < b & c"))
	assert.Equal(t, "<p>a &lt; b &amp; c</p>", n.HTML())
}

func TestWriteHTMLEscapesAttributes(t *testing.T) {
	n := Element("a", Props{"href": "/x?a=1&b=2"}, TextNode("go"))
	assert.Equal(t, `<a href="/x?a=1&amp;b=2">go</a>`, n.HTML())
}

func TestWriteHTMLSortsAttributes(t *testing.T) {
	n := Element("img", Props{"src": "x.png", "alt": "pic"})
	assert.Equal(t, `<img alt="pic" src="x.png">`, n.HTML())
}

func TestWriteHTMLVoidElements(t *testing.T) {
	assert.Equal(t, "<br>", Element("br", nil).HTML())
	assert.Equal(t, "<hr>", Element("hr", nil).HTML())
}

func TestWriteHTMLBooleanAttributes(t *testing.T) {
	assert.Equal(t, "<div hidden></div>", Element("div", Props{"hidden": true}).HTML())
	assert.Equal(t, "<div></div>", Element("div", Props{"hidden": false}).HTML())
}

func TestWriteHTMLSkipsCompositeProps(t *testing.T) {
	n := Element("div", Props{"data": map[string]any{"x": 1}, "id": "d1"})
	assert.Equal(t, `<div id="d1"></div>`, n.HTML())
}

func TestWriteHTMLNumericProps(t *testing.T) {
	n := Element("td", Props{"colspan": 2})
	assert.Equal(t, `<td colspan="2"></td>`, n.HTML())
}

func TestFragmentRendersChildrenOnly(t *testing.T) {
	n := Fragment(TextNode("a"), Element("b", nil, TextNode("c")), nil)
	assert.Equal(t, "a<b>c</b>", n.HTML())
	assert.Len(t, n.Children, 2)
}

func TestPlainText(t *testing.T) {
	n := Fragment(
		Element("h1", nil, TextNode("Title")),
		Element("p", nil, TextNode("Hello "), Element("strong", nil, TextNode("world"))),
	)
	assert.Equal(t, "TitleHello world", n.PlainText())
}

func TestNilNode(t *testing.T) {
	var n *Node
	assert.Equal(t, "", n.PlainText())
	assert.NoError(t, n.WriteHTML(nil))
}
