package portablehtml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(text, style string, level int) Block {
	return *NewBlock("normal").AddSpan(text).AsListItem(style, level)
}

func TestGroupBlocksRoundTrip(t *testing.T) {
	// [(bullet,1),(bullet,1),(bullet,2),(bullet,1)] -> one list with three
	// items; the second item holds a nested single-item list.
	doc := Document{
		entry("A", "bullet", 1),
		entry("B", "bullet", 1),
		entry("C", "bullet", 2),
		entry("D", "bullet", 1),
	}

	flows := groupBlocks(doc)
	require.Len(t, flows, 1)
	list := flows[0].list
	require.NotNil(t, list)
	assert.Equal(t, "bullet", list.style)
	require.Len(t, list.items, 3)

	second := list.items[1]
	require.Len(t, second.sublists, 1)
	nested := second.sublists[0]
	assert.Equal(t, 2, nested.level)
	require.Len(t, nested.items, 1)
	assert.Equal(t, "C", nested.items[0].block.GetText())

	assert.Empty(t, list.items[0].sublists)
	assert.Empty(t, list.items[2].sublists)
}

func TestGroupBlocksStyleChangeStartsSiblingList(t *testing.T) {
	doc := Document{
		entry("A", "bullet", 1),
		entry("B", "number", 1),
	}

	flows := groupBlocks(doc)
	require.Len(t, flows, 2)
	assert.Equal(t, "bullet", flows[0].list.style)
	assert.Equal(t, "number", flows[1].list.style)
	assert.Len(t, flows[0].list.items, 1)
	assert.Len(t, flows[1].list.items, 1)
}

func TestGroupBlocksLevelJumpSynthesizesContainers(t *testing.T) {
	doc := Document{entry("deep", "bullet", 3)}

	flows := groupBlocks(doc)
	require.Len(t, flows, 1)

	l1 := flows[0].list
	require.NotNil(t, l1)
	assert.Equal(t, 1, l1.level)
	assert.Equal(t, "bullet", l1.style)
	require.Len(t, l1.items, 1)
	assert.Nil(t, l1.items[0].block)

	require.Len(t, l1.items[0].sublists, 1)
	l2 := l1.items[0].sublists[0]
	assert.Equal(t, 2, l2.level)
	require.Len(t, l2.items, 1)

	require.Len(t, l2.items[0].sublists, 1)
	l3 := l2.items[0].sublists[0]
	assert.Equal(t, 3, l3.level)
	require.Len(t, l3.items, 1)
	assert.Equal(t, "deep", l3.items[0].block.GetText())
}

func TestGroupBlocksNonListBlockClosesStack(t *testing.T) {
	doc := Document{
		entry("A", "bullet", 1),
		*NewBlock("normal").AddSpan("interlude"),
		entry("B", "bullet", 1),
	}

	flows := groupBlocks(doc)
	require.Len(t, flows, 3)
	assert.NotNil(t, flows[0].list)
	assert.NotNil(t, flows[1].block)
	assert.NotNil(t, flows[2].list)
}

func TestGroupBlocksDeepDecreaseClosesToLevel(t *testing.T) {
	doc := Document{
		entry("A", "bullet", 1),
		entry("B", "bullet", 2),
		entry("C", "bullet", 3),
		entry("D", "bullet", 2),
	}

	flows := groupBlocks(doc)
	require.Len(t, flows, 1)
	l1 := flows[0].list
	require.Len(t, l1.items, 1)
	l2 := l1.items[0].sublists[0]
	// B, then D after the level-3 list closed
	require.Len(t, l2.items, 2)
	assert.Equal(t, "B", l2.items[0].block.GetText())
	assert.Equal(t, "D", l2.items[1].block.GetText())
	require.Len(t, l2.items[0].sublists, 1)
	assert.Equal(t, "C", l2.items[0].sublists[0].items[0].block.GetText())
}

func TestGroupBlocksNoLists(t *testing.T) {
	doc := Document{
		*NewBlock("h1").AddSpan("Title"),
		*NewBlock("normal").AddSpan("Body"),
	}

	flows := groupBlocks(doc)
	require.Len(t, flows, 2)
	for _, f := range flows {
		assert.Nil(t, f.list)
		assert.NotNil(t, f.block)
	}
}

func TestGroupBlocksEmpty(t *testing.T) {
	assert.Empty(t, groupBlocks(nil))
	assert.Empty(t, groupBlocks(Document{}))
}

func TestRenderListHTML(t *testing.T) {
	doc := Document{
		entry("A", "bullet", 1),
		entry("B", "bullet", 1),
		entry("C", "bullet", 2),
		entry("D", "bullet", 1),
	}

	node, err := Render(doc)
	require.NoError(t, err)
	assert.Equal(t,
		"<ul><li>A</li><li>B<ul><li>C</li></ul></li><li>D</li></ul>",
		node.HTML())
}

func TestRenderNumberListHTML(t *testing.T) {
	doc := Document{
		entry("first", "number", 1),
		entry("second", "number", 1),
	}

	node, err := Render(doc)
	require.NoError(t, err)
	assert.Equal(t, "<ol><li>first</li><li>second</li></ol>", node.HTML())
}

func TestRenderStyledListEntryKeepsWrapper(t *testing.T) {
	b := entry("Heading item", "bullet", 1)
	b.Style = "h2"
	node, err := Render(Document{b})
	require.NoError(t, err)
	assert.Equal(t, "<ul><li><h2>Heading item</h2></li></ul>", node.HTML())
}

func TestRenderListItemOverride(t *testing.T) {
	doc := Document{entry("A", "bullet", 1)}
	node, err := Render(doc, WithComponents(Components{
		Lists: map[string]Component{
			"bullet":    Tag("menu"),
			ListItemKey: Func(func(_ Props, children []*Node) *Node {
				return Element("li", Props{"class": "entry"}, children...)
			}),
		},
	}))
	require.NoError(t, err)
	assert.Equal(t, `<menu><li class="entry">A</li></menu>`, node.HTML())
}
