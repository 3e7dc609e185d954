package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func block(text string, extra map[string]any) map[string]any {
	m := map[string]any{
		"_type": "block",
		"children": []any{
			map[string]any{"_type": "span", "text": text},
		},
	}
	for k, v := range extra {
		m[k] = v
	}
	return m
}

func texts(v *VNode) []string {
	var out []string
	var walk func(*VNode)
	walk = func(v *VNode) {
		if v == nil {
			return
		}
		if v.Text != "" {
			out = append(out, v.Text)
		}
		for _, k := range v.Kids {
			walk(k)
		}
	}
	walk(v)
	return out
}

func TestRenderDefaults(t *testing.T) {
	root := Render([]map[string]any{block("hello", nil)}, Handlers{})

	require.Len(t, root.Kids, 1)
	p := root.Kids[0]
	assert.Equal(t, "p", p.Tag)
	assert.Equal(t, []string{"hello"}, texts(p))
}

func TestRenderSkipsTypelessBlocks(t *testing.T) {
	root := Render([]map[string]any{
		{"children": []any{}},
		block("kept", nil),
	}, Handlers{})

	assert.Len(t, root.Kids, 1)
}

func TestRenderGroupsLists(t *testing.T) {
	root := Render([]map[string]any{
		block("a", map[string]any{"listItem": "bullet", "level": 1}),
		block("b", map[string]any{"listItem": "bullet", "level": 1}),
		block("c", map[string]any{"listItem": "bullet", "level": 2}),
		block("d", map[string]any{"listItem": "bullet", "level": 1}),
	}, Handlers{})

	require.Len(t, root.Kids, 1)
	list := root.Kids[0]
	assert.Equal(t, "ul", list.Tag)
	require.Len(t, list.Kids, 3)

	// the nested list hangs off the second entry
	second := list.Kids[1]
	require.Len(t, second.Kids, 2)
	nested := second.Kids[1]
	assert.Equal(t, "ul", nested.Tag)
	assert.Equal(t, []string{"c"}, texts(nested))
}

func TestRenderAdjacentListsOnStyleChange(t *testing.T) {
	root := Render([]map[string]any{
		block("a", map[string]any{"listItem": "bullet", "level": 1}),
		block("b", map[string]any{"listItem": "number", "level": 1}),
	}, Handlers{
		List: func(style string, kids []*VNode) *VNode {
			tag := "ul"
			if style == "number" {
				tag = "ol"
			}
			return &VNode{Tag: tag, Kids: kids}
		},
	})

	require.Len(t, root.Kids, 2)
	assert.Equal(t, "ul", root.Kids[0].Tag)
	assert.Equal(t, "ol", root.Kids[1].Tag)
}

func TestRenderNonListBlockClosesLists(t *testing.T) {
	root := Render([]map[string]any{
		block("a", map[string]any{"listItem": "bullet", "level": 1}),
		block("break", nil),
		block("b", map[string]any{"listItem": "bullet", "level": 1}),
	}, Handlers{})

	require.Len(t, root.Kids, 3)
	assert.Equal(t, "ul", root.Kids[0].Tag)
	assert.Equal(t, "p", root.Kids[1].Tag)
	assert.Equal(t, "ul", root.Kids[2].Tag)
}

func TestRenderLevelJumpSynthesizesContainers(t *testing.T) {
	root := Render([]map[string]any{
		block("deep", map[string]any{"listItem": "bullet", "level": 3}),
	}, Handlers{})

	require.Len(t, root.Kids, 1)
	l1 := root.Kids[0]
	assert.Equal(t, "ul", l1.Tag)
	require.Len(t, l1.Kids, 1)
	l2 := l1.Kids[0].Kids[0]
	assert.Equal(t, "ul", l2.Tag)
	l3 := l2.Kids[0].Kids[0]
	assert.Equal(t, "ul", l3.Tag)
	assert.Equal(t, []string{"deep"}, texts(l3))
}

func TestRenderMarkOrdering(t *testing.T) {
	// Decorators apply first (innermost), annotations last (outermost).
	blocks := []map[string]any{{
		"_type": "block",
		"children": []any{map[string]any{
			"_type": "span",
			"text":  "x",
			"marks": []any{"l1", "strong"},
		}},
		"markDefs": []any{map[string]any{
			"_type": "link", "_key": "l1", "href": "/x",
		}},
	}}

	var applied []string
	Render(blocks, Handlers{
		Mark: func(name string, def map[string]any, kids []*VNode) *VNode {
			applied = append(applied, name)
			if name == "link" {
				assert.Equal(t, "/x", def["href"])
			}
			return &VNode{Kids: kids}
		},
	})

	assert.Equal(t, []string{"strong", "link"}, applied)
}

func TestRenderObjectBlocksAndInlineObjects(t *testing.T) {
	blocks := []map[string]any{
		{"_type": "divider", "weight": "thick"},
		{
			"_type": "block",
			"children": []any{
				map[string]any{"_type": "span", "text": "see "},
				map[string]any{"_type": "icon", "name": "star"},
			},
		},
	}

	var objects []string
	root := Render(blocks, Handlers{
		Object: func(typ string, props map[string]any) *VNode {
			objects = append(objects, typ)
			switch typ {
			case "divider":
				assert.Equal(t, "thick", props["weight"])
			case "icon":
				assert.Equal(t, "star", props["name"])
			}
			return &VNode{Tag: "span"}
		},
	})

	assert.Equal(t, []string{"divider", "icon"}, objects)
	assert.Len(t, root.Kids, 2)
}

func TestRenderNilObjectHandlerSkips(t *testing.T) {
	root := Render([]map[string]any{
		{"_type": "widget"},
		block("kept", nil),
	}, Handlers{})

	require.Len(t, root.Kids, 1)
	assert.Equal(t, []string{"kept"}, texts(root.Kids[0]))
}

func TestRenderEmpty(t *testing.T) {
	root := Render(nil, Handlers{})
	assert.Empty(t, root.Kids)
}
