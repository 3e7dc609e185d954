package portablehtml

// Portable Text flattens lists: every list entry is a top-level block tagged
// with a listItem style and a 1-based level. groupBlocks reconstructs the
// nesting in a single left-to-right scan over a stack of open containers.

// listNode is one reconstructed list container.
type listNode struct {
	style string
	level int
	items []*listItem
}

// listItem is one entry in a container. block is nil for entries synthesized
// purely to hold a deeper list. sublists are nested containers that follow
// the entry at a deeper level.
type listItem struct {
	block    *Block
	sublists []*listNode
}

// flow is one top-level renderable: a plain block or a grouped list.
type flow struct {
	block *Block
	list  *listNode
}

func groupBlocks(doc Document) []flow {
	var out []flow
	var stack []*listNode

	// push opens a container at the given level, attaching it either to the
	// output sequence or inside the last item of the enclosing container.
	push := func(style string, level int) {
		ln := &listNode{style: style, level: level}
		if len(stack) == 0 {
			out = append(out, flow{list: ln})
		} else {
			parent := stack[len(stack)-1]
			if len(parent.items) == 0 {
				parent.items = append(parent.items, &listItem{})
			}
			last := parent.items[len(parent.items)-1]
			last.sublists = append(last.sublists, ln)
		}
		stack = append(stack, ln)
	}

	for i := range doc {
		b := &doc[i]
		if !b.isListEntry() {
			// Any non-list block closes every open container.
			stack = stack[:0]
			out = append(out, flow{block: b})
			continue
		}

		style, level := b.ListItem, b.GetLevel()

		for len(stack) > 0 && stack[len(stack)-1].level > level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) > 0 && stack[len(stack)-1].level == level && stack[len(stack)-1].style != style {
			// Style change at the same level starts an adjacent sibling list.
			stack = stack[:len(stack)-1]
			push(style, level)
		}
		if len(stack) == 0 {
			// Entering at level N synthesizes containers for levels 1..N,
			// all in the encountered style.
			for l := 1; l <= level; l++ {
				push(style, l)
			}
		} else if top := stack[len(stack)-1]; top.level < level {
			for l := top.level + 1; l <= level; l++ {
				push(style, l)
			}
		}

		top := stack[len(stack)-1]
		top.items = append(top.items, &listItem{block: b})
	}

	return out
}
