/*
Package portablehtml renders Portable Text documents into view-node trees.

Portable Text is a JSON-based rich text format from Sanity.io: an ordered
array of blocks, each either a styled text block with inline spans and marks,
or an arbitrary typed object. This package decodes that format and turns it
into an abstract element tree, with per-name render overrides for block
types, marks, styles and lists.

# Quick Start

Decode and render with the built-in components:

	doc, err := portablehtml.DecodeString(input)
	if err != nil {
		log.Fatal(err)
	}
	node, err := portablehtml.Render(doc)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(node.HTML())

Build documents programmatically:

	block := portablehtml.NewBlock("normal").
		AddSpan("Hello ", "strong").
		AddSpan("world!")
	doc := portablehtml.Document{*block}

# Components

Rendering is configured by a Components value with four namespaces. Every
lookup falls back to a built-in default, so a partial (or absent) registry is
always valid:

	components := portablehtml.Components{
		Types: map[string]portablehtml.Component{
			"youtube": portablehtml.Func(renderYoutube),
		},
		Marks: map[string]portablehtml.Component{
			"highlight": portablehtml.Tag("mark"),
		},
	}
	node, err := portablehtml.Render(doc, portablehtml.WithComponents(components))

A Component is a plain element tag (Tag), a render function (Func), or a
lazily loaded component with a placeholder (Lazy). Registering the Fallback
key ("*") in a namespace overrides how unknown names render.

# Lists

Portable Text stores lists flat: each entry is a top-level block with a
listItem style and a level. Rendering reconstructs the nesting; consecutive
entries at the same style and level share a container, deeper levels nest
inside the previous entry, and a style change at the same level starts an
adjacent sibling list.

# Marks

Span marks apply left to right, each wrapping the result so far: the first
listed mark is innermost. A mark matching a markDefs key resolves the
definition's type through the marks namespace with the definition's fields as
props; unknown marks leave the text unwrapped. Text is never dropped.

# Walkers

Two walkers implement the same (Document, Components) contract. The default
classic walker applies marks in document order. WithCanonicalWalker(true)
selects the canonical subpackage, which nests annotation marks outside
decorators. Both render the same semantic content.

# Error Handling

Content never causes render errors: blocks without a type are skipped,
unknown block types render nothing, unknown marks degrade to bare text, and
a nil document renders an empty fragment. Decode returns path-aware errors:

	doc, err := portablehtml.Decode(reader)
	if err != nil {
		var pErr *portablehtml.Error
		if errors.As(err, &pErr) {
			// pErr.Path shows where the error occurred,
			// e.g. "[2].children[1].marks"
		}
	}

The only render-time error is MissingComponentError, raised when even the
built-in fallback for a namespace is missing. That indicates a broken
built-in table, not bad input.
*/
package portablehtml
