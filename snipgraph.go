// Package snipgraph compiles a parsed snippet syntax tree (TextMate/LSP-style
// grammar: literal text, tabstops, placeholders, choices, variables, nested
// transforms) into an executable node graph for an interactive
// template-expansion runtime.
//
// The package does not parse snippet text. An external parser produces the
// SyntaxNode tree; snipgraph turns that tree into a graph of output nodes the
// host runtime can render, jump between, and edit:
//
//	compiler := snipgraph.MustNew()
//	nodes, err := compiler.Compile(snipgraph.NewSnippet(
//	    snipgraph.NewText("func "),
//	    snipgraph.NewPlaceholder(1, nil, snipgraph.NewText("name")),
//	    snipgraph.NewText("() {\n\t"),
//	    snipgraph.NewTabstop(0, nil),
//	    snipgraph.NewText("\n}"),
//	))
//
// # Mirrors
//
// The first occurrence of a tabstop position becomes the primary interactive
// node for that position. Every later occurrence compiles to a ComputedNode
// that reads the primary's realized value at render time, optionally through
// the occurrence's transform. Mirrors never hold state of their own.
//
// # Position compaction
//
// Source numbering may be sparse or duplicated ($1, $1, $5). After each
// sibling group is converted, declared positions greater than zero are
// renumbered to a contiguous run starting at 1, preserving document order.
// Position 0 marks the unordered exit point and is left untouched.
//
// # Static flattening
//
// A placeholder whose sub-tree contains no tabstop, choice, or
// externally-resolved variable can never change after expansion. Such
// sub-trees are not carried as live graphs: they collapse to a single
// editable field whose default content is the sub-tree's rendered text,
// evaluated once against the Environment active at first render.
//
// Interactive placeholder sub-trees are embedded through a host-supplied
// NestedAssembler, keeping the representation of live nested snippets
// swappable:
//
//	compiler := snipgraph.MustNew(
//	    snipgraph.WithNestedAssembler(myAssembler),
//	)
//
// # Variables
//
// Recognized variables (TM_SELECTED_TEXT, TM_FILENAME, ...) compile to
// ComputedNodes that read the host Environment at render time. Custom
// resolvers override the lookup per name to support alternate dialects on the
// same tree shape. Unknown variables render as a single empty line.
//
// Multi-line variable values are re-indented to the column where the variable
// token sat in the source template; see IndentWrapNode.
//
// # Render-time contract
//
// Conversion itself is synchronous and single-threaded. ComputedNode resolve
// functions and DynamicNode rebuild functions run later, driven by the host,
// any number of times and in any order. Each is pure with respect to its
// declared dependencies (one environment key, or one source node's realized
// value, plus an optional transform), so the host may memoize or recompute
// freely.
package snipgraph
