package snipgraph

import (
	"fmt"
	"strings"
)

// GraphNodeType identifies the variant of an output graph node.
type GraphNodeType string

// Output graph node types
const (
	GraphNodeText    GraphNodeType = "text"
	GraphNodeTabstop GraphNodeType = "tabstop"
	GraphNodeChoice  GraphNodeType = "choice"
	GraphNodeCompute GraphNodeType = "computed"
	GraphNodeDynamic GraphNodeType = "dynamic"
	GraphNodeGroup   GraphNodeType = "group"
	GraphNodeIndent  GraphNodeType = "indent"
)

// GraphNode is one node of the compiled output graph. The graph is owned by
// the host runtime for the lifetime of one live template instance. Unlike
// SyntaxNode this interface is open: a NestedAssembler may splice in host
// node types of its own.
type GraphNode interface {
	// NodeType returns the node's variant identifier.
	NodeType() GraphNodeType
	// String returns a human-readable representation.
	String() string
}

// Positioned is implemented by graph nodes that take part in tab order.
// The position compactor renumbers these after each sibling group is built.
type Positioned interface {
	GraphNode
	// GraphPosition returns the node's current position. 0 means unordered.
	GraphPosition() int
	// Renumber assigns a compacted position.
	Renumber(position int)
}

// Valued is implemented by graph nodes whose realized text the host runtime
// can read back. Mirrors pull their value from the primary node through this
// interface.
type Valued interface {
	GraphNode
	// CurrentText returns the node's realized text lines.
	CurrentText() []string
}

// TextNode is a literal text block.
type TextNode struct {
	Lines []string
}

// NewTextNode creates a text node over the given lines.
func NewTextNode(lines []string) *TextNode {
	return &TextNode{Lines: lines}
}

// NodeType returns GraphNodeText.
func (n *TextNode) NodeType() GraphNodeType { return GraphNodeText }

// CurrentText returns the literal lines.
func (n *TextNode) CurrentText() []string { return copyLines(n.Lines) }

// String returns a string representation.
func (n *TextNode) String() string {
	return fmt.Sprintf("TextNode{%q}", JoinLines(n.Lines))
}

// TabstopNode is a numbered, user-editable insertion point. Default content
// is nil for bare tabstops and non-nil for collapsed placeholders.
type TabstopNode struct {
	position int
	def      []string
	current  []string
}

// NewTabstopNode creates a tabstop node. def may be nil (no default content).
func NewTabstopNode(position int, def []string) *TabstopNode {
	return &TabstopNode{position: position, def: def}
}

// NodeType returns GraphNodeTabstop.
func (n *TabstopNode) NodeType() GraphNodeType { return GraphNodeTabstop }

// GraphPosition returns the node's position.
func (n *TabstopNode) GraphPosition() int { return n.position }

// Renumber assigns a compacted position.
func (n *TabstopNode) Renumber(position int) { n.position = position }

// Default returns the default content lines, or nil.
func (n *TabstopNode) Default() []string { return n.def }

// SetText records the host's current edit of this field.
func (n *TabstopNode) SetText(lines []string) { n.current = copyLines(lines) }

// CurrentText returns the edited text, falling back to the default content.
func (n *TabstopNode) CurrentText() []string {
	if n.current != nil {
		return copyLines(n.current)
	}
	if n.def != nil {
		return copyLines(n.def)
	}
	return emptyLine()
}

// String returns a string representation.
func (n *TabstopNode) String() string {
	if n.def == nil {
		return fmt.Sprintf("TabstopNode{$%d}", n.position)
	}
	return fmt.Sprintf("TabstopNode{$%d default=%q}", n.position, JoinLines(n.def))
}

// ChoiceNode is a numbered insertion point restricted to an ordered set of
// alternatives. The first alternative is the default selection.
type ChoiceNode struct {
	position int
	options  [][]string
	selected int
}

// NewChoiceNode creates a choice node. Each option is a line sequence.
func NewChoiceNode(position int, options [][]string) *ChoiceNode {
	return &ChoiceNode{position: position, options: options}
}

// NodeType returns GraphNodeChoice.
func (n *ChoiceNode) NodeType() GraphNodeType { return GraphNodeChoice }

// GraphPosition returns the node's position.
func (n *ChoiceNode) GraphPosition() int { return n.position }

// Renumber assigns a compacted position.
func (n *ChoiceNode) Renumber(position int) { n.position = position }

// Options returns the alternatives in source order.
func (n *ChoiceNode) Options() [][]string { return n.options }

// Selected returns the index of the current selection.
func (n *ChoiceNode) Selected() int { return n.selected }

// Select picks the alternative at index.
func (n *ChoiceNode) Select(index int) error {
	if index < 0 || index >= len(n.options) {
		return NewChoiceRangeError(index, len(n.options))
	}
	n.selected = index
	return nil
}

// CurrentText returns the currently selected alternative.
func (n *ChoiceNode) CurrentText() []string {
	if len(n.options) == 0 {
		return emptyLine()
	}
	return copyLines(n.options[n.selected])
}

// String returns a string representation.
func (n *ChoiceNode) String() string {
	opts := make([]string, len(n.options))
	for i, o := range n.options {
		opts[i] = JoinLines(o)
	}
	return fmt.Sprintf("ChoiceNode{$%d |%s|}", n.position, strings.Join(opts, ","))
}

// ComputedNode is a pure-read projection: its value is a function of exactly
// one declared dependency (an environment key, a custom resolver, or one
// source node's realized value) plus an optional transform. The host decides
// when to re-evaluate; resolution is pull-on-read and side-effect free.
type ComputedNode struct {
	source   GraphNode
	envKey   string
	external bool
	resolve  func(env Environment) ([]string, error)
}

// NewComputedNode creates a computed node from a bare resolve function, for
// manual graph composition. Nodes built this way declare no dependencies and
// do not count as externally resolved.
func NewComputedNode(resolve func(env Environment) ([]string, error)) *ComputedNode {
	return &ComputedNode{resolve: resolve}
}

// NodeType returns GraphNodeCompute.
func (n *ComputedNode) NodeType() GraphNodeType { return GraphNodeCompute }

// Source returns the node dependency, or nil for environment-backed nodes.
func (n *ComputedNode) Source() GraphNode { return n.source }

// EnvKey returns the environment dependency, or "" for node-backed mirrors
// and resolver-backed variables.
func (n *ComputedNode) EnvKey() string { return n.envKey }

// Resolve evaluates the node's value against env. Transform failures
// propagate unrecovered.
func (n *ComputedNode) Resolve(env Environment) ([]string, error) {
	return n.resolve(env)
}

// String returns a string representation.
func (n *ComputedNode) String() string {
	if n.source != nil {
		return fmt.Sprintf("ComputedNode{mirror of %s}", n.source.String())
	}
	if n.envKey != "" {
		return fmt.Sprintf("ComputedNode{env %s}", n.envKey)
	}
	return "ComputedNode{resolver}"
}

// newMirrorNode creates the projection for a repeated position: it reads the
// primary's realized value through Valued and applies the occurrence's own
// transform.
func newMirrorNode(primary GraphNode, tr Transform) *ComputedNode {
	return &ComputedNode{
		source: primary,
		resolve: func(env Environment) ([]string, error) {
			return applyTransform(tr, realizedText(primary, env))
		},
	}
}

// newEnvVariableNode creates the projection for a recognized environment key.
func newEnvVariableNode(name string, tr Transform) *ComputedNode {
	return &ComputedNode{
		envKey:   name,
		external: true,
		resolve: func(env Environment) ([]string, error) {
			return applyTransform(tr, lookupEnv(env, name))
		},
	}
}

// newResolverVariableNode creates the projection for a custom-resolved
// variable name.
func newResolverVariableNode(resolver VariableResolver, tr Transform) *ComputedNode {
	return &ComputedNode{
		external: true,
		resolve: func(env Environment) ([]string, error) {
			lines, err := resolver(env)
			if err != nil {
				return nil, err
			}
			if len(lines) == 0 {
				lines = emptyLine()
			}
			return applyTransform(tr, lines)
		},
	}
}

// realizedText reads a node's current value for mirror resolution. Nodes
// without readable state degrade to a single empty line.
func realizedText(node GraphNode, env Environment) []string {
	if v, ok := node.(Valued); ok {
		return v.CurrentText()
	}
	if c, ok := node.(*ComputedNode); ok {
		lines, err := c.Resolve(env)
		if err != nil {
			return emptyLine()
		}
		return lines
	}
	return emptyLine()
}

// DynamicNode defers graph construction to render time: the host calls
// Rebuild when the node first becomes visible (and, for live sub-snippets,
// whenever a dependency changes) and splices the returned node in.
type DynamicNode struct {
	position int
	rebuild  func(env Environment) (GraphNode, error)
	current  []string
}

// NewDynamicNode creates a dynamic node at the given position.
func NewDynamicNode(position int, rebuild func(env Environment) (GraphNode, error)) *DynamicNode {
	return &DynamicNode{position: position, rebuild: rebuild}
}

// NodeType returns GraphNodeDynamic.
func (n *DynamicNode) NodeType() GraphNodeType { return GraphNodeDynamic }

// GraphPosition returns the node's position.
func (n *DynamicNode) GraphPosition() int { return n.position }

// Renumber assigns a compacted position.
func (n *DynamicNode) Renumber(position int) { n.position = position }

// Rebuild produces the node to splice in for the current environment.
func (n *DynamicNode) Rebuild(env Environment) (GraphNode, error) {
	if n.rebuild == nil {
		return nil, NewRebuildUnsetError(n.position)
	}
	return n.rebuild(env)
}

// SetText records the host's current realized text for this node.
func (n *DynamicNode) SetText(lines []string) { n.current = copyLines(lines) }

// CurrentText returns the host-recorded realized text.
func (n *DynamicNode) CurrentText() []string {
	if n.current == nil {
		return emptyLine()
	}
	return copyLines(n.current)
}

// String returns a string representation.
func (n *DynamicNode) String() string {
	return fmt.Sprintf("DynamicNode{$%d}", n.position)
}

// SnippetGroupNode is an ordered sub-sequence of graph nodes, used for
// interactive placeholder sub-trees.
type SnippetGroupNode struct {
	Children []GraphNode
}

// NewSnippetGroupNode creates a group over the given children.
func NewSnippetGroupNode(children ...GraphNode) *SnippetGroupNode {
	return &SnippetGroupNode{Children: children}
}

// NodeType returns GraphNodeGroup.
func (n *SnippetGroupNode) NodeType() GraphNodeType { return GraphNodeGroup }

// String returns a string representation.
func (n *SnippetGroupNode) String() string {
	parts := make([]string, len(n.Children))
	for i, child := range n.Children {
		parts[i] = child.String()
	}
	return fmt.Sprintf("SnippetGroupNode{%s}", strings.Join(parts, ", "))
}

// IndentWrapNode re-indents its child's multi-line rendered value to the
// column where the variable token sat in the source template. The first line
// is left alone: it inherits the insertion point's own indent from the host.
type IndentWrapNode struct {
	child           GraphNode
	indent          string
	insertionIndent bool
}

// NewIndentWrapNode wraps child with the captured indent. When
// insertionIndent is true the host's insertion-point indent is composed in
// front of the captured indent so the result still aligns when expanded at a
// different indentation level.
func NewIndentWrapNode(child GraphNode, indent string, insertionIndent bool) *IndentWrapNode {
	return &IndentWrapNode{child: child, indent: indent, insertionIndent: insertionIndent}
}

// NodeType returns GraphNodeIndent.
func (n *IndentWrapNode) NodeType() GraphNodeType { return GraphNodeIndent }

// Child returns the wrapped node.
func (n *IndentWrapNode) Child() GraphNode { return n.child }

// Indent returns the captured whitespace.
func (n *IndentWrapNode) Indent() string { return n.indent }

// AddsInsertionIndent reports whether the host's insertion-point indent is
// composed with the captured indent. False only for TM_SELECTED_TEXT, whose
// value convention already embeds compatible indentation.
func (n *IndentWrapNode) AddsInsertionIndent() bool { return n.insertionIndent }

// Resolve renders the wrapped value and reapplies the indent to every line
// except the first. insertionIndent is the indent of the expansion site,
// supplied by the host at render time.
func (n *IndentWrapNode) Resolve(env Environment, insertionIndent string) ([]string, error) {
	lines, err := RenderStatic(n.child, env)
	if err != nil {
		return nil, err
	}
	prefix := n.indent
	if n.insertionIndent {
		prefix = insertionIndent + n.indent
	}
	return reindentLines(lines, prefix), nil
}

// String returns a string representation.
func (n *IndentWrapNode) String() string {
	return fmt.Sprintf("IndentWrapNode{indent=%q, child=%s}", n.indent, n.child.String())
}
