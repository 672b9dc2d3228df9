package snipgraph

import (
	"sort"

	"go.uber.org/zap"
)

// convertSequence converts one sibling group: each child is converted
// independently threading the shared context, then declared positions are
// compacted in a single pass over the group's output.
func (c *Compiler) convertSequence(cc *ConversionContext, children []SyntaxNode) ([]GraphNode, error) {
	nodes, err := c.convertSiblings(cc, children)
	if err != nil {
		return nil, err
	}
	compacted := compactPositions(nodes)
	if compacted > 0 {
		c.logger.Debug(LogMsgPositionsCompacted, zap.Int(LogFieldCount, compacted))
	}
	return nodes, nil
}

// convertSiblings converts children in order without compacting, so spliced
// snippet children join their enclosing group's compaction pass.
func (c *Compiler) convertSiblings(cc *ConversionContext, children []SyntaxNode) ([]GraphNode, error) {
	nodes := make([]GraphNode, 0, len(children))
	for _, child := range children {
		built, err := c.convertNode(cc, child)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, built...)
	}
	return nodes, nil
}

// convertNode dispatches on the syntax kind. An unrecognized kind is a defect
// in the upstream tree producer and aborts the whole conversion.
func (c *Compiler) convertNode(cc *ConversionContext, node SyntaxNode) ([]GraphNode, error) {
	if node == nil {
		return nil, NewNilSyntaxNodeError()
	}

	switch n := node.(type) {
	case *SyntaxSnippet:
		// Flat splice into the enclosing group; the trailing-text buffer
		// flows across the splice boundary.
		return c.convertSiblings(cc, n.Children)

	case *SyntaxText:
		cc.takeTrailing()
		lines := SplitLines(n.Text)
		cc.setTrailing(lines)
		return []GraphNode{NewTextNode(lines)}, nil

	case *SyntaxChoice:
		cc.takeTrailing()
		return c.buildChoice(cc, n)

	case *SyntaxTabstop:
		cc.takeTrailing()
		return c.buildTabstop(cc, n)

	case *SyntaxPlaceholder:
		cc.takeTrailing()
		return c.buildPlaceholder(cc, n)

	case *SyntaxVariable:
		return c.buildVariable(cc, n, cc.takeTrailing())

	default:
		return nil, NewUnknownKindError(node.Kind())
	}
}

// buildChoice converts a choice. The first occurrence of the position is the
// primary; later occurrences of any kind become mirrors.
func (c *Compiler) buildChoice(cc *ConversionContext, n *SyntaxChoice) ([]GraphNode, error) {
	if primary, ok := cc.lookup(n.Position); ok {
		c.logger.Debug(LogMsgMirrorCreated, zap.Int(LogFieldPosition, n.Position))
		return []GraphNode{newMirrorNode(primary, nil)}, nil
	}

	options := make([][]string, len(n.Options))
	for i, option := range n.Options {
		options[i] = SplitLines(option)
	}
	node := NewChoiceNode(n.Position, options)
	cc.register(n.Position, node)
	c.logger.Debug(LogMsgPrimaryRegistered, zap.Int(LogFieldPosition, n.Position))
	return []GraphNode{node}, nil
}

// buildTabstop converts a tabstop: a fresh TabstopNode for the first
// occurrence of the position, a transformed mirror for every later one.
func (c *Compiler) buildTabstop(cc *ConversionContext, n *SyntaxTabstop) ([]GraphNode, error) {
	if primary, ok := cc.lookup(n.Position); ok {
		c.logger.Debug(LogMsgMirrorCreated, zap.Int(LogFieldPosition, n.Position))
		return []GraphNode{newMirrorNode(primary, n.Transform)}, nil
	}

	node := NewTabstopNode(n.Position, nil)
	cc.register(n.Position, node)
	c.logger.Debug(LogMsgPrimaryRegistered, zap.Int(LogFieldPosition, n.Position))
	return []GraphNode{node}, nil
}

// buildPlaceholder converts a placeholder. A single literal child skips
// sub-tree construction entirely; anything richer is converted into a group
// and either collapsed to a pre-rendered field or handed to the nested
// assembler, depending on interactivity.
func (c *Compiler) buildPlaceholder(cc *ConversionContext, n *SyntaxPlaceholder) ([]GraphNode, error) {
	if primary, ok := cc.lookup(n.Position); ok {
		c.logger.Debug(LogMsgMirrorCreated, zap.Int(LogFieldPosition, n.Position))
		return []GraphNode{newMirrorNode(primary, n.Transform)}, nil
	}

	if len(n.Children) == 1 {
		if text, ok := n.Children[0].(*SyntaxText); ok {
			node := NewTabstopNode(n.Position, SplitLines(text.Text))
			cc.register(n.Position, node)
			c.logger.Debug(LogMsgPrimaryRegistered, zap.Int(LogFieldPosition, n.Position))
			return []GraphNode{node}, nil
		}
	}

	children, err := c.convertSequence(cc, n.Children)
	if err != nil {
		return nil, err
	}
	// Sub-tree text must not leak into the next sibling's indent capture.
	cc.takeTrailing()

	group := NewSnippetGroupNode(children...)
	var node GraphNode
	if isInteractive(group) {
		node = c.config.assembler(n.Position, group)
		c.logger.Debug(LogMsgPlaceholderAssembled, zap.Int(LogFieldPosition, n.Position))
	} else {
		node = flattenStatic(n.Position, group)
		c.logger.Debug(LogMsgPlaceholderCollapsed, zap.Int(LogFieldPosition, n.Position))
	}
	cc.register(n.Position, node)
	return []GraphNode{node}, nil
}

// buildVariable converts a variable reference. Custom resolvers override the
// Environment lookup for their name; recognized environment keys read the
// Environment at render time; unknown names render as a single empty line.
// trailing is the consumed trailing-text buffer used for indent capture.
func (c *Compiler) buildVariable(cc *ConversionContext, n *SyntaxVariable, trailing []string) ([]GraphNode, error) {
	var node GraphNode
	if resolver, ok := cc.resolver(n.Name); ok {
		node = newResolverVariableNode(resolver, n.Transform)
	} else if IsStandardVariable(n.Name) {
		node = newEnvVariableNode(n.Name, n.Transform)
	} else {
		c.logger.Debug(LogMsgVariableUnknown, zap.String(LogFieldName, n.Name))
		node = NewTextNode(emptyLine())
	}

	if indent, ok := capturedIndent(trailing); ok {
		c.logger.Debug(LogMsgIndentCaptured,
			zap.String(LogFieldName, n.Name),
			zap.String(LogFieldIndent, indent))
		node = NewIndentWrapNode(node, indent, n.Name != VarSelectedText)
	}
	return []GraphNode{node}, nil
}

// compactPositions renumbers every positioned node in the group with a
// declared position greater than zero to a contiguous run starting at 1,
// stable on document order. Zero-positioned nodes stay unordered. Returns the
// number of nodes renumbered.
func compactPositions(nodes []GraphNode) int {
	ordered := make([]Positioned, 0, len(nodes))
	for _, node := range nodes {
		if p, ok := node.(Positioned); ok && p.GraphPosition() > 0 {
			ordered = append(ordered, p)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].GraphPosition() < ordered[j].GraphPosition()
	})
	for rank, p := range ordered {
		p.Renumber(rank + 1)
	}
	return len(ordered)
}
