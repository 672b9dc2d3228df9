package snipgraph

// isInteractive reports whether a built sub-tree can change after expansion:
// it transitively contains a tabstop, a choice, a live nested sub-snippet, or
// an externally-resolved variable. Mirrors and literal text cannot initiate
// change of their own.
func isInteractive(node GraphNode) bool {
	switch n := node.(type) {
	case *TabstopNode, *ChoiceNode, *DynamicNode:
		return true
	case *ComputedNode:
		return n.external
	case *IndentWrapNode:
		return isInteractive(n.child)
	case *SnippetGroupNode:
		for _, child := range n.Children {
			if isInteractive(child) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// RenderStatic evaluates a non-interactive node to its literal text against
// env. It is side-effect free and restricted to the text/computed subset of
// the graph: interactive node types return an error.
func RenderStatic(node GraphNode, env Environment) ([]string, error) {
	switch n := node.(type) {
	case *TextNode:
		return n.CurrentText(), nil
	case *ComputedNode:
		return n.Resolve(env)
	case *IndentWrapNode:
		return n.Resolve(env, "")
	case *SnippetGroupNode:
		lines := emptyLine()
		for _, child := range n.Children {
			childLines, err := RenderStatic(child, env)
			if err != nil {
				return nil, err
			}
			lines = appendLines(lines, childLines)
		}
		return lines, nil
	default:
		return nil, NewNotStaticError(node.NodeType())
	}
}

// flattenStatic collapses a non-interactive placeholder sub-tree: the
// interactive graph is discarded and replaced by a dynamic node that, on
// first rebuild, renders the sub-tree once against the active Environment
// snapshot and yields a plain editable field pre-filled with that text. The
// render is memoized; later rebuilds return the same field.
func flattenStatic(position int, group *SnippetGroupNode) *DynamicNode {
	node := NewDynamicNode(position, nil)
	var field *TabstopNode
	node.rebuild = func(env Environment) (GraphNode, error) {
		if field == nil {
			lines, err := RenderStatic(group, env)
			if err != nil {
				return nil, err
			}
			field = NewTabstopNode(node.GraphPosition(), lines)
		}
		return field, nil
	}
	return node
}
