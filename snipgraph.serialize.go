package snipgraph

import (
	"gopkg.in/yaml.v3"
)

// DumpYAML renders a compiled node graph as a YAML outline for debugging and
// golden-file inspection. Computed and dynamic nodes are described by their
// declared dependencies; no value function is invoked.
func DumpYAML(nodes []GraphNode) (string, error) {
	outline := make([]map[string]any, len(nodes))
	for i, node := range nodes {
		outline[i] = describeNode(node)
	}
	out, err := yaml.Marshal(outline)
	if err != nil {
		return "", NewSerializeError(err)
	}
	return string(out), nil
}

// describeNode builds the plain data shape for one node.
func describeNode(node GraphNode) map[string]any {
	desc := map[string]any{"type": string(node.NodeType())}

	switch n := node.(type) {
	case *TextNode:
		desc["text"] = JoinLines(n.Lines)
	case *TabstopNode:
		desc["position"] = n.GraphPosition()
		if n.Default() != nil {
			desc["default"] = JoinLines(n.Default())
		}
	case *ChoiceNode:
		desc["position"] = n.GraphPosition()
		options := make([]string, len(n.Options()))
		for i, option := range n.Options() {
			options[i] = JoinLines(option)
		}
		desc["options"] = options
	case *ComputedNode:
		switch {
		case n.Source() != nil:
			desc["depends_on"] = n.Source().String()
		case n.EnvKey() != "":
			desc["env"] = n.EnvKey()
		default:
			desc["resolver"] = true
		}
	case *DynamicNode:
		desc["position"] = n.GraphPosition()
	case *SnippetGroupNode:
		children := make([]map[string]any, len(n.Children))
		for i, child := range n.Children {
			children[i] = describeNode(child)
		}
		desc["children"] = children
	case *IndentWrapNode:
		desc["indent"] = n.Indent()
		desc["insertion_indent"] = n.AddsInsertionIndent()
		desc["child"] = describeNode(n.Child())
	default:
		desc["detail"] = node.String()
	}

	return desc
}
