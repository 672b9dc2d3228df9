package snipgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// renderGraph plays the host runtime: it realizes every node against env and
// flows the pieces together the way an editor would lay them out.
func renderGraph(t *testing.T, nodes []GraphNode, env Environment, insertionIndent string) []string {
	t.Helper()

	lines := []string{""}
	for _, node := range nodes {
		switch n := node.(type) {
		case *TextNode:
			lines = appendLines(lines, n.Lines)
		case *TabstopNode:
			lines = appendLines(lines, n.CurrentText())
		case *ChoiceNode:
			lines = appendLines(lines, n.CurrentText())
		case *ComputedNode:
			resolved, err := n.Resolve(env)
			require.NoError(t, err)
			lines = appendLines(lines, resolved)
		case *IndentWrapNode:
			resolved, err := n.Resolve(env, insertionIndent)
			require.NoError(t, err)
			lines = appendLines(lines, resolved)
		case *DynamicNode:
			built, err := n.Rebuild(env)
			require.NoError(t, err)
			lines = appendLines(lines, renderGraph(t, []GraphNode{built}, env, insertionIndent))
		case *SnippetGroupNode:
			lines = appendLines(lines, renderGraph(t, n.Children, env, insertionIndent))
		default:
			t.Fatalf("unexpected node type %s", node.NodeType())
		}
	}
	return lines
}

func TestCompile_EndToEnd_FunctionSnippet(t *testing.T) {
	// func ${1:name}() {
	// 	${2|a,b|} $1
	// 	<selected text>
	// 	$0
	// }
	tree := NewSnippet(
		NewText("func "),
		NewPlaceholder(1, nil, NewText("name")),
		NewText("() {\n\t"),
		NewChoice(2, "a", "b"),
		NewText(" "),
		NewTabstop(1, nil),
		NewText("\n\t"),
		NewVariable(VarSelectedText, nil),
		NewText("\n\t"),
		NewTabstop(0, nil),
		NewText("\n}"),
	)

	nodes, err := MustNew().Compile(tree)
	require.NoError(t, err)

	env := EnvMap{VarSelectedText: {"x()", "y()"}}
	lines := renderGraph(t, nodes, env, "")
	assert.Equal(t, []string{
		"func name() {",
		"\ta name",
		"\tx()",
		"\ty()",
		"\t",
		"}",
	}, lines)
}

func TestCompile_EndToEnd_EditPropagation(t *testing.T) {
	nodes, err := MustNew().Compile(NewSnippet(
		NewPlaceholder(1, nil, NewText("name")),
		NewText(" := "),
		NewTabstop(1, upperTransform),
	))
	require.NoError(t, err)

	assert.Equal(t, []string{"name := NAME"}, JoinThenSplit(t, nodes))

	nodes[0].(*TabstopNode).SetText([]string{"count"})
	assert.Equal(t, []string{"count := COUNT"}, JoinThenSplit(t, nodes))
}

// JoinThenSplit renders with an empty environment.
func JoinThenSplit(t *testing.T, nodes []GraphNode) []string {
	t.Helper()
	return renderGraph(t, nodes, EnvMap{}, "")
}

func TestCompile_EndToEnd_InteractiveNesting(t *testing.T) {
	// ${1:hello ${2:world}} — the inner placeholder keeps the outer alive.
	nodes, err := MustNew().Compile(NewSnippet(
		NewPlaceholder(1, nil,
			NewText("hello "),
			NewPlaceholder(2, nil, NewText("world")),
		),
	))
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	outer := nodes[0].(*DynamicNode)
	built, err := outer.Rebuild(EnvMap{})
	require.NoError(t, err)
	group := built.(*SnippetGroupNode)

	// The inner placeholder is a plain pre-filled field, renumbered within
	// its group.
	inner := group.Children[1].(*TabstopNode)
	assert.Equal(t, 1, inner.GraphPosition())
	assert.Equal(t, []string{"world"}, inner.Default())

	inner.SetText([]string{"gopher"})
	assert.Equal(t, []string{"hello gopher"}, renderGraph(t, nodes, EnvMap{}, ""))
}

func TestCompile_EndToEnd_StaticPlaceholderSnapshot(t *testing.T) {
	nodes, err := MustNew().Compile(NewSnippet(
		NewPlaceholder(1, nil, NewText("pad-"), NewVariable("NO_SUCH", nil), NewText("-pad")),
	))
	require.NoError(t, err)

	lines := renderGraph(t, nodes, EnvMap{}, "")
	assert.Equal(t, []string{"pad--pad"}, lines)
}
