package snipgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholder_SingleLiteralChild_SkipsSubTree(t *testing.T) {
	nodes, err := MustNew().Compile(NewPlaceholder(1, nil, NewText("todo")))
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	// A plain editable field pre-filled with the literal, nothing nested.
	tabstop := nodes[0].(*TabstopNode)
	assert.Equal(t, 1, tabstop.GraphPosition())
	assert.Equal(t, []string{"todo"}, tabstop.Default())
	assert.Equal(t, []string{"todo"}, tabstop.CurrentText())
}

func TestPlaceholder_StaticSubTree_Collapses(t *testing.T) {
	nodes, err := MustNew().Compile(NewPlaceholder(1, nil,
		NewText("a"),
		NewVariable("FOO_BAR", nil),
		NewText("b"),
	))
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	dynamic := nodes[0].(*DynamicNode)
	assert.Equal(t, 1, dynamic.GraphPosition())

	built, err := dynamic.Rebuild(nil)
	require.NoError(t, err)

	// Unknown variables render as nothing; the sub-tree froze to "ab".
	field := built.(*TabstopNode)
	assert.Equal(t, 1, field.GraphPosition())
	assert.Equal(t, []string{"ab"}, field.Default())
}

func TestPlaceholder_StaticSubTree_FirstRenderIsMemoized(t *testing.T) {
	nodes, err := MustNew().Compile(NewPlaceholder(1, nil,
		NewText("x"),
		NewText("y"),
	))
	require.NoError(t, err)

	dynamic := nodes[0].(*DynamicNode)
	first, err := dynamic.Rebuild(nil)
	require.NoError(t, err)
	second, err := dynamic.Rebuild(nil)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestPlaceholder_StaticSubTree_MultiLine(t *testing.T) {
	nodes, err := MustNew().Compile(NewPlaceholder(2, nil,
		NewText("one\ntwo"),
		NewText(" end"),
	))
	require.NoError(t, err)

	dynamic := nodes[0].(*DynamicNode)
	built, err := dynamic.Rebuild(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two end"}, built.(*TabstopNode).Default())
}

func TestPlaceholder_NestedTabstop_StaysInteractive(t *testing.T) {
	nodes, err := MustNew().Compile(NewPlaceholder(1, nil,
		NewText("func "),
		NewTabstop(2, nil),
	))
	require.NoError(t, err)

	dynamic := nodes[0].(*DynamicNode)
	built, err := dynamic.Rebuild(nil)
	require.NoError(t, err)

	group := built.(*SnippetGroupNode)
	require.Len(t, group.Children, 2)
	assert.IsType(t, &TextNode{}, group.Children[0])

	// The nested tabstop is live and compacted within its own group.
	nested := group.Children[1].(*TabstopNode)
	assert.Equal(t, 1, nested.GraphPosition())
}

func TestPlaceholder_EnvironmentVariable_StaysInteractive(t *testing.T) {
	nodes, err := MustNew().Compile(NewPlaceholder(1, nil,
		NewVariable(VarSelectedText, nil),
	))
	require.NoError(t, err)

	// Externally-resolved variables keep the sub-tree live.
	assert.IsType(t, &DynamicNode{}, nodes[0])
	built, err := nodes[0].(*DynamicNode).Rebuild(nil)
	require.NoError(t, err)
	assert.IsType(t, &SnippetGroupNode{}, built)
}

func TestPlaceholder_NestedChoice_StaysInteractive(t *testing.T) {
	compiled, err := MustNew().Compile(NewPlaceholder(1, nil,
		NewChoice(2, "a", "b"),
	))
	require.NoError(t, err)

	built, err := compiled[0].(*DynamicNode).Rebuild(nil)
	require.NoError(t, err)
	assert.IsType(t, &ChoiceNode{}, built.(*SnippetGroupNode).Children[0])
}

func TestPlaceholder_MirrorOnlySubTree_Collapses(t *testing.T) {
	nodes, err := MustNew().Compile(NewSnippet(
		NewTabstop(1, nil),
		NewPlaceholder(2, nil, NewText("["), NewTabstop(1, nil), NewText("]")),
	))
	require.NoError(t, err)

	primary := nodes[0].(*TabstopNode)
	primary.SetText([]string{"v"})

	// A projection alone cannot initiate change: the sub-tree freezes at
	// first render against the primary's value.
	dynamic := nodes[1].(*DynamicNode)
	built, err := dynamic.Rebuild(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"[v]"}, built.(*TabstopNode).Default())
}

func TestPlaceholder_CustomNestedAssembler(t *testing.T) {
	marker := NewTextNode([]string{"assembled"})
	var gotPosition int
	var gotGroup *SnippetGroupNode

	compiler := MustNew(WithNestedAssembler(func(position int, group *SnippetGroupNode) GraphNode {
		gotPosition = position
		gotGroup = group
		return marker
	}))

	nodes, err := compiler.Compile(NewPlaceholder(3, nil, NewTabstop(4, nil)))
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	// The assembler's return value is spliced in verbatim.
	assert.Same(t, marker, nodes[0].(*TextNode))
	assert.Equal(t, 3, gotPosition)
	require.NotNil(t, gotGroup)
	assert.Len(t, gotGroup.Children, 1)
}

func TestRenderStatic_RejectsInteractiveNodes(t *testing.T) {
	_, err := RenderStatic(NewTabstopNode(1, nil), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgNotStatic)

	_, err = RenderStatic(NewChoiceNode(1, [][]string{{"a"}}), nil)
	require.Error(t, err)
}

func TestRenderStatic_GroupConcatenation(t *testing.T) {
	group := NewSnippetGroupNode(
		NewTextNode([]string{"a", "b"}),
		NewTextNode([]string{"c"}),
		NewTextNode([]string{"", "d"}),
	)

	lines, err := RenderStatic(group, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "bc", "d"}, lines)
}

func TestIsInteractive_Classification(t *testing.T) {
	tests := []struct {
		name string
		node GraphNode
		want bool
	}{
		{"text", NewTextNode([]string{"x"}), false},
		{"tabstop", NewTabstopNode(1, nil), true},
		{"choice", NewChoiceNode(1, nil), true},
		{"dynamic", NewDynamicNode(1, nil), true},
		{"env variable", newEnvVariableNode(VarFilename, nil), true},
		{"mirror", newMirrorNode(NewTabstopNode(1, nil), nil), false},
		{"empty group", NewSnippetGroupNode(), false},
		{"group with tabstop", NewSnippetGroupNode(NewTextNode(nil), NewTabstopNode(1, nil)), true},
		{"wrapped env variable", NewIndentWrapNode(newEnvVariableNode(VarFilename, nil), " ", true), true},
		{"wrapped text", NewIndentWrapNode(NewTextNode(nil), " ", true), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isInteractive(tt.node))
		})
	}
}
