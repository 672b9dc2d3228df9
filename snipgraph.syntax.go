package snipgraph

import (
	"fmt"
	"strings"
)

// SyntaxKind identifies the variant of a syntax tree node.
type SyntaxKind string

// Syntax node kinds
const (
	KindSnippet     SyntaxKind = "snippet"
	KindText        SyntaxKind = "text"
	KindChoice      SyntaxKind = "choice"
	KindTabstop     SyntaxKind = "tabstop"
	KindPlaceholder SyntaxKind = "placeholder"
	KindVariable    SyntaxKind = "variable"
)

// SyntaxNode is one node of the parsed snippet tree this package compiles.
// The set of implementations is closed: trees are built from the NewX
// constructors below (typically by an external parser) and consumed read-only
// by exactly one compilation.
type SyntaxNode interface {
	// Kind returns the node's variant identifier.
	Kind() SyntaxKind
	// String returns a human-readable representation.
	String() string

	// syntaxNode seals the variant set so kind dispatch stays exhaustive.
	syntaxNode()
}

// SyntaxSnippet is a sequence of sibling nodes.
type SyntaxSnippet struct {
	Children []SyntaxNode
}

// NewSnippet creates a snippet node over the given children.
func NewSnippet(children ...SyntaxNode) *SyntaxSnippet {
	return &SyntaxSnippet{Children: children}
}

// Kind returns KindSnippet.
func (n *SyntaxSnippet) Kind() SyntaxKind { return KindSnippet }

func (n *SyntaxSnippet) syntaxNode() {}

// String returns a string representation.
func (n *SyntaxSnippet) String() string {
	parts := make([]string, len(n.Children))
	for i, child := range n.Children {
		parts[i] = child.String()
	}
	return fmt.Sprintf("SyntaxSnippet{%s}", strings.Join(parts, ", "))
}

// SyntaxText is an escaped literal text run.
type SyntaxText struct {
	Text string
}

// NewText creates a literal text node.
func NewText(text string) *SyntaxText {
	return &SyntaxText{Text: text}
}

// Kind returns KindText.
func (n *SyntaxText) Kind() SyntaxKind { return KindText }

func (n *SyntaxText) syntaxNode() {}

// String returns a string representation.
func (n *SyntaxText) String() string {
	return fmt.Sprintf("SyntaxText{%q}", n.Text)
}

// SyntaxChoice is a numbered insertion point restricted to an ordered list of
// literal alternatives.
type SyntaxChoice struct {
	Position int
	Options  []string
}

// NewChoice creates a choice node at the given position.
func NewChoice(position int, options ...string) *SyntaxChoice {
	return &SyntaxChoice{Position: position, Options: options}
}

// Kind returns KindChoice.
func (n *SyntaxChoice) Kind() SyntaxKind { return KindChoice }

func (n *SyntaxChoice) syntaxNode() {}

// String returns a string representation.
func (n *SyntaxChoice) String() string {
	return fmt.Sprintf("SyntaxChoice{$%d |%s|}", n.Position, strings.Join(n.Options, ","))
}

// SyntaxTabstop is a numbered insertion point with no default content.
// Position 0 (or absent in source) marks the unordered exit point.
type SyntaxTabstop struct {
	Position  int
	Transform Transform
}

// NewTabstop creates a tabstop node. transform may be nil.
func NewTabstop(position int, transform Transform) *SyntaxTabstop {
	return &SyntaxTabstop{Position: position, Transform: transform}
}

// Kind returns KindTabstop.
func (n *SyntaxTabstop) Kind() SyntaxKind { return KindTabstop }

func (n *SyntaxTabstop) syntaxNode() {}

// String returns a string representation.
func (n *SyntaxTabstop) String() string {
	return fmt.Sprintf("SyntaxTabstop{$%d}", n.Position)
}

// SyntaxPlaceholder is a numbered insertion point with default content, which
// may itself be an arbitrary sub-tree.
type SyntaxPlaceholder struct {
	Position  int
	Transform Transform
	Children  []SyntaxNode
}

// NewPlaceholder creates a placeholder node. transform may be nil.
func NewPlaceholder(position int, transform Transform, children ...SyntaxNode) *SyntaxPlaceholder {
	return &SyntaxPlaceholder{Position: position, Transform: transform, Children: children}
}

// Kind returns KindPlaceholder.
func (n *SyntaxPlaceholder) Kind() SyntaxKind { return KindPlaceholder }

func (n *SyntaxPlaceholder) syntaxNode() {}

// String returns a string representation.
func (n *SyntaxPlaceholder) String() string {
	parts := make([]string, len(n.Children))
	for i, child := range n.Children {
		parts[i] = child.String()
	}
	return fmt.Sprintf("SyntaxPlaceholder{$%d: %s}", n.Position, strings.Join(parts, ", "))
}

// SyntaxVariable is a named variable reference resolved against the host
// Environment (or a custom resolver) at render time.
type SyntaxVariable struct {
	Name      string
	Transform Transform
}

// NewVariable creates a variable node. transform may be nil.
func NewVariable(name string, transform Transform) *SyntaxVariable {
	return &SyntaxVariable{Name: name, Transform: transform}
}

// Kind returns KindVariable.
func (n *SyntaxVariable) Kind() SyntaxKind { return KindVariable }

func (n *SyntaxVariable) syntaxNode() {}

// String returns a string representation.
func (n *SyntaxVariable) String() string {
	return fmt.Sprintf("SyntaxVariable{%s}", n.Name)
}
