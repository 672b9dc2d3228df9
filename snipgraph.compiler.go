package snipgraph

import (
	"fmt"

	"go.uber.org/zap"
)

// NestedAssembler is the host-supplied strategy for embedding a live
// interactive sub-tree at a given position. It is invoked exactly once per
// interactive placeholder and its return value is spliced into the
// surrounding sequence verbatim.
type NestedAssembler func(position int, group *SnippetGroupNode) GraphNode

// Option is a functional option for configuring the Compiler.
type Option func(*compilerConfig)

// compilerConfig holds the internal configuration for a Compiler.
type compilerConfig struct {
	logger    *zap.Logger
	assembler NestedAssembler
	resolvers map[string]VariableResolver
}

// defaultCompilerConfig returns the default compiler configuration.
func defaultCompilerConfig() *compilerConfig {
	return &compilerConfig{
		assembler: DefaultNestedAssembler,
		resolvers: make(map[string]VariableResolver),
	}
}

// WithLogger sets the logger for the compiler.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *compilerConfig) {
		c.logger = logger
	}
}

// WithNestedAssembler sets the strategy for embedding interactive placeholder
// sub-trees.
// Default: DefaultNestedAssembler
func WithNestedAssembler(assembler NestedAssembler) Option {
	return func(c *compilerConfig) {
		if assembler != nil {
			c.assembler = assembler
		}
	}
}

// WithVariableResolver installs a custom resolver for one variable name.
// Resolvers override the Environment lookup for their name.
func WithVariableResolver(name string, resolver VariableResolver) Option {
	return func(c *compilerConfig) {
		c.resolvers[name] = resolver
	}
}

// WithVariableResolvers installs custom resolvers for several names at once.
func WithVariableResolvers(resolvers map[string]VariableResolver) Option {
	return func(c *compilerConfig) {
		for name, r := range resolvers {
			c.resolvers[name] = r
		}
	}
}

// Compiler converts snippet syntax trees into output node graphs. A Compiler
// is stateless across calls: every Compile seeds a fresh ConversionContext.
type Compiler struct {
	config *compilerConfig
	logger *zap.Logger
}

// New creates a new Compiler with the given options.
func New(opts ...Option) (*Compiler, error) {
	config := defaultCompilerConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgCompilerCreated)

	return &Compiler{
		config: config,
		logger: logger,
	}, nil
}

// MustNew creates a new Compiler and panics if there's an error.
func MustNew(opts ...Option) *Compiler {
	compiler, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return compiler
}

// Compile converts input into an ordered list of output nodes.
//
// input may be a SyntaxNode (the usual case), or an already-realized
// GraphNode or []GraphNode, which passes through unchanged to support manual
// graph composition. Any other value, or a syntax node of unrecognized kind,
// aborts the conversion: there is no partial output.
func (c *Compiler) Compile(input any) ([]GraphNode, error) {
	cc := c.newContext()
	return c.CompileWith(cc, input)
}

// CompileWith converts input using a caller-supplied context. The context
// must be fresh per top-level tree; sharing one across unrelated trees leaves
// stale primaries in the registry.
func (c *Compiler) CompileWith(cc *ConversionContext, input any) ([]GraphNode, error) {
	if cc == nil {
		cc = c.newContext()
	}
	c.logger.Debug(LogMsgCompileStart)

	switch v := input.(type) {
	case GraphNode:
		c.logger.Debug(LogMsgPassThrough, zap.String(LogFieldKind, string(v.NodeType())))
		return []GraphNode{v}, nil
	case []GraphNode:
		c.logger.Debug(LogMsgPassThrough, zap.Int(LogFieldCount, len(v)))
		return v, nil
	case SyntaxNode:
		nodes, err := c.convertSequence(cc, topLevelGroup(v))
		if err != nil {
			return nil, err
		}
		c.logger.Debug(LogMsgCompileEnd, zap.Int(LogFieldCount, len(nodes)))
		return nodes, nil
	case nil:
		return nil, NewNilSyntaxNodeError()
	default:
		return nil, NewUnsupportedInputError(fmt.Sprintf("%T", input))
	}
}

// newContext seeds a fresh context carrying the compiler's resolver table.
func (c *Compiler) newContext() *ConversionContext {
	cc := NewConversionContext()
	for name, r := range c.config.resolvers {
		cc.resolvers[name] = r
	}
	return cc
}

// topLevelGroup returns the sibling group a top-level node stands for: a
// snippet contributes its children, anything else is a group of one.
func topLevelGroup(node SyntaxNode) []SyntaxNode {
	if snippet, ok := node.(*SyntaxSnippet); ok {
		return snippet.Children
	}
	return []SyntaxNode{node}
}

// DefaultNestedAssembler embeds an interactive sub-tree as a DynamicNode that
// hands the group back to the host on every rebuild.
func DefaultNestedAssembler(position int, group *SnippetGroupNode) GraphNode {
	return NewDynamicNode(position, func(env Environment) (GraphNode, error) {
		return group, nil
	})
}
