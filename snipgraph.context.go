package snipgraph

// ConversionContext is the mutable state threaded through one top-level
// compilation: the write-once registry of primary nodes per declared
// position, the trailing-text buffer feeding indent capture, and the custom
// variable resolver table. A context must never be reused across unrelated
// trees; conversion results are undefined if it is.
type ConversionContext struct {
	registry  map[int]GraphNode
	trailing  []string
	resolvers map[string]VariableResolver
}

// NewConversionContext creates an empty context for one compilation.
func NewConversionContext() *ConversionContext {
	return &ConversionContext{
		registry:  make(map[int]GraphNode),
		resolvers: make(map[string]VariableResolver),
	}
}

// SetResolver installs a custom resolver for one variable name.
func (c *ConversionContext) SetResolver(name string, resolver VariableResolver) {
	c.resolvers[name] = resolver
}

// register records node as the primary for position. The first writer wins;
// register reports whether node became the primary.
func (c *ConversionContext) register(position int, node GraphNode) bool {
	if _, exists := c.registry[position]; exists {
		return false
	}
	c.registry[position] = node
	return true
}

// lookup returns the primary node for a declared position.
func (c *ConversionContext) lookup(position int) (GraphNode, bool) {
	node, ok := c.registry[position]
	return node, ok
}

// resolver returns the custom resolver for name, if any.
func (c *ConversionContext) resolver(name string) (VariableResolver, bool) {
	r, ok := c.resolvers[name]
	return r, ok
}

// setTrailing records the line split of the most recently built literal text.
func (c *ConversionContext) setTrailing(lines []string) {
	c.trailing = lines
}

// takeTrailing consumes the trailing-text buffer. Only the sibling built
// immediately after the text sees it.
func (c *ConversionContext) takeTrailing() []string {
	lines := c.trailing
	c.trailing = nil
	return lines
}
