package snipgraph

// Environment is the host-supplied name→value context (selected text,
// filename, ...) consulted by computed nodes at render time. Absent names are
// valid and mean "unrecognized". Values are line sequences; single-string
// values should be stored pre-split via SplitLines.
type Environment interface {
	// Lookup returns the value lines for name, and whether name is present.
	Lookup(name string) (lines []string, ok bool)
}

// EnvMap is a simple map-backed Environment.
type EnvMap map[string][]string

// Lookup implements Environment.
func (m EnvMap) Lookup(name string) ([]string, bool) {
	lines, ok := m[name]
	return lines, ok
}

// WithText stores a single-string value under name, split into lines.
func (m EnvMap) WithText(name string, text string) EnvMap {
	m[name] = SplitLines(text)
	return m
}

// VariableResolver overrides the Environment lookup for one variable name,
// supporting alternate template dialects layered on the same tree shape.
// The returned lines are the variable's realized value.
type VariableResolver func(env Environment) ([]string, error)

// lookupEnv reads name from env, coercing absence and zero-length values to a
// single empty line so the field never collapses to zero width.
func lookupEnv(env Environment, name string) []string {
	if env == nil {
		return emptyLine()
	}
	lines, ok := env.Lookup(name)
	if !ok || len(lines) == 0 {
		return emptyLine()
	}
	return lines
}
