package snipgraph

import "strings"

// capturedIndent inspects the trailing-text buffer of the sibling built just
// before a variable. When the preceding literal spans more than one line and
// its final line is non-empty pure whitespace, that whitespace is the column
// the variable token sat at and becomes the captured indent.
func capturedIndent(trailing []string) (string, bool) {
	if len(trailing) < 2 {
		return "", false
	}
	last := trailing[len(trailing)-1]
	if last == "" || strings.TrimSpace(last) != "" {
		return "", false
	}
	return last, true
}

// reindentLines prefixes every line except the first with indent. The first
// line inherits indentation from the insertion point itself.
func reindentLines(lines []string, indent string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if i == 0 {
			out[i] = line
			continue
		}
		out[i] = indent + line
	}
	return out
}
