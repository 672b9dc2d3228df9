package snipgraph

// Transform is an externally-applied text rewrite (for example a regex format
// transform) attached to a tabstop, placeholder, or variable occurrence. The
// transform engine lives outside this package: the compiler only knows a
// transform must be invoked on the resolved value. Transform failures are the
// collaborator's responsibility and propagate unrecovered.
type Transform func(lines []string) ([]string, error)

// applyTransform applies tr to lines, treating a nil transform as identity.
func applyTransform(tr Transform, lines []string) ([]string, error) {
	if tr == nil {
		return lines, nil
	}
	return tr(lines)
}
