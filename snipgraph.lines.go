package snipgraph

import "strings"

// Line break used to split literal text and environment values.
const lineBreak = "\n"

// SplitLines splits text into its line sequence. The result always has at
// least one element; an empty string yields a single empty line.
func SplitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", lineBreak), lineBreak)
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, lineBreak)
}

// copyLines returns an independent copy of lines, never nil.
func copyLines(lines []string) []string {
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}

// appendLines concatenates two line sequences the way rendered text flows:
// the first line of next continues the last line of prev.
func appendLines(prev []string, next []string) []string {
	if len(prev) == 0 {
		return copyLines(next)
	}
	if len(next) == 0 {
		return prev
	}
	out := make([]string, 0, len(prev)+len(next)-1)
	out = append(out, prev[:len(prev)-1]...)
	out = append(out, prev[len(prev)-1]+next[0])
	out = append(out, next[1:]...)
	return out
}

// emptyLine is the canonical "renders as nothing" value. Environment values
// and unknown variables never collapse to a zero-length sequence so that the
// field keeps its width in the rendered output.
func emptyLine() []string {
	return []string{""}
}
