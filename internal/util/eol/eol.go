// Package eol holds the platform line terminator used in generated text.
package eol

import "strings"

// Lines joins lines, terminating each with Sep.
func Lines(lines ...string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString(Sep)
	}
	return b.String()
}
