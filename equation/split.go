package equation

import (
	"strings"
	"unicode"
)

// splitTerms tokenizes one whitespace-free side into signed term
// substrings.
//
// The scan walks the side once, accumulating runes into the current
// term buffer. A '+' or '-' closes the buffer only when a term is
// already open (buffer non-empty); otherwise the sign is the start of
// the next term. The trailing buffer is flushed at end of input, so an
// all-whitespace side yields no terms and no empty substring is ever
// emitted.
func splitTerms(side string) []string {
	var compact strings.Builder
	for _, r := range side {
		if !unicode.IsSpace(r) {
			compact.WriteRune(r)
		}
	}

	var (
		out []string
		buf strings.Builder
	)
	for _, r := range compact.String() {
		if (r == '+' || r == '-') && buf.Len() > 0 {
			out = append(out, buf.String())
			buf.Reset()
		}
		buf.WriteRune(r)
	}
	if buf.Len() > 0 {
		out = append(out, buf.String())
	}

	return out
}
