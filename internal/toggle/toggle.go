// Package toggle rewrites the Ruby block surrounding the cursor between
// its brace form `{ ... }` and its keyword form `do ... end`.
//
// Classification runs in priority order: a brace block on the cursor's
// line, then a single-line do/end on the cursor's line, then a multi-line
// do/end enclosing the cursor. The first form that matches wins; no match
// means no edit. Failure is silent: this is an interactive aid where
// "nothing happened" is the correct answer for malformed input.
package toggle

import (
	"github.com/orbitalquark/rubyedit/internal/buffer"
)

// Toggle classifies the block form at cursor and applies the opposite form
// as one buffer transaction. It reports whether an edit was applied.
func Toggle(buf *buffer.Buffer, cursor int) bool {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > buf.Len() {
		cursor = buf.Len()
	}
	if toggleBraceBlock(buf, cursor) {
		return true
	}
	if toggleSingleLine(buf, cursor) {
		return true
	}
	return toggleMultiLine(buf, cursor)
}
