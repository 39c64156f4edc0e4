package toggle

import (
	"regexp"

	"github.com/orbitalquark/rubyedit/internal/buffer"
)

// |x, y| at the start of a block interior, after optional whitespace
var paramListPrefix = regexp.MustCompile(`^\s*\|[^|]*\|`)

// toggleBraceBlock scans from the cursor to the end of its line for a
// closing brace whose balanced block interior is not a hash literal, and
// rewrites that block as do ... end. The interior keeps the `do` line when
// it opens with a |params| list; otherwise it moves wholesale to a new
// line. The new body line is indented one level past the current line and
// the `end` line matches the current line.
func toggleBraceBlock(buf *buffer.Buffer, cursor int) bool {
	text := buf.Text()
	line := buf.LineOfOffset(cursor)
	lineEnd := buf.LineEnd(line)
	baseIndent := buf.Indent(line)
	nl := buf.EOL().Sequence()

	for p := cursor; p < lineEnd; p++ {
		if text[p] != '}' {
			continue
		}
		s := matchBrace(text, p)
		if s < 0 {
			// unbalanced: this candidate has no opener
			continue
		}
		block := text[s+1 : p]
		if looksLikeHash(block) {
			continue
		}

		if loc := paramListPrefix.FindStringIndex(block); loc != nil {
			block = block[:loc[1]] + nl + block[loc[1]:]
		} else {
			block = nl + block
		}
		repl := "do" + block + nl + "end"

		bodyLine := buf.LineOfOffset(s) + 1
		buf.Begin()
		defer buf.Commit()
		if err := buf.Replace(s, p+1, repl); err != nil {
			return false
		}
		endLine := buf.LineOfOffset(s + len(repl) - 1)
		if err := buf.SetIndent(bodyLine, baseIndent+buf.TabWidth()); err != nil {
			return false
		}
		if err := buf.SetIndent(endLine, baseIndent); err != nil {
			return false
		}
		return true
	}
	return false
}

// matchBrace returns the offset of the opening brace balancing the closing
// brace at close, scanning backward and skipping nested pairs. It returns
// -1 when the text before close is unbalanced.
func matchBrace(text string, close int) int {
	depth := 0
	for i := close - 1; i >= 0; i-- {
		switch text[i] {
		case '}':
			depth++
		case '{':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}
