// Package endcomplete inserts the `end` keyword matching a Ruby
// control-structure opener on the current line.
package endcomplete

import (
	"regexp"

	"github.com/orbitalquark/rubyedit/internal/buffer"
)

// Rule pairs an opener name with the pattern that recognizes it.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
}

// Rules lists the recognized block openers. Order is significant: the
// first matching rule wins, and the trailing-do rule comes last so that
// lines like `while x do` complete as `while`.
var Rules = []Rule{
	{"begin", regexp.MustCompile(`^\s*begin\b`)},
	{"case", regexp.MustCompile(`^\s*case\b`)},
	{"class", regexp.MustCompile(`^\s*class\b`)},
	{"def", regexp.MustCompile(`^\s*def\b`)},
	{"for", regexp.MustCompile(`^\s*for\b`)},
	{"if", regexp.MustCompile(`^\s*if\b`)},
	{"module", regexp.MustCompile(`^\s*module\b`)},
	{"unless", regexp.MustCompile(`^\s*unless\b`)},
	{"until", regexp.MustCompile(`^\s*until\b`)},
	{"while", regexp.MustCompile(`^\s*while\b`)},
	{"do", regexp.MustCompile(`\bdo\s*(\|[^|]*\|)?\s*$`)},
}

// match returns the first rule matching line, or nil.
func match(line string) *Rule {
	for i := range Rules {
		if Rules[i].Pattern.MatchString(line) {
			return &Rules[i]
		}
	}
	return nil
}

// Complete checks the cursor's line against Rules and, on a match, inserts
// two lines after it in one transaction: a blank body line indented one
// level deeper, and an `end` line at the opener's indentation. The cursor
// lands at the end of the body line. It reports whether a completion was
// applied; a non-matching line is a no-op.
func Complete(buf *buffer.Buffer, cursor int) bool {
	line := buf.LineOfOffset(cursor)
	if match(buf.Line(line)) == nil {
		return false
	}

	indent := buf.Indent(line)
	nl := buf.EOL().Sequence()
	insertAt := buf.LineEnd(line)

	buf.Begin()
	defer buf.Commit()
	if err := buf.Replace(insertAt, insertAt, nl+nl+"end"); err != nil {
		return false
	}
	if err := buf.SetIndent(line+1, indent+buf.TabWidth()); err != nil {
		return false
	}
	if err := buf.SetIndent(line+2, indent); err != nil {
		return false
	}
	buf.SetCursor(buf.LineEnd(line + 1))
	return true
}
