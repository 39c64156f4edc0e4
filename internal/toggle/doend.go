package toggle

import (
	"regexp"

	"github.com/orbitalquark/rubyedit/internal/buffer"
)

var (
	// first `do` through the last `end` on one line
	singleLineDo = regexp.MustCompile(`\bdo\b(.+)\bend\b`)

	// `do`, optional |params|, then only whitespace to end of line
	doOpener = regexp.MustCompile(`\bdo\s*(\|[^|]*\|)?\s*$`)

	// `end` as the first token on a line
	endCloser = regexp.MustCompile(`^\s*end\b`)

	newlineRun = regexp.MustCompile(`[\r\n]+`)
	spaceRun   = regexp.MustCompile(`  +`)
)

// toggleSingleLine rewrites a `do ... end` block that sits entirely on the
// cursor's line as `{ ... }`, keeping the interior verbatim. The cursor
// lands just inside the new closing brace.
func toggleSingleLine(buf *buffer.Buffer, cursor int) bool {
	line := buf.LineOfOffset(cursor)
	loc := singleLineDo.FindStringSubmatchIndex(buf.Line(line))
	if loc == nil {
		return false
	}
	start := buf.LineStart(line)
	body := buf.Line(line)[loc[2]:loc[3]]
	repl := "{" + body + "}"

	buf.Begin()
	defer buf.Commit()
	if err := buf.Replace(start+loc[0], start+loc[1], repl); err != nil {
		return false
	}
	buf.SetCursor(start + loc[0] + len(repl) - 1)
	return true
}

// toggleMultiLine rewrites the multi-line `do ... end` block enclosing the
// cursor as a one-line `{ ... }`. The opener is the nearest preceding line
// ending in `do` (with optional |params|); its `end` must sit at exactly
// the same indentation, per Ruby convention. The interior's newline runs
// collapse to single spaces.
func toggleMultiLine(buf *buffer.Buffer, cursor int) bool {
	curLine := buf.LineOfOffset(cursor)

	sLine, sLoc := -1, []int(nil)
	for l := curLine; l >= 0; l-- {
		if loc := doOpener.FindStringIndex(buf.Line(l)); loc != nil {
			sLine, sLoc = l, loc
			break
		}
	}
	if sLine < 0 {
		return false
	}
	indent := buf.Indent(sLine)

	eLine, eLoc := -1, []int(nil)
	for l := sLine + 1; l < buf.LineCount(); l++ {
		loc := endCloser.FindStringIndex(buf.Line(l))
		if loc == nil || buf.Indent(l) != indent {
			continue
		}
		eLine, eLoc = l, loc
		break
	}
	if eLine < 0 {
		return false
	}

	s2 := buf.LineStart(sLine) + sLoc[0]
	e2 := buf.LineStart(eLine) + eLoc[1]
	if e2 < cursor {
		// the cursor has already left the block
		return false
	}

	endStart := e2 - len("end")
	interior := collapseInterior(buf.Text()[s2+len("do") : endStart])
	repl := "{" + interior + "}"

	buf.Begin()
	defer buf.Commit()
	return buf.Replace(s2, e2, repl) == nil
}

// collapseInterior flattens a multi-line block interior onto one line:
// every run of newlines becomes a single space, then space runs collapse
// to one space.
func collapseInterior(s string) string {
	s = newlineRun.ReplaceAllString(s, " ")
	return spaceRun.ReplaceAllString(s, " ")
}
