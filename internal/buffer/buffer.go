package buffer

import (
	"fmt"
	"sort"
	"strings"
)

// EOLMode selects the end-of-line sequence a buffer writes.
type EOLMode int

const (
	EOLLF EOLMode = iota
	EOLCRLF
	EOLCR
)

// Sequence returns the literal end-of-line bytes for the mode.
func (m EOLMode) Sequence() string {
	switch m {
	case EOLCRLF:
		return "\r\n"
	case EOLCR:
		return "\r"
	default:
		return "\n"
	}
}

func (m EOLMode) String() string {
	switch m {
	case EOLCRLF:
		return "crlf"
	case EOLCR:
		return "cr"
	default:
		return "lf"
	}
}

// ParseEOLMode parses "lf", "crlf" or "cr" (case-insensitive).
func ParseEOLMode(s string) (EOLMode, error) {
	switch strings.ToLower(s) {
	case "", "lf":
		return EOLLF, nil
	case "crlf":
		return EOLCRLF, nil
	case "cr":
		return EOLCR, nil
	}
	return EOLLF, fmt.Errorf("unknown EOL mode %q", s)
}

// ErrNoTransaction is returned when an edit is attempted outside Begin/Commit.
var ErrNoTransaction = fmt.Errorf("edit outside transaction")

// editOp records one applied edit so a transaction can be undone as a unit.
type editOp struct {
	start      int
	removed    string
	inserted   string
	prevCursor int
}

// Buffer is a line-indexed text buffer: a character sequence with
// offset<->line mapping, per-line indentation, a configured EOL sequence
// and a cursor. All mutation happens through Replace/SetIndent inside a
// Begin/Commit transaction; a transaction is one undo unit.
//
// Lines accept any of the three EOL encodings on input; inserted newlines
// always use the buffer's configured mode.
type Buffer struct {
	text     string
	tabWidth int
	eol      EOLMode
	cursor   int

	starts []int // offset of each line start; starts[0] == 0

	inTx    bool
	pending []editOp
	history [][]editOp
}

// New creates a buffer holding text. tabWidth is the column width of one
// indentation level; values below 1 fall back to 2.
func New(text string, tabWidth int, eol EOLMode) *Buffer {
	if tabWidth < 1 {
		tabWidth = 2
	}
	b := &Buffer{text: text, tabWidth: tabWidth, eol: eol}
	b.reindex()
	return b
}

func (b *Buffer) reindex() {
	starts := []int{0}
	for i := 0; i < len(b.text); i++ {
		switch b.text[i] {
		case '\n':
			starts = append(starts, i+1)
		case '\r':
			// \r\n is one EOL; the \n case records it
			if i+1 < len(b.text) && b.text[i+1] == '\n' {
				continue
			}
			starts = append(starts, i+1)
		}
	}
	b.starts = starts
}

// Text returns the full buffer content.
func (b *Buffer) Text() string { return b.text }

// Len returns the buffer length in bytes.
func (b *Buffer) Len() int { return len(b.text) }

// EOL returns the buffer's end-of-line mode.
func (b *Buffer) EOL() EOLMode { return b.eol }

// TabWidth returns the column width of one indentation level.
func (b *Buffer) TabWidth() int { return b.tabWidth }

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() int { return len(b.starts) }

// LineStart returns the offset of the first character of line (0-indexed).
func (b *Buffer) LineStart(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(b.starts) {
		return len(b.text)
	}
	return b.starts[line]
}

// LineEnd returns the offset just past the last character of line,
// excluding its EOL sequence.
func (b *Buffer) LineEnd(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(b.starts) {
		return len(b.text)
	}
	end := len(b.text)
	if line+1 < len(b.starts) {
		end = b.starts[line+1]
	}
	s := b.starts[line]
	if end > s && b.text[end-1] == '\n' {
		end--
	}
	if end > s && b.text[end-1] == '\r' {
		end--
	}
	return end
}

// Line returns the text of line without its EOL sequence.
func (b *Buffer) Line(line int) string {
	return b.text[b.LineStart(line):b.LineEnd(line)]
}

// LineOfOffset returns the 0-indexed line containing offset. Offsets are
// clamped into the buffer.
func (b *Buffer) LineOfOffset(off int) int {
	if off < 0 {
		off = 0
	}
	if off > len(b.text) {
		off = len(b.text)
	}
	// Largest line whose start is <= off.
	i := sort.Search(len(b.starts), func(i int) bool { return b.starts[i] > off })
	return i - 1
}

// Indent returns the indentation of line in columns, expanding tabs to the
// next multiple of the tab width.
func (b *Buffer) Indent(line int) int {
	text := b.Line(line)
	cols := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case ' ':
			cols++
		case '\t':
			cols += b.tabWidth - cols%b.tabWidth
		default:
			return cols
		}
	}
	return cols
}

// Cursor returns the current cursor offset.
func (b *Buffer) Cursor() int { return b.cursor }

// SetCursor moves the cursor, clamping it into the buffer.
func (b *Buffer) SetCursor(off int) {
	if off < 0 {
		off = 0
	}
	if off > len(b.text) {
		off = len(b.text)
	}
	b.cursor = off
}

// Begin opens an edit transaction. Every edit between Begin and Commit is
// undone and redone as one unit.
func (b *Buffer) Begin() {
	b.inTx = true
}

// Commit closes the current transaction. An empty transaction records no
// undo step.
func (b *Buffer) Commit() {
	b.inTx = false
	if len(b.pending) > 0 {
		b.history = append(b.history, b.pending)
		b.pending = nil
	}
}

// Replace substitutes text for the half-open byte range [start, end).
// It is only valid inside a transaction. The cursor is shifted past edits
// that precede it and clamped to the end of the inserted text when it lay
// inside the replaced range.
func (b *Buffer) Replace(start, end int, text string) error {
	if !b.inTx {
		return ErrNoTransaction
	}
	if start < 0 || end < start || end > len(b.text) {
		return fmt.Errorf("replace range [%d,%d) out of bounds (len %d)", start, end, len(b.text))
	}
	op := editOp{start: start, removed: b.text[start:end], inserted: text, prevCursor: b.cursor}
	b.text = b.text[:start] + text + b.text[end:]
	b.reindex()

	switch {
	case b.cursor <= start:
		// unchanged
	case b.cursor >= end:
		b.cursor += len(text) - (end - start)
	default:
		b.cursor = start + len(text)
	}

	b.pending = append(b.pending, op)
	return nil
}

// SetIndent replaces the leading whitespace of line with cols columns of
// spaces. It is only valid inside a transaction.
func (b *Buffer) SetIndent(line, cols int) error {
	if line < 0 || line >= len(b.starts) {
		return fmt.Errorf("line %d out of range", line)
	}
	if cols < 0 {
		cols = 0
	}
	s := b.LineStart(line)
	e := s
	for e < b.LineEnd(line) && (b.text[e] == ' ' || b.text[e] == '\t') {
		e++
	}
	return b.Replace(s, e, strings.Repeat(" ", cols))
}

// Undo reverts the most recent committed transaction. It reports whether
// anything was undone.
func (b *Buffer) Undo() bool {
	if b.inTx || len(b.history) == 0 {
		return false
	}
	group := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	for i := len(group) - 1; i >= 0; i-- {
		op := group[i]
		end := op.start + len(op.inserted)
		b.text = b.text[:op.start] + op.removed + b.text[end:]
		b.cursor = op.prevCursor
	}
	b.reindex()
	return true
}
