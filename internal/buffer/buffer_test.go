package buffer

import "testing"

func TestLineIndexing(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLines []string
	}{
		{"empty", "", []string{""}},
		{"single line", "abc", []string{"abc"}},
		{"lf", "a\nb\nc", []string{"a", "b", "c"}},
		{"trailing lf", "a\nb\n", []string{"a", "b", ""}},
		{"crlf", "a\r\nb\r\nc", []string{"a", "b", "c"}},
		{"cr", "a\rb\rc", []string{"a", "b", "c"}},
		{"mixed", "a\r\nb\nc\rd", []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.text, 2, EOLLF)
			if got := b.LineCount(); got != len(tt.wantLines) {
				t.Fatalf("LineCount() = %d, want %d", got, len(tt.wantLines))
			}
			for i, want := range tt.wantLines {
				if got := b.Line(i); got != want {
					t.Errorf("Line(%d) = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestLineOfOffset(t *testing.T) {
	b := New("ab\ncd\nef", 2, EOLLF)
	tests := []struct {
		off  int
		want int
	}{
		{0, 0}, {2, 0}, {3, 1}, {5, 1}, {6, 2}, {8, 2},
		{-1, 0}, // clamped low
		{99, 2}, // clamped high
	}
	for _, tt := range tests {
		if got := b.LineOfOffset(tt.off); got != tt.want {
			t.Errorf("LineOfOffset(%d) = %d, want %d", tt.off, got, tt.want)
		}
	}
}

func TestIndent(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		tabWidth int
		want     int
	}{
		{"none", "x", 2, 0},
		{"two spaces", "  x", 2, 2},
		{"one space", " x", 2, 1},
		{"tab expands to tab width", "\tx", 4, 4},
		{"tab after space snaps to stop", " \tx", 4, 4},
		{"whitespace-only line", "   ", 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.line, tt.tabWidth, EOLLF)
			if got := b.Indent(0); got != tt.want {
				t.Errorf("Indent(0) on %q = %d, want %d", tt.line, got, tt.want)
			}
		})
	}
}

func TestSetIndent(t *testing.T) {
	b := New("a\n\tb\nc", 2, EOLLF)
	b.Begin()
	if err := b.SetIndent(1, 4); err != nil {
		t.Fatal(err)
	}
	b.Commit()
	if got := b.Text(); got != "a\n    b\nc" {
		t.Errorf("got %q", got)
	}
	if got := b.Indent(1); got != 4 {
		t.Errorf("Indent(1) = %d, want 4", got)
	}
}

func TestReplaceRequiresTransaction(t *testing.T) {
	b := New("abc", 2, EOLLF)
	if err := b.Replace(0, 1, "x"); err != ErrNoTransaction {
		t.Errorf("Replace outside transaction: err = %v, want ErrNoTransaction", err)
	}
	if b.Text() != "abc" {
		t.Errorf("buffer changed: %q", b.Text())
	}
}

func TestReplaceOutOfBounds(t *testing.T) {
	b := New("abc", 2, EOLLF)
	b.Begin()
	defer b.Commit()
	if err := b.Replace(1, 9, "x"); err == nil {
		t.Error("expected error for out-of-bounds range")
	}
	if err := b.Replace(2, 1, "x"); err == nil {
		t.Error("expected error for inverted range")
	}
}

func TestReplaceCursorAdjustment(t *testing.T) {
	tests := []struct {
		name       string
		cursor     int
		start, end int
		text       string
		want       int
	}{
		{"before edit", 1, 3, 5, "xyz", 1},
		{"after edit shifts", 7, 3, 5, "xyz", 8},
		{"inside edit clamps to insert end", 4, 3, 5, "xyz", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New("abcdefgh", 2, EOLLF)
			b.SetCursor(tt.cursor)
			b.Begin()
			if err := b.Replace(tt.start, tt.end, tt.text); err != nil {
				t.Fatal(err)
			}
			b.Commit()
			if got := b.Cursor(); got != tt.want {
				t.Errorf("cursor = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUndoRevertsWholeTransaction(t *testing.T) {
	b := New("one\ntwo\nthree", 2, EOLLF)
	b.SetCursor(4)

	b.Begin()
	if err := b.Replace(4, 7, "2"); err != nil {
		t.Fatal(err)
	}
	if err := b.SetIndent(2, 2); err != nil {
		t.Fatal(err)
	}
	b.Commit()

	if got := b.Text(); got != "one\n2\n  three" {
		t.Fatalf("after edits: %q", got)
	}
	if !b.Undo() {
		t.Fatal("Undo() = false")
	}
	if got := b.Text(); got != "one\ntwo\nthree" {
		t.Errorf("after undo: %q", got)
	}
	if got := b.Cursor(); got != 4 {
		t.Errorf("cursor after undo = %d, want 4", got)
	}
	if b.Undo() {
		t.Error("second Undo() = true, want false")
	}
}

func TestEmptyTransactionRecordsNoUndo(t *testing.T) {
	b := New("abc", 2, EOLLF)
	b.Begin()
	b.Commit()
	if b.Undo() {
		t.Error("Undo() after empty transaction = true")
	}
}

func TestParseEOLMode(t *testing.T) {
	tests := []struct {
		in      string
		want    EOLMode
		wantErr bool
	}{
		{"lf", EOLLF, false},
		{"CRLF", EOLCRLF, false},
		{"cr", EOLCR, false},
		{"", EOLLF, false},
		{"unix", EOLLF, true},
	}
	for _, tt := range tests {
		got, err := ParseEOLMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseEOLMode(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseEOLMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEOLSequences(t *testing.T) {
	if EOLLF.Sequence() != "\n" || EOLCRLF.Sequence() != "\r\n" || EOLCR.Sequence() != "\r" {
		t.Error("unexpected EOL sequences")
	}
}
