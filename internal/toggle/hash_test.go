package toggle

import "testing"

func TestLooksLikeHash(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  bool
	}{
		{"empty", "", false},
		{"plain body", " puts x ", false},
		{"params and body", " |x| x * 2 ", false},
		{"fat arrow", " :a => 1 ", true},
		{"symbol key", " a: 1 ", true},
		{"symbol key without spaces", "a:1", true},
		{"scope operator is not a key", " Foo::Bar.new ", false},
		{"nested braces hide their contents", " x.map { a: 1 } ", false},
		{"marker before nested braces", " :a => 1, b: { c: 2 } ", true},
		{"marker after nested braces", " x.map { y } => z ", true},
		{"ternary colon is not a key", " a ? b : c ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := looksLikeHash(tt.block); got != tt.want {
				t.Errorf("looksLikeHash(%q) = %v, want %v", tt.block, got, tt.want)
			}
		})
	}
}

func TestSplitAroundInnerBraces(t *testing.T) {
	tests := []struct {
		name       string
		block      string
		wantBefore string
		wantAfter  string
	}{
		{"no braces", " a b ", " a b ", ""},
		{"one pair", " a { b } c ", " a ", " c "},
		{"nested pairs split at innermost", " a { b { c } d } e ", " a { b ", " d } e "},
		{"unbalanced close", " a } b ", " a } b ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, after := splitAroundInnerBraces(tt.block)
			if before != tt.wantBefore || after != tt.wantAfter {
				t.Errorf("splitAroundInnerBraces(%q) = (%q, %q), want (%q, %q)",
					tt.block, before, after, tt.wantBefore, tt.wantAfter)
			}
		})
	}
}

func TestMatchBrace(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		close int
		want  int
	}{
		{"simple pair", "{ x }", 4, 0},
		{"nested pair skipped", "{ a { b } c }", 12, 0},
		{"inner pair", "{ a { b } c }", 8, 4},
		{"unbalanced", " a } b", 3, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchBrace(tt.text, tt.close); got != tt.want {
				t.Errorf("matchBrace(%q, %d) = %d, want %d", tt.text, tt.close, got, tt.want)
			}
		})
	}
}

func TestCollapseInterior(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single newline", "\n  x\n", " x "},
		{"crlf newlines", "\r\n  x\r\n", " x "},
		{"multiple body lines", "\n  a\n  b\n", " a b "},
		{"already flat", " a b ", " a b "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := collapseInterior(tt.in); got != tt.want {
				t.Errorf("collapseInterior(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
