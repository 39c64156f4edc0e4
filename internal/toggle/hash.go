package toggle

import (
	"regexp"
	"strings"
)

// bare identifier immediately followed by a colon that is not part of ::
var hashKeyPattern = regexp.MustCompile(`\b[A-Za-z_]\w*:([^:]|$)`)

// looksLikeHash reports whether a brace-block interior reads like a hash
// literal rather than a block body. The interior is split around its
// innermost balanced {...} substring (so a nested hash or block does not
// trigger the check by itself) and each side is searched for a hash
// association marker: a fat arrow `=>` or an `identifier:` key.
//
// This is a heuristic, kept deliberately imprecise: a nested block whose
// own hash literal straddles the nested-brace split can still suppress a
// toggle. Callers treat a hash verdict as "skip this candidate".
func looksLikeHash(block string) bool {
	before, after := splitAroundInnerBraces(block)
	return hasHashMarker(before) || hasHashMarker(after)
}

// splitAroundInnerBraces returns the text before and after the innermost
// balanced {...} pair in block. Without such a pair the whole block is the
// "before" region.
func splitAroundInnerBraces(block string) (before, after string) {
	ci := strings.IndexByte(block, '}')
	if ci < 0 {
		return block, ""
	}
	oi := matchBrace(block, ci)
	if oi < 0 {
		return block, ""
	}
	return block[:oi], block[ci+1:]
}

func hasHashMarker(s string) bool {
	return strings.Contains(s, "=>") || hashKeyPattern.MatchString(s)
}
