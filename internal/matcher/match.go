package matcher

import "strings"

// NoLineNum marks the synthetic record emitted for a source with zero
// matches in -L mode.
const NoLineNum = -1

// Line is a single line pulled from a source. Text keeps the original
// trailing terminator when the source had one. Plain value, compared
// with ==.
type Line struct {
	Source string
	Num    int // 1-based; NoLineNum for synthetic records
	Text   string
}

// Match classifies a raw line against the policy: true when the line is
// interesting. A line contains the pattern set when any pattern is a
// substring of the case-canonicalized line; Invert flips the verdict.
// Pure function, no I/O.
func (p Policy) Match(line string) bool {
	if p.IgnoreCase {
		line = strings.ToLower(line)
	}
	for _, pat := range p.Patterns {
		if strings.Contains(line, pat) {
			return !p.Invert
		}
	}
	return p.Invert
}
