package cut

import "bytes"

// A Matcher locates the leftmost delimiter occurrence in line at or after
// offset from.  It returns the half-open span [start, end) of the match.
type Matcher interface {
	Match(line []byte, from int) (start, end int, ok bool)
}

// ExactMatcher matches a literal, non-empty byte sequence.  Repeated
// delimiters produce distinct (empty) fields.
type ExactMatcher struct {
	delim []byte
}

var _ Matcher = (*ExactMatcher)(nil)

func NewExactMatcher(delim []byte) *ExactMatcher {
	if len(delim) == 0 {
		panic("cut: empty delimiter")
	}
	return &ExactMatcher{delim: delim}
}

func (e *ExactMatcher) Match(line []byte, from int) (int, int, bool) {
	if from >= len(line) {
		return 0, 0, false
	}
	var k int
	if len(e.delim) == 1 {
		k = bytes.IndexByte(line[from:], e.delim[0])
	} else {
		k = bytes.Index(line[from:], e.delim)
	}
	if k < 0 {
		return 0, 0, false
	}
	start := from + k
	return start, start + len(e.delim), true
}

// WhitespaceMatcher treats each maximal run of spaces and tabs as a single
// delimiter occurrence.
type WhitespaceMatcher struct{}

var _ Matcher = WhitespaceMatcher{}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

func (WhitespaceMatcher) Match(line []byte, from int) (int, int, bool) {
	start := -1
	for k := from; k < len(line); k++ {
		if isBlank(line[k]) {
			start = k
			break
		}
	}
	if start < 0 {
		return 0, 0, false
	}
	end := start + 1
	for end < len(line) && isBlank(line[end]) {
		end++
	}
	return start, end, true
}
