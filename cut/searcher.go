package cut

// A Boundary is the [Start, End) span of one delimiter occurrence.
type Boundary struct {
	Start int
	End   int
}

// Searcher walks the delimiter boundaries of a single line in ascending
// order.  It scans lazily and never moves backward, so the total work over
// all calls on one line is linear in the line's length.
type Searcher struct {
	matcher Matcher
	line    []byte
	pos     int
	peeked  *Boundary
	slot    Boundary
	done    bool
}

func NewSearcher(m Matcher, line []byte) *Searcher {
	s := &Searcher{}
	s.Reset(m, line)
	return s
}

// Reset points the searcher at a new line so a single Searcher can be
// reused across all lines of a stream.
func (s *Searcher) Reset(m Matcher, line []byte) {
	s.matcher = m
	s.line = line
	s.pos = 0
	s.peeked = nil
	s.done = false
}

func (s *Searcher) scan() (Boundary, bool) {
	if s.done {
		return Boundary{}, false
	}
	start, end, ok := s.matcher.Match(s.line, s.pos)
	if !ok {
		s.done = true
		return Boundary{}, false
	}
	s.pos = end
	return Boundary{start, end}, true
}

// Peek returns the next boundary without consuming it.
func (s *Searcher) Peek() (Boundary, bool) {
	if s.peeked != nil {
		return *s.peeked, true
	}
	b, ok := s.scan()
	if !ok {
		return Boundary{}, false
	}
	s.slot = b
	s.peeked = &s.slot
	return b, true
}

// Next consumes and returns the next boundary.
func (s *Searcher) Next() (Boundary, bool) {
	if s.peeked != nil {
		b := *s.peeked
		s.peeked = nil
		return b, true
	}
	return s.scan()
}

// Skip discards n boundaries then consumes and returns the one after them,
// i.e., Skip(0) is Next.  It reports false if fewer than n+1 boundaries
// remain.
func (s *Searcher) Skip(n int) (Boundary, bool) {
	for ; n > 0; n-- {
		if _, ok := s.Next(); !ok {
			return Boundary{}, false
		}
	}
	return s.Next()
}
