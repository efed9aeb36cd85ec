package cut

import "github.com/brimdata/zcut/ranges"

// fieldCursor is the per-line scan state shared by both field extractors.
// It is reset at the start of every line.
type fieldCursor struct {
	searcher Searcher
	line     []byte
	// pos is the 1-based index of the field the scan currently sits at.
	pos int
	// start is the offset of the first byte not yet emitted or skipped.
	start int
	// emitted is set once anything has been written for the line.
	emitted bool
}

func (c *fieldCursor) reset(m Matcher, line []byte) {
	c.searcher.Reset(m, line)
	c.line = line
	c.pos = 1
	c.start = 0
	c.emitted = false
}

// delimited reports whether the line holds at least one delimiter.
func (c *fieldCursor) delimited() bool {
	_, ok := c.searcher.Peek()
	return ok
}

// seek advances to just before field low.  It returns the boundary that
// precedes that field or false if the line has fewer fields.
func (c *fieldCursor) seek(low int) (Boundary, bool) {
	return c.searcher.Skip(low - c.pos - 1)
}

func passThrough(dst, line []byte, onlyDelimited bool, term byte) []byte {
	if onlyDelimited {
		return dst
	}
	dst = append(dst, line...)
	return terminate(dst, line, term)
}

// FieldsExplicitExtractor separates selected fields with a configured
// output delimiter, so each field is located and emitted individually.
type FieldsExplicitExtractor struct {
	matcher       Matcher
	ranges        ranges.Set
	delim         []byte
	onlyDelimited bool
	term          byte
	cursor        fieldCursor
}

var _ Extractor = (*FieldsExplicitExtractor)(nil)

func NewFieldsExplicitExtractor(m Matcher, set ranges.Set, outDelim string, onlyDelimited bool, term byte) *FieldsExplicitExtractor {
	return &FieldsExplicitExtractor{
		matcher:       m,
		ranges:        set,
		delim:         []byte(outDelim),
		onlyDelimited: onlyDelimited,
		term:          term,
	}
}

func (f *FieldsExplicitExtractor) Extract(dst, line []byte) []byte {
	c := &f.cursor
	c.reset(f.matcher, line)
	if !c.delimited() {
		return passThrough(dst, line, f.onlyDelimited, f.term)
	}
	for _, r := range f.ranges {
		if r.Low > c.pos {
			b, ok := c.seek(r.Low)
			if !ok {
				break
			}
			c.start = b.End
		}
		var exhausted bool
		if dst, exhausted = f.emitRange(dst, r); exhausted {
			return terminate(dst, line, f.term)
		}
	}
	return append(dst, f.term)
}

// emitRange writes fields r.Low through r.High.  It reports true when the
// line ran out of delimiters, in which case the remainder of the line has
// been written and no further range may be processed.
func (f *FieldsExplicitExtractor) emitRange(dst []byte, r ranges.Range) ([]byte, bool) {
	c := &f.cursor
	for k := 0; k <= r.High-r.Low; k++ {
		if c.emitted {
			dst = append(dst, f.delim...)
		}
		c.emitted = true
		b, ok := c.searcher.Next()
		if !ok {
			return append(dst, c.line[c.start:]...), true
		}
		dst = append(dst, c.line[c.start:b.Start]...)
		c.start = b.End
		c.pos = r.Low + k + 1
	}
	return dst, false
}

// FieldsImplicitExtractor reproduces the input delimiter between selected
// fields.  Fields inside one range are copied as a single span, delimiters
// included; only the gaps between ranges are cut out.
type FieldsImplicitExtractor struct {
	matcher       Matcher
	ranges        ranges.Set
	onlyDelimited bool
	term          byte
	cursor        fieldCursor
}

var _ Extractor = (*FieldsImplicitExtractor)(nil)

func NewFieldsImplicitExtractor(m Matcher, set ranges.Set, onlyDelimited bool, term byte) *FieldsImplicitExtractor {
	return &FieldsImplicitExtractor{
		matcher:       m,
		ranges:        set,
		onlyDelimited: onlyDelimited,
		term:          term,
	}
}

func (f *FieldsImplicitExtractor) Extract(dst, line []byte) []byte {
	c := &f.cursor
	c.reset(f.matcher, line)
	if !c.delimited() {
		return passThrough(dst, line, f.onlyDelimited, f.term)
	}
	for _, r := range f.ranges {
		if r.Low > c.pos {
			b, ok := c.seek(r.Low)
			if !ok {
				break
			}
			// Keep one delimiter in front of this range only when
			// something precedes it in the output.
			if c.emitted {
				c.start = b.Start
			} else {
				c.start = b.End
			}
		}
		b, ok := c.searcher.Skip(r.High - r.Low)
		if !ok {
			dst = append(dst, line[c.start:]...)
			return terminate(dst, line, f.term)
		}
		dst = append(dst, line[c.start:b.Start]...)
		c.emitted = true
		c.start = b.Start
		c.pos = r.High + 1
	}
	return append(dst, f.term)
}
