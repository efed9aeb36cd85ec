package cut

import "github.com/brimdata/zcut/ranges"

type BytesExtractor struct {
	ranges    ranges.Set
	delim     []byte
	delimited bool
	term      byte
}

var _ Extractor = (*BytesExtractor)(nil)

func NewBytesExtractor(set ranges.Set, outDelim *string, term byte) *BytesExtractor {
	b := &BytesExtractor{ranges: set, term: term}
	if outDelim != nil {
		b.delim = []byte(*outDelim)
		b.delimited = true
	}
	return b
}

func (b *BytesExtractor) Extract(dst, line []byte) []byte {
	if hasTerminator(line, b.term) {
		line = line[:len(line)-1]
	}
	var printDelim bool
	for _, r := range b.ranges {
		// The set is sorted so no later range can start inside the line.
		if r.Low > len(line) {
			break
		}
		if printDelim {
			dst = append(dst, b.delim...)
		} else if b.delimited {
			printDelim = true
		}
		high := r.High
		if high > len(line) {
			high = len(line)
		}
		dst = append(dst, line[r.Low-1:high]...)
	}
	return append(dst, b.term)
}
