// Package cut selects byte, character, or field columns from lines of
// input.  A Mode describes what to select; NewExtractor turns it into an
// Extractor that renders one line at a time; a Processor drives an
// Extractor over a whole stream.
package cut

import (
	"github.com/brimdata/zcut/cuterr"
	"github.com/brimdata/zcut/ranges"
)

type Kind int

const (
	Bytes Kind = iota
	Characters
	Fields
)

func (k Kind) String() string {
	switch k {
	case Bytes:
		return "bytes"
	case Characters:
		return "characters"
	case Fields:
		return "fields"
	}
	return "unknown"
}

const (
	Newline = '\n'
	NUL     = 0
)

// Mode is the resolved configuration of a run.  Characters are treated as
// bytes: no decoding takes place in any mode.
type Mode struct {
	Kind   Kind
	Ranges ranges.Set
	// Delimiter separates fields in Fields mode.  It is ignored when
	// Whitespace is set.
	Delimiter  []byte
	Whitespace bool
	// OutputDelimiter, when non-nil, is written between selected spans.
	// When nil, byte spans are concatenated and fields are separated by
	// the input delimiter text as it appears in the line.
	OutputDelimiter *string
	OnlyDelimited   bool
	Terminator      byte
}

// An Extractor appends the rendering of line to dst and returns the
// extended slice.  The line includes its terminator byte unless it is the
// final record of a stream that lacked one.  A suppressed line appends
// nothing, not even a terminator.
type Extractor interface {
	Extract(dst, line []byte) []byte
}

func NewExtractor(mode Mode) (Extractor, error) {
	switch mode.Kind {
	case Bytes, Characters:
		return NewBytesExtractor(mode.Ranges, mode.OutputDelimiter, mode.Terminator), nil
	case Fields:
		if mode.Whitespace {
			out := "\t"
			if mode.OutputDelimiter != nil {
				out = *mode.OutputDelimiter
			}
			return NewFieldsExplicitExtractor(WhitespaceMatcher{}, mode.Ranges, out, mode.OnlyDelimited, mode.Terminator), nil
		}
		if len(mode.Delimiter) == 0 {
			return nil, cuterr.ErrInvalid("empty field delimiter")
		}
		matcher := NewExactMatcher(mode.Delimiter)
		if mode.OutputDelimiter != nil {
			return NewFieldsExplicitExtractor(matcher, mode.Ranges, *mode.OutputDelimiter, mode.OnlyDelimited, mode.Terminator), nil
		}
		return NewFieldsImplicitExtractor(matcher, mode.Ranges, mode.OnlyDelimited, mode.Terminator), nil
	}
	return nil, cuterr.ErrInvalid("unknown mode %d", int(mode.Kind))
}

func hasTerminator(line []byte, term byte) bool {
	return len(line) > 0 && line[len(line)-1] == term
}

// terminate appends term unless line already ended with it, which means
// the terminator was emitted along with the line's final field.
func terminate(dst, line []byte, term byte) []byte {
	if hasTerminator(line, term) {
		return dst
	}
	return append(dst, term)
}
