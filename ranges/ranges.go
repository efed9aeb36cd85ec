// Package ranges implements the column lists used to select bytes,
// characters, or fields.  A list such as "1,3-5,7-" is parsed into a Set
// of inclusive, 1-indexed Ranges that is sorted by Low and merged so that
// no two ranges overlap or abut.  The extractors in package cut depend on
// this canonical form to walk a Set once, left to right.
package ranges

import (
	"math"
	"strconv"
	"strings"

	"github.com/brimdata/zcut/cuterr"
	"golang.org/x/exp/slices"
)

// Unbounded is the High value of an open-ended range such as "3-".
const Unbounded = math.MaxInt

type Range struct {
	Low  int
	High int
}

func (r Range) IsUnbounded() bool {
	return r.High == Unbounded
}

func (r Range) String() string {
	switch {
	case r.Low == r.High:
		return strconv.Itoa(r.Low)
	case r.IsUnbounded():
		return strconv.Itoa(r.Low) + "-"
	}
	return strconv.Itoa(r.Low) + "-" + strconv.Itoa(r.High)
}

// A Set is a canonical sequence of Ranges: strictly ascending by Low,
// with Set[i].High+1 < Set[i+1].Low for every i.
type Set []Range

// Parse parses a list of ranges separated by commas or spaces.  Each item
// is a single position N, a range N-M, a prefix -M (meaning 1-M), or an
// open-ended N-.  The result is sorted and merged.
func Parse(list string) (Set, error) {
	var set Set
	for _, item := range splitList(list) {
		r, err := parseRange(item)
		if err != nil {
			return nil, cuterr.ErrInvalid("range %q was invalid: %s", item, err)
		}
		set = append(set, r)
	}
	return Merge(set), nil
}

// splitList splits on commas and spaces, keeping empty items so that
// "1,,3" and "" are rejected rather than silently ignored.
func splitList(list string) []string {
	var items []string
	for {
		k := strings.IndexAny(list, ", ")
		if k < 0 {
			return append(items, list)
		}
		items = append(items, list[:k])
		list = list[k+1:]
	}
}

type parseError string

func (p parseError) Error() string {
	return string(p)
}

const (
	errNotNumbered = parseError("fields and positions are numbered from 1")
	errTooLarge    = parseError("byte/character offset is too large")
	errSyntax      = parseError("failed to parse range")
	errBackwards   = parseError("high end of range less than low end")
)

func parsePosition(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return 0, errTooLarge
		}
		return 0, errSyntax
	}
	if n == 0 {
		return 0, errNotNumbered
	}
	if n >= Unbounded {
		return 0, errTooLarge
	}
	return int(n), nil
}

func parseRange(s string) (Range, error) {
	dash := strings.IndexByte(s, '-')
	switch {
	case dash < 0:
		n, err := parsePosition(s)
		if err != nil {
			return Range{}, err
		}
		return Range{n, n}, nil
	case dash == 0:
		high, err := parsePosition(s[1:])
		if err != nil {
			return Range{}, err
		}
		return Range{1, high}, nil
	case dash == len(s)-1:
		low, err := parsePosition(s[:dash])
		if err != nil {
			return Range{}, err
		}
		return Range{low, Unbounded}, nil
	}
	high, err := parsePosition(s[dash+1:])
	if err != nil {
		return Range{}, err
	}
	low, err := parsePosition(s[:dash])
	if err != nil {
		return Range{}, err
	}
	if low > high {
		return Range{}, errBackwards
	}
	return Range{low, high}, nil
}

// Merge sorts ranges by Low and coalesces overlapping or adjacent ranges
// into the canonical Set form.
func Merge(ranges []Range) Set {
	if len(ranges) == 0 {
		return nil
	}
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b Range) bool {
		return a.Low < b.Low
	})
	out := Set{sorted[0]}
	for _, r := range sorted[1:] {
		last := &out[len(out)-1]
		if last.High == Unbounded || r.Low <= last.High+1 {
			if r.High > last.High {
				last.High = r.High
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

// Complement returns the positions not covered by s, from 1 up through an
// open-ended tail when s itself is bounded.
func (s Set) Complement() Set {
	var out Set
	var prevHigh int
	for _, r := range s {
		if r.Low > prevHigh+1 {
			out = append(out, Range{prevHigh + 1, r.Low - 1})
		}
		prevHigh = r.High
	}
	if prevHigh != Unbounded {
		out = append(out, Range{prevHigh + 1, Unbounded})
	}
	return out
}

// Equal reports whether s and other hold the same ranges.
func (s Set) Equal(other Set) bool {
	return slices.Equal(s, other)
}

func (s Set) String() string {
	items := make([]string, 0, len(s))
	for _, r := range s {
		items = append(items, r.String())
	}
	return strings.Join(items, ",")
}
