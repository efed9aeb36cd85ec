package ranges

import (
	"testing"

	"github.com/brimdata/zcut/cuterr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		list     string
		expected Set
	}{
		{"1", Set{{1, 1}}},
		{"2,4", Set{{2, 2}, {4, 4}}},
		{"3-5", Set{{3, 5}}},
		{"-3", Set{{1, 3}}},
		{"4-", Set{{4, Unbounded}}},
		{"1 3", Set{{1, 1}, {3, 3}}},
		{"5,1-2", Set{{1, 2}, {5, 5}}},
		{"1-3,2-6", Set{{1, 6}}},
		{"1-2,3-4", Set{{1, 4}}},
		{"2-,5-7", Set{{2, Unbounded}}},
		{"7,3-,1", Set{{1, 1}, {3, Unbounded}}},
		{"1,1,1", Set{{1, 1}}},
	}
	for _, c := range cases {
		t.Run(c.list, func(t *testing.T) {
			set, err := Parse(c.list)
			require.NoError(t, err)
			assert.Equal(t, c.expected, set)
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		list string
		msg  string
	}{
		{"", `range "" was invalid: failed to parse range`},
		{"0", `range "0" was invalid: fields and positions are numbered from 1`},
		{"0-3", `range "0-3" was invalid: fields and positions are numbered from 1`},
		{"a", `range "a" was invalid: failed to parse range`},
		{"1,,3", `range "" was invalid: failed to parse range`},
		{"-", `range "-" was invalid: failed to parse range`},
		{"--3", `range "--3" was invalid: failed to parse range`},
		{"5-2", `range "5-2" was invalid: high end of range less than low end`},
		{"99999999999999999999", `range "99999999999999999999" was invalid: byte/character offset is too large`},
	}
	for _, c := range cases {
		t.Run(c.list, func(t *testing.T) {
			_, err := Parse(c.list)
			require.Error(t, err)
			assert.True(t, cuterr.IsInvalid(err))
			assert.EqualError(t, err, "invalid input: "+c.msg)
		})
	}
}

func TestMergeInvariant(t *testing.T) {
	set := Merge([]Range{{9, 12}, {1, 1}, {3, 4}, {2, 2}, {20, Unbounded}, {11, 15}})
	assert.Equal(t, Set{{1, 4}, {9, 15}, {20, Unbounded}}, set)
	for k := 1; k < len(set); k++ {
		assert.Less(t, set[k-1].High+1, set[k].Low)
	}
	assert.Nil(t, Merge(nil))
}

func TestComplement(t *testing.T) {
	cases := []struct {
		in       Set
		expected Set
	}{
		{Set{{2, 2}}, Set{{1, 1}, {3, Unbounded}}},
		{Set{{1, 3}}, Set{{4, Unbounded}}},
		{Set{{1, Unbounded}}, nil},
		{Set{{3, Unbounded}}, Set{{1, 2}}},
		{Set{{2, 3}, {6, 6}, {9, Unbounded}}, Set{{1, 1}, {4, 5}, {7, 8}}},
		{nil, Set{{1, Unbounded}}},
	}
	for _, c := range cases {
		t.Run(c.in.String(), func(t *testing.T) {
			assert.Equal(t, c.expected, c.in.Complement())
		})
	}
}

func TestComplementTwice(t *testing.T) {
	for _, list := range []string{"1", "2,4", "3-", "1-3,5,9-", "2-7,11-13"} {
		set, err := Parse(list)
		require.NoError(t, err)
		again := Merge(set.Complement().Complement())
		assert.True(t, set.Equal(again), "list %s: got %s", list, again)
	}
}

func TestString(t *testing.T) {
	set, err := Parse("7-,1,3-4")
	require.NoError(t, err)
	assert.Equal(t, "1,3-4,7-", set.String())
}
