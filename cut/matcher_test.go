package cut

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExactMatcher(t *testing.T) {
	m := NewExactMatcher([]byte(","))
	line := []byte("a,,b")
	start, end, ok := m.Match(line, 0)
	assert.True(t, ok)
	assert.Equal(t, [2]int{1, 2}, [2]int{start, end})
	start, end, ok = m.Match(line, 2)
	assert.True(t, ok)
	assert.Equal(t, [2]int{2, 3}, [2]int{start, end})
	_, _, ok = m.Match(line, 3)
	assert.False(t, ok)
	_, _, ok = m.Match(line, 10)
	assert.False(t, ok)
}

func TestExactMatcherMultiByte(t *testing.T) {
	m := NewExactMatcher([]byte("§"))
	line := []byte("a§b§")
	start, end, ok := m.Match(line, 0)
	assert.True(t, ok)
	assert.Equal(t, [2]int{1, 3}, [2]int{start, end})
	start, end, ok = m.Match(line, end)
	assert.True(t, ok)
	assert.Equal(t, [2]int{4, 6}, [2]int{start, end})
}

func TestExactMatcherEmptyPanics(t *testing.T) {
	assert.Panics(t, func() { NewExactMatcher(nil) })
}

func TestWhitespaceMatcher(t *testing.T) {
	var m WhitespaceMatcher
	line := []byte("  a \t b\tc")
	start, end, ok := m.Match(line, 0)
	assert.True(t, ok)
	assert.Equal(t, [2]int{0, 2}, [2]int{start, end})
	start, end, ok = m.Match(line, end)
	assert.True(t, ok)
	assert.Equal(t, [2]int{3, 6}, [2]int{start, end})
	start, end, ok = m.Match(line, end)
	assert.True(t, ok)
	assert.Equal(t, [2]int{7, 8}, [2]int{start, end})
	_, _, ok = m.Match(line, end)
	assert.False(t, ok)
	_, _, ok = m.Match([]byte("abc\n"), 0)
	assert.False(t, ok)
}
