package peeker

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeekDoesNotConsume(t *testing.T) {
	p := NewReader(iotest.OneByteReader(strings.NewReader("0123456789")), 4, 1024)
	b, err := p.Peek(6)
	require.NoError(t, err)
	assert.Equal(t, "012345", string(b))
	all, err := io.ReadAll(p)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(all))
}

func TestPeekShortStream(t *testing.T) {
	p := NewReader(strings.NewReader("ab"), 16, 16)
	b, err := p.Peek(4)
	require.NoError(t, err)
	assert.Equal(t, "ab", string(b))
	all, err := io.ReadAll(p)
	require.NoError(t, err)
	assert.Equal(t, "ab", string(all))
}

func TestPeekEmpty(t *testing.T) {
	p := NewReader(strings.NewReader(""), 16, 16)
	b, err := p.Peek(4)
	require.NoError(t, err)
	assert.Len(t, b, 0)
	n, err := p.Read(make([]byte, 4))
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestPeekOverflow(t *testing.T) {
	p := NewReader(strings.NewReader("0123456789"), 4, 8)
	_, err := p.Peek(9)
	assert.ErrorIs(t, err, ErrBufferOverflow)
}

func TestPeekError(t *testing.T) {
	boom := errors.New("boom")
	p := NewReader(iotest.ErrReader(boom), 4, 8)
	_, err := p.Peek(2)
	assert.ErrorIs(t, err, boom)
	_, err = p.Read(make([]byte, 4))
	assert.ErrorIs(t, err, boom)
}
