package inputflags

import (
	"bytes"
	"compress/gzip"
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brimdata/zcut/cuterr"
	"github.com/brimdata/zcut/pkg/storage"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipped(t *testing.T, s string) []byte {
	var b bytes.Buffer
	w := gzip.NewWriter(&b)
	_, err := w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return b.Bytes()
}

func lz4ed(t *testing.T, s string) []byte {
	var b bytes.Buffer
	w := lz4.NewWriter(&b)
	_, err := w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return b.Bytes()
}

func newFlags(t *testing.T, args ...string) *Flags {
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.SetFlags(fs)
	require.NoError(t, fs.Parse(args))
	require.NoError(t, f.Init())
	return &f
}

func readFile(t *testing.T, f *Flags, data []byte) string {
	path := filepath.Join(t.TempDir(), "in")
	require.NoError(t, os.WriteFile(path, data, 0644))
	r, err := f.Open(context.Background(), storage.NewLocalEngine(nil), path)
	require.NoError(t, err)
	defer r.Close()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(b)
}

func TestOpenDecompress(t *testing.T) {
	const text = "a\tb\tc\n1\t2\t3\n"
	f := newFlags(t, "-decompress")
	assert.Equal(t, text, readFile(t, f, []byte(text)))
	assert.Equal(t, text, readFile(t, f, gzipped(t, text)))
	assert.Equal(t, text, readFile(t, f, lz4ed(t, text)))
	assert.Equal(t, "", readFile(t, f, nil))
	assert.Equal(t, "\x1f", readFile(t, f, []byte("\x1f")))
	assert.Equal(t, "\x04\x22x\n", readFile(t, f, []byte("\x04\x22x\n")))
}

func TestOpenNoDecompress(t *testing.T) {
	f := newFlags(t)
	assert.False(t, f.Decompress)
	data := gzipped(t, "a\n")
	assert.Equal(t, string(data), readFile(t, f, data))
	assert.Equal(t, "\x1f\x8bnot gzip\n", readFile(t, f, []byte("\x1f\x8bnot gzip\n")))
}

func TestOpenStdin(t *testing.T) {
	f := newFlags(t)
	engine := storage.NewLocalEngine(strings.NewReader("x y\n"))
	r, err := f.Open(context.Background(), engine, "-")
	require.NoError(t, err)
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "x y\n", string(b))
	require.NoError(t, r.Close())
}

func TestOpenMissing(t *testing.T) {
	f := newFlags(t)
	_, err := f.Open(context.Background(), storage.NewLocalEngine(nil), filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, cuterr.NotFound, cuterr.KindOf(err))
}

func TestMaxLine(t *testing.T) {
	f := newFlags(t, "-maxline", "1KiB")
	assert.Equal(t, 1024, f.LineLimit())

	var big Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	big.SetFlags(fs)
	require.NoError(t, fs.Parse([]string{"-maxline", "8GiB"}))
	assert.True(t, cuterr.IsInvalid(big.Init()))
}
