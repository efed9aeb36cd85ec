package inputflags

import (
	"compress/gzip"
	"context"
	"flag"
	"fmt"
	"io"
	"math"

	"github.com/brimdata/zcut/cli/auto"
	"github.com/brimdata/zcut/cuterr"
	"github.com/brimdata/zcut/pkg/peeker"
	"github.com/brimdata/zcut/pkg/storage"
	"github.com/pierrec/lz4/v4"
	"go.uber.org/multierr"
)

// RFC 1952, Section 2.3.1
var gzipMagic = []byte{0x1f, 0x8b}

// LZ4 frame format, Section "General Structure of LZ4 Frame format"
var lz4Magic = []byte{0x04, 0x22, 0x4d, 0x18}

type Flags struct {
	Decompress bool
	MaxLine    auto.Bytes
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&f.Decompress, "decompress", false, "decompress gzip and lz4 input (input bytes are otherwise passed through unchanged)")
	fs.Var(&f.MaxLine, "maxline", "maximum length of an input line, as '1MiB' or '64KB', etc. (0 for no limit)")
}

func (f *Flags) Init() error {
	if f.MaxLine.Bytes > math.MaxInt32 {
		return cuterr.ErrInvalid("-maxline: %s is too large", f.MaxLine)
	}
	return nil
}

// LineLimit returns the -maxline value for a cut.Processor.
func (f *Flags) LineLimit() int {
	return int(f.MaxLine.Bytes)
}

// Open opens the operand path through engine, unwrapping a gzip or lz4
// stream when -decompress is set.
func (f *Flags) Open(ctx context.Context, engine storage.Engine, path string) (io.ReadCloser, error) {
	u, err := storage.ParseURI(path)
	if err != nil {
		return nil, err
	}
	r, err := engine.Get(ctx, u)
	if err != nil {
		return nil, err
	}
	if !f.Decompress {
		return r, nil
	}
	rc, err := decompress(r)
	if err != nil {
		r.Close()
		return nil, err
	}
	return rc, nil
}

func decompress(r storage.Reader) (io.ReadCloser, error) {
	p := peeker.NewReader(r, len(lz4Magic), len(lz4Magic))
	// Peek at a single byte first so plain text isn't held up waiting
	// for a full magic number.
	b, err := p.Peek(1)
	if err != nil {
		return nil, cuterr.E(cuterr.IO, err)
	}
	if len(b) == 0 {
		return &readCloser{p, r}, nil
	}
	switch b[0] {
	case gzipMagic[0]:
		if !hasMagic(p, gzipMagic) {
			break
		}
		zr, err := gzip.NewReader(p)
		if err != nil {
			return nil, cuterr.E(cuterr.IO, fmt.Errorf("gzip: %w", err))
		}
		return &readCloser{zr, closers{zr, r}}, nil
	case lz4Magic[0]:
		if !hasMagic(p, lz4Magic) {
			break
		}
		return &readCloser{lz4.NewReader(p), r}, nil
	}
	return &readCloser{p, r}, nil
}

func hasMagic(p *peeker.Reader, magic []byte) bool {
	b, _ := p.Peek(len(magic))
	return string(b) == string(magic)
}

type readCloser struct {
	io.Reader
	io.Closer
}

type closers []io.Closer

func (c closers) Close() error {
	var err error
	for _, closer := range c {
		err = multierr.Append(err, closer.Close())
	}
	return err
}
