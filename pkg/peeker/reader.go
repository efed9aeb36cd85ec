// Package peeker provides an io.Reader that can look ahead at the start of
// a stream without consuming it, e.g., to sniff a compression header.
package peeker

import (
	"errors"
	"io"
)

var ErrBufferOverflow = errors.New("buffer too big")

type Reader struct {
	reader io.Reader
	limit  int
	buffer []byte
	cursor []byte
	eof    bool
	err    error
}

var _ io.Reader = (*Reader)(nil)

func NewReader(reader io.Reader, size, max int) *Reader {
	b := make([]byte, size)
	return &Reader{
		reader: reader,
		limit:  max,
		buffer: b,
		cursor: b[:0],
	}
}

func (r *Reader) fill(min int) error {
	if min > r.limit {
		return ErrBufferOverflow
	}
	if min > cap(r.buffer) {
		r.buffer = make([]byte, min)
	}
	r.buffer = r.buffer[:cap(r.buffer)]
	clen := copy(r.buffer, r.cursor)
	for clen < min {
		cc, err := r.reader.Read(r.buffer[clen:])
		clen += cc
		if err != nil {
			if err == io.EOF {
				r.eof = true
			} else {
				r.err = err
			}
			break
		}
	}
	r.buffer = r.buffer[:clen]
	r.cursor = r.buffer
	return nil
}

// Peek returns up to n bytes from the front of the stream without
// consuming them.  It returns fewer than n bytes only at end of stream or
// on a read error, which is then returned as well.
func (r *Reader) Peek(n int) ([]byte, error) {
	if n > len(r.cursor) && !r.eof && r.err == nil {
		if err := r.fill(n); err != nil {
			return nil, err
		}
	}
	if n > len(r.cursor) {
		n = len(r.cursor)
	}
	return r.cursor[:n], r.err
}

// Read drains any peeked bytes before reading through to the underlying
// reader.
func (r *Reader) Read(b []byte) (int, error) {
	if len(r.cursor) > 0 {
		n := copy(b, r.cursor)
		r.cursor = r.cursor[n:]
		return n, nil
	}
	if r.err != nil {
		return 0, r.err
	}
	if r.eof {
		return 0, io.EOF
	}
	return r.reader.Read(b)
}
