// Package skim provides a record scanner that splits a stream on a single
// terminator byte.  Unlike bufio.Scanner it hands back each record with its
// terminator attached, so a caller can tell a terminated record from a
// final record that ended at EOF without one.
package skim

import (
	"bytes"
	"errors"
	"io"
)

var ErrLineTooLong = errors.New("line too long")

type Stats struct {
	Bytes int64
	Lines int64
}

type Scanner struct {
	Stats
	reader io.Reader
	buffer []byte
	window []byte
	limit  int
	term   byte
	eof    bool
}

// NewScanner returns a Scanner reading from r into buf.  The buffer grows
// as needed to hold a record, up to limit bytes when limit is positive.
func NewScanner(r io.Reader, buf []byte, limit int, term byte) *Scanner {
	if len(buf) == 0 {
		buf = make([]byte, 4096)
	}
	return &Scanner{
		reader: r,
		buffer: buf,
		window: buf[:0],
		limit:  limit,
		term:   term,
	}
}

// ScanLine returns the next record including its terminator, or the
// unterminated tail of the stream.  It returns nil at end of input.  The
// returned slice is valid only until the next call to ScanLine.
func (s *Scanner) ScanLine() ([]byte, error) {
	for {
		if k := bytes.IndexByte(s.window, s.term); k >= 0 {
			if s.tooLong(k) {
				return nil, ErrLineTooLong
			}
			return s.advance(k + 1), nil
		}
		if s.tooLong(len(s.window)) {
			return nil, ErrLineTooLong
		}
		if s.eof {
			if len(s.window) == 0 {
				return nil, nil
			}
			return s.advance(len(s.window)), nil
		}
		if err := s.fill(); err != nil {
			return nil, err
		}
	}
}

func (s *Scanner) advance(n int) []byte {
	line := s.window[:n]
	s.window = s.window[n:]
	s.Lines++
	return line
}

// tooLong reports whether a record of n bytes, not counting its
// terminator, exceeds the limit.
func (s *Scanner) tooLong(n int) bool {
	return s.limit > 0 && n > s.limit
}

func (s *Scanner) fill() error {
	if len(s.window) == len(s.buffer) {
		size := 2 * len(s.buffer)
		// Room for a record at the limit plus its terminator.
		if s.limit > 0 && size > s.limit+1 {
			size = s.limit + 1
		}
		buffer := make([]byte, size)
		copy(buffer, s.window)
		s.buffer = buffer
	} else {
		copy(s.buffer, s.window)
	}
	n := len(s.window)
	for {
		cc, err := s.reader.Read(s.buffer[n:])
		n += cc
		s.Bytes += int64(cc)
		if err == io.EOF {
			s.eof = true
			break
		}
		if err != nil {
			s.window = s.buffer[:n]
			return err
		}
		if cc > 0 {
			break
		}
	}
	s.window = s.buffer[:n]
	return nil
}

// Buffer returns the scanner's current buffer, which may have grown beyond
// the one passed to NewScanner.
func (s *Scanner) Buffer() []byte {
	return s.buffer
}
