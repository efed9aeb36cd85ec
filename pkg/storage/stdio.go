package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
)

var ErrStdinConsumed = errors.New("standard input already read")

// Stdio serves stdio:///stdin.  Standard input can be handed out only
// once per run; later requests get ErrStdinConsumed.
type Stdio struct {
	mu    sync.Mutex
	stdin io.Reader
	taken bool
}

var _ Engine = (*Stdio)(nil)

func NewStdio(stdin io.Reader) *Stdio {
	return &Stdio{stdin: stdin}
}

func (s *Stdio) Get(_ context.Context, u *URI) (Reader, error) {
	if u.Path != "/stdin" {
		return nil, fmt.Errorf("unknown stdio path %q", u.Path)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.taken {
		return nil, ErrStdinConsumed
	}
	s.taken = true
	return io.NopCloser(s.stdin), nil
}
