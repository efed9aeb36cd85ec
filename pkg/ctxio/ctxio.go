// Package ctxio wraps io.Readers so that a long read of an input operand
// stops once its context.Context is done.
package ctxio

import (
	"context"
	"io"
)

type reader struct {
	io.Reader
	ctx context.Context
}

// NewReader returns a reader that fails with ctx.Err() on the first Read
// after ctx is done.
func NewReader(ctx context.Context, r io.Reader) io.Reader {
	return &reader{r, ctx}
}

func (r *reader) Read(p []byte) (n int, err error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.Reader.Read(p)
}
