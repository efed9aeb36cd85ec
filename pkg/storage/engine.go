package storage

import (
	"context"
	"errors"
	"io"
)

type Reader interface {
	io.Reader
	io.Closer
}

var ErrNotSupported = errors.New("method call on storage engine not supported")

// Engine opens input operands for reading.  Inputs are only ever read
// front to back, so no seeking or writing is offered.
type Engine interface {
	Get(context.Context, *URI) (Reader, error)
}

// Router dispatches each URI to the Engine registered for its scheme.
type Router struct {
	engines map[Scheme]Engine
}

var _ Engine = (*Router)(nil)

func NewRouter() *Router {
	return &Router{engines: make(map[Scheme]Engine)}
}

func (r *Router) Enable(scheme Scheme, engine Engine) {
	r.engines[scheme] = engine
}

func (r *Router) Get(ctx context.Context, u *URI) (Reader, error) {
	engine, ok := r.engines[Scheme(u.Scheme)]
	if !ok {
		return nil, ErrNotSupported
	}
	return engine.Get(ctx, u)
}

// NewRemoteEngine returns a Router for the network schemes.
func NewRemoteEngine() *Router {
	router := NewRouter()
	http := NewHTTP()
	router.Enable(HTTPScheme, http)
	router.Enable(HTTPSScheme, http)
	router.Enable(S3Scheme, NewS3())
	return router
}

// NewLocalEngine returns a Router that also reads local files and the
// given standard input.
func NewLocalEngine(stdin io.Reader) *Router {
	router := NewRemoteEngine()
	router.Enable(FileScheme, NewFileSystem())
	router.Enable(StdioScheme, NewStdio(stdin))
	return router
}
