package storage

import (
	"context"

	"github.com/brimdata/zcut/pkg/fs"
)

type FileSystem struct{}

var _ Engine = (*FileSystem)(nil)

func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

func (*FileSystem) Get(_ context.Context, u *URI) (Reader, error) {
	f, err := fs.Open(u.Filepath())
	if err != nil {
		return nil, err
	}
	return f, nil
}
