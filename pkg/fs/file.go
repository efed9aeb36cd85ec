// Package fs holds the local file helpers shared by the storage engine,
// the logger, and the output layer.
package fs

import (
	"os"

	"github.com/brimdata/zcut/cuterr"
)

// Open opens a regular file for reading.  A directory is reported as a
// cuterr.IsDir error rather than failing later on the first read.
func Open(name string) (*os.File, error) {
	f, err := os.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, cuterr.ErrNotFound()
		}
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, cuterr.E(cuterr.IsDir)
	}
	return f, nil
}

func OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}
