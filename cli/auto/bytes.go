// Package auto provides flag values that accept human-friendly sizes.
package auto

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/units"
)

// Bytes is a flag.Value holding a byte count written either as a plain
// integer or with a unit suffix, e.g., "64KiB" or "10MB".
type Bytes struct {
	Bytes uint64
}

func NewBytes(n uint64) Bytes {
	return Bytes{n}
}

func (b Bytes) String() string {
	return units.Base2Bytes(b.Bytes).String()
}

func (b *Bytes) Set(s string) error {
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		b.Bytes = n
		return nil
	}
	n, err := units.ParseStrictBytes(s)
	if err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("negative size: %s", s)
	}
	b.Bytes = uint64(n)
	return nil
}
