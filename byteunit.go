// Package byteunit converts between human-readable byte size strings, like
// "1.23 GiB", and byte counts.
//
// Decimal units (KB, MB, GB, TB, PB) are powers of 1000 and binary units
// (KiB, MiB, GiB, TiB, PiB) are powers of 1024. Parsing accepts either, in
// any letter case. Automatic formatting always picks a decimal unit.
package byteunit

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is returned for any string that is not a byte size.
var ErrInvalidFormat = errors.New("invalid byte size format")

// ErrOverflow is returned when a size does not fit in a uint64 byte count.
// It wraps ErrInvalidFormat.
var ErrOverflow = fmt.Errorf("%w: size overflows uint64", ErrInvalidFormat)
