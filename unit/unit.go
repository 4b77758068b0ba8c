package unit

import (
	"fmt"
	"strconv"
)

// Unit is a byte size unit.
type Unit int

const (
	B Unit = iota
	KB
	MB
	GB
	TB
	PB
	KiB
	MiB
	GiB
	TiB
	PiB
)

// Units returns all units, decimal then binary, each in ascending order.
func Units() []Unit {
	return []Unit{B, KB, MB, GB, TB, PB, KiB, MiB, GiB, TiB, PiB}
}

var multipliers = [...]Bytes{
	B:   Byte,
	KB:  Kilobyte,
	MB:  Megabyte,
	GB:  Gigabyte,
	TB:  Terabyte,
	PB:  Petabyte,
	KiB: Kibibyte,
	MiB: Mebibyte,
	GiB: Gibibyte,
	TiB: Tebibyte,
	PiB: Pebibyte,
}

var suffixes = [...]string{
	B:   "B",
	KB:  "KB",
	MB:  "MB",
	GB:  "GB",
	TB:  "TB",
	PB:  "PB",
	KiB: "KiB",
	MiB: "MiB",
	GiB: "GiB",
	TiB: "TiB",
	PiB: "PiB",
}

// Valid returns true if u is one of the defined units.
func (u Unit) Valid() bool {
	return u >= B && u <= PiB
}

// Binary returns true for the units scaled by powers of 1024.
func (u Unit) Binary() bool {
	return u >= KiB && u <= PiB
}

// Multiplier returns the number of bytes in one u. It panics if u is not
// Valid.
func (u Unit) Multiplier() Bytes {
	if !u.Valid() {
		panic("unit: invalid Unit " + strconv.Itoa(int(u)))
	}
	return multipliers[u]
}

// String returns the canonical suffix for the unit, e.g. "KiB".
func (u Unit) String() string {
	if !u.Valid() {
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}
	return suffixes[u]
}

// Parse returns the Unit for a unit token, ignoring ASCII case, so "kib",
// "KIB" and "KiB" all return KiB.
func Parse(token string) (Unit, error) {
	for u, suffix := range suffixes {
		if asciiEqualFold(token, suffix) {
			return Unit(u), nil
		}
	}
	return B, fmt.Errorf("unknown byte size unit: %q", token)
}

// asciiEqualFold is strings.EqualFold restricted to ASCII letters, so
// look-alikes such as U+212A KELVIN SIGN do not match 'k'.
func asciiEqualFold(s, t string) bool {
	if len(s) != len(t) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if lower(s[i]) != lower(t[i]) {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
