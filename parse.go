package byteunit

import (
	"regexp"
	"strconv"

	"github.com/heistp/byteunit/unit"
)

// maxBytes is 2^64, the first byte count that does not fit in a uint64.
const maxBytes = float64(1 << 64)

// sizeRegexp matches a decimal number, optionally followed by ASCII
// whitespace and a unit token. The number has no sign, exponent or leading
// whitespace. Letters are spelled as ASCII classes since (?i) folds Unicode.
var sizeRegexp = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)\s*([kKmMgGtTpP][iI]?[bB]|[bB])?$`)

// ParseSizeUnit splits a size string into its magnitude and unit, without
// converting to bytes. The unit is B if the string has no unit token.
func ParseSizeUnit(s string) (mag float64, u unit.Unit, err error) {
	m := sizeRegexp.FindStringSubmatch(s)
	if m == nil {
		err = ErrInvalidFormat
		return
	}
	if mag, err = strconv.ParseFloat(m[1], 64); err != nil {
		// only reachable with ErrRange, for numbers too long for a float64
		return 0, unit.B, ErrOverflow
	}
	if m[2] == "" {
		return
	}
	if u, err = unit.Parse(m[2]); err != nil {
		return 0, unit.B, ErrInvalidFormat
	}
	return
}

// Parse returns the number of bytes in a size string. Fractional bytes are
// truncated, so "1.23 KiB" is 1259 and not 1260.
//
// Sizes of 2^64 bytes or more fail with ErrOverflow.
func Parse(s string) (n uint64, err error) {
	var mag float64
	var u unit.Unit
	if mag, u, err = ParseSizeUnit(s); err != nil {
		return
	}
	b := mag * float64(u.Multiplier())
	if b >= maxBytes {
		err = ErrOverflow
		return
	}
	n = uint64(b)
	return
}

// ParseTo parses a size string and returns it expressed in u. The byte count
// is truncated as in Parse before the conversion. It panics if u is not Valid.
func ParseTo(s string, u unit.Unit) (f float64, err error) {
	var n uint64
	if n, err = Parse(s); err != nil {
		return
	}
	f = unit.Bytes(n).In(u)
	return
}
