package byteunit

import (
	"strconv"

	"github.com/heistp/byteunit/pretty"
	"github.com/heistp/byteunit/unit"
)

// formatPrec is the number of fractional digits sizes are rounded to.
const formatPrec = 2

// Format formats a byte count in the largest decimal unit it has at least
// one of, e.g. 1230000 is "1.23 MB". Binary units are never chosen.
func Format(n uint64) string {
	return FormatTo(n, AutoUnit(n))
}

// FormatTo formats a byte count in the given unit, rounded to two fractional
// digits with trailing zeros dropped, e.g. 500 in KB is "0.5 KB". A Unit that
// is not Valid leaves the count unscaled, e.g. "1 Unit(99)".
func FormatTo(n uint64, u unit.Unit) string {
	if !u.Valid() {
		return strconv.FormatUint(n, 10) + " " + u.String()
	}
	return pretty.Float64(unit.Bytes(n).In(u), formatPrec) + " " + u.String()
}

// AutoUnit returns the unit that Format uses for n.
func AutoUnit(n uint64) unit.Unit {
	switch b := unit.Bytes(n); {
	case b < unit.Kilobyte:
		return unit.B
	case b < unit.Megabyte:
		return unit.KB
	case b < unit.Gigabyte:
		return unit.MB
	case b < unit.Terabyte:
		return unit.GB
	case b < unit.Petabyte:
		return unit.TB
	default:
		return unit.PB
	}
}
