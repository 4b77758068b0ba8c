package pretty

import (
	"strconv"
	"strings"
)

// Float64 formats f with prec digits after the point, then drops trailing
// zeros in the fraction and the point itself if nothing is left after it.
func Float64(f float64, prec int) (s string) {
	s = strconv.FormatFloat(f, 'f', prec, 64)
	if !strings.ContainsRune(s, '.') {
		return
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return
}
