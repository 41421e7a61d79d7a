package elixir

import (
	"math"
	"strconv"
)

// Format renders an elixir value with one decimal, rounding half away from
// zero at the tenths digit.
func Format(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', 1, 64)
}
