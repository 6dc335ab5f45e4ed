package utils

import (
	"math"
	"strconv"
)

// FormatFloat renders a number in its shortest exact decimal form.
//
// Whole numbers print without a fractional part ("45"), others keep only
// the digits they need ("12.5", "0.99").
//
// Parameters:
//   - v: The number to render
//
// Returns:
//   - string: Decimal representation; "NaN", "+Inf" or "-Inf" for non-finite input
func FormatFloat(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
