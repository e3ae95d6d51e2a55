package application

import (
	"math"
	"strconv"
	"strings"
)

// formatResult renders a float the way results are shown to users: integral
// values keep a ".0" suffix and very large or small magnitudes use exponent form.
func formatResult(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// formatCompact renders a float without a trailing ".0" for integral values.
func formatCompact(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatBool renders a bool capitalised, as True or False.
func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
