package sigfig

import (
	"math"
	"strconv"
	"strings"
)

// Canonical formats x in its canonical decimal form: the shortest digits that
// round-trip, in fixed notation with at least one fractional digit when the
// decimal exponent lies in [-4, 16) ("3000.0", "0.02"), otherwise in
// scientific notation with a signed two-digit minimum exponent ("1e-05",
// "1.056e-13", "1e+16").
func Canonical(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	case x == 0:
		if math.Signbit(x) {
			return "-0.0"
		}
		return "0.0"
	}

	if exp := Magnitude(x); exp < -4 || exp >= 16 {
		return strconv.FormatFloat(x, 'e', -1, 64)
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// Integer formats the integral part of x without a decimal point. Negative
// zero prints as "0".
func Integer(x float64) string {
	t := math.Trunc(x)
	if t == 0 || math.IsNaN(t) {
		return "0"
	}
	return strconv.FormatFloat(t, 'f', 0, 64)
}

// Decimals counts the decimal places a formatted number carries. A string
// without a decimal point carries none; for scientific notation the mantissa
// digits are offset by the exponent ("1.5e-05" carries 6). The count never
// goes below zero.
func Decimals(s string) int {
	mantissa, exp := splitExponent(s)
	frac := 0
	if idx := strings.IndexByte(mantissa, '.'); idx >= 0 {
		frac = len(mantissa) - idx - 1
	}
	if d := frac - exp; d > 0 {
		return d
	}
	return 0
}

// padDecimals appends n trailing zeros to the mantissa of s, inserting a
// decimal point when there is none and keeping any exponent suffix.
func padDecimals(s string, n int) string {
	if n <= 0 {
		return s
	}
	mantissa, suffix := s, ""
	if idx := strings.IndexAny(s, "eE"); idx >= 0 {
		mantissa, suffix = s[:idx], s[idx:]
	}
	if !strings.ContainsRune(mantissa, '.') {
		mantissa += "."
	}
	return mantissa + strings.Repeat("0", n) + suffix
}

func splitExponent(s string) (string, int) {
	idx := strings.IndexAny(s, "eE")
	if idx < 0 {
		return s, 0
	}
	exp, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		return s[:idx], 0
	}
	return s[:idx], exp
}
