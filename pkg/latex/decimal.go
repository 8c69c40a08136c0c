package latex

import "strings"

// decimal is an exact base-10 number: coef * 10^-scale. Shifting the decimal
// point only moves scale, so mantissas never pick up binary rounding noise.
type decimal struct {
	neg   bool
	coef  string
	scale int
}

// parseDecimal accepts an optional sign, digits and at most one decimal
// point, with at least one digit overall.
func parseDecimal(s string) (decimal, bool) {
	var d decimal
	switch {
	case strings.HasPrefix(s, "-"):
		d.neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	intPart, fracPart := s, ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart, fracPart = s[:idx], s[idx+1:]
	}
	if intPart == "" && fracPart == "" {
		return decimal{}, false
	}
	if !allDigits(intPart) || !allDigits(fracPart) {
		return decimal{}, false
	}

	d.coef = strings.TrimLeft(intPart+fracPart, "0")
	if d.coef == "" {
		d.coef = "0"
	}
	d.scale = len(fracPart)
	return d, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (d decimal) isZero() bool {
	return d.coef == "0"
}

// intPartZero reports whether |d| < 1.
func (d decimal) intPartZero() bool {
	return d.isZero() || len(d.coef) <= d.scale
}

// divPow10 divides by 10^n.
func (d decimal) divPow10(n int) decimal {
	if n > 0 {
		d.scale += n
	}
	return d
}

// mul10 multiplies by ten.
func (d decimal) mul10() decimal {
	switch {
	case d.scale > 0:
		d.scale--
	case !d.isZero():
		d.coef += "0"
	}
	return d
}

// String prints fixed notation with exactly scale fractional digits, or one
// zero digit when scale is zero ("2.123", "4.50", "6.0"). Trailing zeros are
// kept because they carry precision.
func (d decimal) String() string {
	digits := d.coef
	if len(digits) <= d.scale {
		digits = strings.Repeat("0", d.scale-len(digits)+1) + digits
	}
	split := len(digits) - d.scale
	intPart, fracPart := digits[:split], digits[split:]
	if fracPart == "" {
		fracPart = "0"
	}

	out := intPart + "." + fracPart
	if d.neg && !d.isZero() {
		out = "-" + out
	}
	return out
}
