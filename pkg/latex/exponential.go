package latex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-scilab/pkg/sigfig"
)

// Exponential is a number split into a mantissa string and a power of ten.
type Exponential struct {
	Mantissa string `json:"mantissa" yaml:"mantissa"`
	Exponent int    `json:"exponent" yaml:"exponent"`
}

// Latex renders the pair as `<mantissa> \cdot 10^{<exponent>}`. The exponent
// is printed as a plain integer, without sign padding or leading zeros.
func (e Exponential) Latex() string {
	return e.Mantissa + ` \cdot 10^{` + strconv.Itoa(e.Exponent) + `}`
}

// Split decomposes a scientific-notation string such as "1.056e-13" or
// "1e+16". Strings without an `e` marker, with a mantissa that is not a plain
// decimal or with a non-integer exponent return ErrFormatMismatch.
func Split(s string) (Exponential, error) {
	trimmed := strings.TrimSpace(s)
	idx := strings.IndexByte(trimmed, 'e')
	if idx < 0 {
		return Exponential{}, fmt.Errorf("latex: %q has no exponent: %w", s, ErrFormatMismatch)
	}

	mantissa, rawExp := trimmed[:idx], trimmed[idx+1:]
	if _, ok := parseDecimal(mantissa); !ok {
		return Exponential{}, fmt.Errorf("latex: %q has a malformed mantissa: %w", s, ErrFormatMismatch)
	}
	exp, err := strconv.Atoi(rawExp)
	if err != nil {
		return Exponential{}, fmt.Errorf("latex: %q has a malformed exponent: %w", s, ErrFormatMismatch)
	}
	return Exponential{Mantissa: mantissa, Exponent: exp}, nil
}

// FromString converts s to LaTeX exponential markup when it is written in
// scientific notation and returns it unchanged otherwise.
func FromString(s string) string {
	exp, err := Split(s)
	if err != nil {
		return s
	}
	return exp.Latex()
}

// FromFloat formats x in canonical form and converts it with FromString:
// FromFloat(1e-2) is "0.01" and FromFloat(1056e-16) is `1.056 \cdot 10^{-13}`.
func FromFloat(x float64) string {
	return FromString(sigfig.Canonical(x))
}
