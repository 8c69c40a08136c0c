package latex

import (
	"fmt"
	"strconv"
)

// maxNormalizeShifts bounds the normalization loop in CommonFactor. It is
// wider than the float64 decimal exponent range.
const maxNormalizeShifts = 1100

// CommonFactor rewrites a value and its error, each given as a mantissa and
// a power of ten, as one fragment sharing a single exponential:
// CommonFactor("0.2123", 2, "0.6", 1) returns `( 2.123 \pm 0.6) \cdot 10^{1}`.
//
// Both mantissas are rescaled onto the larger exponent, then the decimal
// point of both is moved right until the value mantissa has a nonzero
// integer part. A zero value mantissa cannot be normalized; the rescaled
// mantissas are emitted with the common exponent unchanged in that case.
func CommonFactor(valMantissa string, valExponent int, errMantissa string, errExponent int) (string, error) {
	val, ok := parseDecimal(valMantissa)
	if !ok {
		return "", fmt.Errorf("latex: value mantissa %q is not a decimal: %w", valMantissa, ErrFormatMismatch)
	}
	errm, ok := parseDecimal(errMantissa)
	if !ok {
		return "", fmt.Errorf("latex: error mantissa %q is not a decimal: %w", errMantissa, ErrFormatMismatch)
	}

	common := max(valExponent, errExponent)
	val = val.divPow10(common - valExponent)
	errm = errm.divPow10(common - errExponent)

	normVal, normErr, normExp := val, errm, common
	for shifts := 0; !val.isZero() && normVal.intPartZero() && shifts < maxNormalizeShifts; shifts++ {
		normVal = normVal.mul10()
		normErr = normErr.mul10()
		normExp--
	}
	if normVal.intPartZero() {
		normVal, normErr, normExp = val, errm, common
	}

	return "( " + normVal.String() + ` \pm ` + normErr.String() + `) \cdot 10^{` + strconv.Itoa(normExp) + `}`, nil
}
