package latex

import "errors"

// ErrFormatMismatch reports a string that does not decompose into a decimal
// mantissa and an integer exponent. Callers treat it as "leave unchanged".
var ErrFormatMismatch = errors.New("latex: format mismatch")
