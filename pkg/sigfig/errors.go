package sigfig

import "errors"

// ErrInvalidArgument signals a caller contract violation such as a
// non-positive significant digit count, a non-finite input or a negative
// uncertainty.
var ErrInvalidArgument = errors.New("sigfig: invalid argument")
