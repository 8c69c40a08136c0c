package sigfig

import (
	"fmt"
	"math"
)

// Pair holds a value and its uncertainty as display strings.
type Pair struct {
	Value string `json:"value" yaml:"value"`
	Error string `json:"error" yaml:"error"`
}

// RoundWithError rounds val to the decimal place of the first significant
// digit of err and returns both as strings with the same number of decimal
// places, padding the value with zeros when needed:
// RoundWithError(2.301245, 0.0212) returns {"2.30", "0.02"}.
//
// A zero error leaves both numbers untouched apart from formatting. When the
// rounded error is a whole number both strings are printed as integers.
func RoundWithError(val, err float64) (Pair, error) {
	if !isFinite(val) || !isFinite(err) {
		return Pair{}, fmt.Errorf("sigfig: value %v and error %v must be finite: %w", val, err, ErrInvalidArgument)
	}
	if err < 0 {
		return Pair{}, fmt.Errorf("sigfig: error must not be negative, got %v: %w", err, ErrInvalidArgument)
	}
	if err == 0 {
		return Pair{Value: Canonical(val), Error: Canonical(err)}, nil
	}

	roundedErr, dec, rerr := Round(err, 1)
	if rerr != nil {
		return Pair{}, rerr
	}
	roundedVal := RoundPlaces(val, dec)

	pair := Pair{
		Value: Canonical(roundedVal),
		Error: Canonical(roundedErr),
	}
	if current, want := Decimals(pair.Value), Decimals(pair.Error); current < want {
		pair.Value = padDecimals(pair.Value, want-current)
	}

	if roundedErr == math.Trunc(roundedErr) {
		pair.Value = Integer(roundedVal)
		pair.Error = Integer(roundedErr)
	}
	return pair, nil
}
