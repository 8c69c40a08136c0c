package sigfig

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxPlaces is past the longest fractional expansion a float64 can have, so
// rounding to more places never changes the value.
const maxPlaces = 1100

// Round rounds num to sig significant digits. It returns the rounded number
// and the decimal places the rounding implies, which is negative when the
// rounding lands left of the decimal point: Round(3234, 1) returns
// (3000, -3) and Round(0.3234, 1) returns (0.3, 1). Zero returns (0, 0).
func Round(num float64, sig int) (float64, int, error) {
	if sig <= 0 {
		return 0, 0, fmt.Errorf("sigfig: significant digits must be positive, got %d: %w", sig, ErrInvalidArgument)
	}
	if !isFinite(num) {
		return 0, 0, fmt.Errorf("sigfig: cannot round %v: %w", num, ErrInvalidArgument)
	}
	if num == 0 {
		return num, 0, nil
	}

	dec := sig - Magnitude(num) - 1
	return RoundPlaces(num, dec), dec, nil
}

// RoundPlaces rounds x to the given number of decimal places. Negative places
// round to a power of ten above the decimal point (-3 rounds to thousands).
// Exact ties go to the even neighbour.
func RoundPlaces(x float64, places int) float64 {
	if x == 0 || !isFinite(x) {
		return x
	}
	if places >= 0 {
		if places > maxPlaces {
			return x
		}
		rounded, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
		if err != nil {
			return x
		}
		return rounded
	}

	pow := math.Pow(10, float64(-places))
	if math.IsInf(pow, 0) {
		return math.Copysign(0, x)
	}
	return math.RoundToEven(x/pow) * pow
}

// Magnitude returns the decimal exponent of x, floor(log10(|x|)), read from
// the shortest decimal representation so exact powers of ten are never off
// by one. Zero and non-finite inputs return 0.
func Magnitude(x float64) int {
	if x == 0 || !isFinite(x) {
		return 0
	}
	s := strconv.FormatFloat(math.Abs(x), 'e', -1, 64)
	idx := strings.IndexByte(s, 'e')
	if idx < 0 {
		return 0
	}
	exp, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		return 0
	}
	return exp
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
