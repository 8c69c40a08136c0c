// Package sigfig rounds measurements to significant digits and aligns a value
// with its uncertainty so both print with the same number of decimal places.
//
// Rounding is round-half-to-even applied to the exact binary value of the
// float64, the same rule strconv uses for fixed-precision formatting. Strings
// produced here use the canonical decimal form described on Canonical.
package sigfig
