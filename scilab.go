package scilab

import (
	"github.com/goliatone/go-scilab/pkg/latex"
	"github.com/goliatone/go-scilab/pkg/sigfig"
	"github.com/goliatone/go-scilab/pkg/table"
)

// TableSpec aliases table.Spec so callers can describe tables from the
// top-level module.
type TableSpec = table.Spec

// Column aliases table.Column.
type Column = table.Column

// Style aliases table.Style for callers registering custom rule styles.
type Style = table.Style

// RoundSig rounds num to sig significant digits and reports the decimal
// place the rounding was applied at (negative left of the decimal point).
func RoundSig(num float64, sig int) (float64, int, error) {
	return sigfig.Round(num, sig)
}

// RoundWithError rounds a value to the precision of its uncertainty and
// returns both as aligned strings.
func RoundWithError(value, uncertainty float64) (string, string, error) {
	pair, err := sigfig.RoundWithError(value, uncertainty)
	if err != nil {
		return "", "", err
	}
	return pair.Value, pair.Error, nil
}

// ExponentialToLatex formats x canonically, turning scientific notation into
// `m \cdot 10^{n}` markup.
func ExponentialToLatex(x float64) string {
	return latex.FromFloat(x)
}

// CommonFactor factors a shared power of ten out of a value/error pair given
// as mantissas and exponents.
func CommonFactor(valMantissa string, valExponent int, errMantissa string, errExponent int) (string, error) {
	return latex.CommonFactor(valMantissa, valExponent, errMantissa, errExponent)
}

// NewAssembler exposes the table assembler constructor from the top-level
// module.
func NewAssembler(options ...table.Option) (*table.Assembler, error) {
	return table.New(options...)
}

// LatexTable renders spec as a LaTeX table environment. It is the simplest
// entry point for callers that just want the markup.
func LatexTable(spec TableSpec, options ...table.Option) (string, error) {
	assembler, err := table.New(options...)
	if err != nil {
		return "", err
	}
	return assembler.Render(spec)
}
