package table

import (
	"errors"
	"math"

	"github.com/apex/log"

	"github.com/goliatone/go-scilab/pkg/latex"
	"github.com/goliatone/go-scilab/pkg/sigfig"
)

// integralLimit is the magnitude from which canonical formatting switches to
// scientific notation; integral values below it print without a fraction.
const integralLimit = 1e16

// FormatCell renders a value and its uncertainty as an inline math cell:
// `$2.30 \pm 0.02$`, or `$( 1.23 \pm 0.02) \cdot 10^{-5}$` when both sides
// are exponential.
func FormatCell(value, uncertainty float64) (string, error) {
	return formatCell(value, uncertainty, nil)
}

// FormatValue renders a bare value as an inline math cell. Integral values
// print without a fractional part; scientific values become LaTeX
// exponentials.
func FormatValue(value float64) string {
	if value == math.Trunc(value) && math.Abs(value) < integralLimit {
		return "$" + sigfig.Integer(value) + "$"
	}
	return "$" + latex.FromFloat(value) + "$"
}

func formatCell(value, uncertainty float64, logger log.Interface) (string, error) {
	pair, err := sigfig.RoundWithError(value, uncertainty)
	if err != nil {
		return "", err
	}

	valExp, valErr := latex.Split(pair.Value)
	errExp, errErr := latex.Split(pair.Error)
	switch {
	case valErr == nil && errErr == nil:
		fragment, err := latex.CommonFactor(valExp.Mantissa, valExp.Exponent, errExp.Mantissa, errExp.Exponent)
		if err != nil {
			return "", err
		}
		return "$" + fragment + "$", nil
	case (valErr == nil) != (errErr == nil) && logger != nil:
		// Only one side is exponential, so there is no shared power of ten.
		logger.WithFields(log.Fields{
			"value":       pair.Value,
			"uncertainty": pair.Error,
		}).WithError(errors.Join(valErr, errErr)).Debug("common factor skipped")
	}

	return "$" + latex.FromString(pair.Value) + ` \pm ` + latex.FromString(pair.Error) + "$", nil
}
