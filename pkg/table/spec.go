package table

import (
	"fmt"
	"math"
)

// Column is one table column: a header, its values and optionally one
// uncertainty per value.
type Column struct {
	Key    string    `json:"key" yaml:"key"`
	Header string    `json:"header" yaml:"header"`
	Values []float64 `json:"values" yaml:"values"`
	// Errors is nil for columns without uncertainties.
	Errors []float64 `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// HasErrors reports whether the column carries uncertainties.
func (c Column) HasErrors() bool {
	return c.Errors != nil
}

// Spec describes one table: caption, label, optional float placement
// (e.g. "h", "htbp"), optional rule style name and its columns.
type Spec struct {
	Caption string   `json:"caption" yaml:"caption"`
	Label   string   `json:"label" yaml:"label"`
	Float   string   `json:"float,omitempty" yaml:"float,omitempty"`
	Style   string   `json:"style,omitempty" yaml:"style,omitempty"`
	Columns []Column `json:"columns" yaml:"columns"`
}

// Rows returns the row count, taken from the first column.
func (s Spec) Rows() int {
	if len(s.Columns) == 0 {
		return 0
	}
	return len(s.Columns[0].Values)
}

// Validate checks that the spec has at least one column, that every column
// has as many values as the first, that uncertainty slices match their value
// slices and that all numbers are finite with non-negative uncertainties.
func (s Spec) Validate() error {
	if len(s.Columns) == 0 {
		return fmt.Errorf("table: at least one column is required: %w", ErrInvalidArgument)
	}

	rows := s.Rows()
	for _, col := range s.Columns {
		name := columnName(col)
		if len(col.Values) != rows {
			return fmt.Errorf("table: column %q has %d values, expected %d: %w", name, len(col.Values), rows, ErrInvalidArgument)
		}
		if col.HasErrors() && len(col.Errors) != len(col.Values) {
			return fmt.Errorf("table: column %q has %d errors for %d values: %w", name, len(col.Errors), len(col.Values), ErrInvalidArgument)
		}
		for i, v := range col.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("table: column %q row %d value is not finite: %w", name, i, ErrInvalidArgument)
			}
		}
		for i, e := range col.Errors {
			if math.IsNaN(e) || math.IsInf(e, 0) || e < 0 {
				return fmt.Errorf("table: column %q row %d error %v must be finite and non-negative: %w", name, i, e, ErrInvalidArgument)
			}
		}
	}
	return nil
}

func columnName(col Column) string {
	if col.Key != "" {
		return col.Key
	}
	return col.Header
}
