package latex_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-scilab/pkg/latex"
)

func TestCommonFactor(t *testing.T) {
	cases := []struct {
		name   string
		val    string
		valExp int
		err    string
		errExp int
		want   string
	}{
		{
			name: "normalizes value below one",
			val:  "0.2123", valExp: 2, err: "0.6", errExp: 1,
			want: `( 2.123 \pm 0.6) \cdot 10^{1}`,
		},
		{
			name: "error rescaled onto value exponent",
			val:  "1.23", valExp: -5, err: "2", errExp: -7,
			want: `( 1.23 \pm 0.02) \cdot 10^{-5}`,
		},
		{
			name: "same exponent",
			val:  "4.5", valExp: 3, err: "0.2", errExp: 3,
			want: `( 4.5 \pm 0.2) \cdot 10^{3}`,
		},
		{
			name: "error exponent larger",
			val:  "2", valExp: -7, err: "5", errExp: -5,
			want: `( 2.0 \pm 500.0) \cdot 10^{-7}`,
		},
		{
			name: "negative value",
			val:  "-0.5", valExp: 0, err: "0.1", errExp: 0,
			want: `( -5.0 \pm 1.0) \cdot 10^{-1}`,
		},
		{
			name: "zero value keeps common exponent",
			val:  "0", valExp: 3, err: "2", errExp: 1,
			want: `( 0.0 \pm 0.02) \cdot 10^{3}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := latex.CommonFactor(tc.val, tc.valExp, tc.err, tc.errExp)
			if err != nil {
				t.Fatalf("common factor: %v", err)
			}
			if got != tc.want {
				t.Fatalf("CommonFactor = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCommonFactor_FormatMismatch(t *testing.T) {
	if _, err := latex.CommonFactor("1e-5", 0, "1", 0); !errors.Is(err, latex.ErrFormatMismatch) {
		t.Fatalf("expected ErrFormatMismatch for scientific mantissa, got %v", err)
	}
	if _, err := latex.CommonFactor("1", 0, "x", 0); !errors.Is(err, latex.ErrFormatMismatch) {
		t.Fatalf("expected ErrFormatMismatch for bad error mantissa, got %v", err)
	}
}

func TestCommonFactor_KeepsTrailingZeros(t *testing.T) {
	got, err := latex.CommonFactor("4.50", -7, "3", -9)
	if err != nil {
		t.Fatalf("common factor: %v", err)
	}
	want := `( 4.50 \pm 0.03) \cdot 10^{-7}`
	if got != want {
		t.Fatalf("CommonFactor = %q, want %q", got, want)
	}
}
