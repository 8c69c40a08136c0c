package sigfig_test

import (
	"errors"
	"math"
	"testing"

	"github.com/goliatone/go-scilab/pkg/sigfig"
)

func TestRound(t *testing.T) {
	cases := []struct {
		name    string
		num     float64
		sig     int
		want    float64
		wantDec int
	}{
		{name: "thousands", num: 3234, sig: 1, want: 3000, wantDec: -3},
		{name: "tenths", num: 0.3234, sig: 1, want: 0.3, wantDec: 1},
		{name: "zero", num: 0, sig: 1, want: 0, wantDec: 0},
		{name: "two digits", num: 0.00456, sig: 2, want: 0.0046, wantDec: 4},
		{name: "negative", num: -0.0212, sig: 1, want: -0.02, wantDec: 2},
		{name: "exact power of ten", num: 1000, sig: 1, want: 1000, wantDec: -3},
		{name: "carries into next decade", num: 9.7, sig: 1, want: 10, wantDec: 0},
		{name: "tie goes to even", num: 2500, sig: 1, want: 2000, wantDec: -3},
		{name: "tiny", num: 1.056e-13, sig: 2, want: 1.1e-13, wantDec: 14},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, dec, err := sigfig.Round(tc.num, tc.sig)
			if err != nil {
				t.Fatalf("round: %v", err)
			}
			if got != tc.want || dec != tc.wantDec {
				t.Fatalf("Round(%v, %d) = (%v, %d), want (%v, %d)", tc.num, tc.sig, got, dec, tc.want, tc.wantDec)
			}
		})
	}
}

func TestRound_InvalidArguments(t *testing.T) {
	if _, _, err := sigfig.Round(12, 0); !errors.Is(err, sigfig.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for zero digits, got %v", err)
	}
	if _, _, err := sigfig.Round(12, -2); !errors.Is(err, sigfig.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for negative digits, got %v", err)
	}
	if _, _, err := sigfig.Round(math.Inf(1), 1); !errors.Is(err, sigfig.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for infinity, got %v", err)
	}
}

func TestRound_SingleLeadingDigit(t *testing.T) {
	for _, num := range []float64{3234, 0.3234, 7.77e-9, -45.5, 1e21, 0.099} {
		got, _, err := sigfig.Round(num, 1)
		if err != nil {
			t.Fatalf("round %v: %v", num, err)
		}
		mantissa := math.Abs(got) / math.Pow(10, float64(sigfig.Magnitude(got)))
		if math.Abs(mantissa-math.Round(mantissa)) > 1e-9 {
			t.Fatalf("Round(%v, 1) = %v keeps more than one significant digit", num, got)
		}
	}
}

func TestRoundPlaces(t *testing.T) {
	cases := []struct {
		x      float64
		places int
		want   float64
	}{
		{x: 2.301245, places: 2, want: 2.3},
		{x: 1234.5, places: -1, want: 1230},
		{x: 0.125, places: 2, want: 0.12},
		{x: 0.375, places: 2, want: 0.38},
		{x: 1.5, places: 0, want: 2},
		{x: 2.5, places: 0, want: 2},
		{x: 123, places: 5, want: 123},
	}
	for _, tc := range cases {
		if got := sigfig.RoundPlaces(tc.x, tc.places); got != tc.want {
			t.Fatalf("RoundPlaces(%v, %d) = %v, want %v", tc.x, tc.places, got, tc.want)
		}
	}
}

func TestMagnitude(t *testing.T) {
	cases := map[float64]int{
		1000:      3,
		999.9:     2,
		0.001:     -3,
		-42:       1,
		1.056e-13: -13,
		0:         0,
	}
	for x, want := range cases {
		if got := sigfig.Magnitude(x); got != want {
			t.Fatalf("Magnitude(%v) = %d, want %d", x, got, want)
		}
	}
}
