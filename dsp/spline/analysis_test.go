package spline

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-bspline/dsp/core"
)

func TestAnalyzeInterpolatingPrefilters(t *testing.T) {
	tests := []struct {
		order   Order
		nyquist float64
	}{
		{Cubic, 3},
		{Quadratic, 2},
	}
	for _, tt := range tests {
		a, err := AnalyzePrefilter(tt.order, 64)
		if err != nil {
			t.Fatalf("%v: %v", tt.order, err)
		}
		if len(a.Magnitude) != 33 || len(a.Power) != 33 {
			t.Fatalf("%v: %d bins, want 33", tt.order, len(a.Magnitude))
		}
		if math.Abs(a.DCGain-1) > 1e-9 {
			t.Fatalf("%v: DC gain = %v, want 1", tt.order, a.DCGain)
		}
		if math.Abs(a.NyquistGain-tt.nyquist) > 1e-9 {
			t.Fatalf("%v: Nyquist gain = %v, want %v", tt.order, a.NyquistGain, tt.nyquist)
		}
		if math.Abs(a.Peak-tt.nyquist) > 1e-9 {
			t.Fatalf("%v: peak = %v, want %v", tt.order, a.Peak, tt.nyquist)
		}
		if a.InterpolationError > 1e-9 {
			t.Fatalf("%v: interpolation error = %v", tt.order, a.InterpolationError)
		}
		if len(a.Terms) != 1 || a.Terms[0] < 2 {
			t.Fatalf("%v: terms = %v", tt.order, a.Terms)
		}
		for k, p := range a.Power {
			if math.Abs(p-a.Magnitude[k]*a.Magnitude[k]) > 1e-9 {
				t.Fatalf("%v: power[%d] = %v, magnitude %v", tt.order, k, p, a.Magnitude[k])
			}
		}
	}
}

func TestAnalyzeSmoothingMatchesClosedForm(t *testing.T) {
	a, err := AnalyzePrefilter(Cubic, 256, core.WithLambda(0.5))
	if err != nil {
		t.Fatalf("AnalyzePrefilter: %v", err)
	}
	for k, m := range a.Magnitude {
		theta := 2 * math.Pi * float64(k) / 256
		if want := a.Prefilter.Response(theta); math.Abs(m-want) > 1e-8 {
			t.Fatalf("bin %d: |H| = %v, want %v", k, m, want)
		}
	}
	if a.InterpolationError < 0.1 {
		t.Fatalf("smoothing deviation = %v, want substantial", a.InterpolationError)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	for _, n := range []int{0, 4, 12, 100} {
		if _, err := AnalyzePrefilter(Cubic, n); !errors.Is(err, ErrSize) {
			t.Fatalf("n=%d: err = %v, want ErrSize", n, err)
		}
	}
	if _, err := AnalyzePrefilter(Quadratic, 16, core.WithLambda(1)); !errors.Is(err, core.ErrNotImplemented) {
		t.Fatalf("err = %v, want ErrNotImplemented", err)
	}
}
