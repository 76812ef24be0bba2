package spline

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func TestKernel(t *testing.T) {
	for _, order := range []Order{Quadratic, Cubic} {
		k, err := Kernel(order)
		if err != nil {
			t.Fatalf("%v: %v", order, err)
		}
		if sum := k[0] + k[1] + k[2]; math.Abs(sum-1) > 1e-15 {
			t.Fatalf("%v kernel sums to %v", order, sum)
		}
	}
	if _, err := Kernel(Order(1)); !errors.Is(err, ErrOrder) {
		t.Fatalf("err = %v, want ErrOrder", err)
	}
}

func TestInterpolatingPrefilters(t *testing.T) {
	tests := []struct {
		order Order
		pole  float64
		b     func(theta float64) float64
	}{
		{Cubic, CubicPole, func(th float64) float64 { return (4 + 2*math.Cos(th)) / 6 }},
		{Quadratic, QuadraticPole, func(th float64) float64 { return (6 + 2*math.Cos(th)) / 8 }},
	}

	for _, tt := range tests {
		pf, err := NewPrefilter(tt.order, 0)
		if err != nil {
			t.Fatalf("%v: %v", tt.order, err)
		}
		poles := pf.Poles()
		if len(poles) != 1 || poles[0] != complex(tt.pole, 0) {
			t.Fatalf("%v: poles = %v, want [%v]", tt.order, poles, tt.pole)
		}
		// The pole is a zero of k[0]*z + k[1] + k[0]/z.
		k, err := Kernel(tt.order)
		if err != nil {
			t.Fatal(err)
		}
		if p := tt.pole; math.Abs(k[0]*p+k[1]+k[0]/p) > 1e-12 {
			t.Fatalf("%v: pole %v is not a kernel zero", tt.order, p)
		}
		for _, theta := range []float64{0, 0.4, 2, math.Pi} {
			if got := pf.Response(theta) * tt.b(theta); math.Abs(got-1) > 1e-12 {
				t.Fatalf("%v theta=%g: H*B = %v, want 1", tt.order, theta, got)
			}
		}
	}
}

func TestSmoothingPrefilterResponse(t *testing.T) {
	for _, lambda := range []float64{0.001, 1.0 / 144, 0.05, 0.5, 3} {
		pf, err := NewPrefilter(Cubic, lambda)
		if err != nil {
			t.Fatalf("lambda=%v: %v", lambda, err)
		}
		for _, p := range pf.Poles() {
			if cmplx.Abs(p) >= 1 {
				t.Fatalf("lambda=%v: unstable pole %v", lambda, p)
			}
		}
		for _, theta := range []float64{0, 0.5, 1.5, math.Pi} {
			b := (4 + 2*math.Cos(theta)) / 6
			d := (2 - 2*math.Cos(theta)) * (2 - 2*math.Cos(theta))
			want := 1 / (b + lambda*d)
			if got := pf.Response(theta); math.Abs(got-want) > 1e-10*want {
				t.Fatalf("lambda=%v theta=%g: H = %v, want %v", lambda, theta, got, want)
			}
		}
	}
}

func TestSmoothingPrefilterStructure(t *testing.T) {
	small, err := NewPrefilter(Cubic, 0.001)
	if err != nil {
		t.Fatal(err)
	}
	if len(small.Stages) != 2 || small.Stages[0].Order2 || small.Stages[1].Order2 {
		t.Fatalf("lambda=0.001: stages = %v, want two order-1 stages", small.Stages)
	}

	large, err := NewPrefilter(Cubic, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if len(large.Stages) != 1 || !large.Stages[0].Order2 {
		t.Fatalf("lambda=0.5: stages = %v, want one order-2 stage", large.Stages)
	}
	if large.Gain <= 0 {
		t.Fatalf("lambda=0.5: gain = %v, want positive", large.Gain)
	}
}

func TestStageTerms(t *testing.T) {
	s := Stage{C0: -6 * CubicPole, Z1: CubicPole}
	n := s.Terms(1e-6)
	if math.Pow(-CubicPole, float64(n-1)) > 1e-6 || math.Pow(-CubicPole, float64(n-2)) <= 1e-6 {
		t.Fatalf("Terms(1e-6) = %d is not the first length below precision", n)
	}
	if got := (Stage{}).Terms(1e-6); got != 1 {
		t.Fatalf("zero pole Terms = %d, want 1", got)
	}
}

func TestOrderString(t *testing.T) {
	if Cubic.String() != "cubic" || Quadratic.String() != "quadratic" || Order(7).String() != "Order(7)" {
		t.Fatal("unexpected Order strings")
	}
}
