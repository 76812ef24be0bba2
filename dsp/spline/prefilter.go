package spline

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"

	"github.com/cwbudde/algo-bspline/dsp/core"
	"github.com/cwbudde/algo-bspline/dsp/filter/symiir"
	"github.com/cwbudde/algo-bspline/dsp/ndarray"
	"github.com/cwbudde/algo-bspline/internal/polyroot"
)

// Errors returned by the spline solvers.
var (
	ErrInvalidLambda = errors.New("spline: smoothing parameter must be non-negative")
	ErrOrder         = errors.New("spline: unsupported order")
)

// Order is the degree of a B-spline.
type Order int

// Supported B-spline orders.
const (
	Quadratic Order = 2
	Cubic     Order = 3
)

func (o Order) String() string {
	switch o {
	case Quadratic:
		return "quadratic"
	case Cubic:
		return "cubic"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Kernel returns the B-spline of the given order sampled at the integers,
// centred at index 1.
func Kernel(order Order) ([]float64, error) {
	switch order {
	case Quadratic:
		return []float64{1.0 / 8, 6.0 / 8, 1.0 / 8}, nil
	case Cubic:
		return []float64{1.0 / 6, 4.0 / 6, 1.0 / 6}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrOrder, int(order))
	}
}

// Interpolation poles of the B-spline prefilters.
var (
	CubicPole     = math.Sqrt(3) - 2
	QuadraticPole = 2*math.Sqrt(2) - 3
)

// Stage is one symmetric recursive filter of a prefilter cascade. Order-1
// stages use C0 and Z1; order-2 stages use R and Omega.
type Stage struct {
	Order2 bool
	C0, Z1 float64
	R      float64
	Omega  float64
}

// Terms returns the number of initial-condition series terms the stage
// needs to reach the given precision on long signals.
func (s Stage) Terms(precision float64) int {
	mag := math.Abs(s.Z1)
	if s.Order2 {
		mag = s.R
	}
	if mag == 0 {
		return 1
	}
	return int(math.Ceil(math.Log(precision)/math.Log(mag))) + 1
}

func (s Stage) String() string {
	if s.Order2 {
		return fmt.Sprintf("order2(r=%.6g, omega=%.6g)", s.R, s.Omega)
	}
	return fmt.Sprintf("order1(c0=%.6g, z1=%.6g)", s.C0, s.Z1)
}

// Prefilter is the cascade that maps samples to B-spline coefficients along
// one axis, followed by a constant gain.
type Prefilter struct {
	Order  Order
	Lambda float64
	Stages []Stage
	Gain   float64
}

// NewPrefilter returns the per-axis prefilter for the given order and
// smoothing parameter.
func NewPrefilter(order Order, lambda float64) (Prefilter, error) {
	switch order {
	case Cubic:
		if !(lambda >= 0) {
			return Prefilter{}, fmt.Errorf("%w: %g", ErrInvalidLambda, lambda)
		}
		if lambda == 0 {
			return interpolating(order, CubicPole, -6*CubicPole), nil
		}
		return smoothing(lambda)
	case Quadratic:
		if lambda != 0 {
			return Prefilter{}, fmt.Errorf("spline: quadratic smoothing spline: %w", core.ErrNotImplemented)
		}
		return interpolating(order, QuadraticPole, -8*QuadraticPole), nil
	default:
		return Prefilter{}, fmt.Errorf("%w: %d", ErrOrder, int(order))
	}
}

func interpolating(order Order, z1, c0 float64) Prefilter {
	return Prefilter{
		Order:  order,
		Stages: []Stage{{C0: c0, Z1: z1}},
		Gain:   1,
	}
}

// smoothing factors 1/(B(z) + lambda*D(z)). With w = z + 1/z the
// denominator is lambda*w^2 + (1/6 - 4*lambda)*w + (2/3 + 4*lambda).
func smoothing(lambda float64) (Prefilter, error) {
	poles, err := polyroot.SymmetricPoles(lambda, 1.0/6-4*lambda, 2.0/3+4*lambda)
	if err != nil {
		return Prefilter{}, fmt.Errorf("spline: smoothing poles for lambda %g: %w", lambda, err)
	}

	pf := Prefilter{Order: Cubic, Lambda: lambda, Gain: 1}
	if imag(poles[0]) == 0 && imag(poles[1]) == 0 {
		p1, p2 := real(poles[0]), real(poles[1])
		pf.Stages = []Stage{
			{C0: 1, Z1: p1},
			{C0: p1 * p2 / lambda, Z1: p2},
		}
		return pf, nil
	}

	r := cmplx.Abs(poles[0])
	omega := math.Abs(cmplx.Phase(poles[0]))
	cs := 1 - 2*r*math.Cos(omega) + r*r
	pf.Stages = []Stage{{Order2: true, R: r, Omega: omega}}
	pf.Gain = r * r / (lambda * cs * cs)
	return pf, nil
}

// Poles returns the causal poles of the cascade.
func (pf Prefilter) Poles() []complex128 {
	var out []complex128
	for _, s := range pf.Stages {
		if s.Order2 {
			p := cmplx.Rect(s.R, s.Omega)
			out = append(out, p, cmplx.Conj(p))
			continue
		}
		out = append(out, complex(s.Z1, 0))
	}
	return out
}

// Response returns the zero-phase frequency response of the prefilter at
// theta radians per sample.
func (pf Prefilter) Response(theta float64) float64 {
	h := pf.Gain
	for _, s := range pf.Stages {
		if s.Order2 {
			h *= symiir.Response2(s.R, s.Omega, theta)
			continue
		}
		h *= real(symiir.Response1(complex(s.C0, 0), complex(s.Z1, 0), theta))
	}
	return h
}

// applyLane runs the cascade from src into dst along one rank-1 lane. The
// gain is left to the caller.
func applyLane[T ndarray.Real](pf Prefilter, dst, src ndarray.View[T], cfg core.Config) error {
	for i, s := range pf.Stages {
		in := dst
		if i == 0 {
			in = src
		}

		var err error
		if s.Order2 {
			err = symiir.Order2To(dst, in, s.R, s.Omega, cfg)
		} else {
			err = symiir.Order1To(dst, in, complex(s.C0, 0), complex(s.Z1, 0), cfg)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// scale multiplies a contiguous buffer by g in place. Gains within
// rounding of one are skipped.
func scale[T ndarray.Real](buf []T, g float64) {
	if core.NearlyEqual(g, 1, 0) {
		return
	}
	switch b := any(buf).(type) {
	case []float64:
		f64.Scale(b, b, g)
	case []float32:
		f32.Scale(b, b, float32(g))
	}
}
