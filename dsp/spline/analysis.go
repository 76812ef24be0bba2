package spline

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-bspline/dsp/core"
	"github.com/cwbudde/algo-bspline/dsp/ndarray"
)

// ErrSize is returned by [AnalyzePrefilter] for unusable analysis sizes.
var ErrSize = errors.New("spline: analysis size must be a power of two of at least 8")

// Analysis describes the frequency behaviour of a prefilter, measured from
// its impulse response on a finite mirror-extended signal.
type Analysis struct {
	Prefilter Prefilter
	Size      int
	Precision float64

	// Terms is the initial-condition series length per stage.
	Terms []int

	// Magnitude and Power hold |H| and |H|^2 at theta = 2*pi*k/Size for
	// k = 0..Size/2.
	Magnitude []float64
	Power     []float64

	DCGain      float64
	NyquistGain float64
	Peak        float64

	// InterpolationError is max |H(theta)*B(theta) - 1| over the bins, with
	// B the sampled B-spline. It is the smoothing deviation when lambda > 0.
	InterpolationError float64
}

// AnalyzePrefilter measures the per-axis prefilter of the given order on n
// samples. The smoothing parameter comes from [core.WithLambda]; the series
// precision defaults to 1e-11.
func AnalyzePrefilter(order Order, n int, opts ...core.Option) (Analysis, error) {
	if n < 8 || n&(n-1) != 0 {
		return Analysis{}, fmt.Errorf("%w: %d", ErrSize, n)
	}

	opts = append([]core.Option{core.WithPrecision(core.SymIIRPrecisionDouble)}, opts...)
	cfg := core.ApplyOptions(core.DefaultConfig(core.SymIIRPrecisionDouble), opts...)
	pf, err := NewPrefilter(order, cfg.Lambda)
	if err != nil {
		return Analysis{}, err
	}
	kernel, err := Kernel(order)
	if err != nil {
		return Analysis{}, err
	}

	impulse := make([]float64, n)
	impulse[n/2] = 1
	src, err := ndarray.NewView(impulse, n)
	if err != nil {
		return Analysis{}, err
	}
	h, err := Solve1D(src, order, opts...)
	if err != nil {
		return Analysis{}, err
	}

	// Centre the impulse response on sample 0 so its spectrum is real.
	in := make([]complex128, n)
	for i, v := range h.ToSlice() {
		in[(i-n/2+n)%n] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Analysis{}, fmt.Errorf("spline: fft plan: %w", err)
	}
	spectrum := make([]complex128, n)
	if err := plan.Forward(spectrum, in); err != nil {
		return Analysis{}, fmt.Errorf("spline: fft: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(spectrum[k])
		im[k] = imag(spectrum[k])
	}

	a := Analysis{
		Prefilter: pf,
		Size:      n,
		Precision: cfg.Precision,
		Terms:     make([]int, len(pf.Stages)),
		Magnitude: make([]float64, bins),
		Power:     make([]float64, bins),
	}
	for i, s := range pf.Stages {
		a.Terms[i] = s.Terms(cfg.Precision)
	}

	vecmath.Magnitude(a.Magnitude, re, im)
	vecmath.Power(a.Power, re, im)

	a.DCGain = a.Magnitude[0]
	a.NyquistGain = a.Magnitude[bins-1]
	for k, m := range a.Magnitude {
		a.Peak = math.Max(a.Peak, m)

		theta := 2 * math.Pi * float64(k) / float64(n)
		b := kernel[1] + 2*kernel[0]*math.Cos(theta)
		a.InterpolationError = math.Max(a.InterpolationError, math.Abs(re[k]*b-1))
	}
	return a, nil
}
