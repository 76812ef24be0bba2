package spline

import (
	"fmt"

	"github.com/cwbudde/algo-bspline/dsp/core"
	"github.com/cwbudde/algo-bspline/dsp/ndarray"
)

// Cspline2D returns the cubic B-spline coefficients of a rank-2 image.
// [core.WithLambda] selects a smoothing spline; [core.WithPrecision]
// overrides the default precision of 1e-3 (float32) or 1e-6 (float64).
func Cspline2D[T ndarray.Real](img ndarray.View[T], opts ...core.Option) (ndarray.View[T], error) {
	return Solve2D(img, Cubic, opts...)
}

// Qspline2D returns the quadratic B-spline coefficients of a rank-2 image.
// A non-zero lambda fails with [core.ErrNotImplemented].
func Qspline2D[T ndarray.Real](img ndarray.View[T], opts ...core.Option) (ndarray.View[T], error) {
	return Solve2D(img, Quadratic, opts...)
}

// Cspline1D returns the cubic B-spline coefficients of a rank-1 signal.
func Cspline1D[T ndarray.Real](signal ndarray.View[T], opts ...core.Option) (ndarray.View[T], error) {
	return Solve1D(signal, Cubic, opts...)
}

// Qspline1D returns the quadratic B-spline coefficients of a rank-1 signal.
func Qspline1D[T ndarray.Real](signal ndarray.View[T], opts ...core.Option) (ndarray.View[T], error) {
	return Solve1D(signal, Quadratic, opts...)
}

func config[T ndarray.Real](opts []core.Option) core.Config {
	single := ndarray.TypeOf[T]().IsSingle()
	return core.ApplyOptions(core.DefaultConfig(core.DefaultSplinePrecision(single)), opts...)
}

// Solve2D filters every row and then every column of img with the
// prefilter of the given order and returns a fresh contiguous result.
func Solve2D[T ndarray.Real](img ndarray.View[T], order Order, opts ...core.Option) (ndarray.View[T], error) {
	cfg := config[T](opts)
	pf, err := NewPrefilter(order, cfg.Lambda)
	if err != nil {
		return ndarray.View[T]{}, err
	}
	if err := img.RequireRank(2); err != nil {
		return ndarray.View[T]{}, fmt.Errorf("spline: image: %w", err)
	}

	rows, cols := img.Shape[0], img.Shape[1]
	out := ndarray.Alloc[T](rows, cols)
	out.Zero = img.Zero

	for r := range rows {
		at := []int{r, 0}
		if err := applyLane(pf, out.Line(1, at), img.Line(1, at), cfg); err != nil {
			return ndarray.View[T]{}, fmt.Errorf("spline: row %d: %w", r, err)
		}
	}
	for c := range cols {
		at := []int{0, c}
		lane := out.Line(0, at)
		if err := applyLane(pf, lane, lane, cfg); err != nil {
			return ndarray.View[T]{}, fmt.Errorf("spline: column %d: %w", c, err)
		}
	}

	scale(out.Data, pf.Gain*pf.Gain)
	return out, nil
}

// Solve1D applies the prefilter of the given order to a rank-1 signal.
func Solve1D[T ndarray.Real](signal ndarray.View[T], order Order, opts ...core.Option) (ndarray.View[T], error) {
	cfg := config[T](opts)
	pf, err := NewPrefilter(order, cfg.Lambda)
	if err != nil {
		return ndarray.View[T]{}, err
	}
	if err := signal.RequireRank(1); err != nil {
		return ndarray.View[T]{}, fmt.Errorf("spline: signal: %w", err)
	}

	out := ndarray.Alloc[T](signal.Shape...)
	out.Zero = signal.Zero
	if err := applyLane(pf, out, signal, cfg); err != nil {
		return ndarray.View[T]{}, fmt.Errorf("spline: %w", err)
	}

	scale(out.Data, pf.Gain)
	return out, nil
}
