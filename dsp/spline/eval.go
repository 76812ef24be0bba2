package spline

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-bspline/dsp/ndarray"
)

// ErrPoints is returned by [Eval2D] when the coordinate slices differ in
// length.
var ErrPoints = errors.New("spline: coordinate slices differ in length")

// Basis returns the centred B-spline of the given order at x. It is zero
// outside (-(order+1)/2, (order+1)/2).
func Basis(order Order, x float64) float64 {
	x = math.Abs(x)
	switch order {
	case Quadratic:
		switch {
		case x < 0.5:
			return 0.75 - x*x
		case x < 1.5:
			d := 1.5 - x
			return 0.5 * d * d
		}
	case Cubic:
		switch {
		case x < 1:
			return 2.0/3 - x*x + 0.5*x*x*x
		case x < 2:
			d := 2 - x
			return d * d * d / 6
		}
	}
	return 0
}

// weights returns the index of the first contributing coefficient at x and
// the basis weights of the order+1 coefficients from there on.
func weights(order Order, x float64) (int, [4]float64) {
	var w [4]float64
	switch order {
	case Quadratic:
		j := math.Floor(x + 0.5)
		t := x - j
		a, b := 0.5-t, 0.5+t
		w[0] = 0.5 * a * a
		w[1] = 0.75 - t*t
		w[2] = 0.5 * b * b
		return int(j) - 1, w
	default:
		j := math.Floor(x)
		t := x - j
		s := 1 - t
		w[0] = s * s * s / 6
		w[1] = (0.5*t-1)*t*t + 2.0/3
		w[2] = (0.5*s-1)*s*s + 2.0/3
		w[3] = t * t * t / 6
		return int(j) - 1, w
	}
}

func checkEvalOrder(order Order) error {
	if order != Quadratic && order != Cubic {
		return fmt.Errorf("%w: %d", ErrOrder, int(order))
	}
	return nil
}

// Eval1D evaluates the spline with rank-1 coefficients coeffs at the sample
// positions x. Coefficients beyond the ends are mirror-extended, as in
// [Cspline1D].
func Eval1D[T ndarray.Real](coeffs ndarray.View[T], order Order, x []float64) ([]T, error) {
	if err := checkEvalOrder(order); err != nil {
		return nil, err
	}
	if err := coeffs.RequireRank(1); err != nil {
		return nil, fmt.Errorf("spline: coefficients: %w", err)
	}

	n, step := coeffs.Shape[0], coeffs.Strides[0]
	out := make([]T, len(x))
	for i, xi := range x {
		j0, w := weights(order, xi)
		var acc float64
		for k := 0; k <= int(order); k++ {
			j, _ := ndarray.Resolve(j0+k, n, ndarray.Mirror)
			acc += w[k] * float64(coeffs.Data[coeffs.Offset+j*step])
		}
		out[i] = T(acc)
	}
	return out, nil
}

// Eval2D evaluates the spline with rank-2 coefficients at the points
// (rows[i], cols[i]).
func Eval2D[T ndarray.Real](coeffs ndarray.View[T], order Order, rows, cols []float64) ([]T, error) {
	if err := checkEvalOrder(order); err != nil {
		return nil, err
	}
	if err := coeffs.RequireRank(2); err != nil {
		return nil, fmt.Errorf("spline: coefficients: %w", err)
	}
	if len(rows) != len(cols) {
		return nil, fmt.Errorf("%w: %d rows, %d cols", ErrPoints, len(rows), len(cols))
	}

	m, n := coeffs.Shape[0], coeffs.Shape[1]
	rowStep, colStep := coeffs.Strides[0], coeffs.Strides[1]
	out := make([]T, len(rows))
	for i := range rows {
		r0, wr := weights(order, rows[i])
		c0, wc := weights(order, cols[i])
		var acc float64
		for a := 0; a <= int(order); a++ {
			r, _ := ndarray.Resolve(r0+a, m, ndarray.Mirror)
			base := coeffs.Offset + r*rowStep
			var line float64
			for b := 0; b <= int(order); b++ {
				c, _ := ndarray.Resolve(c0+b, n, ndarray.Mirror)
				line += wc[b] * float64(coeffs.Data[base+c*colStep])
			}
			acc += wr[a] * line
		}
		out[i] = T(acc)
	}
	return out, nil
}
