package spline

import (
	"github.com/cwbudde/algo-bspline/dsp/filter/fir"
	"github.com/cwbudde/algo-bspline/dsp/ndarray"
)

func kernelOf[T ndarray.Element](order Order) ([]T, error) {
	k, err := Kernel(order)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(k))
	for i, v := range k {
		out[i] = ndarray.FromFloat[T](v)
	}
	return out, nil
}

// Reconstruct2D samples the B-spline expansion with coefficients coeffs at
// the grid points. It inverts [Cspline2D] (order Cubic) and [Qspline2D]
// (order Quadratic).
func Reconstruct2D[T ndarray.Element](coeffs ndarray.View[T], order Order) (ndarray.View[T], error) {
	k, err := kernelOf[T](order)
	if err != nil {
		return ndarray.View[T]{}, err
	}
	return fir.SepFIR2D(coeffs, k, k)
}

// Reconstruct1D is [Reconstruct2D] for rank-1 coefficients.
func Reconstruct1D[T ndarray.Element](coeffs ndarray.View[T], order Order) (ndarray.View[T], error) {
	k, err := kernelOf[T](order)
	if err != nil {
		return ndarray.View[T]{}, err
	}
	return fir.Mirror(coeffs, k)
}
