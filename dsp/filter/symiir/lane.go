package symiir

import (
	"fmt"

	"github.com/cwbudde/algo-bspline/dsp/ndarray"
)

func loadComplex[T ndarray.Element](dst []complex128, v ndarray.View[T]) {
	pos, step := v.Offset, v.Strides[0]
	for i := range dst {
		dst[i] = ndarray.ToComplex(v.Data[pos])
		pos += step
	}
}

func storeComplex[T ndarray.Element](v ndarray.View[T], src []complex128) {
	pos, step := v.Offset, v.Strides[0]
	for _, c := range src {
		v.Data[pos] = ndarray.FromComplex[T](c)
		pos += step
	}
}

func loadReal[T ndarray.Real](dst []float64, v ndarray.View[T]) {
	pos, step := v.Offset, v.Strides[0]
	for i := range dst {
		dst[i] = float64(v.Data[pos])
		pos += step
	}
}

func storeReal[T ndarray.Real](v ndarray.View[T], src []float64) {
	pos, step := v.Offset, v.Strides[0]
	for _, x := range src {
		v.Data[pos] = T(x)
		pos += step
	}
}

func checkLine[T ndarray.Element](dst, src ndarray.View[T]) error {
	if err := src.Validate(); err != nil {
		return fmt.Errorf("symiir: source: %w", err)
	}
	if err := dst.Validate(); err != nil {
		return fmt.Errorf("symiir: destination: %w", err)
	}
	if src.Rank() != 1 || dst.Rank() != 1 {
		return fmt.Errorf("%w: got %d and %d, want 1", ErrRank, src.Rank(), dst.Rank())
	}
	if !dst.ShapeEquals(src.Shape) {
		return fmt.Errorf("%w: %v vs %v", ErrShape, dst.Shape, src.Shape)
	}
	return nil
}

// mirror returns the sample of the half-sample symmetric extension of x at i.
func mirror[T float64 | complex128](x []T, i int) T {
	j, _ := ndarray.Resolve(i, len(x), ndarray.Mirror)
	return x[j]
}
