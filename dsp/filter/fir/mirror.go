package fir

import (
	"errors"
	"fmt"

	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"

	"github.com/cwbudde/algo-bspline/dsp/conv"
	"github.com/cwbudde/algo-bspline/dsp/core"
	"github.com/cwbudde/algo-bspline/dsp/ndarray"
)

// Errors returned by the mirror FIR functions.
var (
	ErrRank        = errors.New("fir: unexpected rank")
	ErrEmptyKernel = errors.New("fir: empty kernel")
	ErrShape       = errors.New("fir: source and destination shapes differ")
)

// lane is the scratch for filtering rank-1 lines of one length with one
// kernel. The input line is gathered, mirror-padded by K-1 samples and
// handed to a valid-mode convolution with the reversed kernel.
type lane[T ndarray.Element] struct {
	rev  []T
	pad  []T
	out  []T
	left int
}

func newLane[T ndarray.Element](h []T, n int) *lane[T] {
	k := len(h)
	return &lane[T]{
		rev:  core.Reverse(nil, h),
		pad:  make([]T, n+k-1),
		out:  make([]T, n),
		left: k - 1 - k/2,
	}
}

func (l *lane[T]) run(dst, src ndarray.View[T]) {
	n := src.Shape[0]
	step := src.Strides[0]
	for j := range l.pad {
		i, _ := ndarray.Resolve(j-l.left, n, ndarray.Mirror)
		l.pad[j] = src.Data[src.Offset+i*step]
	}

	convolveValid(l.out, l.pad, l.rev)

	step = dst.Strides[0]
	for i, v := range l.out {
		dst.Data[dst.Offset+i*step] = v
	}
}

// convolveValid computes dst[i] = sum_j signal[i+j]*kernel[j] for the real
// element types.
func convolveValid[T ndarray.Element](dst, signal, kernel []T) {
	switch d := any(dst).(type) {
	case []float64:
		f64.ConvolveValid(d, any(signal).([]float64), any(kernel).([]float64))
	case []float32:
		f32.ConvolveValid(d, any(signal).([]float32), any(kernel).([]float32))
	default:
		panic(fmt.Sprintf("fir: no valid-convolution kernel for %v", ndarray.TypeOf[T]()))
	}
}

func checkKernels[T ndarray.Element](kernels ...[]T) error {
	for _, h := range kernels {
		if len(h) == 0 {
			return ErrEmptyKernel
		}
	}
	return nil
}

func kernelView[T ndarray.Element](h []T, shape ...int) ndarray.View[T] {
	v, err := ndarray.NewView(h, shape...)
	if err != nil {
		panic(err)
	}
	return v
}

// Mirror filters the rank-1 view src with h and returns a fresh contiguous
// result.
func Mirror[T ndarray.Element](src ndarray.View[T], h []T) (ndarray.View[T], error) {
	if err := src.RequireRank(1); err != nil {
		return ndarray.View[T]{}, fmt.Errorf("%w: %w", ErrRank, err)
	}
	dst := ndarray.Alloc[T](src.Shape...)
	dst.Zero = src.Zero
	if err := MirrorTo(dst, src, h); err != nil {
		return ndarray.View[T]{}, err
	}
	return dst, nil
}

// MirrorTo filters the rank-1 view src with h into dst, which must have the
// same length. For real element types dst may alias src.
func MirrorTo[T ndarray.Element](dst, src ndarray.View[T], h []T) error {
	if err := src.Validate(); err != nil {
		return fmt.Errorf("fir: source: %w", err)
	}
	if err := dst.Validate(); err != nil {
		return fmt.Errorf("fir: destination: %w", err)
	}
	if src.Rank() != 1 || dst.Rank() != 1 {
		return fmt.Errorf("%w: got %d and %d, want 1", ErrRank, src.Rank(), dst.Rank())
	}
	if !dst.ShapeEquals(src.Shape) {
		return fmt.Errorf("%w: %v vs %v", ErrShape, dst.Shape, src.Shape)
	}
	if err := checkKernels(h); err != nil {
		return err
	}

	if ndarray.TypeOf[T]().IsComplex() {
		return conv.ConvolveTo(dst, src, kernelView(h, len(h)), ndarray.Mirror)
	}

	newLane(h, src.Shape[0]).run(dst, src)
	return nil
}
