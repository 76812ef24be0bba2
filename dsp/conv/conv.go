package conv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-bspline/dsp/ndarray"
)

// Errors returned by convolution functions.
var (
	ErrRankMismatch    = errors.New("conv: kernel and input rank differ")
	ErrShapeMismatch   = errors.New("conv: output shape differs from input")
	ErrUnknownBoundary = errors.New("conv: unknown boundary mode")
)

// taps holds the flattened kernel: one weight, one displacement per axis and
// one linear input offset per kernel element.
type taps[T ndarray.Element] struct {
	weight []T
	disp   []int // len(weight)*rank, displacement c-k per axis
	delta  []int // sum_d disp[d]*inStrides[d]

	// Interior range per axis: positions in [lo, hi) never leave the input.
	lo, hi []int
}

func newTaps[T ndarray.Element](in, kernel ndarray.View[T]) taps[T] {
	rank := in.Rank()
	n := kernel.Len()
	tp := taps[T]{
		weight: make([]T, 0, n),
		disp:   make([]int, 0, n*rank),
		delta:  make([]int, 0, n),
		lo:     make([]int, rank),
		hi:     make([]int, rank),
	}

	centre := make([]int, rank)
	for d, e := range kernel.Shape {
		centre[d] = e / 2
		tp.lo[d] = e - 1 - centre[d]
		tp.hi[d] = in.Shape[d] - centre[d]
	}

	k := make([]int, rank)
	for {
		tp.weight = append(tp.weight, kernel.Data[kernel.Index(k)])
		delta := 0
		for d := range rank {
			disp := centre[d] - k[d]
			tp.disp = append(tp.disp, disp)
			delta += disp * in.Strides[d]
		}
		tp.delta = append(tp.delta, delta)
		if !ndarray.Next(k, kernel.Shape) {
			break
		}
	}
	return tp
}

func (tp *taps[T]) interior(pos []int) bool {
	for d, p := range pos {
		if p < tp.lo[d] || p >= tp.hi[d] {
			return false
		}
	}
	return true
}

// Convolve convolves in with kernel under the given boundary rule and
// returns a freshly allocated contiguous result of the same shape.
func Convolve[T ndarray.Element](in, kernel ndarray.View[T], mode ndarray.Boundary) (ndarray.View[T], error) {
	if err := in.Validate(); err != nil {
		return ndarray.View[T]{}, err
	}

	out := ndarray.Alloc[T](in.Shape...)
	out.Zero = in.Zero
	if err := ConvolveTo(out, in, kernel, mode); err != nil {
		return ndarray.View[T]{}, err
	}
	return out, nil
}

// ConvolveTo convolves in with kernel under the given boundary rule and
// writes the result to out. out must have the shape of in and must not
// overlap it. kernel must have the rank of in.
func ConvolveTo[T ndarray.Element](out, in, kernel ndarray.View[T], mode ndarray.Boundary) error {
	if err := in.Validate(); err != nil {
		return fmt.Errorf("conv: input: %w", err)
	}
	if err := kernel.Validate(); err != nil {
		return fmt.Errorf("conv: kernel: %w", err)
	}
	if err := out.Validate(); err != nil {
		return fmt.Errorf("conv: output: %w", err)
	}
	if kernel.Rank() != in.Rank() {
		return fmt.Errorf("%w: kernel rank %d, input rank %d", ErrRankMismatch, kernel.Rank(), in.Rank())
	}
	if !out.ShapeEquals(in.Shape) {
		return fmt.Errorf("%w: output %v, input %v", ErrShapeMismatch, out.Shape, in.Shape)
	}
	if !mode.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownBoundary, mode)
	}

	tp := newTaps(in, kernel)
	rank := in.Rank()
	pos := make([]int, rank)

	for {
		var acc T
		if tp.interior(pos) {
			base := in.Index(pos)
			for i, w := range tp.weight {
				acc += w * in.Data[base+tp.delta[i]]
			}
		} else {
			for i, w := range tp.weight {
				acc += w * sample(in, pos, tp.disp[i*rank:(i+1)*rank], mode)
			}
		}
		out.Data[out.Index(pos)] = acc

		if !ndarray.Next(pos, in.Shape) {
			break
		}
	}
	return nil
}

// sample reads in at pos+disp, resolving each axis through the boundary rule.
func sample[T ndarray.Element](in ndarray.View[T], pos, disp []int, mode ndarray.Boundary) T {
	off := in.Offset
	for d, p := range pos {
		i, ok := ndarray.Resolve(p+disp[d], in.Shape[d], mode)
		if !ok {
			return in.Zero
		}
		off += i * in.Strides[d]
	}
	return in.Data[off]
}
