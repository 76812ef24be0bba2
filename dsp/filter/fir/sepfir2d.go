package fir

import (
	"fmt"

	"github.com/cwbudde/algo-bspline/dsp/conv"
	"github.com/cwbudde/algo-bspline/dsp/ndarray"
)

// SepFIR2D filters the rows of the rank-2 view in with hrow and then the
// columns with hcol, both under mirror extension. The result is a fresh
// contiguous view of the same shape.
func SepFIR2D[T ndarray.Element](in ndarray.View[T], hrow, hcol []T) (ndarray.View[T], error) {
	if err := in.RequireRank(2); err != nil {
		return ndarray.View[T]{}, fmt.Errorf("%w: %w", ErrRank, err)
	}
	out := ndarray.Alloc[T](in.Shape...)
	out.Zero = in.Zero
	if err := SepFIR2DTo(out, in, hrow, hcol); err != nil {
		return ndarray.View[T]{}, err
	}
	return out, nil
}

// SepFIR2DTo is [SepFIR2D] writing into out. out must not overlap in.
func SepFIR2DTo[T ndarray.Element](out, in ndarray.View[T], hrow, hcol []T) error {
	if err := in.Validate(); err != nil {
		return fmt.Errorf("fir: input: %w", err)
	}
	if err := out.Validate(); err != nil {
		return fmt.Errorf("fir: output: %w", err)
	}
	if in.Rank() != 2 || out.Rank() != 2 {
		return fmt.Errorf("%w: got %d and %d, want 2", ErrRank, in.Rank(), out.Rank())
	}
	if !out.ShapeEquals(in.Shape) {
		return fmt.Errorf("%w: %v vs %v", ErrShape, out.Shape, in.Shape)
	}
	if err := checkKernels(hrow, hcol); err != nil {
		return err
	}

	if ndarray.TypeOf[T]().IsComplex() {
		return sepComplex(out, in, hrow, hcol)
	}

	rows, cols := in.Shape[0], in.Shape[1]
	tmp := ndarray.Alloc[T](rows, cols)

	rowLane := newLane(hrow, cols)
	for r := range rows {
		at := []int{r, 0}
		rowLane.run(tmp.Line(1, at), in.Line(1, at))
	}

	colLane := newLane(hcol, rows)
	for c := range cols {
		at := []int{0, c}
		colLane.run(out.Line(0, at), tmp.Line(0, at))
	}
	return nil
}

func sepComplex[T ndarray.Element](out, in ndarray.View[T], hrow, hcol []T) error {
	tmp, err := conv.Convolve(in, kernelView(hrow, 1, len(hrow)), ndarray.Mirror)
	if err != nil {
		return fmt.Errorf("fir: rows: %w", err)
	}
	if err := conv.ConvolveTo(out, tmp, kernelView(hcol, len(hcol), 1), ndarray.Mirror); err != nil {
		return fmt.Errorf("fir: columns: %w", err)
	}
	return nil
}
