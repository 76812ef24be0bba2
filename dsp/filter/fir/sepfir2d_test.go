package fir

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cwbudde/algo-bspline/dsp/conv"
	"github.com/cwbudde/algo-bspline/dsp/ndarray"
	"github.com/cwbudde/algo-bspline/internal/testutil"
)

func outer(hcol, hrow []float64) []float64 {
	out := make([]float64, 0, len(hcol)*len(hrow))
	for _, c := range hcol {
		for _, r := range hrow {
			out = append(out, c*r)
		}
	}
	return out
}

func TestSepFIR2DMatchesOuterProductConvolution(t *testing.T) {
	kernels := [][2][]float64{
		{{1.0 / 6, 4.0 / 6, 1.0 / 6}, {1.0 / 6, 4.0 / 6, 1.0 / 6}},
		{{1, 6, 1}, {0.5, 0.5}},
		{{1}, {-1, 2, 5, 2, -1}},
		{{0.25, 0.5, 0.25, 1, 2, 3, 4}, {2}},
	}

	for i, k := range kernels {
		for _, shape := range [][2]int{{1, 1}, {1, 6}, {5, 1}, {4, 7}, {9, 3}} {
			t.Run(fmt.Sprintf("kernels=%d/%dx%d", i, shape[0], shape[1]), func(t *testing.T) {
				hrow, hcol := k[0], k[1]
				img := mustView(t, testutil.Flatten(testutil.DeterministicImage(int64(i), shape[0], shape[1])), shape[0], shape[1])

				got, err := SepFIR2D(img, hrow, hcol)
				if err != nil {
					t.Fatalf("SepFIR2D: %v", err)
				}

				k2 := mustView(t, outer(hcol, hrow), len(hcol), len(hrow))
				want, err := conv.Convolve(img, k2, ndarray.Mirror)
				if err != nil {
					t.Fatalf("Convolve: %v", err)
				}
				testutil.RequireSliceNearlyEqual(t, got.ToSlice(), want.ToSlice(), 1e-12)
			})
		}
	}
}

func TestSepFIR2DConstantImage(t *testing.T) {
	img := mustView(t, []float64{3, 3, 3, 3, 3, 3}, 2, 3)
	h := []float64{1.0 / 8, 6.0 / 8, 1.0 / 8}

	got, err := SepFIR2D(img, h, h)
	if err != nil {
		t.Fatalf("SepFIR2D: %v", err)
	}
	if !got.ShapeEquals([]int{2, 3}) {
		t.Fatalf("shape = %v, want [2 3]", got.Shape)
	}
	testutil.RequireSliceNearlyEqual(t, got.ToSlice(), []float64{3, 3, 3, 3, 3, 3}, 1e-15)
}

func TestSepFIR2DTransposedInput(t *testing.T) {
	img := mustView(t, testutil.Flatten(testutil.DeterministicImage(11, 5, 8)), 5, 8)
	hrow := []float64{1, 2, 3}
	hcol := []float64{-1, 0.5}

	direct, err := SepFIR2D(img, hrow, hcol)
	if err != nil {
		t.Fatalf("SepFIR2D: %v", err)
	}
	swapped, err := SepFIR2D(img.Transpose(), hcol, hrow)
	if err != nil {
		t.Fatalf("SepFIR2D transposed: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, swapped.Transpose().ToSlice(), direct.ToSlice(), 1e-12)
}

func TestSepFIR2DDoesNotMutateInput(t *testing.T) {
	data := testutil.Flatten(testutil.DeterministicImage(2, 3, 4))
	orig := append([]float64(nil), data...)

	if _, err := SepFIR2D(mustView(t, data, 3, 4), []float64{1, 4, 1}, []float64{1, 4, 1}); err != nil {
		t.Fatalf("SepFIR2D: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, data, orig, 0)
}

func TestSepFIR2DComplex(t *testing.T) {
	const rows, cols = 4, 5
	z := testutil.DeterministicComplex(9, 1, rows*cols)
	re := make([]float64, len(z))
	im := make([]float64, len(z))
	for i, v := range z {
		re[i], im[i] = real(v), imag(v)
	}

	hrow := []float64{1, 4, 1}
	hcol := []float64{0.5, 1, -0.5, 2}
	got, err := SepFIR2D(mustView(t, z, rows, cols), []complex128{1, 4, 1}, []complex128{0.5, 1, -0.5, 2})
	if err != nil {
		t.Fatalf("SepFIR2D complex: %v", err)
	}
	if got.Type() != ndarray.Complex128 {
		t.Fatalf("type = %v, want complex128", got.Type())
	}

	wantRe, err := SepFIR2D(mustView(t, re, rows, cols), hrow, hcol)
	if err != nil {
		t.Fatalf("SepFIR2D real: %v", err)
	}
	wantIm, err := SepFIR2D(mustView(t, im, rows, cols), hrow, hcol)
	if err != nil {
		t.Fatalf("SepFIR2D imag: %v", err)
	}

	want := make([]complex128, len(z))
	for i, v := range wantRe.ToSlice() {
		want[i] = complex(v, wantIm.ToSlice()[i])
	}
	testutil.RequireElementsNearlyEqual(t, got.ToSlice(), want, 1e-12)
}

func TestSepFIR2DErrors(t *testing.T) {
	img := mustView(t, []float64{1, 2, 3, 4}, 2, 2)
	vec := mustView(t, []float64{1, 2, 3}, 3)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "rank", err: SepFIR2DTo(ndarray.Alloc[float64](3), vec, []float64{1}, []float64{1}), want: ErrRank},
		{name: "empty-row", err: SepFIR2DTo(ndarray.Alloc[float64](2, 2), img, nil, []float64{1}), want: ErrEmptyKernel},
		{name: "empty-col", err: SepFIR2DTo(ndarray.Alloc[float64](2, 2), img, []float64{1}, []float64{}), want: ErrEmptyKernel},
		{name: "shape", err: SepFIR2DTo(ndarray.Alloc[float64](2, 3), img, []float64{1}, []float64{1}), want: ErrShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.want) {
				t.Fatalf("err = %v, want %v", tt.err, tt.want)
			}
		})
	}

	if _, err := SepFIR2D(vec, []float64{1}, []float64{1}); !errors.Is(err, ErrRank) {
		t.Fatalf("SepFIR2D rank 1: err = %v, want ErrRank", err)
	}
}
