package spline_test

import (
	"fmt"

	"github.com/cwbudde/algo-bspline/dsp/core"
	"github.com/cwbudde/algo-bspline/dsp/ndarray"
	"github.com/cwbudde/algo-bspline/dsp/spline"
)

func ExampleCspline1D() {
	signal, _ := ndarray.NewView([]float64{1, 2, 3, 4}, 4)

	coeffs, err := spline.Cspline1D(signal)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.4f\n", coeffs.ToSlice())

	back, _ := spline.Reconstruct1D(coeffs, spline.Cubic)
	fmt.Printf("%.4f\n", back.ToSlice())

	// Output:
	// [0.7857 2.0714 2.9286 4.2143]
	// [1.0000 2.0000 3.0000 4.0000]
}

func ExampleQspline2D() {
	img, _ := ndarray.NewView([]float64{1, 2, 3, 4}, 2, 2)

	coeffs, err := spline.Qspline2D(img)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.4f\n", coeffs.ToSlice())

	_, err = spline.Qspline2D(img, core.WithLambda(0.5))
	fmt.Println(err)
	fmt.Println(int(core.StatusOf(err)))

	// Output:
	// [0.5000 1.8333 3.1667 4.5000]
	// spline: quadratic smoothing spline: core: not implemented
	// -1
}
