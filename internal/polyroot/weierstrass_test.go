package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
)

// polyEval evaluates coeff[0]*x^n + ... + coeff[n] by Horner's rule.
func polyEval(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for _, c := range coeff[1:] {
		v = v*x + c
	}
	return v
}

// weierstrassRoots returns all roots of the polynomial with descending
// coefficients coeff by simultaneous Weierstrass iteration. It serves as an
// independent reference for the closed-form pole placement.
func weierstrassRoots(coeff []complex128) ([]complex128, error) {
	n := len(coeff) - 1
	if n < 1 || coeff[0] == 0 {
		return nil, errors.New("weierstrass: degree below one")
	}
	monic := make([]complex128, len(coeff))
	for i, c := range coeff {
		monic[i] = c / coeff[0]
	}

	// Start on a slightly irregular circle enclosing every root.
	bound := 1.0
	for _, c := range monic[1:] {
		bound = math.Max(bound, cmplx.Abs(c))
	}
	roots := make([]complex128, n)
	for i := range roots {
		roots[i] = cmplx.Rect(bound*(1+0.1*float64(i)/float64(n)), 2*math.Pi*float64(i)/float64(n)+0.3)
	}

	for range 500 {
		step := 0.0
		for i, z := range roots {
			den := complex(1, 0)
			for j, w := range roots {
				if j != i {
					den *= z - w
				}
			}
			if den == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}
			d := polyEval(monic, z) / den
			roots[i] -= d
			step = math.Max(step, cmplx.Abs(d))
		}
		if step < 1e-12 {
			return roots, nil
		}
	}
	return nil, errors.New("weierstrass: no convergence")
}
