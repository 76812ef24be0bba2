// Package polyroot provides the polynomial root finding used to place the
// poles of symmetric recursive filters.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrDegeneratePolynomial is returned when a polynomial has degenerate
// coefficients: a zero or NaN leading term, or roots that fail to pair.
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// discTol is the relative size below which a discriminant counts as zero,
// so that a double root is reported as a real pair.
const discTol = 1e-14

// QuadraticRoots returns both roots of a*x^2 + b*x + c. The larger-magnitude
// root is computed first and the other from the product c/a, which avoids
// cancellation when b^2 dominates 4ac.
func QuadraticRoots(a, b, c float64) ([2]complex128, error) {
	if a == 0 || math.IsNaN(a) || math.IsNaN(b) || math.IsNaN(c) {
		return [2]complex128{}, ErrDegeneratePolynomial
	}

	disc := b*b - 4*a*c
	if math.Abs(disc) <= discTol*math.Max(b*b, math.Abs(4*a*c)) {
		disc = 0
	}

	sq := cmplx.Sqrt(complex(disc, 0))
	if b < 0 {
		sq = -sq
	}

	q := -(complex(b, 0) + sq) / 2
	if q == 0 {
		return [2]complex128{}, nil
	}

	return [2]complex128{q / complex(a, 0), complex(c, 0) / q}, nil
}

// ReciprocalRoot returns the root p of p + 1/p = w with |p| <= 1. The
// other root is 1/p. For real w in [-2, 2] both roots lie on the unit circle.
func ReciprocalRoot(w complex128) complex128 {
	p := (w - cmplx.Sqrt(w*w-4)) / 2
	if cmplx.Abs(p) > 1 {
		p = 1 / p
	}

	return p
}

// SymmetricPoles maps the roots of a quadratic a*w^2 + b*w + c in the
// symmetric variable w = z + 1/z to the two poles inside the unit circle of
// the corresponding fourth-order polynomial in z. When the roots form a
// complex pair the returned poles are conjugates.
func SymmetricPoles(a, b, c float64) ([2]complex128, error) {
	ws, err := QuadraticRoots(a, b, c)
	if err != nil {
		return [2]complex128{}, err
	}

	poles := [2]complex128{ReciprocalRoot(ws[0]), ReciprocalRoot(ws[1])}
	if imag(ws[0]) != 0 {
		if imag(poles[0]) < 0 {
			poles[0], poles[1] = poles[1], poles[0]
		}
		if !IsConjugate(poles[0], poles[1], ConjugateTol) {
			return [2]complex128{}, ErrDegeneratePolynomial
		}
	}

	return poles, nil
}

// ConjugateTol is the relative tolerance for conjugate pair matching.
const ConjugateTol = 1e-7

// IsConjugate checks whether a and b are complex conjugates within tolerance.
func IsConjugate(a, b complex128, tol float64) bool {
	if math.Abs(real(a)-real(b)) > tol*math.Max(1, math.Abs(real(a))) {
		return false
	}

	if math.Abs(imag(a)+imag(b)) > tol*math.Max(1, math.Abs(imag(a))) {
		return false
	}

	return true
}
