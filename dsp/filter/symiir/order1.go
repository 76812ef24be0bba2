package symiir

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-bspline/dsp/core"
	"github.com/cwbudde/algo-bspline/dsp/ndarray"
)

// Errors returned for malformed arguments.
var (
	ErrRank  = errors.New("symiir: signal must be rank 1")
	ErrShape = errors.New("symiir: source and destination lengths differ")
)

// Order1 filters the rank-1 view src with the symmetric first-order filter
// c0 / ((1 - z1 z^-1)(1 - z1 z)) and returns a fresh contiguous result.
// The default precision is 1e-6 for single and 1e-11 for double precision
// elements. For real element types only the real parts of c0 and z1 are used.
func Order1[T ndarray.Element](src ndarray.View[T], c0, z1 complex128, opts ...core.Option) (ndarray.View[T], error) {
	if err := src.RequireRank(1); err != nil {
		return ndarray.View[T]{}, fmt.Errorf("%w: %w", ErrRank, err)
	}
	cfg := core.ApplyOptions(core.DefaultConfig(core.DefaultSymIIRPrecision(ndarray.TypeOf[T]().IsSingle())), opts...)

	dst := ndarray.Alloc[T](src.Shape...)
	dst.Zero = src.Zero
	if err := Order1To(dst, src, c0, z1, cfg); err != nil {
		return ndarray.View[T]{}, err
	}
	return dst, nil
}

// Order1To is [Order1] writing into dst with an explicit configuration.
// dst may alias src.
func Order1To[T ndarray.Element](dst, src ndarray.View[T], c0, z1 complex128, cfg core.Config) error {
	if err := checkLine(dst, src); err != nil {
		return err
	}
	if !ndarray.TypeOf[T]().IsComplex() {
		c0 = complex(real(c0), 0)
		z1 = complex(real(z1), 0)
	}
	if !(cmplx.Abs(z1) < 1) {
		return fmt.Errorf("%w: |z1| = %g", core.ErrUnstable, cmplx.Abs(z1))
	}

	buf := make([]complex128, src.Shape[0])
	loadComplex(buf, src)
	if err := order1(buf, c0, z1, cfg); err != nil {
		return err
	}
	storeComplex(dst, buf)
	return nil
}

// order1 filters x in place.
func order1(x []complex128, c0, z1 complex128, cfg core.Config) error {
	n := len(x)

	// yp[0] = sum_k z1^k x[-k] over the mirror extension.
	sum := x[0]
	pow := complex(1, 0)
	limit := cfg.TermCap(n)
	for k := 1; ; k++ {
		pow *= z1
		if cmplx.Abs(pow) <= cfg.Precision {
			break
		}
		if k >= limit {
			return fmt.Errorf("%w: z1 = %v after %d terms", core.ErrNoConvergence, z1, k)
		}
		sum += pow * mirror(x, -k)
	}

	x[0] = sum
	for i := 1; i < n; i++ {
		x[i] += z1 * x[i-1]
	}

	x[n-1] *= c0 / (1 - z1)
	for i := n - 2; i >= 0; i-- {
		x[i] = z1*x[i+1] + c0*x[i]
	}
	return nil
}
