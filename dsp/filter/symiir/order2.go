package symiir

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-bspline/dsp/core"
	"github.com/cwbudde/algo-bspline/dsp/ndarray"
)

// Order2 filters the rank-1 view src with the symmetric second-order filter
// whose causal half has poles r*exp(±i*omega), 0 <= r < 1, and returns a
// fresh contiguous result. The default precision is 1e-6 for float32 and
// 1e-11 for float64.
func Order2[T ndarray.Real](src ndarray.View[T], r, omega float64, opts ...core.Option) (ndarray.View[T], error) {
	if err := src.RequireRank(1); err != nil {
		return ndarray.View[T]{}, fmt.Errorf("%w: %w", ErrRank, err)
	}
	cfg := core.ApplyOptions(core.DefaultConfig(core.DefaultSymIIRPrecision(ndarray.TypeOf[T]().IsSingle())), opts...)

	dst := ndarray.Alloc[T](src.Shape...)
	dst.Zero = src.Zero
	if err := Order2To(dst, src, r, omega, cfg); err != nil {
		return ndarray.View[T]{}, err
	}
	return dst, nil
}

// Order2To is [Order2] writing into dst with an explicit configuration.
// dst may alias src.
func Order2To[T ndarray.Real](dst, src ndarray.View[T], r, omega float64, cfg core.Config) error {
	if err := checkLine(dst, src); err != nil {
		return err
	}
	if !(r >= 0 && r < 1) || math.IsNaN(omega) || math.IsInf(omega, 0) {
		return fmt.Errorf("%w: r = %g, omega = %g", core.ErrUnstable, r, omega)
	}

	x := make([]float64, src.Shape[0])
	loadReal(x, src)
	y, err := order2(x, newPair(r, omega), cfg)
	if err != nil {
		return err
	}
	storeReal(dst, y)
	return nil
}

func order2(x []float64, p pair, cfg core.Config) ([]float64, error) {
	n := len(x)
	y := make([]float64, n)

	if n > 2 {
		yp0, err := series(x, 0, p.causal, p.causalEnv, cfg)
		if err != nil {
			return nil, fmt.Errorf("symiir: forward: %w", err)
		}
		yp1, err := series(x, 1, p.causal, p.causalEnv, cfg)
		if err != nil {
			return nil, fmt.Errorf("symiir: forward: %w", err)
		}

		y[0], y[1] = yp0, yp1
		copy(y[2:], x[2:])
		sec := newAllPole(p)
		sec.seed(yp0, yp1)
		sec.processBlock(y[2:])
	}

	last, err := series(x, n-1,
		func(k int) float64 { return p.symmetric(k) + p.symmetric(k+1) },
		func(k int) float64 { return p.symmetricEnv(k) + p.symmetricEnv(k+1) },
		cfg)
	if err != nil {
		return nil, fmt.Errorf("symiir: backward: %w", err)
	}
	if n == 1 {
		y[0] = last
		return y, nil
	}

	prev, err := series(x, n-1,
		func(k int) float64 { return p.symmetric(k-1) + p.symmetric(k+2) },
		func(k int) float64 { return p.symmetricEnv(k-1) + p.symmetricEnv(k+2) },
		cfg)
	if err != nil {
		return nil, fmt.Errorf("symiir: backward: %w", err)
	}

	// The anti-causal pass is the causal section run over the reversed
	// forward output.
	rev := core.Reverse(nil, y)
	rev[0], rev[1] = last, prev
	sec := newAllPole(p)
	sec.seed(last, prev)
	sec.processBlock(rev[2:])

	return core.Reverse(y, rev), nil
}
