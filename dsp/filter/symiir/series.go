package symiir

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-bspline/dsp/core"
)

// edgeSin is the sine of the folded pole angle below which the angle is
// treated as zero and the impulse responses switch to their double-pole forms.
const edgeSin = 1e-8

// pair holds the constants of the order-2 filter with poles r*exp(±i*omega).
//
// The impulse responses are evaluated at the folded angle w in [0, pi/2]:
// a pole angle pi-w gives the responses of w times (-1)^k, and working near
// zero instead of near pi keeps sin(w) and tan(w) accurate.
type pair struct {
	r, rsq float64
	cs     float64
	a1, a2 float64 // causal denominator 1 + a1 z^-1 + a2 z^-2

	w    float64 // folded angle
	sinw float64
	edge bool
	sign float64 // -1 when the pole angle lies beyond pi/2

	// Symmetric response constants.
	hsC   float64
	gamma float64
	g     float64
}

func newPair(r, omega float64) pair {
	rsq := r * r
	cosw := math.Cos(omega)
	p := pair{
		r:    r,
		rsq:  rsq,
		cs:   1 - 2*r*cosw + rsq,
		a1:   -2 * r * cosw,
		a2:   rsq,
		sign: 1,
	}

	p.w = math.Abs(math.Remainder(omega, 2*math.Pi))
	if p.w > math.Pi/2 {
		p.w = math.Pi - p.w
		p.sign = -1
	}
	p.sinw = math.Sin(p.w)

	d := 1 - rsq
	if p.sinw < edgeSin {
		p.edge = true
		p.hsC = p.cs * p.cs * (1 + rsq) / (d * d * d)
		p.g = d / (1 + rsq)
		return p
	}

	// 1 - 2r^2 cos(2w) + r^4 written without cancellation.
	den := d*d + 4*rsq*p.sinw*p.sinw
	p.hsC = p.cs * p.cs * (1 + rsq) / (d * den)
	p.gamma = d / ((1 + rsq) * math.Tan(p.w))
	return p
}

func (p *pair) signed(v float64, k int) float64 {
	if p.sign < 0 && k%2 != 0 {
		return -v
	}
	return v
}

// causal returns the causal impulse response
// hc(k) = cs r^k sin(omega(k+1)) / sin(omega).
func (p *pair) causal(k int) float64 {
	if k < 0 {
		return 0
	}
	rk := math.Pow(p.r, float64(k))
	if p.edge {
		return p.signed(p.cs*rk*float64(k+1), k)
	}
	return p.signed(p.cs*rk*math.Sin(p.w*float64(k+1))/p.sinw, k)
}

func (p *pair) causalEnv(k int) float64 {
	rk := math.Pow(p.r, float64(k))
	if p.edge {
		return p.cs * rk * float64(k+1)
	}
	return p.cs * rk * math.Min(float64(k+1), 1/p.sinw)
}

// symmetric returns the impulse response of the forward-backward cascade,
// an even function of k.
func (p *pair) symmetric(k int) float64 {
	if k < 0 {
		k = -k
	}
	rk := math.Pow(p.r, float64(k))
	if p.edge {
		return p.signed(p.hsC*rk*(1+p.g*float64(k)), k)
	}
	wk := p.w * float64(k)
	return p.signed(p.hsC*rk*(math.Cos(wk)+p.gamma*math.Sin(wk)), k)
}

func (p *pair) symmetricEnv(k int) float64 {
	if k < 0 {
		k = -k
	}
	rk := math.Pow(p.r, float64(k))
	if p.edge {
		return math.Abs(p.hsC) * rk * (1 + p.g*float64(k))
	}
	return math.Abs(p.hsC) * rk * math.Sqrt(1+p.gamma*p.gamma)
}

// series sums weight(k) * x[base-k] over the mirror extension of x. env(k)
// bounds |weight(k)|; the sum stops at the first k > 0 where the bound is at
// or below the precision and no longer rising.
func series(x []float64, base int, weight, env func(int) float64, cfg core.Config) (float64, error) {
	limit := cfg.TermCap(len(x))
	sum := 0.0
	for k := 0; ; k++ {
		if k > 0 {
			if e := env(k); e <= cfg.Precision && env(k+1) <= e {
				return sum, nil
			}
		}
		if k >= limit {
			return 0, fmt.Errorf("%w: %d terms at precision %g", core.ErrNoConvergence, k, cfg.Precision)
		}
		sum += weight(k) * mirror(x, base-k)
	}
}
