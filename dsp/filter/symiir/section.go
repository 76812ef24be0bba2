package symiir

import "math"

// allPole is a second-order all-pole section
//
//	y[n] = B0*x[n] - A1*y[n-1] - A2*y[n-2]
//
// processed in Direct Form II Transposed.
type allPole struct {
	b0, a1, a2 float64
	d0, d1     float64
}

// newAllPole returns the causal half of the pole pair: poles r*exp(±i*omega)
// and gain cs, which makes its DC gain one.
func newAllPole(p pair) allPole {
	return allPole{b0: p.cs, a1: p.a1, a2: p.a2}
}

// seed sets the delay line as if y0 and then y1 had just been produced.
func (s *allPole) seed(y0, y1 float64) {
	s.d0 = -s.a1*y1 - s.a2*y0
	s.d1 = -s.a2 * y1
}

// processBlock filters buf in place, two samples per iteration.
func (s *allPole) processBlock(buf []float64) {
	b0, a1, a2 := s.b0, s.a1, s.a2
	d0, d1 := s.d0, s.d1

	i := 0

	n := len(buf)
	for ; i+1 < n; i += 2 {
		y0 := b0*buf[i] + d0
		d0n := -a1*y0 + d1
		d1n := -a2 * y0

		y1 := b0*buf[i+1] + d0n
		d0 = -a1*y1 + d1n
		d1 = -a2 * y1

		buf[i] = y0
		buf[i+1] = y1
	}

	if i < n {
		y := b0*buf[i] + d0
		d0 = -a1*y + d1
		d1 = -a2 * y
		buf[i] = y
	}

	s.d0, s.d1 = d0, d1
}

// magnitudeSquared returns |H(e^{i theta})|^2 of the causal section.
func (s *allPole) magnitudeSquared(theta float64) float64 {
	cw := 2 * math.Cos(theta)
	a1, a2 := s.a1, s.a2

	den := (1-a2)*(1-a2) + a1*a1 + (a1*(a2+1)+cw*a2)*cw
	return s.b0 * s.b0 / den
}
