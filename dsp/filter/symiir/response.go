package symiir

import "math"

// Response1 returns the zero-phase frequency response of [Order1] at the
// normalised angular frequency theta (radians per sample):
//
//	c0 / (1 - 2 z1 cos(theta) + z1^2)
func Response1(c0, z1 complex128, theta float64) complex128 {
	return c0 / (1 - 2*z1*complex(math.Cos(theta), 0) + z1*z1)
}

// Response2 returns the zero-phase frequency response of [Order2] at theta.
// It is real and positive.
func Response2(r, omega, theta float64) float64 {
	sec := newAllPole(newPair(r, omega))
	return sec.magnitudeSquared(theta)
}
