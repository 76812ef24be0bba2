// Package symiir implements zero-phase first- and second-order recursive
// filters run forward and then backward over mirror-extended sequences.
//
// [Order1] realises
//
//	H(z) = c0 / ((1 - z1 z^-1)(1 - z1 z))
//
// and [Order2] realises
//
//	H(z) = cs^2 / ((1 - 2r cos(w) z^-1 + r^2 z^-2)(1 - 2r cos(w) z + r^2 z^2))
//
// with cs = 1 - 2r cos(w) + r^2.
//
// The sequences are extended with the half-sample symmetric mirror of
// [ndarray.Mirror]. The causal pass starts from initial conditions computed
// as truncated series over the extension: terms are summed until their
// magnitude envelope falls to the requested precision. A series that would
// need more than max(N, MaxTerms) terms fails with [core.ErrNoConvergence].
// The anti-causal pass starts from closed-form or series conditions that are
// exact for the mirror extension.
package symiir
