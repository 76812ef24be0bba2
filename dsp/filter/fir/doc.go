// Package fir applies short FIR kernels to strided 1-D and 2-D views with
// mirror-symmetric boundary extension.
//
// Boundaries use the half-sample symmetric extension of [ndarray.Mirror]:
// x[-1] = x[0], x[N] = x[N-1]. A kernel h of length K is centred at K/2 and
// applied as
//
//	y[n] = sum_k h[k] * x[n + K/2 - k]
//
// [SepFIR2D] filters every row with one kernel and then every column with
// another. Because the mirror extension is separable this equals a 2-D
// convolution with the outer product of the two kernels. Real element types
// run each lane through a padded contiguous buffer and the SIMD
// valid-convolution kernels of github.com/tphakala/simd; complex element
// types use the N-D convolver of package conv.
package fir
