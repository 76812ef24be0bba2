// Package conv provides a strided N-dimensional direct convolution engine.
//
// [ConvolveTo] walks every output position of an N-D view in row-major order
// and accumulates
//
//	out[p] = sum_k kernel[k] * in[p + c - k]
//
// where c is the kernel centre (extent/2 on every axis), so the output has the
// same shape as the input. Taps that fall outside the input are resolved by a
// [ndarray.Boundary] rule:
//
//   - [ndarray.ZeroPad]: the input view's Zero value is used.
//   - [ndarray.Mirror]:  the input is extended by reflection about its edges.
//
// Tap displacements and their linear stride offsets are computed once per
// call. Output positions whose taps all land inside the input use the
// precomputed offsets directly; only border positions resolve indices axis by
// axis.
//
// # Usage
//
//	out, err := conv.Convolve(image, kernel, ndarray.Mirror)
//
// or, writing into a caller-provided view of the same shape:
//
//	err := conv.ConvolveTo(out, image, kernel, ndarray.ZeroPad)
//
// The engine is generic over [ndarray.Element]; each element type gets its
// own instantiation, so no per-sample dispatch happens in the inner loop.
package conv
