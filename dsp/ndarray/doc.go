// Package ndarray describes caller-owned numeric buffers as strided
// N-dimensional views.
//
// A [View] holds a non-owning reference to a slice together with an offset,
// per-axis extents and per-axis strides measured in elements. Strides may be
// non-unit or negative, so transposed and reversed layouts are expressed
// without copying. Views are cheap values: they are created for the duration
// of a call and never retained by the filters that consume them.
//
// The element type is the closed union [Element] of float32, float64,
// complex64 and complex128. Consumers are written as generic functions and
// instantiated once per element type, so dispatch happens at compile time
// rather than inside inner loops. [ElementType] names the union members at
// run time, e.g. for choosing type-dependent default precisions.
//
// [Resolve] maps a possibly out-of-range index onto a view axis under a
// [Boundary] rule:
//
//   - [ZeroPad]: out-of-range taps read the view's Zero value.
//   - [Mirror]:  the axis is extended by reflection about its edge samples,
//     x[-1] = x[0], x[-2] = x[1], ..., with period 2*extent.
//
// [FromDense] and [ToDense] adapt gonum matrices to and from views.
package ndarray
