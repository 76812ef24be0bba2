// Package spline computes B-spline coefficients of 1-D signals and 2-D
// images and reconstructs samples from them.
//
// Sampling a cubic (or quadratic) B-spline expansion at the integers is a
// convolution of the coefficients with the kernel [1, 4, 1]/6 (or
// [1, 6, 1]/8). The solvers invert that convolution with a symmetric
// first-order recursive filter along every axis, using mirror-symmetric
// boundaries, so that [Reconstruct2D] of [Cspline2D] returns the input.
//
// With a positive smoothing parameter lambda the cubic solver fits a
// smoothing spline instead: the coefficients c minimise the data misfit plus
// lambda times the squared second differences, which is
//
//	(B + lambda*D) c = x
//
// per axis, with B the cubic kernel and D the fourth difference
// [1, -4, 6, -4, 1]. Depending on lambda the inverse filter factors into two
// real first-order filters or one second-order filter with complex poles.
//
// [Eval1D] and [Eval2D] evaluate the expansion between grid points.
//
// Quadratic smoothing splines are not implemented.
package spline
