package ndarray

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Real is the set of real element types.
type Real interface {
	float32 | float64
}

// Element is the closed set of element types understood by the filters.
type Element interface {
	float32 | float64 | complex64 | complex128
}

// ElementType names a member of [Element] at run time.
type ElementType int

const (
	Float32 ElementType = iota
	Float64
	Complex64
	Complex128
)

// TypeOf returns the ElementType of T.
func TypeOf[T Element]() ElementType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	default:
		return Complex128
	}
}

// Size returns the element size in bytes.
func (t ElementType) Size() int {
	switch t {
	case Float32:
		return 4
	case Float64, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		return 0
	}
}

// IsComplex reports whether t is a complex type.
func (t ElementType) IsComplex() bool {
	return t == Complex64 || t == Complex128
}

// IsSingle reports whether t has single-precision components.
func (t ElementType) IsSingle() bool {
	return t == Float32 || t == Complex64
}

func (t ElementType) String() string {
	switch t {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return fmt.Sprintf("ElementType(%d)", int(t))
	}
}

// FromComplex converts c to T. Real targets keep only the real part.
func FromComplex[T Element](c complex128) T {
	var v T
	switch p := any(&v).(type) {
	case *float32:
		*p = float32(real(c))
	case *float64:
		*p = real(c)
	case *complex64:
		*p = complex64(c)
	case *complex128:
		*p = c
	}
	return v
}

// FromFloat converts f to T.
func FromFloat[T Element](f float64) T {
	return FromComplex[T](complex(f, 0))
}

// ToComplex widens v to complex128.
func ToComplex[T Element](v T) complex128 {
	switch x := any(v).(type) {
	case float32:
		return complex(float64(x), 0)
	case float64:
		return complex(x, 0)
	case complex64:
		return complex128(x)
	case complex128:
		return x
	}
	return 0
}

// Abs returns |v| in double precision.
func Abs[T Element](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	}
	return 0
}
