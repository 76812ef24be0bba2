package ndarray

import (
	"errors"
	"fmt"
	"slices"
)

// Errors returned by view construction and validation.
var (
	ErrEmptyShape     = errors.New("ndarray: empty shape")
	ErrBadExtent      = errors.New("ndarray: extent must be positive")
	ErrStrideMismatch = errors.New("ndarray: shape and strides differ in rank")
	ErrOutOfRange     = errors.New("ndarray: view addresses elements outside its data")
	ErrRank           = errors.New("ndarray: unexpected rank")
)

// View is a strided N-dimensional window onto caller-owned data.
//
// Element (i0, i1, ...) lives at Data[Offset + i0*Strides[0] + i1*Strides[1] + ...].
// Zero is the value substituted for out-of-range taps under [ZeroPad].
type View[T Element] struct {
	Data    []T
	Offset  int
	Shape   []int
	Strides []int
	Zero    T
}

// NewView returns a contiguous row-major view of data with the given shape.
func NewView[T Element](data []T, shape ...int) (View[T], error) {
	v := View[T]{
		Data:    data,
		Shape:   slices.Clone(shape),
		Strides: RowMajorStrides(shape),
	}
	return v, v.Validate()
}

// NewStrided returns a view with explicit offset and strides.
func NewStrided[T Element](data []T, offset int, shape, strides []int) (View[T], error) {
	v := View[T]{
		Data:    data,
		Offset:  offset,
		Shape:   slices.Clone(shape),
		Strides: slices.Clone(strides),
	}
	return v, v.Validate()
}

// Alloc returns a fresh zeroed contiguous view. Extents must be positive.
func Alloc[T Element](shape ...int) View[T] {
	n := 1
	for _, e := range shape {
		if e <= 0 {
			panic(fmt.Sprintf("ndarray: Alloc with non-positive extent %d", e))
		}
		n *= e
	}
	return View[T]{
		Data:    make([]T, n),
		Shape:   slices.Clone(shape),
		Strides: RowMajorStrides(shape),
	}
}

// RowMajorStrides returns the element strides of a contiguous row-major
// array with the given shape.
func RowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	step := 1
	for d := len(shape) - 1; d >= 0; d-- {
		strides[d] = step
		step *= shape[d]
	}
	return strides
}

// Rank returns the number of axes.
func (v View[T]) Rank() int { return len(v.Shape) }

// Type returns the element type of the view.
func (v View[T]) Type() ElementType { return TypeOf[T]() }

// Len returns the number of addressable elements.
func (v View[T]) Len() int {
	if len(v.Shape) == 0 {
		return 0
	}
	n := 1
	for _, e := range v.Shape {
		n *= e
	}
	return n
}

// Validate checks that the view is well formed and that every element it
// addresses lies inside Data.
func (v View[T]) Validate() error {
	if len(v.Shape) == 0 {
		return ErrEmptyShape
	}
	if len(v.Strides) != len(v.Shape) {
		return fmt.Errorf("%w: %d extents, %d strides", ErrStrideMismatch, len(v.Shape), len(v.Strides))
	}

	lo, hi := v.Offset, v.Offset
	for d, e := range v.Shape {
		if e <= 0 {
			return fmt.Errorf("%w: axis %d has extent %d", ErrBadExtent, d, e)
		}
		span := (e - 1) * v.Strides[d]
		if span < 0 {
			lo += span
		} else {
			hi += span
		}
	}
	if lo < 0 || hi >= len(v.Data) {
		return fmt.Errorf("%w: elements [%d, %d] of %d", ErrOutOfRange, lo, hi, len(v.Data))
	}
	return nil
}

// RequireRank validates v and checks that it has exactly rank axes.
func (v View[T]) RequireRank(rank int) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if len(v.Shape) != rank {
		return fmt.Errorf("%w: got %d, want %d", ErrRank, len(v.Shape), rank)
	}
	return nil
}

// Index returns the Data position of the multi-index idx without bounds checks.
func (v View[T]) Index(idx []int) int {
	pos := v.Offset
	for d, i := range idx {
		pos += i * v.Strides[d]
	}
	return pos
}

func (v View[T]) checkIndex(idx []int) {
	if len(idx) != len(v.Shape) {
		panic(fmt.Sprintf("ndarray: %d indices for rank %d view", len(idx), len(v.Shape)))
	}
	for d, i := range idx {
		if i < 0 || i >= v.Shape[d] {
			panic(fmt.Sprintf("ndarray: index %d out of range [0, %d) on axis %d", i, v.Shape[d], d))
		}
	}
}

// At returns the element at idx. It panics if idx is out of range.
func (v View[T]) At(idx ...int) T {
	v.checkIndex(idx)
	return v.Data[v.Index(idx)]
}

// Set stores val at idx. It panics if idx is out of range.
func (v View[T]) Set(val T, idx ...int) {
	v.checkIndex(idx)
	v.Data[v.Index(idx)] = val
}

// Line returns the rank-1 view along axis that passes through at.
// at[axis] is ignored. The result shares memory with v.
func (v View[T]) Line(axis int, at []int) View[T] {
	pos := v.Offset
	for d, i := range at {
		if d != axis {
			pos += i * v.Strides[d]
		}
	}
	return View[T]{
		Data:    v.Data,
		Offset:  pos,
		Shape:   []int{v.Shape[axis]},
		Strides: []int{v.Strides[axis]},
		Zero:    v.Zero,
	}
}

// Contiguous reports whether the view is dense and row-major from Offset.
func (v View[T]) Contiguous() bool {
	return slices.Equal(v.Strides, RowMajorStrides(v.Shape))
}

// ShapeEquals reports whether v has exactly the given shape.
func (v View[T]) ShapeEquals(shape []int) bool {
	return slices.Equal(v.Shape, shape)
}

// ToSlice returns the addressed elements in row-major order.
func (v View[T]) ToSlice() []T {
	n := v.Len()
	if n == 0 {
		return nil
	}
	if v.Contiguous() {
		return slices.Clone(v.Data[v.Offset : v.Offset+n])
	}

	out := make([]T, 0, n)
	idx := make([]int, len(v.Shape))
	for {
		out = append(out, v.Data[v.Index(idx)])
		if !Next(idx, v.Shape) {
			break
		}
	}
	return out
}

// Copy returns a contiguous deep copy of v.
func (v View[T]) Copy() View[T] {
	return View[T]{
		Data:    v.ToSlice(),
		Shape:   slices.Clone(v.Shape),
		Strides: RowMajorStrides(v.Shape),
		Zero:    v.Zero,
	}
}

// Transpose returns the rank-2 view with its axes swapped. It shares memory.
func (v View[T]) Transpose() View[T] {
	if len(v.Shape) != 2 {
		panic(fmt.Sprintf("ndarray: Transpose of rank %d view", len(v.Shape)))
	}
	return View[T]{
		Data:    v.Data,
		Offset:  v.Offset,
		Shape:   []int{v.Shape[1], v.Shape[0]},
		Strides: []int{v.Strides[1], v.Strides[0]},
		Zero:    v.Zero,
	}
}
