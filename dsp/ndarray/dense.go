package ndarray

import (
	"gonum.org/v1/gonum/mat"
)

// FromDense wraps the storage of m as a rank-2 view without copying.
func FromDense(m *mat.Dense) (View[float64], error) {
	raw := m.RawMatrix()
	v := View[float64]{
		Data:    raw.Data,
		Shape:   []int{raw.Rows, raw.Cols},
		Strides: []int{raw.Stride, 1},
	}
	return v, v.Validate()
}

// ToDense copies a rank-2 view into a new gonum matrix.
func ToDense(v View[float64]) (*mat.Dense, error) {
	if err := v.RequireRank(2); err != nil {
		return nil, err
	}
	return mat.NewDense(v.Shape[0], v.Shape[1], v.ToSlice()), nil
}

// FromCDense wraps the storage of m as a rank-2 complex view without copying.
func FromCDense(m *mat.CDense) (View[complex128], error) {
	raw := m.RawCMatrix()
	v := View[complex128]{
		Data:    raw.Data,
		Shape:   []int{raw.Rows, raw.Cols},
		Strides: []int{raw.Stride, 1},
	}
	return v, v.Validate()
}

// ToCDense copies a rank-2 complex view into a new gonum matrix.
func ToCDense(v View[complex128]) (*mat.CDense, error) {
	if err := v.RequireRank(2); err != nil {
		return nil, err
	}
	return mat.NewCDense(v.Shape[0], v.Shape[1], v.ToSlice()), nil
}
