// SPDX-License-Identifier: MIT
// Package sparse: converters between the dictionary-of-keys entity and
// gonum's dense matrix type, for handing matrices to linear-algebra
// routines or ingesting their results.

package sparse

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Operation tags for converter error wrapping.
const (
	opToDense   = "ToDense"
	opFromDense = "FromDense"
)

// int64 range bounds expressed in float64. maxValueFloat is exactly 2^63;
// any float64 ≥ 2^63 or < -2^63 cannot be an in-range int64.
const (
	maxValueFloat = float64(1 << 63)
	minValueFloat = -float64(1 << 63)
)

// ToDense materializes m as a gonum mat.Dense of float64 values.
// Implementation:
//   - Stage 1: validate m is non-nil and has positive dimensions (gonum
//     cannot represent an empty Dense).
//   - Stage 2: allocate the zero-filled Dense and scatter stored entries.
//
// Returns:
//   - *mat.Dense: rows×cols dense copy; unstored positions are 0.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (zero-sized matrices).
//
// Notes:
//   - Values of magnitude above 2^53 lose precision in float64; exactness is
//     preserved only on the way back via FromDense's integrality check.
//
// Complexity: Time O(rows·cols) for allocation, O(nnz) for the scatter.
func ToDense(m *Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opToDense, err)
	}
	if m.rows == 0 || m.cols == 0 {
		return nil, sparseErrorf(opToDense, ErrInvalidDimensions)
	}

	d := mat.NewDense(m.rows, m.cols, nil) // zero-initialized backing slice
	for k, v := range m.data {
		d.Set(k.row, k.col, float64(v))
	}

	return d, nil
}

// FromDense ingests a gonum mat.Dense as a sparse Matrix, storing only
// non-zero cells.
// Implementation:
//   - Stage 1: reject a nil input; read dimensions and allocate.
//   - Stage 2: fixed r→c scan; every cell must be a finite, integral float64
//     inside the int64 range, else the conversion fails with no partial result.
//
// Errors:
//   - ErrNilMatrix        — d is nil.
//   - ErrNonIntegralValue — NaN, ±Inf, fractional, or out-of-range cell (the
//     wrapped message carries the offending position).
//
// Complexity: Time O(rows·cols), Space O(nnz).
func FromDense(d *mat.Dense) (*Matrix, error) {
	if d == nil {
		return nil, sparseErrorf(opFromDense, ErrNilMatrix)
	}
	rows, cols := d.Dims()
	m, err := New(rows, cols)
	if err != nil {
		return nil, sparseErrorf(opFromDense, err)
	}

	var r, c int
	var v float64
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			v = d.At(r, c)
			if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) ||
				v >= maxValueFloat || v < minValueFloat {
				return nil, sparseErrorf(opFromDense,
					fmt.Errorf("cell (%d,%d)=%v: %w", r, c, v, ErrNonIntegralValue))
			}
			m.Set(r, c, Value(v)) // Set drops zeros
		}
	}

	return m, nil
}
