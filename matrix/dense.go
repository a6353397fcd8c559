// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep iteration deterministic (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense/NewSquare: O(r*c); At/Set: O(1); Clone: O(r*c); Grow: O(n²).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"   // method tag used in error wrappers
	ctxSet  = "Set"  // method tag used in error wrappers
	ctxGrow = "Grow" // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Notes:
//   - Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of T.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T any] struct {
	r, c int // row and column counts (>=0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)

// NewDense creates an r×c matrix filled with the zero value of T.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T any](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewSquare creates an n×n matrix with every cell set to fill.
// Unlike NewDense it accepts n == 0, which is the natural starting
// shape of a graph that has no airports yet.
//
// Errors:
//   - ErrInvalidDimensions when n < 0.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewSquare[T any](n int, fill T) (*Dense[T], error) {
	if n < 0 {
		return nil, ErrInvalidDimensions
	}
	buf := make([]T, n*n)
	for i := range buf {
		buf[i] = fill
	}

	return &Dense[T]{r: n, c: n, data: buf}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns a bare sentinel; public methods wrap it with coordinates.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns the zero value and a wrapped sentinel.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	var zero T
	if m == nil {
		return zero, ErrNilMatrix
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	if m == nil {
		return ErrNilMatrix
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// SetSymmetric stores v at both (i, j) and (j, i).
// Both coordinates are validated before either cell is written, so a
// failed call never leaves the matrix half-updated.
//
// Errors:
//   - ErrNonSquare if the receiver is not square.
//   - ErrOutOfRange (wrapped) on invalid indices.
func (m *Dense[T]) SetSymmetric(i, j int, v T) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r != m.c {
		return ErrNonSquare
	}
	a, err := m.indexOf(i, j)
	if err != nil {
		return denseErrorf(ctxSet, i, j, err)
	}
	b := j*m.c + i // (j,i) is valid whenever (i,j) is on a square matrix
	m.data[a] = v
	m.data[b] = v

	return nil
}

// Grow appends one row and one column to a square matrix, filling every
// new cell with fill. Existing cells keep their coordinates.
//
// Implementation:
//   - Stage 1: allocate (n+1)² buffer.
//   - Stage 2: copy each old row into its new offset, pad with fill.
//
// Errors:
//   - ErrNonSquare when rows != cols.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Dense[T]) Grow(fill T) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r != m.c {
		return denseErrorf(ctxGrow, m.r, m.c, ErrNonSquare)
	}
	n := m.r + 1
	buf := make([]T, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i < m.r && j < m.c {
				buf[i*n+j] = m.data[i*m.c+j]
				continue
			}
			buf[i*n+j] = fill
		}
	}
	m.r, m.c, m.data = n, n, buf

	return nil
}

// Fill overwrites every cell with v. A nil receiver is a no-op.
// Complexity: O(r*c).
func (m *Dense[T]) Fill(v T) {
	if m == nil {
		return
	}
	for i := range m.data {
		m.data[i] = v
	}
}

// Clone returns a deep copy (new buffer, same shape).
// Mutations on the clone never affect the original. Cloning nil yields nil.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	if m == nil {
		return nil
	}
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// String renders rows as bracketed, comma-separated lines for diagnostics.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString("[")
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
