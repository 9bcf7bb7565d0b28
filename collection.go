package submodular

import (
	"iter"
)

// Scalar is the element type of vectors handled by a Function.
type Scalar interface {
	~float32 | ~float64
}

// Collection is an ordered set of vectors sharing one dimension.
//
// Rows are owned by the caller and are never modified. A Collection is a
// cheap value: copying it copies the row headers, not the vector data.
type Collection[T Scalar] struct {
	dim  int
	rows [][]T
}

// NewCollection creates a collection of the given dimension.
// Every row must have exactly dim entries.
func NewCollection[T Scalar](dim int, rows ...[]T) (Collection[T], error) {
	if dim < 1 {
		return Collection[T]{}, &ErrInvalidDimension{Dimension: dim}
	}
	for i, r := range rows {
		if len(r) != dim {
			return Collection[T]{}, &ErrDimensionMismatch{Expected: dim, Actual: len(r), Index: i}
		}
	}
	return Collection[T]{dim: dim, rows: rows}, nil
}

// FromRows creates a collection whose dimension is taken from the first row.
func FromRows[T Scalar](rows [][]T) (Collection[T], error) {
	if len(rows) == 0 {
		return Collection[T]{}, ErrEmptyCollection
	}
	return NewCollection(len(rows[0]), rows...)
}

// Dim returns the width of every row.
func (c Collection[T]) Dim() int { return c.dim }

// Len returns the number of rows.
func (c Collection[T]) Len() int { return len(c.rows) }

// Row returns the i-th row. The returned slice must not be modified.
func (c Collection[T]) Row(i int) []T { return c.rows[i] }

// Rows iterates over (index, row) pairs in insertion order.
func (c Collection[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for i, r := range c.rows {
			if !yield(i, r) {
				return
			}
		}
	}
}

// With returns a new collection with e appended as the last row.
//
// Only the row headers are copied, so the cost does not depend on the
// element data of c. The caller is responsible for len(e) == c.Dim();
// use Compatible to check.
func (c Collection[T]) With(e []T) Collection[T] {
	rows := make([][]T, len(c.rows), len(c.rows)+1)
	copy(rows, c.rows)
	return Collection[T]{dim: c.dim, rows: append(rows, e)}
}

// Compatible reports whether e can be appended to c.
func (c Collection[T]) Compatible(e []T) bool {
	return len(e) == c.dim
}
