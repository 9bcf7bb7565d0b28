package submodular

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollection(t *testing.T) {
	c, err := NewCollection(2, []float64{1, 0}, []float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Dim())
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []float64{0, 1}, c.Row(1))

	empty, err := NewCollection[float32](3)
	require.NoError(t, err)
	assert.Equal(t, 3, empty.Dim())
	assert.Equal(t, 0, empty.Len())
}

func TestNewCollection_Errors(t *testing.T) {
	_, err := NewCollection[float64](0)
	var id *ErrInvalidDimension
	require.True(t, errors.As(err, &id))
	assert.Equal(t, 0, id.Dimension)

	_, err = NewCollection(2, []float64{1, 2}, []float64{1, 2, 3})
	var dm *ErrDimensionMismatch
	require.True(t, errors.As(err, &dm))
	assert.Equal(t, 2, dm.Expected)
	assert.Equal(t, 3, dm.Actual)
	assert.Equal(t, 1, dm.Index)
}

func TestFromRows(t *testing.T) {
	c, err := FromRows([][]float32{{1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, 3, c.Dim())

	_, err = FromRows[float64](nil)
	assert.ErrorIs(t, err, ErrEmptyCollection)
}

func TestCollection_With(t *testing.T) {
	rows := [][]float64{{1, 0}, {0, 1}}
	S, err := FromRows(rows)
	require.NoError(t, err)

	e := []float64{1, 1}
	aug := S.With(e)

	assert.Equal(t, 3, aug.Len())
	assert.Equal(t, 2, aug.Dim())
	assert.Equal(t, e, aug.Row(2))

	// S is untouched.
	assert.Equal(t, 2, S.Len())
	assert.Equal(t, [][]float64{{1, 0}, {0, 1}}, rows)

	// Appending to two copies does not alias.
	a := S.With([]float64{5, 5})
	b := S.With([]float64{7, 7})
	assert.Equal(t, []float64{5, 5}, a.Row(2))
	assert.Equal(t, []float64{7, 7}, b.Row(2))

	// Row data is shared, not copied.
	assert.Same(t, &rows[0][0], &aug.Row(0)[0])
}

func TestCollection_Rows(t *testing.T) {
	S, err := FromRows([][]float64{{1}, {2}, {3}})
	require.NoError(t, err)

	var got []float64
	for i, row := range S.Rows() {
		assert.Equal(t, S.Row(i), row)
		got = append(got, row[0])
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []float64{1, 2}, got)
}

func TestCollection_Compatible(t *testing.T) {
	S, err := NewCollection[float64](3)
	require.NoError(t, err)

	assert.True(t, S.Compatible([]float64{1, 2, 3}))
	assert.False(t, S.Compatible([]float64{1, 2}))
}

func TestAugmentAll(t *testing.T) {
	S, err := FromRows([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	elems := [][]float64{{1, 1}, {2, 2}, {3, 3}}

	aug := augmentAll(S, elems)
	require.Len(t, aug, 3)
	for j, c := range aug {
		assert.Equal(t, 3, c.Len())
		assert.Equal(t, elems[j], c.Row(2))
		assert.Equal(t, S.Row(0), c.Row(0))
		assert.Equal(t, 3, cap(c.rows), "window must be capacity-capped")
	}

	assert.Equal(t, []float64{1, 0}, aug[1].Row(0))
}
