// Package matrix_test contains unit tests for the Dense matrix.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphworks/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewSquare(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.False(t, m.Square())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrIndexOutOfBounds on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	err = m.Set(2, 0, 1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	err = m.Set(0, -1, 4)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 789))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(789), val)
}

// TestSetSymmetric mirrors writes and refuses non-square matrices.
func TestSetSymmetric(t *testing.T) {
	m, err := matrix.NewSquare(3)
	require.NoError(t, err)
	require.NoError(t, m.SetSymmetric(2, 0, 1))
	require.True(t, m.Symmetric())
	require.Equal(t, [][]int64{{0, 0, 1}, {0, 0, 0}, {1, 0, 0}}, m.ToRows())

	require.NoError(t, m.Set(0, 1, 5))
	require.False(t, m.Symmetric())

	r, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, r.SetSymmetric(0, 1, 1), matrix.ErrNonSquare)
	require.False(t, r.Symmetric())
}

// TestFromRowsCloneEqual checks copying semantics.
func TestFromRowsCloneEqual(t *testing.T) {
	src := [][]int64{{1, 2}, {3, 4}}
	m, err := matrix.FromRows(src)
	require.NoError(t, err)

	src[0][0] = 9
	v, _ := m.At(0, 0)
	require.Equal(t, int64(1), v)

	c := m.Clone()
	require.True(t, m.Equal(c))
	require.NoError(t, c.Set(1, 1, 0))
	require.False(t, m.Equal(c))

	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromRows([][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
