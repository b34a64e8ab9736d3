package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/urbanpath/matrix"
)

func TestNewDense_Shape(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDense(2, -1)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestDense_Bounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	_, err = m.Row(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_CloneIsDeep(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 7))

	c := m.Clone()
	require.NoError(t, c.Set(0, 1, 9))
	v, _ := m.At(0, 1)
	assert.Equal(t, 7.0, v)

	row, err := c.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 9}, row)
}

func TestDense_String(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	m.Fill(math.Inf(1))
	require.NoError(t, m.Set(0, 0, 0))
	require.NoError(t, m.Set(1, 1, 2.5))
	assert.Equal(t, "[0 ∞]\n[∞ 2.5]\n", m.String())
}

func TestFloydWarshallInPlace_NonSquare(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, matrix.FloydWarshallInPlace(m), matrix.ErrDimensionMismatch)
}
