package matutil

import (
	"testing"

	"github.com/kvnumerics/kvgo/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMulRealIntervalVecMatchesPointArithmetic(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{2, 0, 0, 3})
	v := []interval.Interval{interval.New(-1, 1), interval.Point(2)}
	got, err := MulRealIntervalVec(m, v)
	require.NoError(t, err)
	assert.InDelta(t, -2, got[0].Lo, 1e-12)
	assert.InDelta(t, 2, got[0].Hi, 1e-12)
	assert.InDelta(t, 6, got[1].Mid(), 1e-12)
}

func TestMulRealIntervalVecRejectsDimensionMismatch(t *testing.T) {
	m := mat.NewDense(2, 3, make([]float64, 6))
	_, err := MulRealIntervalVec(m, []interval.Interval{interval.Zero()})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestTransposeSwapsRowsAndColumns(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	got := Transpose(m)
	rows, cols := got.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 2, cols)
	assert.InDelta(t, 4, got.At(0, 1), 1e-12)
	assert.InDelta(t, 2, got.At(1, 0), 1e-12)
}

func TestMidReturnsMidpointMatrix(t *testing.T) {
	m := pointMatrix(2, 2, []float64{1, 2, 3, 4})
	m[0][0] = interval.New(0, 2)
	got := Mid(m)
	assert.InDelta(t, 1, got.At(0, 0), 1e-12)
	assert.InDelta(t, 4, got.At(1, 1), 1e-12)
}
