package matutil

import (
	"testing"

	"github.com/kvnumerics/kvgo/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestQRReconstructsInputMatrix(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{
		12, -51, 4,
		6, 167, -68,
		-4, 24, -41,
	})
	q, r, err := QR(m)
	require.NoError(t, err)

	got := Mul(q, r)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, m.At(i, j), got.At(i, j), 1e-8)
		}
	}
}

func TestQRNonSquareReturnsDimensionMismatch(t *testing.T) {
	m := mat.NewDense(2, 3, make([]float64, 6))
	_, _, err := QR(m)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func pointMatrix(rows, cols int, xs []float64) IntervalMatrix {
	m := NewIntervalMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m[i][j] = interval.Point(xs[i*cols+j])
		}
	}
	return m
}

func TestQRIntervalReconstructsInputMatrix(t *testing.T) {
	m := pointMatrix(3, 3, []float64{
		12, -51, 4,
		6, 167, -68,
		-4, 24, -41,
	})
	q, r, err := QRInterval(m)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := interval.Zero()
			for k := 0; k < 3; k++ {
				sum = interval.Add(sum, interval.Mul(q[i][k], r[k][j]))
			}
			assert.InDelta(t, m[i][j].Mid(), sum.Mid(), 1e-6)
			// the reconstructed entry must enclose the exact input value.
			assert.LessOrEqual(t, sum.Lo, m[i][j].Mid()+1e-6)
			assert.GreaterOrEqual(t, sum.Hi, m[i][j].Mid()-1e-6)
		}
	}
}

func TestIntervalHullContainsBothOperands(t *testing.T) {
	a := pointMatrix(2, 2, []float64{1, 2, 3, 4})
	b := pointMatrix(2, 2, []float64{0, 5, 2, 10})
	hull, err := IntervalHull(a, b)
	require.NoError(t, err)
	assert.True(t, interval.Subset(a[0][0], hull[0][0]))
	assert.True(t, interval.Subset(b[0][0], hull[0][0]))
	assert.InDelta(t, 0, hull[0][0].Lo, 1e-12)
	assert.InDelta(t, 1, hull[0][0].Hi, 1e-12)
}

func TestIdentityIsMultiplicativeIdentity(t *testing.T) {
	id := Identity(2)
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	got := Mul(id, m)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, m.At(i, j), got.At(i, j), 1e-12)
		}
	}
}
