package matutil

import (
	"fmt"

	"github.com/kvnumerics/kvgo/interval"
	"gonum.org/v1/gonum/mat"
)

// MulRealIntervalVec returns m*v, a real matrix applied to an interval
// vector in outward-rounded interval arithmetic: every entry of m is
// treated as an exact (degenerate) interval, so the result soundly
// encloses m*x for any real x inside v. Used by the QR and QR-Lohner
// drivers to reconstruct a state's deviation in a rotated coordinate
// frame.
func MulRealIntervalVec(m *mat.Dense, v []interval.Interval) ([]interval.Interval, error) {
	rows, cols := m.Dims()
	if cols != len(v) {
		return nil, fmt.Errorf("matutil: MulRealIntervalVec: %dx%d against length %d: %w", rows, cols, len(v), ErrDimensionMismatch)
	}
	out := make([]interval.Interval, rows)
	for i := 0; i < rows; i++ {
		acc := interval.Zero()
		for j := 0; j < cols; j++ {
			acc = interval.Add(acc, interval.Mul(interval.Point(m.At(i, j)), v[j]))
		}
		out[i] = acc
	}
	return out, nil
}

// Transpose returns a copy of m transposed.
func Transpose(m *mat.Dense) *mat.Dense {
	rows, cols := m.Dims()
	out := mat.NewDense(cols, rows, nil)
	out.Copy(m.T())
	return out
}

// Mid returns the elementwise midpoint of an IntervalMatrix as a plain
// real matrix, the point approximation the QR driver factors to choose
// its next coordinate frame.
func Mid(m IntervalMatrix) *mat.Dense {
	rows, cols := m.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, m[i][j].Mid())
		}
	}
	return out
}

// PointMatrix lifts a real matrix into an IntervalMatrix of degenerate
// (zero-width) intervals. Used by the QR-Lohner driver to bring the
// frame carried over from the previous step into the same
// interval-valued representation as the current Jacobian, so the two
// can be combined with IntervalHull before the next factorisation.
func PointMatrix(m *mat.Dense) IntervalMatrix {
	rows, cols := m.Dims()
	out := NewIntervalMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[i][j] = interval.Point(m.At(i, j))
		}
	}
	return out
}
