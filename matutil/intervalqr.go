package matutil

import (
	"fmt"

	"github.com/kvnumerics/kvgo/interval"
)

// IntervalMatrix is a dense matrix of interval.Interval entries, row
// major. The QR and QR-Lohner drivers hold the interval Jacobian in it
// (the QR driver only takes its Mid; the QR-Lohner driver also hulls
// and factors it); every other matrix need in this codebase is plain
// real and goes through gonum via Dense/Identity/Mul/QR.
type IntervalMatrix [][]interval.Interval

// NewIntervalMatrix returns a rows×cols matrix of zero intervals.
func NewIntervalMatrix(rows, cols int) IntervalMatrix {
	m := make(IntervalMatrix, rows)
	for i := range m {
		row := make([]interval.Interval, cols)
		for j := range row {
			row[j] = interval.Zero()
		}
		m[i] = row
	}
	return m
}

// Dims returns (rows, cols).
func (m IntervalMatrix) Dims() (int, int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

func sameDims(a, b IntervalMatrix) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	return ar == br && ac == bc
}

// IntervalHull returns the elementwise hull of a and b: result[i][j] =
// hull(a[i][j], b[i][j]). Used by the QR-Lohner driver to combine the
// frame chosen from the current Jacobian with the frame carried over
// from the previous step.
func IntervalHull(a, b IntervalMatrix) (IntervalMatrix, error) {
	if !sameDims(a, b) {
		return nil, fmt.Errorf("matutil: IntervalHull: %w", ErrDimensionMismatch)
	}
	rows, cols := a.Dims()
	out := NewIntervalMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[i][j] = interval.Hull(a[i][j], b[i][j])
		}
	}
	return out, nil
}

// QRInterval factors an interval matrix m = Q*R via Householder
// reflections carried out in outward-rounded interval arithmetic, so
// that every entry of the returned Q and R rigorously encloses some
// real QR factor of a real matrix inside m. The sign convention for
// each reflection (choosing the Householder vector sign to avoid
// cancellation) is decided from the pivot column's midpoint, a
// numerical-stability heuristic rather than a soundness requirement:
// whichever sign is chosen, the reflection itself is still carried out
// in interval arithmetic and the result still encloses the true
// factorisation for that choice of frame.
//
// Adapted from the real-valued Householder QR this codebase's teacher
// carries in matrix/ops/qr.go, reworked coefficient by coefficient to
// use interval.Interval arithmetic instead of float64 so the result is
// a validated enclosure, not a point estimate.
func QRInterval(m IntervalMatrix) (q, r IntervalMatrix, err error) {
	rows, cols := m.Dims()
	if rows != cols {
		return nil, nil, fmt.Errorf("matutil: QRInterval: %dx%d: %w", rows, cols, ErrDimensionMismatch)
	}
	n := rows

	a := make(IntervalMatrix, n)
	for i := range a {
		a[i] = append([]interval.Interval(nil), m[i]...)
	}
	qm := NewIntervalMatrix(n, n)
	for i := 0; i < n; i++ {
		qm[i][i] = interval.Point(1)
	}

	v := make([]interval.Interval, n)
	for k := 0; k < n; k++ {
		normSq := interval.Zero()
		for i := k; i < n; i++ {
			normSq = interval.Add(normSq, interval.Mul(a[i][k], a[i][k]))
		}
		if normSq.Mag() == 0 {
			continue
		}
		norm := interval.Sqrt(normSq)

		pivot := a[k][k]
		alpha := interval.Neg(norm)
		if pivot.Mid() < 0 {
			alpha = norm
		}

		for i := 0; i < n; i++ {
			v[i] = interval.Zero()
		}
		for i := k; i < n; i++ {
			v[i] = a[i][k]
		}
		v[k] = interval.Sub(v[k], alpha)

		beta := interval.Zero()
		for i := k; i < n; i++ {
			beta = interval.Add(beta, interval.Mul(v[i], v[i]))
		}
		if beta.Mag() == 0 {
			continue
		}
		tau := interval.Div(interval.Point(2), beta)

		for j := k; j < n; j++ {
			sum := interval.Zero()
			for i := k; i < n; i++ {
				sum = interval.Add(sum, interval.Mul(v[i], a[i][j]))
			}
			factor := interval.Mul(tau, sum)
			for i := k; i < n; i++ {
				a[i][j] = interval.Sub(a[i][j], interval.Mul(v[i], factor))
			}
		}

		for j := 0; j < n; j++ {
			sum := interval.Zero()
			for i := k; i < n; i++ {
				sum = interval.Add(sum, interval.Mul(v[i], qm[i][j]))
			}
			factor := interval.Mul(tau, sum)
			for i := k; i < n; i++ {
				qm[i][j] = interval.Sub(qm[i][j], interval.Mul(v[i], factor))
			}
		}
	}

	return qm, a, nil
}
