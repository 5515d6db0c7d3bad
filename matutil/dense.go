package matutil

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Identity returns the n×n identity matrix.
func Identity(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Mul returns a*b. Panics (via gonum) on incompatible shapes, matching
// gonum's own convention for programmer-error dimension mismatches;
// callers that size their own matrices never hit this.
func Mul(a, b *mat.Dense) *mat.Dense {
	ar, _ := a.Dims()
	_, bc := b.Dims()
	out := mat.NewDense(ar, bc, nil)
	out.Mul(a, b)
	return out
}

// QR factors m = Q*R via gonum's Householder QR, returning Q and R as
// plain *mat.Dense (gonum's mat.QR type keeps its factors packed; this
// unpacks them into the two matrices the drivers actually consume).
func QR(m *mat.Dense) (q, r *mat.Dense, err error) {
	rows, cols := m.Dims()
	if rows != cols {
		return nil, nil, fmt.Errorf("matutil: QR: %dx%d: %w", rows, cols, ErrDimensionMismatch)
	}
	var qr mat.QR
	qr.Factorize(m)

	var qd mat.Dense
	qr.QTo(&qd)
	var rd mat.Dense
	qr.RTo(&rd)
	return &qd, &rd, nil
}
