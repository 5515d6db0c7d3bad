package psa

import "github.com/kvnumerics/kvgo/ring"

// Integrate returns the antiderivative of p with constant term zero:
// result[0] = 0, result[j+1] = p[j]/(j+1). This realises the
// "integrate(p)" operation SPEC_FULL.md §4.4 and §4.6 use to turn a
// derivative series (from the field evaluation) into the next Taylor
// coefficient of the trajectory itself.
func Integrate(p PSA) PSA {
	n := len(p.C)
	c := make([]ring.Scalar, n+1)
	c[0] = p.C[0].Zero()
	for j := 0; j < n; j++ {
		c[j+1] = p.C[j].Div(realN(j+1, p.C[j]))
	}
	return PSA{C: c, Ctx: p.Ctx}
}

// SetOrder truncates or zero-pads p to exactly order+1 coefficients.
// Unlike Mul's FixedOrder truncation, SetOrder performs no remainder
// folding: it is used to fix a series' length before a fresh round of
// FixedOrder arithmetic begins, not to bound a discarded tail.
func SetOrder(p PSA, order int) PSA {
	n := order + 1
	c := make([]ring.Scalar, n)
	if n <= len(p.C) {
		copy(c, p.C[:n])
	} else {
		copy(c, p.C)
		z := p.C[0].Zero()
		for k := len(p.C); k < n; k++ {
			c[k] = z
		}
	}
	return PSA{C: c, Ctx: p.Ctx}
}

// Eval evaluates p at x via Horner's method: p(x) = c0 + x*(c1 + x*(c2
// + ...)). When x is an interval-backed ring.Scalar this automatically
// inherits outward rounding from the underlying ring operations, and
// the caller is responsible for having already arranged, via
// FixedOrder multiplication, that the top coefficient encloses the
// true analytic remainder of the truncated series (SPEC_FULL.md §4.4).
func Eval(p PSA, x ring.Scalar) ring.Scalar {
	n := len(p.C)
	result := p.C[n-1]
	for i := n - 2; i >= 0; i-- {
		result = result.Mul(x).Add(p.C[i])
	}
	return result
}
