package psa

import (
	"github.com/kvnumerics/kvgo/autodif"
	"github.com/kvnumerics/kvgo/interval"
	"github.com/kvnumerics/kvgo/ring"
)

// Lift injects a real interval x into the ring that like belongs to, as
// a constant (zero gradient, if like carries one). PSA's coefficients
// can be plain intervals or AutoDif-wrapped intervals; multiplication's
// tail-folding and division/integration's division-by-integer need to
// build real constants in whatever of those two shapes the series is
// actually using, without PSA ever needing to know which.
//
// This is necessarily a closed type switch rather than a fully generic
// operation: Scalar has no "lift a real constant" method of its own,
// since ring.go's rounding/autodif/psa/affine stack only ever nests
// these two concrete payload shapes in practice.
func Lift(x interval.Interval, like ring.Scalar) ring.Scalar {
	switch v := like.(type) {
	case interval.Interval:
		return x
	case autodif.AutoDif:
		return autodif.Constant(Lift(x, v.V), len(v.D))
	default:
		panic("psa: Lift: unsupported scalar payload type")
	}
}

// LiftReal is Lift for an exact real value.
func LiftReal(x float64, like ring.Scalar) ring.Scalar {
	return Lift(interval.Point(x), like)
}

// domainPower returns domain^n lifted into like's ring, using integer
// exponentiation (n >= 0) so that n=0 always yields exactly one
// regardless of what domain is, including a zero-width domain.
func domainPower(domain interval.Interval, n int, like ring.Scalar) ring.Scalar {
	if n == 0 {
		return LiftReal(1, like)
	}
	p := domain
	for i := 1; i < n; i++ {
		p = interval.Mul(p, domain)
	}
	return Lift(p, like)
}
