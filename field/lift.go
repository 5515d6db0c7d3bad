package field

import (
	"github.com/kvnumerics/kvgo/affine"
	"github.com/kvnumerics/kvgo/autodif"
	"github.com/kvnumerics/kvgo/interval"
	"github.com/kvnumerics/kvgo/psa"
	"github.com/kvnumerics/kvgo/ring"
)

// Const lifts a real coefficient (e.g. Lorenz's 28, Van der Pol's
// 10000) into whichever ring like belongs to: a plain interval.Point,
// a zero-gradient AutoDif, a constant PSA, or a symbol-free Affine. A
// vector field's body uses Const(c, x[i]) wherever the original would
// have written a bare numeric literal, so that one Eval implementation
// works unmodified across every scalar instantiation the stepper uses.
func Const(x float64, like ring.Scalar) ring.Scalar {
	switch v := like.(type) {
	case interval.Interval:
		return interval.Point(x)
	case autodif.AutoDif:
		return autodif.Constant(Const(x, v.V), len(v.D))
	case psa.PSA:
		return psa.FromConstant(Const(x, v.C[0]), v.Ctx)
	case affine.Affine:
		return affine.FromConstant(Const(x, v.C), v.Ctx)
	default:
		panic("field: Const: unsupported scalar payload type")
	}
}
