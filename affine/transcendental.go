package affine

import (
	"github.com/kvnumerics/kvgo/interval"
	"github.com/kvnumerics/kvgo/ring"
)

// unaryNonlinear applies a ring-level unary function f to the
// receiver's interval enclosure and returns the coarsest sound affine
// form for the result: a fresh noise symbol sized to the image's full
// radius. This discards correlation between the input's existing
// noise symbols and the output (a tighter affine linearisation would
// keep a linear term per symbol, scaled by f's derivative at the
// centre, and absorb only the linearisation error into a new symbol),
// trading tightness for always being sound and for reusing the
// already-validated interval transcendentals instead of a second,
// independent enclosure implementation per function.
func (a Affine) unaryNonlinear(f func(ring.Scalar) ring.Scalar) Affine {
	x := a.ToInterval()
	y := f(x).(interval.Interval)
	sym := a.Ctx.NewSymbol()
	return Affine{
		C:   interval.Point(y.Mid()),
		Eps: map[int]ring.Scalar{sym: interval.Point(y.Rad())},
		Ctx: a.Ctx,
	}
}

func (a Affine) Exp() ring.Scalar  { return a.unaryNonlinear(ring.Scalar.Exp) }
func (a Affine) Log() ring.Scalar  { return a.unaryNonlinear(ring.Scalar.Log) }
func (a Affine) Sin() ring.Scalar  { return a.unaryNonlinear(ring.Scalar.Sin) }
func (a Affine) Cos() ring.Scalar  { return a.unaryNonlinear(ring.Scalar.Cos) }
func (a Affine) Sinh() ring.Scalar { return a.unaryNonlinear(ring.Scalar.Sinh) }
func (a Affine) Cosh() ring.Scalar { return a.unaryNonlinear(ring.Scalar.Cosh) }
func (a Affine) Atan() ring.Scalar { return a.unaryNonlinear(ring.Scalar.Atan) }
func (a Affine) Sqrt() ring.Scalar { return a.unaryNonlinear(ring.Scalar.Sqrt) }

// Pow applies the same coarse-but-sound treatment as the other
// nonlinear unary functions, evaluating the interval pow at both
// operands' enclosures.
func (a Affine) Pow(other ring.Scalar) ring.Scalar {
	b := asAffine(other)
	x := a.ToInterval()
	e := b.ToInterval()
	y := x.Pow(e).(interval.Interval)
	sym := a.Ctx.NewSymbol()
	return Affine{
		C:   interval.Point(y.Mid()),
		Eps: map[int]ring.Scalar{sym: interval.Point(y.Rad())},
		Ctx: a.Ctx,
	}
}

// IsZero reports whether the central value is zero (mirrors
// AutoDif.IsZero's "value only" convention).
func (a Affine) IsZero() bool { return a.C.IsZero() }

// Clone returns a deep copy of the receiver.
func (a Affine) Clone() ring.Scalar {
	eps := make(map[int]ring.Scalar, len(a.Eps))
	for i, v := range a.Eps {
		eps[i] = v.Clone()
	}
	return Affine{C: a.C.Clone(), Eps: eps, Ctx: a.Ctx}
}

// Zero returns the constant-zero affine form sharing the receiver's
// Context.
func (a Affine) Zero() ring.Scalar {
	return Affine{C: a.C.Zero(), Ctx: a.Ctx}
}

// One returns the constant-one affine form sharing the receiver's
// Context.
func (a Affine) One() ring.Scalar {
	return Affine{C: a.C.One(), Ctx: a.Ctx}
}

var _ ring.Scalar = Affine{}
