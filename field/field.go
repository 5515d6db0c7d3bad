package field

import "github.com/kvnumerics/kvgo/ring"

// Field is the vector-field contract the ODE stepper drives: Eval must
// be polymorphic in the scalar ring T (callers instantiate it with
// interval.Interval, autodif.AutoDif, psa.PSA or affine.Affine) and
// must not retain any rounding-mode-sensitive state across calls
// (SPEC_FULL.md §6).
type Field interface {
	Eval(x []ring.Scalar, t ring.Scalar) []ring.Scalar
}

// FieldFunc adapts a plain function to the Field interface.
type FieldFunc func(x []ring.Scalar, t ring.Scalar) []ring.Scalar

// Eval calls f.
func (f FieldFunc) Eval(x []ring.Scalar, t ring.Scalar) []ring.Scalar { return f(x, t) }
