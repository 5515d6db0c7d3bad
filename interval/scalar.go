package interval

import "github.com/kvnumerics/kvgo/ring"

// Scalar adapts Interval to ring.Scalar so it can be used directly as
// the innermost layer of the recursive scalar stack (AutoDif<Interval>,
// PSA<AutoDif<Interval>>, Affine<Interval>, ...).
var _ ring.Scalar = Interval{}

func asInterval(s ring.Scalar) Interval {
	iv, ok := s.(Interval)
	if !ok {
		panic("interval: Scalar method called with a non-Interval operand")
	}
	return iv
}

func (i Interval) Add(other ring.Scalar) ring.Scalar { return Add(i, asInterval(other)) }
func (i Interval) Sub(other ring.Scalar) ring.Scalar { return Sub(i, asInterval(other)) }
func (i Interval) Mul(other ring.Scalar) ring.Scalar { return Mul(i, asInterval(other)) }
func (i Interval) Div(other ring.Scalar) ring.Scalar { return Div(i, asInterval(other)) }
func (i Interval) Neg() ring.Scalar                  { return Neg(i) }
func (i Interval) Exp() ring.Scalar                  { return Exp(i) }
func (i Interval) Log() ring.Scalar                  { return Log(i) }
func (i Interval) Sin() ring.Scalar                  { return Sin(i) }
func (i Interval) Cos() ring.Scalar                  { return Cos(i) }
func (i Interval) Sinh() ring.Scalar                 { return Sinh(i) }
func (i Interval) Cosh() ring.Scalar                 { return Cosh(i) }
func (i Interval) Atan() ring.Scalar                 { return Atan(i) }
func (i Interval) Sqrt() ring.Scalar                 { return Sqrt(i) }
func (i Interval) Pow(other ring.Scalar) ring.Scalar { return Pow(i, asInterval(other)) }
func (i Interval) IsZero() bool                      { return !i.empty && i.Lo == 0 && i.Hi == 0 }
func (i Interval) Clone() ring.Scalar                { return i }
func (i Interval) Zero() ring.Scalar                 { return Zero() }
func (i Interval) One() ring.Scalar                  { return Point(1) }
