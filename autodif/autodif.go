package autodif

import (
	"fmt"

	"github.com/kvnumerics/kvgo/ring"
)

// AutoDif is a function value V paired with its gradient D with respect
// to a declared independent-variable set; D[j] is the partial
// derivative with respect to the j-th independent, in the order those
// independents were introduced by Init. It implements ring.Scalar.
type AutoDif struct {
	V ring.Scalar
	D []ring.Scalar
}

// Init returns one AutoDif per entry of xs, with gradients forming the
// standard basis: the i-th result has D[i] = 1 and every other entry 0.
// This realises the "init(xs)" operation of SPEC_FULL.md §4.3.
func Init(xs []ring.Scalar) []AutoDif {
	n := len(xs)
	out := make([]AutoDif, n)
	for i, x := range xs {
		d := make([]ring.Scalar, n)
		for j := range d {
			if j == i {
				d[j] = x.One()
			} else {
				d[j] = x.Zero()
			}
		}
		out[i] = AutoDif{V: x, D: d}
	}
	return out
}

// Constant lifts a bare ring value into an AutoDif with an all-zero
// gradient of length n (a value that does not depend on any declared
// independent).
func Constant(x ring.Scalar, n int) AutoDif {
	d := make([]ring.Scalar, n)
	for j := range d {
		d[j] = x.Zero()
	}
	return AutoDif{V: x, D: d}
}

func (a AutoDif) dim() int { return len(a.D) }

func zeroGradient(like ring.Scalar, n int) []ring.Scalar {
	d := make([]ring.Scalar, n)
	z := like.Zero()
	for j := range d {
		d[j] = z
	}
	return d
}

func asAutoDif(s ring.Scalar) AutoDif {
	ad, ok := s.(AutoDif)
	if !ok {
		panic("autodif: Scalar method called with a non-AutoDif operand")
	}
	return ad
}

// Add implements f+g: (f+g)' = f' + g'.
func (a AutoDif) Add(other ring.Scalar) ring.Scalar {
	b := asAutoDif(other)
	n := a.dim()
	d := make([]ring.Scalar, n)
	for j := 0; j < n; j++ {
		d[j] = a.D[j].Add(b.D[j])
	}
	return AutoDif{V: a.V.Add(b.V), D: d}
}

// Sub implements f-g: (f-g)' = f' - g'.
func (a AutoDif) Sub(other ring.Scalar) ring.Scalar {
	b := asAutoDif(other)
	n := a.dim()
	d := make([]ring.Scalar, n)
	for j := 0; j < n; j++ {
		d[j] = a.D[j].Sub(b.D[j])
	}
	return AutoDif{V: a.V.Sub(b.V), D: d}
}

// Neg implements -f: (-f)' = -f'.
func (a AutoDif) Neg() ring.Scalar {
	n := a.dim()
	d := make([]ring.Scalar, n)
	for j := 0; j < n; j++ {
		d[j] = a.D[j].Neg()
	}
	return AutoDif{V: a.V.Neg(), D: d}
}

// Mul implements the product rule: (f*g)' = f'*g + f*g'.
func (a AutoDif) Mul(other ring.Scalar) ring.Scalar {
	b := asAutoDif(other)
	n := a.dim()
	d := make([]ring.Scalar, n)
	for j := 0; j < n; j++ {
		d[j] = a.D[j].Mul(b.V).Add(a.V.Mul(b.D[j]))
	}
	return AutoDif{V: a.V.Mul(b.V), D: d}
}

// Div implements the quotient rule: (f/g)' = (f'*g - f*g') / g^2.
func (a AutoDif) Div(other ring.Scalar) ring.Scalar {
	b := asAutoDif(other)
	n := a.dim()
	d := make([]ring.Scalar, n)
	g2 := b.V.Mul(b.V)
	for j := 0; j < n; j++ {
		num := a.D[j].Mul(b.V).Sub(a.V.Mul(b.D[j]))
		d[j] = num.Div(g2)
	}
	return AutoDif{V: a.V.Div(b.V), D: d}
}

// chain lifts a unary ring function h with known derivative dh/dv via
// the chain rule: d/dx h(f(x)) = h'(f) * f'(x).
func (a AutoDif) chain(hv ring.Scalar, dh ring.Scalar) AutoDif {
	n := a.dim()
	d := make([]ring.Scalar, n)
	for j := 0; j < n; j++ {
		d[j] = dh.Mul(a.D[j])
	}
	return AutoDif{V: hv, D: d}
}

// Exp: d/dx exp(f) = exp(f) * f'.
func (a AutoDif) Exp() ring.Scalar {
	e := a.V.Exp()
	return a.chain(e, e)
}

// Log: d/dx log(f) = f' / f.
func (a AutoDif) Log() ring.Scalar {
	return a.chain(a.V.Log(), a.V.One().Div(a.V))
}

// Sin: d/dx sin(f) = cos(f) * f'.
func (a AutoDif) Sin() ring.Scalar {
	return a.chain(a.V.Sin(), a.V.Cos())
}

// Cos: d/dx cos(f) = -sin(f) * f'.
func (a AutoDif) Cos() ring.Scalar {
	return a.chain(a.V.Cos(), a.V.Sin().Neg())
}

// Sinh: d/dx sinh(f) = cosh(f) * f'.
func (a AutoDif) Sinh() ring.Scalar {
	return a.chain(a.V.Sinh(), a.V.Cosh())
}

// Cosh: d/dx cosh(f) = sinh(f) * f'.
func (a AutoDif) Cosh() ring.Scalar {
	return a.chain(a.V.Cosh(), a.V.Sinh())
}

// Atan: d/dx atan(f) = f' / (1 + f^2).
func (a AutoDif) Atan() ring.Scalar {
	one := a.V.One()
	denom := one.Add(a.V.Mul(a.V))
	return a.chain(a.V.Atan(), one.Div(denom))
}

// Sqrt: d/dx sqrt(f) = f' / (2*sqrt(f)).
func (a AutoDif) Sqrt() ring.Scalar {
	s := a.V.Sqrt()
	two := a.V.One().Add(a.V.One())
	return a.chain(s, a.V.One().Div(two.Mul(s)))
}

// Pow implements d/dx f^g = f^g * (g' * ln(f) + g * f'/f), the general
// product+chain rule for a base and exponent that may both depend on
// the independent variables.
func (a AutoDif) Pow(other ring.Scalar) ring.Scalar {
	b := asAutoDif(other)
	val := a.V.Pow(b.V)
	n := a.dim()
	d := make([]ring.Scalar, n)
	lnF := a.V.Log()
	for j := 0; j < n; j++ {
		term1 := b.D[j].Mul(lnF)
		term2 := b.V.Mul(a.D[j]).Div(a.V)
		d[j] = val.Mul(term1.Add(term2))
	}
	return AutoDif{V: val, D: d}
}

// IsZero reports whether the value (not the gradient) is the additive
// identity; mirrors interval.Interval.IsZero's "value only" convention.
func (a AutoDif) IsZero() bool { return a.V.IsZero() }

// Clone returns a deep copy of the receiver.
func (a AutoDif) Clone() ring.Scalar {
	d := make([]ring.Scalar, a.dim())
	for j := range d {
		d[j] = a.D[j].Clone()
	}
	return AutoDif{V: a.V.Clone(), D: d}
}

// Zero returns an AutoDif with the same gradient length as the
// receiver, value zero, gradient all zero.
func (a AutoDif) Zero() ring.Scalar {
	return AutoDif{V: a.V.Zero(), D: zeroGradient(a.V, a.dim())}
}

// One returns an AutoDif with the same gradient length as the
// receiver, value one, gradient all zero (a constant has no
// sensitivity to any independent).
func (a AutoDif) One() ring.Scalar {
	return AutoDif{V: a.V.One(), D: zeroGradient(a.V, a.dim())}
}

func (a AutoDif) String() string {
	return fmt.Sprintf("AutoDif{V: %v, D: %v}", a.V, a.D)
}

var _ ring.Scalar = AutoDif{}
