package psa

import (
	"fmt"

	"github.com/kvnumerics/kvgo/ring"
)

// PSA is a truncated power series Σ C[k] t^k over any ring.Scalar,
// together with the Context that governs how multiplication truncates
// and what remainder-bounding domain it folds against. It implements
// ring.Scalar: a PSA whose coefficients are themselves AutoDif-wrapped
// intervals realises the two-level nesting the validated ODE stepper
// needs (SPEC_FULL.md §4.4, §4.6).
type PSA struct {
	C   []ring.Scalar
	Ctx *Context
}

// FromConstant returns the order-0 series c (every higher coefficient
// implicitly zero).
func FromConstant(c ring.Scalar, ctx *Context) PSA {
	return PSA{C: []ring.Scalar{c}, Ctx: ctx}
}

// FromVariable returns the series c0 + 1*t, the starting point for
// building up the Taylor series of the independent variable itself.
func FromVariable(c0 ring.Scalar, ctx *Context) PSA {
	return PSA{C: []ring.Scalar{c0, c0.One()}, Ctx: ctx}
}

// Order returns the highest coefficient index (len(C)-1).
func (p PSA) Order() int { return len(p.C) - 1 }

func (p PSA) coeff(k int) ring.Scalar {
	if k < len(p.C) {
		return p.C[k]
	}
	return p.C[0].Zero()
}

func asPSA(s ring.Scalar) PSA {
	p, ok := s.(PSA)
	if !ok {
		panic("psa: Scalar method called with a non-PSA operand")
	}
	return p
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Add returns the coefficientwise sum, zero-padding the shorter operand.
func (p PSA) Add(other ring.Scalar) ring.Scalar {
	q := asPSA(other)
	n := maxInt(len(p.C), len(q.C))
	c := make([]ring.Scalar, n)
	for k := 0; k < n; k++ {
		c[k] = p.coeff(k).Add(q.coeff(k))
	}
	return PSA{C: c, Ctx: p.Ctx}
}

// Sub returns the coefficientwise difference, zero-padding the shorter
// operand.
func (p PSA) Sub(other ring.Scalar) ring.Scalar {
	q := asPSA(other)
	n := maxInt(len(p.C), len(q.C))
	c := make([]ring.Scalar, n)
	for k := 0; k < n; k++ {
		c[k] = p.coeff(k).Sub(q.coeff(k))
	}
	return PSA{C: c, Ctx: p.Ctx}
}

// Neg negates every coefficient.
func (p PSA) Neg() ring.Scalar {
	c := make([]ring.Scalar, len(p.C))
	for k := range c {
		c[k] = p.C[k].Neg()
	}
	return PSA{C: c, Ctx: p.Ctx}
}

// Mul is the Cauchy product of the two series. In GrowOrder mode the
// result has order(p)+order(q) (every coefficient exact); in FixedOrder
// mode the result is truncated to order Ctx.Order (Ctx.Order+1
// coefficients), and every
// convolution term beyond that is folded into the top coefficient,
// each weighted by the appropriate power of Ctx.Domain so the folded
// value still encloses the true tail Σ c_k t^k for t ranging over
// Ctx.Domain (SPEC_FULL.md §4.4).
func (p PSA) Mul(other ring.Scalar) ring.Scalar {
	q := asPSA(other)
	full := convolve(p.C, q.C)
	ctx := p.Ctx

	if ctx == nil || ctx.Mode == GrowOrder {
		return PSA{C: full, Ctx: ctx}
	}

	n := ctx.Order + 1
	if n >= len(full) {
		c := make([]ring.Scalar, n)
		copy(c, full)
		like := full[0]
		for k := len(full); k < n; k++ {
			c[k] = like.Zero()
		}
		return PSA{C: c, Ctx: ctx}
	}

	c := make([]ring.Scalar, n)
	copy(c, full[:n-1])
	like := full[0]
	remainder := like.Zero()
	for k := n - 1; k < len(full); k++ {
		w := domainPower(ctx.Domain, k-(n-1), like)
		remainder = remainder.Add(full[k].Mul(w))
	}
	c[n-1] = remainder
	return PSA{C: c, Ctx: ctx}
}

func convolve(a, b []ring.Scalar) []ring.Scalar {
	n := len(a) + len(b) - 1
	out := make([]ring.Scalar, n)
	zero := a[0].Zero()
	for k := 0; k < n; k++ {
		acc := zero
		lo := 0
		if k-(len(b)-1) > lo {
			lo = k - (len(b) - 1)
		}
		hi := k
		if len(a)-1 < hi {
			hi = len(a) - 1
		}
		for i := lo; i <= hi; i++ {
			acc = acc.Add(a[i].Mul(b[k-i]))
		}
		out[k] = acc
	}
	return out
}

// Div performs power-series division via the standard Cauchy-product
// inversion recurrence: h0 = f0/g0, and for k>=1, h_k = (f_k - Σ_{i<k}
// h_i g_{k-i}) / g0. The result has max(len(p.C), len(q.C)) terms; no
// tail-folding is applied (SPEC_FULL.md does not ask division to carry
// FixedOrder's remainder convention, only multiplication).
func (p PSA) Div(other ring.Scalar) ring.Scalar {
	q := asPSA(other)
	n := maxInt(len(p.C), len(q.C))
	if n < 1 {
		n = 1
	}
	g0 := q.coeff(0)
	h := make([]ring.Scalar, n)
	h[0] = p.coeff(0).Div(g0)
	for k := 1; k < n; k++ {
		acc := g0.Zero()
		for i := 0; i < k; i++ {
			acc = acc.Add(h[i].Mul(q.coeff(k - i)))
		}
		h[k] = p.coeff(k).Sub(acc).Div(g0)
	}
	return PSA{C: h, Ctx: p.Ctx}
}

// IsZero reports whether the constant term is zero (the series as a
// function vanishes at t=0 iff its constant term does).
func (p PSA) IsZero() bool { return p.C[0].IsZero() }

// Clone returns a deep copy of the receiver's coefficients; the Context
// pointer is shared, matching AutoDif.Clone's treatment of its payload.
func (p PSA) Clone() ring.Scalar {
	c := make([]ring.Scalar, len(p.C))
	for k := range c {
		c[k] = p.C[k].Clone()
	}
	return PSA{C: c, Ctx: p.Ctx}
}

// Zero returns the order-0 zero series sharing the receiver's Context.
func (p PSA) Zero() ring.Scalar {
	return PSA{C: []ring.Scalar{p.C[0].Zero()}, Ctx: p.Ctx}
}

// One returns the order-0 one series sharing the receiver's Context.
func (p PSA) One() ring.Scalar {
	return PSA{C: []ring.Scalar{p.C[0].One()}, Ctx: p.Ctx}
}

func (p PSA) String() string {
	return fmt.Sprintf("PSA%v", p.C)
}

var _ ring.Scalar = PSA{}
