package psa

import "github.com/kvnumerics/kvgo/ring"

// These composition rules implement "apply a unary analytic function
// to an entire truncated power series" via the classical Taylor
// recurrences (see e.g. Brent & Kung, "Fast algorithms for
// manipulating formal power series"): each coefficient of the result
// is obtained from already-known lower coefficients of the result and
// the input series, so no coefficient is ever computed from a
// numerically differentiated quotient. Length and truncation follow
// the receiver's own length; FixedOrder's tail-folding (as in Mul) is
// not reapplied here since these recurrences are already built up one
// coefficient at a time up to that same length.

func realN(n int, like ring.Scalar) ring.Scalar { return LiftReal(float64(n), like) }

// Exp returns exp(p): y0 = exp(f0), and for k>=1,
// y_k = (1/k) * Σ_{i=1}^{k} i*f_i*y_{k-i}.
func (p PSA) Exp() ring.Scalar {
	n := len(p.C)
	y := make([]ring.Scalar, n)
	y[0] = p.C[0].Exp()
	for k := 1; k < n; k++ {
		acc := y[0].Zero()
		for i := 1; i <= k; i++ {
			acc = acc.Add(realN(i, y[0]).Mul(p.C[i]).Mul(y[k-i]))
		}
		y[k] = acc.Div(realN(k, y[0]))
	}
	return PSA{C: y, Ctx: p.Ctx}
}

// Log returns log(p): y0 = log(f0), and for k>=1,
// y_k = (f_k - (1/k)*Σ_{i=1}^{k-1} i*y_i*f_{k-i}) / f0.
func (p PSA) Log() ring.Scalar {
	n := len(p.C)
	y := make([]ring.Scalar, n)
	f0 := p.C[0]
	y[0] = f0.Log()
	for k := 1; k < n; k++ {
		acc := y[0].Zero()
		for i := 1; i < k; i++ {
			acc = acc.Add(realN(i, y[0]).Mul(y[i]).Mul(p.C[k-i]))
		}
		num := p.C[k].Sub(acc.Div(realN(k, y[0])))
		y[k] = num.Div(f0)
	}
	return PSA{C: y, Ctx: p.Ctx}
}

// sinCos jointly computes the Taylor coefficients of sin(p) and cos(p)
// via the coupled recurrence s0=sin(f0), c0=cos(f0), and for k>=1:
// s_k = (1/k) Σ_{i=1}^{k} i*f_i*c_{k-i}, c_k = -(1/k) Σ_{i=1}^{k} i*f_i*s_{k-i}.
func (p PSA) sinCos() (s, c []ring.Scalar) {
	n := len(p.C)
	s = make([]ring.Scalar, n)
	c = make([]ring.Scalar, n)
	s[0] = p.C[0].Sin()
	c[0] = p.C[0].Cos()
	for k := 1; k < n; k++ {
		sAcc := s[0].Zero()
		cAcc := s[0].Zero()
		for i := 1; i <= k; i++ {
			wi := realN(i, s[0]).Mul(p.C[i])
			sAcc = sAcc.Add(wi.Mul(c[k-i]))
			cAcc = cAcc.Add(wi.Mul(s[k-i]))
		}
		kk := realN(k, s[0])
		s[k] = sAcc.Div(kk)
		c[k] = cAcc.Div(kk).Neg()
	}
	return s, c
}

// Sin returns sin(p).
func (p PSA) Sin() ring.Scalar {
	s, _ := p.sinCos()
	return PSA{C: s, Ctx: p.Ctx}
}

// Cos returns cos(p).
func (p PSA) Cos() ring.Scalar {
	_, c := p.sinCos()
	return PSA{C: c, Ctx: p.Ctx}
}

// sinhCosh is sinCos's hyperbolic counterpart: sh0=sinh(f0),
// ch0=cosh(f0), and for k>=1: sh_k = (1/k) Σ i*f_i*ch_{k-i},
// ch_k = (1/k) Σ i*f_i*sh_{k-i} (no sign flip, unlike sin/cos).
func (p PSA) sinhCosh() (sh, ch []ring.Scalar) {
	n := len(p.C)
	sh = make([]ring.Scalar, n)
	ch = make([]ring.Scalar, n)
	sh[0] = p.C[0].Sinh()
	ch[0] = p.C[0].Cosh()
	for k := 1; k < n; k++ {
		shAcc := sh[0].Zero()
		chAcc := sh[0].Zero()
		for i := 1; i <= k; i++ {
			wi := realN(i, sh[0]).Mul(p.C[i])
			shAcc = shAcc.Add(wi.Mul(ch[k-i]))
			chAcc = chAcc.Add(wi.Mul(sh[k-i]))
		}
		kk := realN(k, sh[0])
		sh[k] = shAcc.Div(kk)
		ch[k] = chAcc.Div(kk)
	}
	return sh, ch
}

// Sinh returns sinh(p).
func (p PSA) Sinh() ring.Scalar {
	sh, _ := p.sinhCosh()
	return PSA{C: sh, Ctx: p.Ctx}
}

// Cosh returns cosh(p).
func (p PSA) Cosh() ring.Scalar {
	_, ch := p.sinhCosh()
	return PSA{C: ch, Ctx: p.Ctx}
}

// Sqrt returns sqrt(p): y0 = sqrt(f0), and for k>=1,
// y_k = (f_k - Σ_{i=1}^{k-1} y_i*y_{k-i}) / (2*y0), from squaring the
// series y^2=f and matching coefficients.
func (p PSA) Sqrt() ring.Scalar {
	n := len(p.C)
	y := make([]ring.Scalar, n)
	y[0] = p.C[0].Sqrt()
	two := realN(2, y[0])
	for k := 1; k < n; k++ {
		acc := y[0].Zero()
		for i := 1; i < k; i++ {
			acc = acc.Add(y[i].Mul(y[k-i]))
		}
		y[k] = p.C[k].Sub(acc).Div(two.Mul(y[0]))
	}
	return PSA{C: y, Ctx: p.Ctx}
}

// Atan returns atan(p) via the same derivative-matching technique as
// Log, against g = 1+p^2 in place of p itself: y0 = atan(f0), and for
// k>=1, y_k = (k*f_k - Σ_{i=1}^{k-1} (k-i)*g_i*y_{k-i}) / (k*g0), where
// g is the series for 1+f^2 (from matching coefficients of g*y' = f').
func (p PSA) Atan() ring.Scalar {
	n := len(p.C)
	one := p.C[0].One()
	g := p.Mul(p).(PSA).Add(FromConstant(one, p.Ctx)).(PSA).C // 1+f^2, same length policy as Mul/Add
	y := make([]ring.Scalar, n)
	y[0] = p.C[0].Atan()
	g0 := g[0]
	for k := 1; k < n; k++ {
		acc := y[0].Zero()
		for i := 1; i < k; i++ {
			gi := y[0].Zero()
			if i < len(g) {
				gi = g[i]
			}
			acc = acc.Add(realN(k-i, y[0]).Mul(gi).Mul(y[k-i]))
		}
		num := realN(k, y[0]).Mul(p.C[k]).Sub(acc)
		y[k] = num.Div(realN(k, y[0]).Mul(g0))
	}
	return PSA{C: y, Ctx: p.Ctx}
}

// Pow returns p^q as exp(q*log(p)), valid whenever log(p) is defined;
// this composes cleanly from Exp, Log and Mul without a bespoke
// recurrence of its own, mirroring interval.Pow's own exp∘log strategy
// for a non-integer or series-valued exponent.
func (p PSA) Pow(other ring.Scalar) ring.Scalar {
	q := asPSA(other)
	return p.Log().(PSA).Mul(q).(PSA).Exp()
}
