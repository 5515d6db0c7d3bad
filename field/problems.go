package field

import "github.com/kvnumerics/kvgo/ring"

// HarmonicOscillator is x0' = x1, x1' = -x0 (Func in
// original_source/test/test-ode-qr.cc).
type HarmonicOscillator struct{}

func (HarmonicOscillator) Eval(x []ring.Scalar, t ring.Scalar) []ring.Scalar {
	return []ring.Scalar{x[1], x[0].Neg()}
}

// Lorenz is the classic three-variable chaotic system with parameters
// sigma, rho, beta (default 10, 28, 8/3, matching the retrieval pack's
// Lorenz functor).
type Lorenz struct {
	Sigma, Rho, Beta float64
}

// DefaultLorenz returns the parameterisation used throughout the
// retrieval pack's own Lorenz test (sigma=10, rho=28, beta=8/3).
func DefaultLorenz() Lorenz { return Lorenz{Sigma: 10, Rho: 28, Beta: 8.0 / 3.0} }

func (l Lorenz) Eval(x []ring.Scalar, t ring.Scalar) []ring.Scalar {
	sigma := Const(l.Sigma, x[0])
	rho := Const(l.Rho, x[0])
	beta := Const(l.Beta, x[0])

	y0 := sigma.Mul(x[1].Sub(x[0]))
	y1 := rho.Mul(x[0]).Sub(x[1]).Sub(x[0].Mul(x[2]))
	y2 := beta.Neg().Mul(x[2]).Add(x[0].Mul(x[1]))
	return []ring.Scalar{y0, y1, y2}
}

// VanDerPol is the stiff relaxation oscillator x0'=x1,
// x1' = mu*(1-x0^2)*x1 - x0.
type VanDerPol struct {
	Mu float64
}

func (v VanDerPol) Eval(x []ring.Scalar, t ring.Scalar) []ring.Scalar {
	mu := Const(v.Mu, x[0])
	one := x[0].One()
	y1 := mu.Mul(one.Sub(x[0].Mul(x[0]))).Mul(x[1]).Sub(x[0])
	return []ring.Scalar{x[1], y1}
}

// Duffing is the unforced, undamped Duffing-type oscillator
// x0'=x1, x1' = x0 - x0^3 (Nobi in test-ode-qr.cc).
type Duffing struct{}

func (Duffing) Eval(x []ring.Scalar, t ring.Scalar) []ring.Scalar {
	cube := x[0].Mul(x[0]).Mul(x[0])
	return []ring.Scalar{x[1], x[0].Sub(cube)}
}

// Logistic is the single-variable logistic growth law
// x' = r*x*(1 - x/K).
type Logistic struct {
	R, K float64
}

func (l Logistic) Eval(x []ring.Scalar, t ring.Scalar) []ring.Scalar {
	r := Const(l.R, x[0])
	k := Const(l.K, x[0])
	one := x[0].One()
	y0 := r.Mul(x[0]).Mul(one.Sub(x[0].Div(k)))
	return []ring.Scalar{y0}
}

// LotkaVolterra is the classic predator-prey system:
// x0' = alpha*x0 - beta*x0*x1
// x1' = delta*x0*x1 - gamma*x1
type LotkaVolterra struct {
	Alpha, Beta, Delta, Gamma float64
}

func (lv LotkaVolterra) Eval(x []ring.Scalar, t ring.Scalar) []ring.Scalar {
	alpha := Const(lv.Alpha, x[0])
	beta := Const(lv.Beta, x[0])
	delta := Const(lv.Delta, x[0])
	gamma := Const(lv.Gamma, x[0])

	prey := x[0].Mul(x[1])
	y0 := alpha.Mul(x[0]).Sub(beta.Mul(prey))
	y1 := delta.Mul(prey).Sub(gamma.Mul(x[1]))
	return []ring.Scalar{y0, y1}
}
