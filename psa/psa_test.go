package psa

import (
	"math"
	"testing"

	"github.com/kvnumerics/kvgo/interval"
	"github.com/kvnumerics/kvgo/ring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x float64) ring.Scalar { return interval.Point(x) }

func lo(s ring.Scalar) float64 { return s.(interval.Interval).Lo }
func hi(s ring.Scalar) float64 { return s.(interval.Interval).Hi }

func series(xs ...float64) PSA {
	c := make([]ring.Scalar, len(xs))
	for i, x := range xs {
		c[i] = pt(x)
	}
	return PSA{C: c, Ctx: NewContext()}
}

func TestExpSeriesMatchesFactorialCoefficients(t *testing.T) {
	// t itself as a series of order 5: [0, 1, 0, 0, 0, 0].
	tSeries := series(0, 1, 0, 0, 0, 0)
	y := tSeries.Exp().(PSA)
	require.Len(t, y.C, 6)
	for k, c := range y.C {
		want := 1.0 / factorial(k)
		assert.InDelta(t, want, lo(c), 1e-9, "coefficient %d", k)
		assert.InDelta(t, want, hi(c), 1e-9, "coefficient %d", k)
	}
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

func TestSinCosSatisfyPythagoreanIdentityCoefficientwise(t *testing.T) {
	f := series(0.3, 1, 0.5, -0.2)
	s := f.Sin().(PSA)
	c := f.Cos().(PSA)
	// Truncate products to f's own order; a zero domain folds no tail.
	f.Ctx.SetFixedOrder(len(f.C)-1, interval.Zero())
	sum := s.Mul(s).(PSA).Add(c.Mul(c).(PSA)).(PSA)
	require.Len(t, sum.C, len(f.C))
	assert.InDelta(t, 1, lo(sum.C[0]), 1e-9)
	for k := 1; k < len(sum.C); k++ {
		assert.InDelta(t, 0, lo(sum.C[k]), 1e-8, "coefficient %d", k)
		assert.InDelta(t, 0, hi(sum.C[k]), 1e-8, "coefficient %d", k)
	}
}

func TestIntegrateThenDifferenceMatchesExpMinusOne(t *testing.T) {
	tSeries := series(0, 1, 0, 0, 0)
	e := tSeries.Exp().(PSA)
	integrated := Integrate(e)
	// d/dt exp(t) = exp(t), so integrate(exp(t)) should equal exp(t)-1
	// (integrate always starts a fresh constant of zero, so compare
	// against exp(t) with its own constant zeroed).
	for k := 1; k < len(e.C); k++ {
		assert.InDelta(t, lo(e.C[k]), lo(integrated.C[k]), 1e-9, "coefficient %d", k)
	}
}

func TestDivRecoversOriginalNumerator(t *testing.T) {
	g := series(2, 0.5, -0.25, 0.1)
	f := series(1, 0.3, 0.2)
	q := f.Div(g).(PSA)
	back := q.Mul(g).(PSA)
	for k := 0; k < len(f.C); k++ {
		assert.InDelta(t, lo(f.C[k]), lo(back.C[k]), 1e-7, "coefficient %d", k)
	}
}

func TestEvalHornerMatchesDirectPolynomialSum(t *testing.T) {
	p := series(1, 2, 3, 4)
	x := 0.37
	got := Eval(p, pt(x))
	want := 1 + 2*x + 3*x*x + 4*x*x*x
	assert.InDelta(t, want, lo(got), 1e-9)
}

func TestFixedOrderMultiplicationFoldsTailIntoTopCoefficient(t *testing.T) {
	ctx := NewContext()
	ctx.SetFixedOrder(2, interval.New(0, 0.1))
	a := PSA{C: []ring.Scalar{pt(1), pt(1), pt(1)}, Ctx: ctx} // 1+t+t^2
	b := PSA{C: []ring.Scalar{pt(1), pt(1), pt(1)}, Ctx: ctx}
	prod := a.Mul(b).(PSA)
	require.Len(t, prod.C, 3)
	// exact low-order terms: constant 1, t-coefficient 2.
	assert.InDelta(t, 1, lo(prod.C[0]), 1e-9)
	assert.InDelta(t, 2, lo(prod.C[1]), 1e-9)
	// top coefficient must enclose the true t^2 coefficient (3) plus the
	// folded higher-order contributions, weighted by the small domain.
	assert.LessOrEqual(t, prod.C[2].(interval.Interval).Lo, 3.0)
	assert.GreaterOrEqual(t, prod.C[2].(interval.Interval).Hi, 3.0)
}

func TestGrowOrderMultiplicationProducesFullConvolutionLength(t *testing.T) {
	a := series(1, 1) // order 1
	b := series(1, 1, 1) // order 2
	prod := a.Mul(b).(PSA)
	assert.Len(t, prod.C, 4) // order 1+2 = 3, i.e. 4 coefficients
}

func TestPowViaExpLogMatchesDirectPower(t *testing.T) {
	base := series(2, 0.1)
	exponent := FromConstant(pt(3), base.Ctx)
	got := base.Pow(exponent).(PSA)
	// constant term should be 2^3 = 8.
	assert.InDelta(t, math.Pow(2, 3), lo(got.C[0]), 1e-6)
}
