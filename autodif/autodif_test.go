package autodif

import (
	"math"
	"testing"

	"github.com/kvnumerics/kvgo/interval"
	"github.com/kvnumerics/kvgo/ring"
	"github.com/stretchr/testify/assert"
)

func pt(x float64) ring.Scalar { return interval.Point(x) }

func lo(s ring.Scalar) float64 { return s.(interval.Interval).Lo }
func hi(s ring.Scalar) float64 { return s.(interval.Interval).Hi }

// TestValueAndGradientMatchAnalytic checks f(x,y) = x*y + sin(x) at a
// point against its known value and partial derivatives:
// df/dx = y + cos(x), df/dy = x.
func TestValueAndGradientMatchAnalytic(t *testing.T) {
	vars := Init([]ring.Scalar{pt(0.7), pt(-1.3)})
	x, y := vars[0], vars[1]

	f := x.Mul(y).Add(x.Sin())

	wantV := 0.7*-1.3 + math.Sin(0.7)
	assert.InDelta(t, wantV, lo(f.(AutoDif).V), 1e-9)
	assert.InDelta(t, wantV, hi(f.(AutoDif).V), 1e-9)

	wantDx := -1.3 + math.Cos(0.7)
	wantDy := 0.7
	fd := f.(AutoDif)
	assert.InDelta(t, wantDx, lo(fd.D[0]), 1e-9)
	assert.InDelta(t, wantDy, lo(fd.D[1]), 1e-9)
}

func TestCompressDropsUnusedCoordinatesAndExpandRestores(t *testing.T) {
	vars := Init([]ring.Scalar{pt(1), pt(2), pt(3)})
	// only uses vars[1]; vars[0] and vars[2] never contribute.
	f := vars[1].Mul(vars[1])

	compressed, basis := Compress([]AutoDif{f.(AutoDif)})
	assert.Len(t, basis, 1)
	assert.Equal(t, 1, basis[0])
	assert.Len(t, compressed[0].D, 1)

	expanded := Expand(compressed[0], basis, 3)
	assert.Len(t, expanded.D, 3)
	assert.True(t, expanded.D[0].IsZero())
	assert.True(t, expanded.D[2].IsZero())
	assert.False(t, expanded.D[1].IsZero())
}

func TestSplitExtractsValuesAndJacobian(t *testing.T) {
	vars := Init([]ring.Scalar{pt(2), pt(3)})
	f0 := vars[0].Add(vars[1])
	f1 := vars[0].Mul(vars[1])

	values, jac := Split([]AutoDif{f0.(AutoDif), f1.(AutoDif)})
	assert.InDelta(t, 5, lo(values[0]), 1e-9)
	assert.InDelta(t, 6, lo(values[1]), 1e-9)
	assert.InDelta(t, 1, lo(jac[0][0]), 1e-9) // d(x+y)/dx
	assert.InDelta(t, 3, lo(jac[1][0]), 1e-9) // d(xy)/dx = y
	assert.InDelta(t, 2, lo(jac[1][1]), 1e-9) // d(xy)/dy = x
}

func TestQuotientAndChainRulesOnIntervalOperands(t *testing.T) {
	vars := Init([]ring.Scalar{pt(4)})
	x := vars[0]
	f := x.Sqrt() // d/dx sqrt(x) = 1/(2 sqrt(x)) = 0.25 at x=4
	fd := f.(AutoDif)
	assert.InDelta(t, 2, lo(fd.V), 1e-9)
	assert.InDelta(t, 0.25, lo(fd.D[0]), 1e-9)

	g := x.Div(x.Add(x.One())) // g = x/(x+1), g' = 1/(x+1)^2 = 1/25 at x=4
	gd := g.(AutoDif)
	assert.InDelta(t, 4.0/5.0, lo(gd.V), 1e-9)
	assert.InDelta(t, 1.0/25.0, lo(gd.D[0]), 1e-9)
}
