package field

import (
	"testing"

	"github.com/kvnumerics/kvgo/interval"
	"github.com/kvnumerics/kvgo/ring"
	"github.com/stretchr/testify/assert"
)

func pt(x float64) ring.Scalar { return interval.Point(x) }
func lo(s ring.Scalar) float64 { return s.(interval.Interval).Lo }

func TestHarmonicOscillatorMatchesAnalyticRHS(t *testing.T) {
	y := HarmonicOscillator{}.Eval([]ring.Scalar{pt(3), pt(-2)}, pt(0))
	assert.InDelta(t, -2, lo(y[0]), 1e-12)
	assert.InDelta(t, -3, lo(y[1]), 1e-12)
}

func TestLorenzMatchesKnownParameterisation(t *testing.T) {
	l := DefaultLorenz()
	y := l.Eval([]ring.Scalar{pt(15), pt(15), pt(36)}, pt(0))
	assert.InDelta(t, 0, lo(y[0]), 1e-9) // sigma*(x1-x0) = 0 at x0==x1
	assert.InDelta(t, 28*15-15-15*36, lo(y[1]), 1e-9)
	assert.InDelta(t, -8.0/3.0*36+15*15, lo(y[2]), 1e-9)
}

func TestLogisticVanishesAtCarryingCapacity(t *testing.T) {
	l := Logistic{R: 0.5, K: 10}
	y := l.Eval([]ring.Scalar{pt(10)}, pt(0))
	assert.InDelta(t, 0, lo(y[0]), 1e-12)
}

func TestLotkaVolterraFixedPointIsStationary(t *testing.T) {
	lv := LotkaVolterra{Alpha: 1.1, Beta: 0.4, Delta: 0.1, Gamma: 0.4}
	// nontrivial fixed point: x0 = gamma/delta, x1 = alpha/beta.
	y := lv.Eval([]ring.Scalar{pt(lv.Gamma / lv.Delta), pt(lv.Alpha / lv.Beta)}, pt(0))
	assert.InDelta(t, 0, lo(y[0]), 1e-9)
	assert.InDelta(t, 0, lo(y[1]), 1e-9)
}
