package refint

import (
	"math"
	"testing"

	"github.com/kvnumerics/kvgo/field"
	"github.com/stretchr/testify/assert"
)

func TestRK4MatchesHarmonicOscillatorAnalyticSolution(t *testing.T) {
	f := FromField(field.HarmonicOscillator{})
	x0 := []float64{1, 0} // x(0)=1, x'(0)=0 => x(t)=cos(t)
	got := RK4(f, x0, 0, 1, 1000)
	assert.InDelta(t, math.Cos(1), got[0], 1e-6)
	assert.InDelta(t, -math.Sin(1), got[1], 1e-6)
}

func TestRKF45MatchesHarmonicOscillatorAnalyticSolution(t *testing.T) {
	f := FromField(field.HarmonicOscillator{})
	x0 := []float64{1, 0}
	got := RKF45(f, x0, 0, 1, 1e-9)
	assert.InDelta(t, math.Cos(1), got[0], 1e-5)
	assert.InDelta(t, -math.Sin(1), got[1], 1e-5)
}

func TestRK4MatchesLogisticClosedForm(t *testing.T) {
	l := field.Logistic{R: 1, K: 1}
	f := FromField(l)
	x0 := []float64{0.1}
	got := RK4(f, x0, 0, 2, 2000)
	// closed form: x(t) = K / (1 + ((K-x0)/x0) * exp(-r*t))
	want := 1.0 / (1.0 + (0.9/0.1)*math.Exp(-2))
	assert.InDelta(t, want, got[0], 1e-5)
}
