package odelong

import (
	"testing"

	"github.com/kvnumerics/kvgo/affine"
	"github.com/kvnumerics/kvgo/autodif"
	"github.com/kvnumerics/kvgo/field"
	"github.com/kvnumerics/kvgo/interval"
	"github.com/kvnumerics/kvgo/ode"
	"github.com/kvnumerics/kvgo/refint"
	"github.com/kvnumerics/kvgo/ring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunEnclosesReferenceTrajectoryOnLotkaVolterra checks the
// enclosure property (SPEC_FULL.md §8): a plain non-validated RK4 run
// from the same initial condition must land inside Run's validated
// interval result.
func TestRunEnclosesReferenceTrajectoryOnLotkaVolterra(t *testing.T) {
	lv := field.LotkaVolterra{Alpha: 1.1, Beta: 0.4, Delta: 0.1, Gamma: 0.4}
	x0 := []float64{10, 10}

	xs := []ring.Scalar{interval.Point(x0[0]), interval.Point(x0[1])}
	X := autodif.Init(xs)
	tStart := interval.Point(0)
	tEnd := interval.Point(0.5)

	opts := NewOptions()
	result, achievedEnd, status, err := Run(lv, X, tStart, tEnd, opts, ode.WithOrder(12), ode.WithAutostep(true))
	require.NoError(t, err)
	require.Equal(t, ode.Complete, status)
	assert.True(t, achievedEnd.Equal(tEnd))

	ref := refint.RK4(refint.FromField(lv), x0, 0, 0.5, 2000)
	for i, r := range ref {
		enclosure := result[i].V.(interval.Interval)
		assert.True(t, enclosure.Lo <= r && r <= enclosure.Hi,
			"component %d: reference %v not inside enclosure [%v, %v]", i, r, enclosure.Lo, enclosure.Hi)
	}
}

func TestRunCoversFullIntervalOnHarmonicOscillator(t *testing.T) {
	xs := []ring.Scalar{interval.Point(1), interval.Point(0)}
	X := autodif.Init(xs)
	tStart := interval.Point(0)
	tEnd := interval.Point(1)

	opts := NewOptions()
	result, achievedEnd, status, err := Run(field.HarmonicOscillator{}, X, tStart, tEnd, opts, ode.WithOrder(10), ode.WithAutostep(true))
	require.NoError(t, err)
	assert.Equal(t, ode.Complete, status)
	assert.True(t, achievedEnd.Equal(tEnd))
	require.Len(t, result, 2)
}

func TestRunInvokesOnStepCallbackPerCommittedStep(t *testing.T) {
	xs := []ring.Scalar{interval.Point(1), interval.Point(0)}
	X := autodif.Init(xs)
	tStart := interval.Point(0)
	tEnd := interval.Point(0.3)

	calls := 0
	opts := NewOptions(WithOnStep(func(ode.StepRecord) { calls++ }))
	_, _, status, err := Run(field.HarmonicOscillator{}, X, tStart, tEnd, opts, ode.WithOrder(10), ode.WithAutostep(true))
	require.NoError(t, err)
	assert.Equal(t, ode.Complete, status)
	assert.Greater(t, calls, 0)
}

func TestRunFailsOutrightWhenFirstStepCannotContract(t *testing.T) {
	xs := []ring.Scalar{interval.Point(1), interval.Point(0)}
	X := autodif.Init(xs)
	tStart := interval.Point(0)
	tEnd := interval.Point(1e6)

	opts := NewOptions()
	_, _, status, err := Run(field.HarmonicOscillator{}, X, tStart, tEnd, opts, ode.WithOrder(4), ode.WithAutostep(false))
	assert.Equal(t, ode.Fail, status)
	assert.Error(t, err)
}

func TestRunMaffineReconstructsDeviationAfterOneStep(t *testing.T) {
	actx := affine.NewContext()
	X := []affine.Affine{
		affine.FromInterval(interval.New(0.9, 1.1), actx),
		affine.FromConstant(interval.Point(0), actx),
	}
	tStart := interval.Point(0)
	tEnd := interval.Point(0.1)

	opts := NewOptions()
	result, achievedEnd, status, err := RunMaffine(field.HarmonicOscillator{}, X, actx, tStart, tEnd, 12, opts, ode.WithAutostep(false))
	require.NoError(t, err)
	assert.Equal(t, ode.Complete, status)
	assert.True(t, achievedEnd.Equal(tEnd))
	require.Len(t, result, 2)

	hull0 := result[0].ToInterval()
	// The true deviation-free centre trajectory starts at 1 and should
	// still sit well inside the propagated enclosure after one small step.
	assert.True(t, hull0.Lo <= 1.0 && 1.0 <= hull0.Hi+0.2)
}

func TestRunQRCoversFullIntervalOnHarmonicOscillator(t *testing.T) {
	x := []interval.Interval{interval.New(0.99, 1.01), interval.Point(0)}
	tStart := interval.Point(0)
	tEnd := interval.Point(0.5)

	opts := NewOptions()
	result, achievedEnd, status, err := RunQR(field.HarmonicOscillator{}, x, tStart, tEnd, opts, ode.WithOrder(10), ode.WithAutostep(true))
	require.NoError(t, err)
	assert.NotEqual(t, ode.Fail, status)
	assert.True(t, achievedEnd.Lo >= tStart.Lo)
	require.Len(t, result, 2)
}

// TestRunQRLorenzEnclosureNarrowOverShortHorizon checks spec.md §8's
// Lorenz scenario: an order-12 RunQR integration over a short horizon
// from a narrow initial box must keep every component's enclosure
// width at or below 1e-3, despite Lorenz's chaotic divergence over
// longer horizons.
func TestRunQRLorenzEnclosureNarrowOverShortHorizon(t *testing.T) {
	l := field.DefaultLorenz()
	x := []interval.Interval{
		interval.New(14.999, 15.001),
		interval.New(14.999, 15.001),
		interval.New(35.999, 36.001),
	}
	tStart := interval.Point(0)
	tEnd := interval.Point(0.01)

	opts := NewOptions()
	result, achievedEnd, status, err := RunQR(l, x, tStart, tEnd, opts, ode.WithOrder(12), ode.WithAutostep(true))
	require.NoError(t, err)
	require.Equal(t, ode.Complete, status)
	assert.True(t, achievedEnd.Equal(tEnd))
	require.Len(t, result, 3)
	for i, r := range result {
		width := r.Hi - r.Lo
		assert.LessOrEqual(t, width, 1e-3, "component %d enclosure too wide: %v", i, r)
	}
}

// TestRunVanDerPolStiffMakesPartialProgress checks spec.md §8's Van der
// Pol scenario: at mu=10000 the relaxation oscillator is stiff enough
// that a long-horizon integration cannot validate all the way to
// tEnd, but must still commit and return whatever prefix it did
// validate rather than failing outright, per runLoop's "commit what we
// have" rule (odelong/loop.go).
func TestRunVanDerPolStiffMakesPartialProgress(t *testing.T) {
	vdp := field.VanDerPol{Mu: 10000}
	xs := []ring.Scalar{interval.Point(2), interval.Point(0)}
	X := autodif.Init(xs)
	tStart := interval.Point(0)
	tEnd := interval.Point(3000)

	opts := NewOptions()
	_, achievedEnd, status, err := Run(vdp, X, tStart, tEnd, opts, ode.WithOrder(8), ode.WithAutostep(true))
	require.NoError(t, err)
	assert.Equal(t, ode.Partial, status)
	assert.True(t, achievedEnd.Lo > tStart.Lo)
	assert.True(t, achievedEnd.Lo < tEnd.Lo)
}

func TestRunQRLohnerCoversFullIntervalOnHarmonicOscillator(t *testing.T) {
	x := []interval.Interval{interval.New(0.99, 1.01), interval.Point(0)}
	tStart := interval.Point(0)
	tEnd := interval.Point(0.5)

	opts := NewOptions()
	result, achievedEnd, status, err := RunQRLohner(field.HarmonicOscillator{}, x, tStart, tEnd, opts, ode.WithOrder(10), ode.WithAutostep(true))
	require.NoError(t, err)
	assert.NotEqual(t, ode.Fail, status)
	assert.True(t, achievedEnd.Lo >= tStart.Lo)
	require.Len(t, result, 2)
}
