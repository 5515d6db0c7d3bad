package ode

import (
	"errors"
	"math"
	"testing"

	"github.com/kvnumerics/kvgo/autodif"
	"github.com/kvnumerics/kvgo/field"
	"github.com/kvnumerics/kvgo/interval"
	"github.com/kvnumerics/kvgo/ring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeCandidateFloorsTinyOrZeroComponents(t *testing.T) {
	raw := []float64{0, 1e-20, 1, 0.5}
	got := MakeCandidate(raw, 1e-8)
	floor := 1 * 1e-8
	assert.Equal(t, floor, got[0])
	assert.Equal(t, floor, got[1])
	assert.Equal(t, 1.0, got[2])
	assert.Equal(t, 0.5, got[3])
}

func TestStepContainsHarmonicOscillatorAnalyticSolution(t *testing.T) {
	xs := []ring.Scalar{interval.Point(1), interval.Point(0)}
	X := autodif.Init(xs)
	tStart := interval.Point(0)
	tEnd := interval.Point(0.1)

	result, achievedEnd, status, err := Step(field.HarmonicOscillator{}, X, tStart, tEnd, WithAutostep(false), WithOrder(12))
	require.NoError(t, err)
	assert.Equal(t, Complete, status)
	assert.True(t, achievedEnd.Equal(tEnd))

	require.Len(t, result, 2)
	x0 := result[0].V.(interval.Interval)
	x1 := result[1].V.(interval.Interval)
	assert.True(t, x0.Lo <= math.Cos(0.1) && math.Cos(0.1) <= x0.Hi)
	assert.True(t, x1.Lo <= -math.Sin(0.1) && -math.Sin(0.1) <= x1.Hi)

	// The gradient of the solution w.r.t. its own initial condition
	// should enclose the harmonic oscillator's known transition matrix
	// entries: d(x0(t))/d(x0(0)) = cos(t), d(x0(t))/d(x1(0)) = sin(t).
	d00 := result[0].D[0].(interval.Interval)
	d01 := result[0].D[1].(interval.Interval)
	assert.True(t, d00.Lo <= math.Cos(0.1) && math.Cos(0.1) <= d00.Hi)
	assert.True(t, d01.Lo <= math.Sin(0.1) && math.Sin(0.1) <= d01.Hi)
}

func TestStepReturnsContractionFailedOnGrosslyOversizedStep(t *testing.T) {
	xs := []ring.Scalar{interval.Point(1), interval.Point(0)}
	X := autodif.Init(xs)
	tStart := interval.Point(0)
	tEnd := interval.Point(1e6)

	result, _, status, err := Step(field.HarmonicOscillator{}, X, tStart, tEnd, WithAutostep(false), WithOrder(4))
	assert.Nil(t, result)
	assert.Equal(t, Fail, status)
	assert.True(t, errors.Is(err, ErrContractionFailed))
}

func TestStepWithAutostepAdvancesWithinRequestedInterval(t *testing.T) {
	xs := []ring.Scalar{interval.Point(1), interval.Point(0)}
	X := autodif.Init(xs)
	tStart := interval.Point(0)
	tEnd := interval.Point(1)

	result, achievedEnd, status, err := Step(field.HarmonicOscillator{}, X, tStart, tEnd, WithAutostep(true), WithOrder(10))
	require.NoError(t, err)
	assert.NotEqual(t, Fail, status)
	assert.True(t, achievedEnd.Lo >= tStart.Lo && achievedEnd.Hi <= tEnd.Hi+1e-9)
	require.Len(t, result, 2)
}
