package odelong

import (
	"github.com/kvnumerics/kvgo/autodif"
	"github.com/kvnumerics/kvgo/field"
	"github.com/kvnumerics/kvgo/interval"
	"github.com/kvnumerics/kvgo/ode"
	"github.com/kvnumerics/kvgo/psa"
	"github.com/kvnumerics/kvgo/ring"
	"gonum.org/v1/gonum/mat"
)

// Run is the plain long-integration driver: it calls ode.Step
// repeatedly from tStart, advancing past each achieved end, until
// either the whole interval is covered or a step fails with no prior
// progress to fall back on. It does nothing to counter the wrapping
// effect across steps; RunMaffine, RunQR and RunQRLohner trade extra
// per-step bookkeeping for a tighter long-run enclosure.
func Run(f field.Field, X []autodif.AutoDif, tStart, tEnd interval.Interval, opts Options, stepOpts ...ode.Option) ([]autodif.AutoDif, interval.Interval, ode.Status, error) {
	step := func(state []autodif.AutoDif, t, end interval.Interval) ([]autodif.AutoDif, interval.Interval, ode.Status, error) {
		result, achievedEnd, status, err := ode.Step(f, state, t, end, stepOpts...)
		if status != ode.Fail {
			xStart, _ := autodif.Split(state)
			xEnd, _ := autodif.Split(result)
			notifyStep(opts, t, achievedEnd, xStart, xEnd, nil)
		}
		return result, achievedEnd, status, err
	}
	return runLoop(step, X, tStart, tEnd)
}

// notifyStep builds a StepRecord for one committed step and delivers
// it to the configured verbose logger and/or caller callback
// (SPEC_FULL.md §6). xStart and xEnd are the state enclosure the
// calling driver already had in hand before and after the step, passed
// straight through rather than recomputed. Solution generalises the
// source material's single-psa.PSA callback sketch: a plain
// per-component order-0 series standing in for the Taylor polynomial
// actually used internally by ode.Step (its own `w` expansion, built
// via autodif.Expand), which ode.Step does not hand back to its
// caller; see ode.StepRecord's doc comment for why this is an explicit
// simplification rather than the real polynomial.
func notifyStep(opts Options, tStart, tEnd interval.Interval, xStart, xEnd []ring.Scalar, transition *mat.Dense) {
	if opts.onStep == nil && !opts.verbose {
		return
	}
	ctx := psa.NewContext()
	solution := make([]psa.PSA, len(xEnd))
	for i, x := range xEnd {
		solution[i] = psa.FromConstant(x, ctx)
	}
	record := ode.StepRecord{
		TStart: tStart, TEnd: tEnd,
		XStart: xStart, XEnd: xEnd,
		Solution: solution, Transition: transition,
	}
	if opts.verbose {
		opts.logger.Info("odelong: step committed", "t_start", tStart.Mid(), "t_end", tEnd.Mid())
	}
	if opts.onStep != nil {
		opts.onStep(record)
	}
}
