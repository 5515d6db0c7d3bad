package odelong

import (
	"github.com/kvnumerics/kvgo/interval"
	"github.com/kvnumerics/kvgo/ode"
)

// stepFn performs one validated step of some state representation S
// from t toward tEnd, returning the new state, the achieved end, the
// Status, and an error (non-nil only alongside ode.Fail).
type stepFn[S any] func(state S, t, tEnd interval.Interval) (S, interval.Interval, ode.Status, error)

// runLoop is the long-integration state machine shared by Run,
// RunMaffine, RunQR and RunQRLohner (SPEC_FULL.md §4.7, mirroring
// ode-autodif.hpp's odelong<T,F>): call step repeatedly, committing
// progress after each non-Fail result, until the whole interval is
// covered (Complete) or a step fails outright.
//
// On the very first step failing, the original state and tStart are
// returned unchanged alongside Fail and the step's error. On a later
// step failing after at least one partial success, the last
// successfully committed state and achieved end are returned as
// Partial with a nil error, matching the source's "commit what we
// have" behaviour rather than discarding prior progress.
func runLoop[S any](step stepFn[S], state S, tStart, tEnd interval.Interval) (S, interval.Interval, ode.Status, error) {
	t := tStart
	committed := false
	for {
		newState, end2, status, err := step(state, t, tEnd)
		if status == ode.Fail {
			if committed {
				return state, t, ode.Partial, nil
			}
			return state, tStart, ode.Fail, err
		}
		state = newState
		committed = true
		t = end2
		if status == ode.Complete {
			return state, t, ode.Complete, nil
		}
	}
}
