package ode

import (
	"github.com/kvnumerics/kvgo/interval"
	"github.com/kvnumerics/kvgo/psa"
	"github.com/kvnumerics/kvgo/ring"
	"gonum.org/v1/gonum/mat"
)

// Status is Step's return code, mirroring the source material's
// 0/1/2 integer taxonomy with a named type instead of bare ints.
type Status int

const (
	// Fail means the contraction test never succeeded within
	// the restart budget set by WithRestartMax; fatal for this call. Step also
	// returns ErrContractionFailed alongside this status.
	Fail Status = iota
	// Partial means the step succeeded only on a sub-interval of the
	// request; the caller should retry from the achieved end.
	Partial
	// Complete means the step succeeded over the entire requested
	// interval.
	Complete
)

func (s Status) String() string {
	switch s {
	case Fail:
		return "Fail"
	case Partial:
		return "Partial"
	case Complete:
		return "Complete"
	default:
		return "Status(?)"
	}
}

// StepRecord describes one committed step, passed to a StepFunc by the
// odelong drivers, matching spec.md §6's callback signature
// `(t_start, t_end, x_start, x_end, solution_polynomial)`. XStart and
// XEnd are the state enclosure at the beginning and end of the step
// (the values the driver already had in hand before and after calling
// ode.Step, not recomputed). Solution holds a per-component degenerate
// order-0 series standing in for the real Taylor polynomial
// (generalising the source sketch's single psa.PSA to the
// vector-valued case every driver needs): ode.Step builds its own
// internal Taylor expansion (the `w` series in ode.go, via
// autodif.Expand) to run its Picard/Krawczyk contraction, but does not
// return that polynomial to its caller, so Solution here is always
// order 0 — an explicit, named simplification of the callback contract
// rather than a real polynomial. Transition is the real
// Jacobian/transition matrix accumulated by the QR and Lohner drivers,
// or nil for the plain and maffine drivers that do not maintain one.
type StepRecord struct {
	TStart, TEnd interval.Interval
	XStart, XEnd []ring.Scalar
	Solution     []psa.PSA
	Transition   *mat.Dense
}

// StepFunc receives one StepRecord per committed step of a long
// integration (SPEC_FULL.md §6).
type StepFunc func(step StepRecord)
