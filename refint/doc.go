// Package refint provides a plain (non-validated) reference ODE
// integrator used only by this module's own property tests: it gives
// an independent, high-precision numerical trajectory to check the
// validated stepper's enclosures against (SPEC_FULL.md §8's
// "Enclosure property" — a non-validated high-precision RK run as
// ground truth must land inside the validated driver's returned
// interval).
//
// Adapted from the RK4Solver/RKF45Solver fixed- and adaptive-step
// algorithms in the retrieval pack's godesim reference material,
// reworked from godesim's state.State vector abstraction down to
// plain []float64, since refint never needs godesim's symbolic state
// bookkeeping — only the numerical recurrence.
package refint
