// Package psa implements power-series algebra: truncated Taylor
// polynomials over any ring.Scalar, with the arithmetic, integration,
// evaluation and transcendental-composition operations the validated
// ODE stepper needs to turn a user vector field into the Taylor
// coefficients of a trajectory (SPEC_FULL.md §4.4).
//
// A PSA's numeric behaviour — whether multiplication grows the result
// order or truncates it while folding the discarded tail into a single
// enclosing top coefficient, and what domain that top coefficient's
// remainder is bounded over — is governed by a *Context shared by every
// PSA value participating in one computation. Unlike the source
// material's process-wide globals (mode()/domain()/use_history() as
// static accessors), kvgo threads that Context explicitly through every
// PSA value, per the task-local-context design note in SPEC_FULL.md §9:
// two concurrent integrations simply use two different *Context values
// and never share mutable package state.
package psa
