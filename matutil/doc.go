// Package matutil provides the plain real matrix operations the
// long-time ODE drivers need (Jacobians, transition matrices, QR
// factors), backed by gonum.org/v1/gonum/mat, plus an interval-valued
// QR path for the Lohner/QR wrapping-effect drivers that gonum itself
// cannot provide (gonum only operates on float64). The interval path
// is a from-scratch Householder-reflection implementation adapted from
// the real-valued Householder QR in SPEC_FULL.md's teacher repo,
// reworked to propagate outward-rounded interval arithmetic instead of
// plain floats throughout (SPEC_FULL.md §4.8).
package matutil
