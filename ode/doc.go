// Package ode implements the self-validating one-step integrator: given
// a vector field, a starting state carried as AutoDif<Interval> (value
// plus sensitivity to the initial condition), and a requested time
// interval, Step builds a Taylor-polynomial predictor via psa, inflates
// its top coefficient into a Krawczyk-style candidate enclosure, and
// checks the Picard operator maps that candidate strictly inside
// itself. A successful check proves a unique fixed point exists inside
// the candidate, which is therefore a rigorous enclosure of the true
// solution over the step.
//
// Grounded step-by-step on the ode<T,F> template function in the
// retrieval pack's kv/ode-autodif.hpp: compression, tolerance,
// predictor, optional autostep, candidate inflation, one-shot resize
// feedback, contraction test with halve-and-retry, intersection
// refinement, and final expand+eval are all present here in the same
// order, rewritten as a single Go function operating on []ring.Scalar
// and psa.PSA instead of the source's ublas vectors and process-wide
// psa statics.
package ode
