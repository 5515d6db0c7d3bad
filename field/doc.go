// Package field defines the Field interface the ODE stepper evaluates
// at every order of the Taylor predictor, plus a handful of standard
// test problems (harmonic oscillator, Lorenz, Van der Pol, Duffing,
// logistic, Lotka-Volterra) used by the package's own property tests
// and available to callers that want a known-good field to validate
// against. These are collaborators of the validated stepper, not part
// of it: SPEC_FULL.md's test vector field library lives here because
// nothing in ode/odelong depends on any concrete Field implementation,
// only on the Field interface itself.
//
// Grounded on the functor-style vector fields (Func, Lorenz, VdP, Nobi)
// in original_source/test/test-ode-qr.cc, reworked into the idiomatic
// Go shape of one interface plus one struct-with-method per problem
// instead of C++ template-on-operator() functors.
package field
