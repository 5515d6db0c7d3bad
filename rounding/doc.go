// Package rounding approximates IEEE-754 directed rounding for the
// interval kernel.
//
// True directed rounding (switching the hardware FP control word to
// round-toward-negative-infinity or round-toward-positive-infinity, as
// the original C++ source does via the platform's fenv-style control)
// has no portable pure-Go equivalent: the language exposes no fenv
// control, and this module is built without cgo or assembly. kvgo
// therefore computes every interval endpoint at round-to-nearest
// (Go's native float64 semantics) and then nudges the result outward
// by one representable step with math.Nextafter. That one-ULP nudge is
// strictly conservative: it can only widen an enclosure, never narrow
// one, so the soundness invariant (§3 of SPEC_FULL.md) is preserved.
//
// Guard provides the scoped set/restore idiom the source material asks
// for (§9: "scoped guard that sets on entry and restores on all exit
// paths"); it exists to document intent and to keep call sites
// symmetric even though, unlike the C original, there is no process-wide
// register to restore.
package rounding
