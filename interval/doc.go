// Package interval implements outward-rounded interval arithmetic over
// float64: the four basic operations and the standard transcendentals,
// each guaranteed (modulo the one-ULP rounding approximation documented
// in package rounding) to enclose the image of every real point in its
// operands.
//
// An Interval is an ordered pair (Lo, Hi) with Lo <= Hi, plus two
// sentinels: Whole (-inf, +inf), the "no information" interval, and
// Empty, produced only by Intersect on disjoint inputs. Degenerate
// operands — NaN, or a user-constructed pair with Lo > Hi — never abort
// an operation; New normalizes them to Whole, and every arithmetic and
// transcendental operation treats a NaN result the same way, per the
// degenerate-input policy in SPEC_FULL.md §7.
package interval
