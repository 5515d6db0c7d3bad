package interval

import "errors"

// Sentinel errors for the interval package. Callers should check with
// errors.Is; no algorithm in this package panics on user-triggered
// conditions (malformed literals, empty operands) — those are reported
// as values per the degenerate-input policy in SPEC_FULL.md §7.
var (
	// ErrParse indicates a decimal literal could not be parsed at all
	// (as opposed to being parsed but not exactly representable, which
	// is the normal, expected case Parse handles by widening outward).
	ErrParse = errors.New("interval: malformed decimal literal")
)
