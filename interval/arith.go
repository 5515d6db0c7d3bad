package interval

import (
	"math"

	"github.com/kvnumerics/kvgo/rounding"
)

// Add returns outward-rounded a + b.
func Add(a, b Interval) Interval {
	if a.empty || b.empty {
		return EmptySet()
	}
	lo := rounding.Downward(a.Lo + b.Lo)
	hi := rounding.Upward(a.Hi + b.Hi)
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return Whole()
	}
	return Interval{Lo: lo, Hi: hi}
}

// Sub returns outward-rounded a - b.
func Sub(a, b Interval) Interval {
	if a.empty || b.empty {
		return EmptySet()
	}
	lo := rounding.Downward(a.Lo - b.Hi)
	hi := rounding.Upward(a.Hi - b.Lo)
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return Whole()
	}
	return Interval{Lo: lo, Hi: hi}
}

// Neg returns -a.
func Neg(a Interval) Interval {
	if a.empty {
		return EmptySet()
	}
	return Interval{Lo: -a.Hi, Hi: -a.Lo}
}

// mulEndpoint computes x*y treating a zero operand as an absorbing
// element even against an infinite co-factor (0 * +-Inf = 0), which is
// the standard convention extended interval arithmetic needs to avoid
// manufacturing NaN out of an endpoint that is exactly zero while the
// other operand carries the Whole sentinel's unbounded endpoint.
func mulEndpoint(x, y float64) float64 {
	if x == 0 || y == 0 {
		return 0
	}
	return x * y
}

// Mul returns outward-rounded a * b.
func Mul(a, b Interval) Interval {
	if a.empty || b.empty {
		return EmptySet()
	}
	if a.Lo == 0 && a.Hi == 0 {
		return a
	}
	if b.Lo == 0 && b.Hi == 0 {
		return b
	}
	p1 := mulEndpoint(a.Lo, b.Lo)
	p2 := mulEndpoint(a.Lo, b.Hi)
	p3 := mulEndpoint(a.Hi, b.Lo)
	p4 := mulEndpoint(a.Hi, b.Hi)
	lo := math.Min(math.Min(p1, p2), math.Min(p3, p4))
	hi := math.Max(math.Max(p1, p2), math.Max(p3, p4))
	lo = rounding.Downward(lo)
	hi = rounding.Upward(hi)
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return Whole()
	}
	return Interval{Lo: lo, Hi: hi}
}

// reciprocal returns 1/b. When b contains zero strictly in its interior
// the reciprocal is unbounded on both sides and collapses to Whole
// (a single Interval cannot represent the two disjoint half-lines a
// properly set-valued reciprocal would produce). When b touches zero at
// exactly one endpoint, the reciprocal is a genuine single half-line and
// is returned as such, per SPEC_FULL.md §4.2.
func reciprocal(b Interval) Interval {
	if b.empty {
		return EmptySet()
	}
	switch {
	case b.Lo == 0 && b.Hi == 0:
		return Whole()
	case b.Lo < 0 && b.Hi > 0:
		return Whole()
	case b.Lo == 0:
		// b = [0, bh], bh > 0: reciprocal is [1/bh, +inf).
		return Interval{Lo: rounding.Downward(1 / b.Hi), Hi: math.Inf(1)}
	case b.Hi == 0:
		// b = [bl, 0], bl < 0: reciprocal is (-inf, 1/bl].
		return Interval{Lo: math.Inf(-1), Hi: rounding.Upward(1 / b.Lo)}
	default:
		return Interval{Lo: rounding.Downward(1 / b.Hi), Hi: rounding.Upward(1 / b.Lo)}
	}
}

// Div returns outward-rounded a / b. Division by an interval containing
// zero yields Whole, or the appropriate half-line for single-sided zero
// contact, per SPEC_FULL.md §4.2; no operation in this package aborts.
func Div(a, b Interval) Interval {
	if a.empty || b.empty {
		return EmptySet()
	}
	return Mul(a, reciprocal(b))
}
