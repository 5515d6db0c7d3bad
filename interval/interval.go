package interval

import (
	"fmt"
	"math"
)

// Interval is a closed interval [Lo, Hi] of the extended reals, or the
// Empty sentinel. Zero value is the degenerate point interval [0, 0].
type Interval struct {
	Lo, Hi float64
	empty  bool
}

// New constructs [lo, hi]. Degenerate input (NaN in either bound, or
// lo > hi) never aborts: per the degenerate-input policy it normalizes
// to Whole, since the caller's intended interval cannot be trusted but
// the computation must still proceed soundly.
func New(lo, hi float64) Interval {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return Whole()
	}
	return Interval{Lo: lo, Hi: hi}
}

// Point returns the degenerate interval [x, x].
func Point(x float64) Interval { return New(x, x) }

// Whole returns (-inf, +inf), the interval containing every real.
func Whole() Interval { return Interval{Lo: math.Inf(-1), Hi: math.Inf(1)} }

// Zero returns the degenerate interval [0, 0].
func Zero() Interval { return Interval{} }

// EmptySet returns the empty interval, the sentinel produced by
// Intersect on disjoint operands.
func EmptySet() Interval { return Interval{empty: true} }

// IsEmpty reports whether i is the Empty sentinel.
func (i Interval) IsEmpty() bool { return i.empty }

// IsWhole reports whether i is exactly (-inf, +inf).
func (i Interval) IsWhole() bool {
	return !i.empty && math.IsInf(i.Lo, -1) && math.IsInf(i.Hi, 1)
}

// Mid returns the interval's midpoint. Whole's midpoint is conventionally
// 0 (there is no better default for "no information"). Empty's midpoint
// is NaN.
func (i Interval) Mid() float64 {
	if i.empty {
		return math.NaN()
	}
	if i.IsWhole() {
		return 0
	}
	if math.IsInf(i.Lo, -1) {
		return math.Inf(-1)
	}
	if math.IsInf(i.Hi, 1) {
		return math.Inf(1)
	}
	return i.Lo/2 + i.Hi/2
}

// Rad returns the interval's radius, (Hi-Lo)/2.
func (i Interval) Rad() float64 {
	if i.empty {
		return math.NaN()
	}
	return (i.Hi - i.Lo) / 2
}

// Mag returns max(|Lo|, |Hi|).
func (i Interval) Mag() float64 {
	if i.empty {
		return math.NaN()
	}
	return math.Max(math.Abs(i.Lo), math.Abs(i.Hi))
}

// Norm is an alias for Mag (the two coincide for this one-dimensional
// interval type, per SPEC_FULL.md §3).
func (i Interval) Norm() float64 { return i.Mag() }

// ZeroIn reports whether 0 is a member of i.
func (i Interval) ZeroIn() bool {
	if i.empty {
		return false
	}
	return i.Lo <= 0 && i.Hi >= 0
}

// Subset reports whether i is a subset of other (i ⊆ other). Empty is a
// subset of everything.
func Subset(i, other Interval) bool {
	if i.empty {
		return true
	}
	if other.empty {
		return false
	}
	return other.Lo <= i.Lo && i.Hi <= other.Hi
}

// ProperSubset reports whether i is a subset of other and the two are
// not identical.
func ProperSubset(i, other Interval) bool {
	if !Subset(i, other) {
		return false
	}
	return i.Lo != other.Lo || i.Hi != other.Hi || i.empty != other.empty
}

// Overlap reports whether i and other share at least one real point.
func Overlap(i, other Interval) bool {
	if i.empty || other.empty {
		return false
	}
	return i.Lo <= other.Hi && other.Lo <= i.Hi
}

// Hull returns the tightest interval containing both i and other.
func Hull(i, other Interval) Interval {
	if i.empty {
		return other
	}
	if other.empty {
		return i
	}
	return Interval{Lo: math.Min(i.Lo, other.Lo), Hi: math.Max(i.Hi, other.Hi)}
}

// Intersect returns i ∩ other, or Empty when they are disjoint.
func Intersect(i, other Interval) Interval {
	if i.empty || other.empty {
		return EmptySet()
	}
	lo := math.Max(i.Lo, other.Lo)
	hi := math.Min(i.Hi, other.Hi)
	if lo > hi {
		return EmptySet()
	}
	return Interval{Lo: lo, Hi: hi}
}

// Equal reports bitwise-exact equality of the two intervals (including
// the empty flag). It is not a numeric "close enough" comparison; use
// AllClose-style tolerances in callers that need that.
func (i Interval) Equal(other Interval) bool {
	if i.empty || other.empty {
		return i.empty == other.empty
	}
	return i.Lo == other.Lo && i.Hi == other.Hi
}

// String renders i as "[lo, hi]", or "{}" for Empty.
func (i Interval) String() string {
	if i.empty {
		return "{}"
	}
	return fmt.Sprintf("[%v, %v]", i.Lo, i.Hi)
}
