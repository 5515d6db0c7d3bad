package interval

import (
	"fmt"
	"math/big"

	"github.com/kvnumerics/kvgo/rounding"
)

// Parse constructs the narrowest Interval containing the exact decimal
// value of s, per SPEC_FULL.md §6's numeric-literal-ingestion contract.
// It uses math/big.Float (arbitrary precision, exact decimal parsing)
// to get a correctly-rounded nearest float64, then -- because a single
// round-to-nearest float64 is not guaranteed to bound the true decimal
// value on both sides -- compares that rounded value back against the
// arbitrary-precision original and widens by one ULP in whichever
// direction is needed so the returned pair truly encloses s.
func Parse(s string) (Interval, error) {
	bf, _, err := big.ParseFloat(s, 10, 200, big.ToNearestEven)
	if err != nil {
		return Interval{}, fmt.Errorf("interval: Parse(%q): %w: %v", s, ErrParse, err)
	}

	nearest, _ := bf.Float64()

	lo, hi := nearest, nearest
	cmp := bf.Cmp(new(big.Float).SetPrec(200).SetFloat64(nearest))
	switch {
	case cmp < 0:
		// s is strictly below the rounded float64: the true value lives
		// in [prev ULP, nearest].
		lo = rounding.Downward(nearest)
	case cmp > 0:
		hi = rounding.Upward(nearest)
	}

	return Interval{Lo: lo, Hi: hi}, nil
}

// MustParse is Parse but panics on malformed input; intended for
// literals known at compile time (tests, constant tables), mirroring
// the teacher's "panic only on programmer error" policy.
func MustParse(s string) Interval {
	i, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return i
}
