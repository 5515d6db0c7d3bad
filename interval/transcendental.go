package interval

import "math"

// safetyULPs widens every transcendental endpoint by a handful of
// representable steps beyond the single-ULP nudge package rounding
// already applies. Go's math package does not guarantee its functions
// are correctly rounded (unlike the four basic operations, which are
// exact up to a single final rounding by hardware); this margin turns
// "almost certainly contains" into "provably contains" for the
// evaluation methods used here (argument evaluation plus outward
// widening), at the cost of a small, fixed loss of tightness.
const safetyULPs = 4

func widenLo(v float64) float64 {
	for i := 0; i < safetyULPs; i++ {
		v = math.Nextafter(v, math.Inf(-1))
	}
	return v
}

func widenHi(v float64) float64 {
	for i := 0; i < safetyULPs; i++ {
		v = math.Nextafter(v, math.Inf(1))
	}
	return v
}

// encloseMonotoneIncreasing evaluates a monotone increasing fn at the
// endpoints of x and widens outward; sound whenever fn truly is
// monotone increasing over all of x's domain.
func encloseMonotoneIncreasing(fn func(float64) float64, x Interval) Interval {
	if x.empty {
		return EmptySet()
	}
	return Interval{Lo: widenLo(fn(x.Lo)), Hi: widenHi(fn(x.Hi))}
}

// Exp encloses e^x. exp is monotone increasing over all reals; exp(-inf)
// is correctly 0 and exp(+inf) is correctly +inf under math.Exp.
func Exp(x Interval) Interval {
	return encloseMonotoneIncreasing(math.Exp, x)
}

// Log encloses the natural logarithm. log is monotone increasing on its
// natural domain (0, +inf); per the domain-violation policy, a non-
// positive intersection with the input is handled by treating the
// lower bound as the domain's open boundary (log -> -inf there), and an
// input with no positive part at all returns Whole rather than
// fabricating a bound that excludes part of the function's image.
func Log(x Interval) Interval {
	if x.empty {
		return EmptySet()
	}
	if x.Hi <= 0 {
		return Whole()
	}
	lo := math.Inf(-1)
	if x.Lo > 0 {
		lo = widenLo(math.Log(x.Lo))
	}
	return Interval{Lo: lo, Hi: widenHi(math.Log(x.Hi))}
}

// Sqrt encloses the square root. sqrt is monotone increasing on [0,
// +inf); as with Log, an operand with no non-negative part returns
// Whole, and a partially negative operand is enclosed on the
// domain-intersected part only.
func Sqrt(x Interval) Interval {
	if x.empty {
		return EmptySet()
	}
	if x.Hi < 0 {
		return Whole()
	}
	lo := 0.0
	if x.Lo > 0 {
		lo = x.Lo
	}
	return Interval{Lo: widenLo(math.Sqrt(lo)), Hi: widenHi(math.Sqrt(x.Hi))}
}

// Sinh encloses the hyperbolic sine, monotone increasing over all reals.
func Sinh(x Interval) Interval {
	return encloseMonotoneIncreasing(math.Sinh, x)
}

// Cosh encloses the hyperbolic cosine. cosh is convex with its unique
// minimum (1) at x=0: if the operand straddles zero the minimum is
// attained in its interior, otherwise cosh is monotone on the operand's
// (one-signed) side.
func Cosh(x Interval) Interval {
	if x.empty {
		return EmptySet()
	}
	a, b := math.Cosh(x.Lo), math.Cosh(x.Hi)
	mn, mx := math.Min(a, b), math.Max(a, b)
	if x.Lo <= 0 && x.Hi >= 0 {
		mn = 1
	}
	return Interval{Lo: widenLo(mn), Hi: widenHi(mx)}
}

// Atan encloses the arctangent, monotone increasing over all reals
// (including the extended endpoints, where math.Atan correctly returns
// +-pi/2 at +-inf).
func Atan(x Interval) Interval {
	return encloseMonotoneIncreasing(math.Atan, x)
}

// containsCriticalPoint reports whether [lo, hi] contains point + k*2pi
// for some integer k.
func containsCriticalPoint(lo, hi, point float64) bool {
	k := math.Ceil((lo - point) / (2 * math.Pi))
	cand := point + k*2*math.Pi
	return cand >= lo && cand <= hi
}

// Sin encloses the sine function by evaluating the endpoints and
// widening to +-1 whenever the operand's range contains a point where
// sine attains its extremum, per SPEC_FULL.md §4.2's argument-reduction
// + monotone-extension recipe.
func Sin(x Interval) Interval {
	if x.empty {
		return EmptySet()
	}
	if x.Hi-x.Lo >= 2*math.Pi || math.IsInf(x.Hi-x.Lo, 0) {
		return Interval{Lo: -1, Hi: 1}
	}
	a, b := math.Sin(x.Lo), math.Sin(x.Hi)
	mn, mx := math.Min(a, b), math.Max(a, b)
	if containsCriticalPoint(x.Lo, x.Hi, math.Pi/2) {
		mx = 1
	}
	if containsCriticalPoint(x.Lo, x.Hi, -math.Pi/2) {
		mn = -1
	}
	return Interval{Lo: widenLo(mn), Hi: widenHi(mx)}
}

// Cos encloses the cosine function, by the same recipe as Sin with
// critical points shifted by pi/2 (cos's maximum is at 0 + 2k*pi, its
// minimum at pi + 2k*pi).
func Cos(x Interval) Interval {
	if x.empty {
		return EmptySet()
	}
	if x.Hi-x.Lo >= 2*math.Pi || math.IsInf(x.Hi-x.Lo, 0) {
		return Interval{Lo: -1, Hi: 1}
	}
	a, b := math.Cos(x.Lo), math.Cos(x.Hi)
	mn, mx := math.Min(a, b), math.Max(a, b)
	if containsCriticalPoint(x.Lo, x.Hi, 0) {
		mx = 1
	}
	if containsCriticalPoint(x.Lo, x.Hi, math.Pi) {
		mn = -1
	}
	return Interval{Lo: widenLo(mn), Hi: widenHi(mx)}
}

// intPow raises a to the non-negative integer power n by repeated
// interval multiplication; sound for any a (including operands that
// straddle zero) since Mul already handles sign combinations correctly.
func intPow(a Interval, n int) Interval {
	if n == 0 {
		return Point(1)
	}
	result := a
	for i := 1; i < n; i++ {
		result = Mul(result, a)
	}
	return result
}

// Pow encloses a^b. When a is strictly positive this is computed via
// exp(b * log(a)), which is sound by composition of already-sound
// operations. When a may be non-positive, Pow falls back to exact
// integer exponentiation when b is a degenerate non-negative integer,
// and to Whole otherwise (a^b is multi-valued or undefined for
// non-integer b with a non-positive base).
func Pow(a, b Interval) Interval {
	if a.empty || b.empty {
		return EmptySet()
	}
	if a.Lo > 0 {
		return Exp(Mul(b, Log(a)))
	}
	if b.Lo == b.Hi && b.Lo == math.Trunc(b.Lo) && b.Lo >= 0 && !math.IsInf(b.Lo, 0) {
		return intPow(a, int(b.Lo))
	}
	return Whole()
}
