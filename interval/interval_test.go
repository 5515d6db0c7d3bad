package interval

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizesDegenerateInput(t *testing.T) {
	assert.True(t, New(1, -1).IsWhole())
	assert.True(t, New(math.NaN(), 1).IsWhole())
	assert.Equal(t, Interval{Lo: 1, Hi: 2}, New(1, 2))
}

func TestHullAndIntersect(t *testing.T) {
	a := New(0, 2)
	b := New(1, 3)
	h := Hull(a, b)
	assert.True(t, Subset(a, h))
	assert.True(t, Subset(b, h))

	i := Intersect(a, b)
	assert.Equal(t, New(1, 2), i)

	disjoint := Intersect(New(0, 1), New(2, 3))
	assert.True(t, disjoint.IsEmpty())
}

func TestDivisionByIntervalContainingZero(t *testing.T) {
	a := New(1, 1)
	b := New(-1, 1)
	assert.True(t, Div(a, b).IsWhole())

	// single-sided zero contact produces a half-line, not Whole.
	halfLine := Div(a, New(0, 2))
	assert.False(t, halfLine.IsWhole())
	assert.True(t, math.IsInf(halfLine.Hi, 1))
}

func TestExpOfNarrowIntervalMatchesSpecExample(t *testing.T) {
	// SPEC_FULL.md / spec.md §8 scenario 4.
	x := New(0.125, 0.25)
	e := Exp(x)
	assert.True(t, Subset(e, New(1.1331, 1.2841)), "enclosure too wide: %v", e)
	assert.LessOrEqual(t, e.Lo, math.Exp(0.125))
	assert.GreaterOrEqual(t, e.Hi, math.Exp(0.25))
}

func TestParseStringLiteralRoundTrip(t *testing.T) {
	// SPEC_FULL.md / spec.md §8 scenario 5: I("0.1") must contain 1/10
	// but must not equal the float64 0.1 (which is itself not exact).
	tenth, err := Parse("0.1")
	require.NoError(t, err)

	assert.LessOrEqual(t, tenth.Lo, 0.1)
	assert.GreaterOrEqual(t, tenth.Hi, 0.1)
	assert.True(t, tenth.Lo < tenth.Hi, "Parse(\"0.1\") must not collapse to the inexact float64 0.1")

	prod := Mul(tenth, Point(1))
	assert.True(t, Subset(Point(0.1), prod), "prod must enclose the float64 nearest to 1/10")
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := Parse("not-a-number")
	require.Error(t, err)
}

// TestPropertyBasicOpsContainAllPointPairs is the universal invariant
// from spec.md §8: for all intervals A, B and op in {+,-,*,/ (0 not in
// B)}, and all a in A, b in B: a op b in A op B.
func TestPropertyBasicOpsContainAllPointPairs(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	randInterval := func() Interval {
		c := rng.Float64()*20 - 10
		r := rng.Float64() * 5
		return New(c-r, c+r)
	}
	for trial := 0; trial < 500; trial++ {
		a := randInterval()
		b := randInterval()
		pa := a.Lo + rng.Float64()*(a.Hi-a.Lo)
		pb := b.Lo + rng.Float64()*(b.Hi-b.Lo)

		sum := Add(a, b)
		assert.True(t, sum.Lo <= pa+pb && pa+pb <= sum.Hi)

		diff := Sub(a, b)
		assert.True(t, diff.Lo <= pa-pb && pa-pb <= diff.Hi)

		prod := Mul(a, b)
		assert.True(t, prod.Lo <= pa*pb && pa*pb <= prod.Hi)

		if !b.ZeroIn() {
			quot := Div(a, b)
			assert.True(t, quot.Lo <= pa/pb && pa/pb <= quot.Hi)
		}
	}
}

// TestPropertyTranscendentalsContainPointImage: for all x in X, every
// transcendental phi: phi(x) in phi(X).
func TestPropertyTranscendentalsContainPointImage(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 9))
	for trial := 0; trial < 300; trial++ {
		c := rng.Float64()*6 - 3
		r := rng.Float64() * 2
		x := New(c-r, c+r)
		p := x.Lo + rng.Float64()*(x.Hi-x.Lo)

		e := Exp(x)
		assert.True(t, e.Lo <= math.Exp(p) && math.Exp(p) <= e.Hi)

		s := Sin(x)
		assert.True(t, s.Lo <= math.Sin(p) && math.Sin(p) <= s.Hi)

		co := Cos(x)
		assert.True(t, co.Lo <= math.Cos(p) && math.Cos(p) <= co.Hi)

		if x.Lo > 0 {
			l := Log(x)
			assert.True(t, l.Lo <= math.Log(p) && math.Log(p) <= l.Hi)
		}
		if x.Lo >= 0 {
			sq := Sqrt(x)
			assert.True(t, sq.Lo <= math.Sqrt(p) && math.Sqrt(p) <= sq.Hi)
		}
	}
}

func TestHullContainsBothOperands(t *testing.T) {
	a := New(-5, 2)
	b := New(1, 9)
	h := Hull(a, b)
	assert.True(t, Subset(a, h))
	assert.True(t, Subset(b, h))
}
