package affine

import (
	"fmt"
	"sort"

	"github.com/kvnumerics/kvgo/autodif"
	"github.com/kvnumerics/kvgo/interval"
	"github.com/kvnumerics/kvgo/ring"
)

// Affine is a central value C plus a sparse map of noise-symbol index
// to linear coefficient: the value it represents is C + Σ Eps[i]*εᵢ,
// each εᵢ ranging independently over [-1, 1]. It implements
// ring.Scalar, so a user vector field can be evaluated directly with
// Affine-typed arguments (SPEC_FULL.md §6's "T ... affine").
type Affine struct {
	C   ring.Scalar
	Eps map[int]ring.Scalar
	Ctx *Context
}

// FromConstant returns the affine form with no noise symbols: exactly c.
func FromConstant(c ring.Scalar, ctx *Context) Affine {
	return Affine{C: c, Ctx: ctx}
}

// FromInterval returns the affine form for a fresh independent source
// of uncertainty spanning x: a new noise symbol is allocated, centred
// at x's midpoint with coefficient equal to x's radius, so ToInterval
// of the result recovers x exactly.
func FromInterval(x interval.Interval, ctx *Context) Affine {
	sym := ctx.NewSymbol()
	return Affine{
		C:   interval.Point(x.Mid()),
		Eps: map[int]ring.Scalar{sym: interval.Point(x.Rad())},
		Ctx: ctx,
	}
}

func asAffine(s ring.Scalar) Affine {
	a, ok := s.(Affine)
	if !ok {
		panic("affine: Scalar method called with a non-Affine operand")
	}
	return a
}

// magnitude extracts a real-valued upper bound on |s| for the two
// concrete payload shapes this codebase ever instantiates. Affine's
// own arithmetic needs a scalar magnitude to bound the cross term in
// Mul and the total deviation in ToInterval; for an AutoDif payload
// only the value part contributes (SPEC_FULL.md's affine layer tracks
// value-level uncertainty between correlated state components, not
// the sensitivity of that uncertainty to the AD independents).
func magnitude(s ring.Scalar) float64 {
	switch v := s.(type) {
	case interval.Interval:
		return v.Mag()
	case autodif.AutoDif:
		return magnitude(v.V)
	default:
		panic("affine: magnitude: unsupported scalar payload type")
	}
}

func allKeys(a, b Affine) []int {
	seen := make(map[int]bool, len(a.Eps)+len(b.Eps))
	for i := range a.Eps {
		seen[i] = true
	}
	for i := range b.Eps {
		seen[i] = true
	}
	keys := make([]int, 0, len(seen))
	for i := range seen {
		keys = append(keys, i)
	}
	sort.Ints(keys)
	return keys
}

func (a Affine) coeff(i int) ring.Scalar {
	if v, ok := a.Eps[i]; ok {
		return v
	}
	return a.C.Zero()
}

// Add is exact: affine forms compose linearly, so no new symbol is
// needed.
func (a Affine) Add(other ring.Scalar) ring.Scalar {
	b := asAffine(other)
	eps := make(map[int]ring.Scalar, len(a.Eps)+len(b.Eps))
	for _, i := range allKeys(a, b) {
		eps[i] = a.coeff(i).Add(b.coeff(i))
	}
	return Affine{C: a.C.Add(b.C), Eps: eps, Ctx: a.Ctx}
}

// Sub is exact, symmetric to Add.
func (a Affine) Sub(other ring.Scalar) ring.Scalar {
	b := asAffine(other)
	eps := make(map[int]ring.Scalar, len(a.Eps)+len(b.Eps))
	for _, i := range allKeys(a, b) {
		eps[i] = a.coeff(i).Sub(b.coeff(i))
	}
	return Affine{C: a.C.Sub(b.C), Eps: eps, Ctx: a.Ctx}
}

// Neg is exact.
func (a Affine) Neg() ring.Scalar {
	eps := make(map[int]ring.Scalar, len(a.Eps))
	for i, v := range a.Eps {
		eps[i] = v.Neg()
	}
	return Affine{C: a.C.Neg(), Eps: eps, Ctx: a.Ctx}
}

// Mul multiplies two affine forms: the linear part is exact
// (c_a*b_i + c_b*a_i per shared symbol), and the quadratic
// cross-term (Σaᵢεᵢ)(Σbᵢεᵢ) is bounded in magnitude by rad(a)*rad(b)
// and absorbed into one freshly allocated noise symbol, per
// SPEC_FULL.md §4.5's "introduces a new symbol absorbing the
// nonlinear remainder".
func (a Affine) Mul(other ring.Scalar) ring.Scalar {
	b := asAffine(other)
	eps := make(map[int]ring.Scalar, len(a.Eps)+len(b.Eps)+1)
	for _, i := range allKeys(a, b) {
		eps[i] = a.C.Mul(b.coeff(i)).Add(b.C.Mul(a.coeff(i)))
	}
	radA, radB := radius(a), radius(b)
	if cross := radA * radB; cross != 0 {
		sym := a.Ctx.NewSymbol()
		eps[sym] = interval.Point(cross)
	}
	return Affine{C: a.C.Mul(b.C), Eps: eps, Ctx: a.Ctx}
}

// radius returns Σ|Eps[i]| as a plain float.
func radius(a Affine) float64 {
	r := 0.0
	for _, v := range a.Eps {
		r += magnitude(v)
	}
	return r
}

// Div implements a/b as a*(1/b), where 1/b is the interval reciprocal
// of b's hull re-expressed as a single fresh noise symbol, the same
// nonlinear-unary treatment (unaryNonlinear) Exp/Log/... all share; b's
// existing noise symbols do not carry over into 1/b.
func (a Affine) Div(other ring.Scalar) ring.Scalar {
	b := asAffine(other)
	return a.Mul(b.unaryNonlinear(func(x ring.Scalar) ring.Scalar { return x.One().Div(x) }))
}

// ToInterval converts the affine form to its interval hull:
// c + Σ|aᵢ|·[-1,1].
func (a Affine) ToInterval() interval.Interval {
	c := a.C.(interval.Interval)
	r := radius(a)
	return interval.New(c.Lo-r, c.Hi+r)
}

// Split partitions a into (a1, a2): a1 keeps only noise symbols with
// index <= maxnumSave, a2 the rest, such that a1+a2 == a exactly. This
// is used to separate "old" (already-committed) deviation from
// deviation introduced since a checkpoint (SPEC_FULL.md §4.5).
func Split(a Affine, maxnumSave int) (a1, a2 Affine) {
	eps1 := make(map[int]ring.Scalar)
	eps2 := make(map[int]ring.Scalar)
	for i, v := range a.Eps {
		if i <= maxnumSave {
			eps1[i] = v
		} else {
			eps2[i] = v
		}
	}
	return Affine{C: a.C, Eps: eps1, Ctx: a.Ctx},
		Affine{C: a.C.Zero(), Eps: eps2, Ctx: a.Ctx}
}

// EpsilonReduce keeps the epReduce most significant noise symbols
// (largest magnitude across every element of v) and folds every other
// symbol of each element into one fresh symbol allocated for that
// element alone, bounding long-run symbol growth while preserving each
// element's interval hull
// (SPEC_FULL.md §4.5, §4.7's ep_reduce driver option). limit is the
// symbol-count threshold that triggers the reduction; if v's widest
// symbol count does not exceed it, v is returned unchanged.
func EpsilonReduce(v []Affine, ctx *Context, epReduce, limit int) []Affine {
	widest := 0
	for _, a := range v {
		if len(a.Eps) > widest {
			widest = len(a.Eps)
		}
	}
	if widest <= limit {
		return v
	}

	type entry struct {
		sym int
		mag float64
	}
	magByKey := make(map[int]float64)
	for _, a := range v {
		for i, c := range a.Eps {
			m := magnitude(c)
			if m > magByKey[i] {
				magByKey[i] = m
			}
		}
	}
	entries := make([]entry, 0, len(magByKey))
	for i, m := range magByKey {
		entries = append(entries, entry{i, m})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].mag < entries[j].mag })

	keep := epReduce
	if keep > len(entries) {
		keep = len(entries)
	}
	drop := make(map[int]bool, len(entries)-keep)
	for _, e := range entries[:len(entries)-keep] {
		drop[e.sym] = true
	}

	out := make([]Affine, len(v))
	for vi, a := range v {
		sym := ctx.NewSymbol()
		eps := make(map[int]ring.Scalar, len(a.Eps))
		folded := 0.0
		for i, c := range a.Eps {
			if drop[i] {
				folded += magnitude(c)
				continue
			}
			eps[i] = c
		}
		if folded != 0 {
			eps[sym] = interval.Point(folded)
		}
		out[vi] = Affine{C: a.C, Eps: eps, Ctx: ctx}
	}
	return out
}

func (a Affine) String() string {
	return fmt.Sprintf("Affine{C: %v, Eps: %v}", a.C, a.Eps)
}
