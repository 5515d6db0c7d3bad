package ode

// MakeCandidate turns raw Picard-residual magnitudes into Newton-step
// inflation radii for the top-order coefficient of every scalar and
// gradient slot (SPEC_FULL.md §4.6's make_candidate). A component whose
// raw magnitude is zero or tiny relative to the largest one would give
// the contraction test no slack to work with (an interval inflated by
// radius zero can only "contain" an image that also collapses to that
// exact point), so every slot is floored at floorRatio times the
// largest raw magnitude.
//
// This is an explicit reimplementation of the heuristic shape
// referenced (not defined) by ode-autodif.hpp's call to
// kv::make_candidate, not a transliteration of that function's body,
// which is not present anywhere in the retrieval pack.
func MakeCandidate(raw []float64, floorRatio float64) []float64 {
	max := 0.0
	for _, v := range raw {
		if v > max {
			max = v
		}
	}
	floor := max * floorRatio
	out := make([]float64, len(raw))
	for i, v := range raw {
		if v < floor {
			out[i] = floor
		} else {
			out[i] = v
		}
	}
	return out
}
