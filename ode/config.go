package ode

// Named defaults, documented as the single source of truth for
// NewOptions's zero state.
const (
	// DefaultOrder is the Taylor-polynomial order used when the caller
	// does not specify one.
	DefaultOrder = 12

	// DefaultAutostep enables the step-4 radius heuristic and the
	// halve-and-retry loop of step 7; disabling it forces Step to
	// attempt the caller's entire requested interval in one shot.
	DefaultAutostep = true

	// DefaultIterMax is the number of intersection-refinement rounds
	// (step 8) performed once the contraction test succeeds.
	DefaultIterMax = 2

	// DefaultRestartMax bounds how many times step 7 may halve the step
	// radius and retry the contraction test before Step gives up and
	// returns Fail.
	DefaultRestartMax = 1

	// DefaultTol1 weights an interval's radius against its tolerance
	// contribution in step 2 (m_tmp = rad(x) * Tol1).
	DefaultTol1 = 0.1

	// DefaultCandidateFloorRatio is the fraction of the largest residual
	// magnitude below which MakeCandidate bumps a component up, so a
	// component whose raw Newton step is suspiciously (or exactly) zero
	// still gets a nonzero inflation radius to test containment against.
	DefaultCandidateFloorRatio = 1e-8

	// ResizeRatioMin and ResizeRatioMax clamp the one-shot resize
	// feedback's growth ratio (step 6), resolving the Open Question left
	// unclamped by the source material: an unclamped ratio can send the
	// recomputed radius to zero or to infinity on pathological vector
	// fields, neither of which the subsequent loop can recover from.
	ResizeRatioMin = 0.01
	ResizeRatioMax = 100
)

// Options collects Step's tunables. Build one with NewOptions.
type Options struct {
	order               int
	autostep            bool
	iterMax             int
	restartMax          int
	tol1                float64
	candidateFloorRatio float64
}

// Option mutates Options in place.
type Option func(*Options)

// NewOptions resolves opts against the documented defaults.
func NewOptions(opts ...Option) Options {
	o := Options{
		order:               DefaultOrder,
		autostep:            DefaultAutostep,
		iterMax:             DefaultIterMax,
		restartMax:          DefaultRestartMax,
		tol1:                DefaultTol1,
		candidateFloorRatio: DefaultCandidateFloorRatio,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithOrder sets the Taylor-polynomial order. Panics if order < 1.
func WithOrder(order int) Option {
	if order < 1 {
		panic("ode: WithOrder: order must be >= 1")
	}
	return func(o *Options) { o.order = order }
}

// WithAutostep toggles the step-size heuristic of step 4.
func WithAutostep(on bool) Option {
	return func(o *Options) { o.autostep = on }
}

// WithIterMax sets the number of post-contraction intersection rounds.
// Panics if iterMax < 0.
func WithIterMax(iterMax int) Option {
	if iterMax < 0 {
		panic("ode: WithIterMax: iterMax must be >= 0")
	}
	return func(o *Options) { o.iterMax = iterMax }
}

// WithRestartMax sets how many halve-and-retry attempts step 7 allows.
// Panics if restartMax < 0.
func WithRestartMax(restartMax int) Option {
	if restartMax < 0 {
		panic("ode: WithRestartMax: restartMax must be >= 0")
	}
	return func(o *Options) { o.restartMax = restartMax }
}

// WithTol1 sets the radius-weighting factor used by the tolerance
// computation of step 2. Panics if tol1 <= 0.
func WithTol1(tol1 float64) Option {
	if tol1 <= 0 {
		panic("ode: WithTol1: tol1 must be > 0")
	}
	return func(o *Options) { o.tol1 = tol1 }
}

// WithCandidateFloorRatio sets MakeCandidate's floor ratio. Panics if
// ratio is not in (0, 1].
func WithCandidateFloorRatio(ratio float64) Option {
	if ratio <= 0 || ratio > 1 {
		panic("ode: WithCandidateFloorRatio: ratio must be in (0, 1]")
	}
	return func(o *Options) { o.candidateFloorRatio = ratio }
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
