package odelong

import (
	"log/slog"

	"github.com/kvnumerics/kvgo/ode"
)

const (
	// DefaultEpReduce is "do not reduce": RunMaffine keeps every noise
	// symbol it allocates unless the caller opts in to bounding growth.
	DefaultEpReduce = 0
	// DefaultEpReduceLimit is the symbol-count threshold EpsilonReduce
	// compares against; zero alongside DefaultEpReduce since reduction
	// is off by default.
	DefaultEpReduceLimit = 0
	// DefaultMaffineMaxOrderBumps bounds the center-trajectory retry
	// loop in RunMaffine: the source material's equivalent loop is
	// unbounded (SPEC_FULL.md §9's open question), relying on the
	// deviation-free sub-problem eventually succeeding at some order;
	// this caps it so a pathological field cannot spin forever.
	DefaultMaffineMaxOrderBumps = 8
)

// Options bundles the configuration shared by every long-integration
// driver in this package (SPEC_FULL.md §6's single configuration
// bundle). ode.Option values are passed through to each underlying
// ode.Step call separately, rather than folded into this type, since
// Step already owns its own functional-options surface.
type Options struct {
	epReduce             int
	epReduceLimit        int
	maffineMaxOrderBumps int
	verbose              bool
	logger               *slog.Logger
	onStep               ode.StepFunc
}

// Option configures an Options value.
type Option func(*Options)

// NewOptions builds an Options from defaults plus the given overrides.
func NewOptions(opts ...Option) Options {
	o := Options{
		epReduce:             DefaultEpReduce,
		epReduceLimit:        DefaultEpReduceLimit,
		maffineMaxOrderBumps: DefaultMaffineMaxOrderBumps,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// WithEpReduce sets how many noise symbols RunMaffine's EpsilonReduce
// pass keeps per step (0 disables reduction entirely).
func WithEpReduce(n int) Option {
	if n < 0 {
		panic("odelong: WithEpReduce: n must be >= 0")
	}
	return func(o *Options) { o.epReduce = n }
}

// WithEpReduceLimit sets the symbol-count threshold that triggers
// RunMaffine's EpsilonReduce pass.
func WithEpReduceLimit(n int) Option {
	if n < 0 {
		panic("odelong: WithEpReduceLimit: n must be >= 0")
	}
	return func(o *Options) { o.epReduceLimit = n }
}

// WithMaffineMaxOrderBumps bounds RunMaffine's center-trajectory retry
// loop.
func WithMaffineMaxOrderBumps(n int) Option {
	if n < 1 {
		panic("odelong: WithMaffineMaxOrderBumps: n must be >= 1")
	}
	return func(o *Options) { o.maffineMaxOrderBumps = n }
}

// WithVerbose turns on one structured log line per committed step,
// grounded on rcornwell-S370's log/slog wrapper convention
// (SPEC_FULL.md §2). A nil logger defaults to slog.Default().
func WithVerbose(logger *slog.Logger) Option {
	return func(o *Options) {
		o.verbose = true
		o.logger = logger
	}
}

// WithOnStep registers a callback invoked once per committed step
// (SPEC_FULL.md §6's callback contract). The callback must only read
// the StepRecord it receives.
func WithOnStep(fn ode.StepFunc) Option {
	return func(o *Options) { o.onStep = fn }
}
