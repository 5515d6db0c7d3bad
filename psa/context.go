package psa

import "github.com/kvnumerics/kvgo/interval"

// Mode selects how PSA.Mul truncates its result.
type Mode int

const (
	// GrowOrder makes multiplication return the full convolution: a
	// result of order = order(a) + order(b). This is the mode used
	// while building up a Taylor series coefficient by coefficient, one
	// new order at a time, where every coefficient produced is exact
	// (no truncation has happened yet).
	GrowOrder Mode = iota + 1
	// FixedOrder truncates every multiplication's result to order
	// Context.Order (Context.Order+1 coefficients), folding everything from that point on into the top
	// coefficient as an enclosure of the discarded tail, weighted by
	// powers of Context.Domain. This is the mode used once a step's
	// order is fixed and a single PSA is being refined in place
	// (SPEC_FULL.md §4.6's contraction loop).
	FixedOrder
)

// Context carries the configuration shared by every PSA participating
// in one computation: the truncation policy (Mode, Order), the real
// interval (Domain) that bounds the independent variable when folding
// a multiplication's discarded tail, and an optional memoization cache
// keyed by caller-supplied tags (History*). A *Context is never shared
// across unrelated computations; SPEC_FULL.md's task-local-context
// design note replaces the source material's process-wide
// mode()/domain()/use_history() statics with this explicit, per-task
// value.
type Context struct {
	Mode   Mode
	Domain interval.Interval
	Order  int

	UseHistory    bool
	RecordHistory bool
	history       map[string]PSA
}

// NewContext returns a Context in GrowOrder mode with a zero domain and
// history disabled, the configuration appropriate for building up a
// series coefficient by coefficient before any step size is chosen.
func NewContext() *Context {
	return &Context{Mode: GrowOrder, Domain: interval.Zero()}
}

// SetFixedOrder switches the context into FixedOrder mode, truncating
// every subsequent multiplication to order order (order+1
// coefficients) over domain.
func (c *Context) SetFixedOrder(order int, domain interval.Interval) {
	c.Mode = FixedOrder
	c.Order = order
	c.Domain = domain
}

// Record stores p under id for later Lookup, if RecordHistory is set.
func (c *Context) Record(id string, p PSA) {
	if !c.RecordHistory {
		return
	}
	if c.history == nil {
		c.history = make(map[string]PSA)
	}
	c.history[id] = p
}

// Lookup returns a previously Record-ed PSA, if UseHistory is set and
// id was recorded.
func (c *Context) Lookup(id string) (PSA, bool) {
	if !c.UseHistory || c.history == nil {
		return PSA{}, false
	}
	p, ok := c.history[id]
	return p, ok
}

// Reset discards the memoization cache; it does not change Mode, Order
// or Domain. Call it between unrelated steps that reuse one Context.
func (c *Context) Reset() {
	c.history = nil
}

// Checkpoint captures enough of the context to restore it later:
// Mode, Order and Domain, but not the history cache (which is always
// safe to keep or drop independently).
type Checkpoint struct {
	mode   Mode
	order  int
	domain interval.Interval
}

// Checkpoint snapshots the receiver's truncation policy.
func (c *Context) Checkpoint() Checkpoint {
	return Checkpoint{mode: c.Mode, order: c.Order, domain: c.Domain}
}

// Restore reinstates a policy captured by Checkpoint.
func (c *Context) Restore(cp Checkpoint) {
	c.Mode = cp.mode
	c.Order = cp.order
	c.Domain = cp.domain
}
