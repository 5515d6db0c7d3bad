package affine

// Context carries the monotonic noise-symbol counter shared by every
// Affine value built during one computation. A symbol index is unique
// within a Context for as long as the Context lives; Checkpoint/Restore
// let a caller reclaim the symbol range allocated since a checkpoint
// once it is known those symbols no longer matter (e.g. at an ODE step
// boundary once the step's deviation has been folded into a fresh,
// smaller symbol set by EpsilonReduce).
type Context struct {
	maxnum int
}

// NewContext returns a Context with no symbols allocated yet.
func NewContext() *Context { return &Context{} }

// NewSymbol allocates and returns the next unused noise-symbol index.
func (c *Context) NewSymbol() int {
	c.maxnum++
	return c.maxnum
}

// MaxNum returns the highest symbol index allocated so far (0 if none).
func (c *Context) MaxNum() int { return c.maxnum }

// Checkpoint snapshots the counter so a later Restore can roll back
// every symbol allocated after this point.
func (c *Context) Checkpoint() int { return c.maxnum }

// Restore rewinds the counter to a value returned by Checkpoint. Any
// Affine values still referencing symbols above cp become invalid to
// combine with values built after the restore (the caller is
// responsible for not doing so, exactly as a freed stack frame must
// not be referenced after it is popped).
func (c *Context) Restore(cp int) { c.maxnum = cp }
