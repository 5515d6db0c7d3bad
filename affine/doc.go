// Package affine implements affine arithmetic over any ring.Scalar: an
// Affine value is a central value plus a sparse set of linear
// coefficients, one per globally-allocated noise symbol ranging over
// [-1, 1]. Affine forms track first-order dependency between
// quantities derived from the same uncertain input, which interval
// arithmetic alone loses (every interval operation treats its operands
// as independent), making affine forms the mechanism the long-time ODE
// driver uses to fight the wrapping effect (SPEC_FULL.md §4.5, §4.7).
//
// Noise-symbol allocation is a monotonic counter carried by a *Context,
// not a package-level global: two unrelated integrations allocate from
// two independent counters and never collide, matching the task-local
// state design used throughout (rounding.Guard, psa.Context).
package affine
