// Package autodif implements first-order forward-mode automatic
// differentiation over any ring.Scalar: an AutoDif value pairs a
// function value with the gradient of that value with respect to a
// declared set of independent variables, and every ring operation (the
// four arithmetic operations, unary negation, and the interval
// transcendentals) is lifted via the chain rule.
//
// AutoDif itself implements ring.Scalar, so it nests: AutoDif whose
// payload is an interval.Interval realises the source material's
// autodif<interval<T>>; nothing in this package needs to know that,
// since every operation is written purely against ring.Scalar.
package autodif
