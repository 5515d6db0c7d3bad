// Package ring defines the scalar-ring abstraction every numeric layer in
// kvgo is built on: interval, autodif, psa and affine all implement it,
// and a user-supplied vector field is written once against Scalar instead
// of against one concrete type.
//
// Go has no operator overloading, so the recursive instantiation the
// source material gets from C++ templates (autodif<interval<T>>,
// psa<autodif<interval<T>>>, ...) is realised here as an interface: any
// type that knows how to add, subtract, multiply, divide and evaluate the
// standard transcendentals against another value of the same concrete
// type satisfies Scalar, and can be nested inside another Scalar
// implementation without the outer layer knowing anything about the
// inner one's representation.
package ring

// Scalar is the minimal ring (plus the transcendentals the interval
// kernel must enclose) that every numeric layer built on top of it
// requires. Implementations must be outward-rounded where the concrete
// type demands it (interval.Interval) and must treat NaN/domain
// violations as described by each layer's own doc comments rather than
// panicking.
type Scalar interface {
	// Add returns the ring sum. other must share the dynamic type of the
	// receiver; implementations may panic on a foreign type, mirroring the
	// teacher's "panic only on programmer error" policy.
	Add(other Scalar) Scalar
	Sub(other Scalar) Scalar
	Mul(other Scalar) Scalar
	Div(other Scalar) Scalar
	Neg() Scalar

	Exp() Scalar
	Log() Scalar
	Sin() Scalar
	Cos() Scalar
	Sinh() Scalar
	Cosh() Scalar
	Atan() Scalar
	Sqrt() Scalar
	Pow(other Scalar) Scalar

	// IsZero reports whether the receiver is the additive identity of its
	// own ring (interval: both endpoints zero). autodif, psa and affine
	// check only their value, constant term or central value; gradient,
	// higher coefficients and noise symbols are not consulted.
	IsZero() bool

	// Clone returns an independent copy; required because several layers
	// (psa coefficient vectors, autodif gradients) mutate in place.
	Clone() Scalar

	// Zero returns the additive identity in the receiver's own concrete
	// ring (same dynamic type as the receiver). Outer layers (autodif,
	// psa, affine) use this to lift a bare constant into their own ring
	// without needing to know the innermost scalar's concrete type.
	Zero() Scalar

	// One returns the multiplicative identity, by the same rule as Zero.
	One() Scalar
}
