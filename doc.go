// Package kvgo is a validated ODE integration library: directed-rounding
// interval arithmetic, power-series/automatic-differentiation based
// Taylor integration, and Picard-Lindelöf/Krawczyk-style validated
// one-step and long-time integrators with wrapping-effect mitigation
// via mean-value (affine) and QR-decorrelated coordinate frames.
//
// Everything is organized under subpackages:
//
//	ring/      — the recursive scalar interface every numeric layer implements
//	rounding/  — directed (outward) rounding primitives
//	interval/  — validated interval arithmetic
//	autodif/   — forward-mode automatic differentiation over ring.Scalar
//	psa/       — truncated power series arithmetic (Taylor coefficients)
//	affine/    — noise-symbol affine arithmetic, for the mean-value driver
//	matutil/   — dense and interval-valued matrix helpers (QR, hulls)
//	field/     — the vector-field contract plus a small built-in problem set
//	refint/    — a non-validated reference integrator for property tests
//	ode/       — the one-step validated integrator
//	odelong/   — long-time drivers (plain, mean-value, QR, QR-Lohner)
package kvgo
