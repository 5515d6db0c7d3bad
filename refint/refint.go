package refint

import (
	"math"

	"github.com/kvnumerics/kvgo/field"
	"github.com/kvnumerics/kvgo/interval"
	"github.com/kvnumerics/kvgo/ring"
)

// Func is a plain real vector field: Func(x, t) returns dx/dt.
type Func func(x []float64, t float64) []float64

// FromField adapts a field.Field to Func by lifting each real
// component to an interval.Point before calling Eval and reading the
// (degenerate) interval's midpoint back out, so the same field
// implementation used with the validated stepper can be reused
// unmodified as ground truth here.
func FromField(f field.Field) Func {
	return func(x []float64, t float64) []float64 {
		xs := make([]ring.Scalar, len(x))
		for i, v := range x {
			xs[i] = interval.Point(v)
		}
		y := f.Eval(xs, interval.Point(t))
		out := make([]float64, len(y))
		for i, v := range y {
			out[i] = v.(interval.Interval).Mid()
		}
		return out
	}
}

func add(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}

func scale(a []float64, s float64) []float64 {
	out := make([]float64, len(a))
	for i := range out {
		out[i] = a[i] * s
	}
	return out
}

func addScaled(base []float64, s float64, delta []float64) []float64 {
	out := make([]float64, len(base))
	for i := range out {
		out[i] = base[i] + s*delta[i]
	}
	return out
}

// RK4 integrates f from (x0, t0) to t1 using n fixed steps of classical
// 4th-order Runge-Kutta, returning the state at t1.
func RK4(f Func, x0 []float64, t0, t1 float64, n int) []float64 {
	h := (t1 - t0) / float64(n)
	x := append([]float64(nil), x0...)
	t := t0
	for i := 0; i < n; i++ {
		k1 := f(x, t)
		k2 := f(addScaled(x, h/2, k1), t+h/2)
		k3 := f(addScaled(x, h/2, k2), t+h/2)
		k4 := f(addScaled(x, h, k3), t+h)

		sum := add(add(k1, scale(k2, 2)), add(scale(k3, 2), k4))
		x = addScaled(x, h/6, sum)
		t += h
	}
	return x
}

// RKF45 integrates f from (x0, t0) to t1 with adaptive step size
// controlled by the embedded 4th/5th order Runge-Kutta-Fehlberg pair
// (Butcher tableau as in the retrieval pack's RKF45Solver), targeting
// a per-step error no larger than tol. It returns the state at t1.
func RKF45(f Func, x0 []float64, t0, t1 float64, tol float64) []float64 {
	const (
		c21        = 1.0 / 4.0
		c31, c32   = 3.0 / 32.0, 9.0 / 32.0
		c41, c42, c43 = 1932.0 / 2197.0, -7200.0 / 2197.0, 7296.0 / 2197.0
		c51, c52, c53, c54 = 439.0 / 216.0, -8.0, 3680.0 / 513.0, -845.0 / 4104.0
		c61, c62, c63, c64, c65 = -8.0 / 27.0, 2.0, -3544.0 / 2565.0, 1859.0 / 4104.0, -11.0 / 40.0

		a1, a3, a4, a5    = 25.0 / 216.0, 1408.0 / 2565.0, 2197.0 / 4104.0, -1.0 / 5.0
		b1, b3, b4, b5, b6 = 16.0 / 135.0, 6656.0 / 12825.0, 28561.0 / 56430.0, -9.0 / 50.0, 2.0 / 55.0

		hMin = 1e-10
	)

	x := append([]float64(nil), x0...)
	t := t0
	h := t1 - t0
	if h == 0 {
		return x
	}
	for t < t1 {
		if t+h > t1 {
			h = t1 - t
		}

		k1 := scale(f(x, t), h)
		k2 := scale(f(addScaled(x, c21, k1), t+h/4), h)
		k3 := scale(f(addScaled(addScaled(x, c31, k1), c32, k2), t+3*h/8), h)
		k4 := scale(f(addScaled(addScaled(addScaled(x, c41, k1), c42, k2), c43, k3), t+12*h/13), h)
		k5 := scale(f(addScaled(addScaled(addScaled(addScaled(x, c51, k1), c52, k2), c53, k3), c54, k4), t+h), h)
		k6 := scale(f(addScaled(addScaled(addScaled(addScaled(addScaled(x, c61, k1), c62, k2), c63, k3), c64, k4), c65, k5), t+h/2), h)

		x5 := addScaled(addScaled(addScaled(addScaled(x, b1, k1), b3, k3), b4, k4), b5, k5)
		x5 = addScaled(x5, b6, k6)
		x4 := addScaled(addScaled(addScaled(addScaled(x, a1, k1), a3, k3), a4, k4), a5, k5)

		errMax := 0.0
		for i := range x5 {
			if d := math.Abs(x5[i] - x4[i]); d > errMax {
				errMax = d
			}
		}

		if errMax <= tol || h <= hMin {
			x = x5
			t += h
		}
		if errMax == 0 {
			continue
		}
		factor := 0.9 * math.Pow(tol/errMax, 0.2)
		factor = math.Min(math.Max(factor, 0.1), 4.0)
		h *= factor
		if h < hMin {
			h = hMin
		}
	}
	return x
}
