package ode

import (
	"math"

	"github.com/kvnumerics/kvgo/autodif"
	"github.com/kvnumerics/kvgo/field"
	"github.com/kvnumerics/kvgo/interval"
	"github.com/kvnumerics/kvgo/psa"
	"github.com/kvnumerics/kvgo/ring"
)

// machineEpsilon is the float64 unit roundoff, the Go stand-in for
// std::numeric_limits<T>::epsilon() in the tolerance computation of
// step 2.
const machineEpsilon = 2.220446049250313e-16

func toRingSlice(ps []psa.PSA) []ring.Scalar {
	out := make([]ring.Scalar, len(ps))
	for i, p := range ps {
		out[i] = p
	}
	return out
}

func asInterval(s ring.Scalar) interval.Interval {
	iv, ok := s.(interval.Interval)
	if !ok {
		panic("ode: expected an interval.Interval payload; Step requires X to wrap interval.Interval")
	}
	return iv
}

// Step advances X by one validated step from tStart toward tEnd,
// implementing the nine-stage algorithm of SPEC_FULL.md §4.6. X must be
// a vector of autodif.AutoDif whose value and gradient entries are
// interval.Interval.
//
// On success it returns the new state (expanded back to X's original,
// uncompressed gradient dimension), the end of the interval actually
// achieved (equal to tEnd when the returned Status is Complete), the
// Status, and a nil error. On failure it returns (nil, tStart, Fail,
// ErrContractionFailed).
func Step(f field.Field, X []autodif.AutoDif, tStart, tEnd interval.Interval, opts ...Option) ([]autodif.AutoDif, interval.Interval, Status, error) {
	o := NewOptions(opts...)
	n := len(X)

	// Stage 1: compression.
	init0, basis := autodif.Compress(X)
	nc := len(init0)

	// Stage 2: tolerance.
	tolerance := machineEpsilon
	for i := range init0 {
		v := asInterval(init0[i].V)
		if t := v.Norm() * machineEpsilon; t > tolerance {
			tolerance = t
		}
		if t := v.Rad() * o.tol1; t > tolerance {
			tolerance = t
		}
		for j := range init0[i].D {
			d := asInterval(init0[i].D[j])
			if t := d.Norm() * machineEpsilon; t > tolerance {
				tolerance = t
			}
			if t := d.Rad() * o.tol1; t > tolerance {
				tolerance = t
			}
		}
	}

	psaCtx := psa.NewContext()
	newInitPSA := make([]psa.PSA, nc)
	for i := range init0 {
		newInitPSA[i] = psa.FromConstant(init0[i], psaCtx)
	}

	torg := psa.PSA{
		C:   []ring.Scalar{autodif.Constant(tStart, nc), autodif.Constant(interval.Point(1), nc)},
		Ctx: psaCtx,
	}

	// Stage 3: predictor.
	x := make([]psa.PSA, nc)
	copy(x, newInitPSA)
	for j := 0; j < o.order; j++ {
		t := psa.SetOrder(torg, j)
		y := f.Eval(toRingSlice(x), t)
		for i := range y {
			yi := psa.Integrate(y[i].(psa.PSA))
			yi = psa.SetOrder(yi, j+1)
			x[i] = newInitPSA[i].Add(yi).(psa.PSA)
		}
	}

	// Stage 4: autostep radius.
	radius := 0.0
	if o.autostep {
		nRad := 0
		for j := o.order; j >= 1; j-- {
			m := 0.0
			for i := range x {
				ad := x[i].C[j].(autodif.AutoDif)
				if v := math.Abs(asInterval(ad.V).Mid()); v > m {
					m = v
				}
				for _, d := range ad.D {
					if v := math.Abs(asInterval(d).Mid()); v > m {
						m = v
					}
				}
			}
			if m == 0 {
				continue
			}
			if rt := math.Pow(m, 1/float64(j)); rt > radius {
				radius = rt
			}
			nRad++
			if nRad == 2 {
				break
			}
		}
		if radius == 0 {
			radius = math.Inf(1)
		}
		radius = math.Pow(tolerance, 1/float64(o.order)) / radius
	}

	tOrder := psa.SetOrder(torg, o.order)

	restart := 0
	resized := false
	var end2, deltat interval.Interval
	var retVal Status
	var z, w []psa.PSA

	for {
		if o.autostep {
			v := tStart.Mid() + radius
			if v >= tEnd.Lo {
				end2 = tEnd
				retVal = Complete
			} else {
				end2 = interval.Point(v)
				retVal = Partial
			}
		} else {
			end2 = tEnd
			retVal = Complete
		}

		deltat = interval.Sub(end2, tStart)
		psaCtx.SetFixedOrder(o.order, interval.New(0, deltat.Hi))

		z = make([]psa.PSA, nc)
		copy(z, x)

		wRaw := f.Eval(toRingSlice(z), tOrder)
		w = make([]psa.PSA, nc)
		for i := range wRaw {
			wi := psa.Integrate(wRaw[i].(psa.PSA))
			wi = psa.SetOrder(wi, o.order)
			w[i] = newInitPSA[i].Add(wi).(psa.PSA)
		}

		// Stage 5: candidate inflation.
		raw := make([]float64, 0, nc*(nc+1))
		for i := range z {
			wTop := w[i].C[o.order].(autodif.AutoDif)
			zTop := z[i].C[o.order].(autodif.AutoDif)
			raw = append(raw, asInterval(wTop.V.Sub(zTop.V)).Norm())
			for j := range wTop.D {
				raw = append(raw, asInterval(wTop.D[j].Sub(zTop.D[j])).Norm())
			}
		}
		candidate := MakeCandidate(raw, o.candidateFloorRatio)

		k := 0
		for i := range z {
			zTop := z[i].C[o.order].(autodif.AutoDif)
			zTop.V = interval.Add(asInterval(zTop.V), interval.New(-candidate[k], candidate[k]))
			k++
			for j := range zTop.D {
				zTop.D[j] = interval.Add(asInterval(zTop.D[j]), interval.New(-candidate[k], candidate[k]))
				k++
			}
			z[i].C[o.order] = zTop
		}

		// Stage 6: one-shot resize feedback.
		if o.autostep && !resized {
			resized = true
			m := 0.0
			for i := range z {
				evalz := psa.Eval(z[i], autodif.Constant(deltat, nc)).(autodif.AutoDif)
				if dv := asInterval(evalz.V).Rad() - asInterval(init0[i].V).Rad(); dv > m {
					m = dv
				}
				for j := range evalz.D {
					if dv := asInterval(evalz.D[j]).Rad() - asInterval(init0[i].D[j]).Rad(); dv > m {
						m = dv
					}
				}
			}
			ratio := clamp(m/tolerance, ResizeRatioMin, ResizeRatioMax)
			radius /= math.Pow(ratio, 1/float64(o.order))
			continue
		}

		// Stage 7: contraction test, against the post-inflation z.
		wRaw2 := f.Eval(toRingSlice(z), tOrder)
		w = make([]psa.PSA, nc)
		for i := range wRaw2 {
			wi := psa.Integrate(wRaw2[i].(psa.PSA))
			wi = psa.SetOrder(wi, o.order)
			w[i] = newInitPSA[i].Add(wi).(psa.PSA)
		}

		flag := true
		for i := range z {
			wTop := w[i].C[o.order].(autodif.AutoDif)
			zTop := z[i].C[o.order].(autodif.AutoDif)
			wv, zv := asInterval(wTop.V), asInterval(zTop.V)
			if !(zv.Lo < wv.Lo && wv.Hi < zv.Hi) {
				flag = false
			}
			for j := range wTop.D {
				wd, zd := asInterval(wTop.D[j]), asInterval(zTop.D[j])
				if !(zd.Lo < wd.Lo && wd.Hi < zd.Hi) {
					flag = false
				}
			}
		}
		if flag {
			break
		}

		if !o.autostep || restart >= o.restartMax {
			return nil, tStart, Fail, ErrContractionFailed
		}
		radius *= 0.5
		restart++
	}

	// Stage 8: intersection refinement.
	for it := 0; it < o.iterMax; it++ {
		z = w
		wRaw := f.Eval(toRingSlice(z), tOrder)
		neww := make([]psa.PSA, nc)
		for i := range wRaw {
			wi := psa.Integrate(wRaw[i].(psa.PSA))
			wi = psa.SetOrder(wi, o.order)
			neww[i] = newInitPSA[i].Add(wi).(psa.PSA)
		}
		for i := range neww {
			wTop := neww[i].C[o.order].(autodif.AutoDif)
			zTop := z[i].C[o.order].(autodif.AutoDif)
			wTop.V = interval.Intersect(asInterval(wTop.V), asInterval(zTop.V))
			for j := range wTop.D {
				wTop.D[j] = interval.Intersect(asInterval(wTop.D[j]), asInterval(zTop.D[j]))
			}
			neww[i].C[o.order] = wTop
		}
		w = neww
	}

	// Stage 9: expand to the original basis and evaluate at the step.
	result := make([]autodif.AutoDif, n)
	for i := range w {
		coeffs := make([]ring.Scalar, o.order+1)
		for j := 0; j <= o.order; j++ {
			coeffs[j] = autodif.Expand(w[i].C[j].(autodif.AutoDif), basis, n)
		}
		wi := psa.PSA{C: coeffs, Ctx: psaCtx}
		result[i] = psa.Eval(wi, autodif.Constant(deltat, n)).(autodif.AutoDif)
	}

	achievedEnd := tEnd
	if retVal == Partial {
		achievedEnd = end2
	}
	return result, achievedEnd, retVal, nil
}
