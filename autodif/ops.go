package autodif

import "github.com/kvnumerics/kvgo/ring"

// Compress removes gradient coordinates that are identically zero
// across every entry of xs, keeping per-step work proportional to the
// number of coordinates that actually matter instead of the full
// declared dimension (SPEC_FULL.md §4.3). It returns the compressed
// vector and the basis (the original index each compressed column
// came from); Expand reverses the transformation.
//
// Unlike the source material's dense "save" basis matrix, the basis
// here is a plain index slice: the transformation compress/expand
// perform is always a coordinate projection (drop some columns, keep
// the rest in order), never a general linear change of basis, so a
// matrix is unnecessary overhead.
func Compress(xs []AutoDif) ([]AutoDif, []int) {
	if len(xs) == 0 {
		return xs, nil
	}
	n := xs[0].dim()
	keep := make([]int, 0, n)
	for j := 0; j < n; j++ {
		used := false
		for _, x := range xs {
			if !x.D[j].IsZero() {
				used = true
				break
			}
		}
		if used {
			keep = append(keep, j)
		}
	}

	out := make([]AutoDif, len(xs))
	for i, x := range xs {
		d := make([]ring.Scalar, len(keep))
		for k, j := range keep {
			d[k] = x.D[j]
		}
		out[i] = AutoDif{V: x.V, D: d}
	}
	return out, keep
}

// Expand reverses Compress: x's compressed gradient is scattered back
// into a zero-padded gradient of the original dimension origN, using
// the basis produced by Compress.
func Expand(x AutoDif, basis []int, origN int) AutoDif {
	d := zeroGradient(x.V, origN)
	for k, j := range basis {
		d[j] = x.D[k]
	}
	return AutoDif{V: x.V, D: d}
}

// Split extracts the plain values and the Jacobian (row i = gradient of
// xs[i]) from a vector of AutoDif, realising the "split(v) extracts
// (values, Jacobian matrix)" operation of SPEC_FULL.md §4.3.
func Split(xs []AutoDif) (values []ring.Scalar, jacobian [][]ring.Scalar) {
	values = make([]ring.Scalar, len(xs))
	jacobian = make([][]ring.Scalar, len(xs))
	for i, x := range xs {
		values[i] = x.V
		row := make([]ring.Scalar, x.dim())
		copy(row, x.D)
		jacobian[i] = row
	}
	return values, jacobian
}
