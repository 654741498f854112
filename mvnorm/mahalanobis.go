// Package mvnorm - squared Mahalanobis distances for a batch of rows.
//
// This file implements the centering-and-metric stage: subtract the shared
// center from every observation row, whiten by the precision matrix Σ⁻¹,
// and reduce each row to a single scalar quadratic form.
package mvnorm

import (
	"gonum.org/v1/gonum/mat"
)

// Distances computes the squared Mahalanobis distance of every row of obs
// to center under the covariance metric cov:
//
//	d[i] = (obs[i] − center)ᵀ · cov⁻¹ · (obs[i] − center)
//
// Contracts:
//   - obs is N×D; center has length D; cov is D×D symmetric positive
//     definite. Shapes are validated up front; positive definiteness is
//     detected by the factorization, not assumed silently.
//   - cov is factorized and inverted exactly once per call and the
//     precision matrix is reused for all N rows.
//   - The returned slice has length N and d[i] always belongs to row i,
//     regardless of opts.Workers. All inputs are left unmodified.
//
// Edge cases: N == 0 or D == 0 return a slice of zeros of length N, not
// an error. A singular or indefinite cov returns ErrNotPositiveDefinite.
//
// Errors: ErrNilInput, ErrDimensionMismatch, ErrNotPositiveDefinite.
//
// Complexity: O(D³) once for the factorization + O(N·D²) for the rows,
// the row term split across opts.Workers goroutines.
func Distances(obs mat.Matrix, center mat.Vector, cov mat.Symmetric, opts *Options) ([]float64, error) {
	if obs == nil || center == nil || cov == nil {
		return nil, ErrNilInput
	}

	n, d := obs.Dims()
	if center.Len() != d || cov.SymmetricDim() != d {
		return nil, ErrDimensionMismatch
	}

	dist := make([]float64, n)
	if n == 0 || d == 0 {
		// Nothing to measure; the trivial result, not a failure.
		return dist, nil
	}

	prec, err := precision(cov)
	if err != nil {
		return nil, err
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	forEachChunk(n, normWorkers(o.Workers, n), func(start, end int) {
		// Per-worker scratch: one centered row, reused across the chunk.
		buf := make([]float64, d)
		e := mat.NewVecDense(d, buf)
		for i := start; i < end; i++ {
			mat.Row(buf, i, obs)
			for j := 0; j < d; j++ {
				buf[j] -= center.AtVec(j)
			}
			// Quadratic form eᵀ Σ⁻¹ e; writes only the disjoint slot i.
			dist[i] = mat.Inner(e, prec, e)
		}
	})

	return dist, nil
}

// precision inverts a positive-definite covariance via its Cholesky
// factorization. A failed factorization is the positive-definiteness
// check: there is no separate, weaker probe.
//
// Complexity: O(D³).
func precision(cov mat.Symmetric) (*mat.SymDense, error) {
	var chol mat.Cholesky
	if ok := chol.Factorize(cov); !ok {
		return nil, ErrNotPositiveDefinite
	}

	var prec mat.SymDense
	if err := chol.InverseTo(&prec); err != nil {
		// Factorized but numerically too ill-conditioned to invert.
		return nil, ErrNotPositiveDefinite
	}

	return &prec, nil
}
