// Package mvnorm - density combination on top of the distance stage.
//
// The per-row transform only needs the squared distance d[i] and two
// scalars derived once from the covariance: ln det Σ and D·ln(2π). The
// log-determinant is summed from eigenvalue logarithms rather than taken
// from a direct determinant, so ill-conditioned or high-dimensional
// covariances neither overflow nor underflow.
package mvnorm

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// log2Pi is ln(2π), the per-dimension term of the normalizing constant.
var log2Pi = math.Log(2 * math.Pi)

// Density evaluates the multivariate normal density (or log-density, when
// opts.LogScale is set) of every row of obs under N(mean, cov):
//
//	logf[i] = −(D·ln(2π) + ln det cov + d[i]) / 2
//
// with d[i] the squared Mahalanobis distance of row i. The linear-scale
// result is exp(logf[i]).
//
// Contracts:
//   - Same shape requirements as Distances; mean and cov are shared by
//     all rows and left unmodified.
//   - cov is consumed exactly twice: one Cholesky inversion inside the
//     distance stage and one eigen-decomposition here, both independent
//     of N.
//   - The returned slice has length N in input row order for any worker
//     count, and either the whole batch succeeds or the call fails with
//     no partial results.
//
// Edge cases: N == 0 returns an empty slice. D == 0 returns 0 per row in
// log scale and 1 per row in linear scale (empty-product convention).
//
// Errors: ErrNilInput, ErrDimensionMismatch, ErrNotPositiveDefinite,
// ErrDecomposition.
//
// Complexity: O(D³) setup + O(N·D²) across opts.Workers goroutines.
func Density(obs mat.Matrix, mean mat.Vector, cov mat.Symmetric, opts *Options) ([]float64, error) {
	dist, err := Distances(obs, mean, cov, opts)
	if err != nil {
		return nil, err
	}

	n := len(dist)
	res := make([]float64, n)
	if n == 0 {
		return res, nil
	}

	_, d := obs.Dims()
	logdet, err := logDet(cov, d)
	if err != nil {
		return nil, err
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	// Constant part of the exponent, shared by every row.
	lead := float64(d)*log2Pi + logdet

	forEachChunk(n, normWorkers(o.Workers, n), func(start, end int) {
		for i := start; i < end; i++ {
			lv := -0.5 * (lead + dist[i])
			if o.LogScale {
				res[i] = lv
			} else {
				res[i] = math.Exp(lv)
			}
		}
	})

	return res, nil
}

// logDet computes ln det cov as the sum of eigenvalue logarithms. Any
// eigenvalue ≤ 0 means the covariance is not positive definite and the
// log-determinant is undefined - reported, never propagated as NaN.
//
// Complexity: O(D³), once per Density call.
func logDet(cov mat.Symmetric, d int) (float64, error) {
	if d == 0 {
		// det of the empty matrix is 1.
		return 0, nil
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(cov, false); !ok {
		return 0, ErrDecomposition
	}

	logdet := 0.0
	for _, ev := range eig.Values(nil) {
		if ev <= 0 {
			return 0, ErrNotPositiveDefinite
		}
		logdet += math.Log(ev)
	}

	return logdet, nil
}
