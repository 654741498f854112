// Package mvnorm - configuration options and sentinel errors shared by the
// distance and density entry points.
package mvnorm

import "errors"

// Sentinel errors returned by Distances and Density.
var (
	// ErrNilInput indicates that the observation matrix, center vector or
	// covariance matrix argument is nil.
	ErrNilInput = errors.New("mvnorm: nil observation, center or covariance input")

	// ErrDimensionMismatch indicates that the center length or covariance
	// order does not match the observation column count. Detected before
	// any computation starts.
	ErrDimensionMismatch = errors.New("mvnorm: input dimensions disagree")

	// ErrNotPositiveDefinite indicates that the covariance matrix is
	// singular or indefinite: its Cholesky factorization failed, or an
	// eigenvalue is not strictly positive. The call fails as a whole.
	ErrNotPositiveDefinite = errors.New("mvnorm: covariance matrix is not positive definite")

	// ErrDecomposition indicates that the eigen-decomposition of the
	// covariance matrix failed to converge.
	ErrDecomposition = errors.New("mvnorm: covariance eigen-decomposition failed")
)

// Options configures the batch evaluation.
//
// Workers  – number of goroutines for the row fan-out. Values ≤ 0 are
//
//	treated as 1 (fully sequential); values above the row count
//	are clamped to the row count. Any value yields the same
//	numbers in the same row order - Workers is a throughput knob,
//	never a correctness knob.
//
// LogScale – Density only: if true, return log-densities verbatim instead
//
//	of exponentiating them. Distances ignores this field.
type Options struct {
	Workers  int
	LogScale bool
}

// DefaultOptions returns the sequential, linear-scale configuration.
//
// Defaults:
//   - Workers:  1     (no fan-out).
//   - LogScale: false (Density returns densities, not log-densities).
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// normWorkers resolves the effective worker count for n rows:
// non-positive values degrade to 1, and there is never a reason to spawn
// more workers than rows.
func normWorkers(workers, n int) int {
	if workers < 1 {
		workers = 1
	}
	if n > 0 && workers > n {
		workers = n
	}

	return workers
}
