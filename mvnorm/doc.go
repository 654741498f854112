// Package mvnorm evaluates the multivariate normal distribution for a
// batch of observation rows against one shared mean vector and one shared
// covariance matrix: squared Mahalanobis distances per row, and the
// density (or log-density) per row built on top of them.
//
// Overview:
//
//   - Distances computes d[i] = (X[i] − c)ᵀ Σ⁻¹ (X[i] − c) for every row
//     of an N×D observation matrix. The covariance Σ is factorized and
//     inverted exactly once; each row then costs one quadratic form.
//   - Density combines the distances with two covariance-derived scalars
//     (ln det Σ via eigenvalues, and D·ln(2π)) into the per-row
//     log-density −(D·ln(2π) + ln det Σ + d[i]) / 2, exponentiating the
//     result unless log-scale output is requested.
//
// When to use:
//
//   - Scoring many samples under one fitted Gaussian (clustering E-steps,
//     anomaly scores, likelihood ratios) where re-deriving Σ⁻¹ per sample
//     would dominate the cost.
//   - Any place a scale- and correlation-aware distance to a common
//     center is needed instead of plain Euclidean distance.
//
// Key properties:
//
//   - One-time setup: a single Cholesky factorization + inversion for the
//     distance stage, a single eigen-decomposition for the log-determinant.
//     Both are delegated to gonum; nothing here hand-rolls decompositions.
//   - Row-parallel: rows are independent, so Options.Workers fans the row
//     loop out over goroutines writing to disjoint output slots. Output
//     row i always corresponds to input row i, and any worker count
//     produces the same numbers as the sequential run.
//   - Log-space combination: the normalizing term is assembled from
//     logarithms, so ill-conditioned or high-dimensional covariances do
//     not overflow a direct determinant.
//
// Performance and complexity:
//
//   - Setup: O(D³) for the factorizations, once per call.
//   - Per row: O(D²) for the quadratic form, O(1) for the combine step.
//   - Memory: O(D²) for the precision matrix plus O(D) scratch per worker.
//
// Error handling (sentinel errors):
//
//   - ErrNilInput:            an observation, center or covariance input is nil.
//   - ErrDimensionMismatch:   center length or covariance order disagrees
//     with the observation column count.
//   - ErrNotPositiveDefinite: Σ failed its Cholesky factorization or has a
//     non-positive eigenvalue. The whole call fails; no partial results.
//   - ErrDecomposition:       the eigen-decomposition did not converge.
//
// A worker count ≤ 0 is not an error: it degrades to sequential execution.
package mvnorm
