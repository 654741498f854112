// Package mvnrand generates deterministic random inputs for the
// multivariate normal evaluator: mean vectors, positive-definite
// covariance matrices, and batches of samples drawn from N(mean, cov).
//
// Overview:
//
//   - New builds a seeded RNG with a fixed zero-seed policy, so property
//     tests, examples and benchmarks reproduce bit-for-bit across runs.
//   - Cov builds a covariance as AᵀA/D plus a diagonal ridge, which is
//     symmetric positive definite by construction for any Gaussian A.
//   - Sample draws observations through the Cholesky factor of the
//     covariance: x = mean + L·z with z standard normal.
//
// When to use:
//
//   - Feeding property tests ("distances are non-negative for any PD
//     covariance") with a fresh covariance per run, deterministically.
//   - Producing realistic benchmark workloads for cmd/mvnbench without
//     shipping fixture files.
//
// Concurrency:
//
//   - *rand.Rand is not goroutine-safe. Create one RNG per goroutine via
//     New with distinct seeds; do not share a single stream.
//
// Errors: generation is panic-free for valid shapes; Sample reports the
// evaluator's sentinels for mismatched or non-PD inputs, plus
// ErrSampleCount for a non-positive batch size.
package mvnrand
