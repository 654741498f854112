// Package mvn is a batched evaluator for the multivariate normal
// distribution — squared Mahalanobis distances and (log-)densities for
// many observation rows against one mean and covariance, with an
// optional worker fan-out over the rows.
//
// 🚀 What is mvn?
//
//	A small, focused library for the one expensive question that keeps
//	coming up in clustering, anomaly detection and likelihood code:
//	  • given N observation rows, one center and one covariance metric,
//	    how far is every row from the center, and how probable is it?
//
// ✨ Why choose mvn?
//
//   - One-time setup – the covariance is inverted and decomposed exactly
//     once, no matter how many rows you evaluate
//   - Stable by construction – log-determinant via eigenvalues, densities
//     combined in log space
//   - Honest failures – a singular or indefinite covariance is a reported
//     error, never a silent NaN
//   - Scales sideways – rows are independent; pick a worker count and the
//     fan-out takes care of the rest, with identical numerics at any count
//
// Under the hood, everything is organized under three subpackages:
//
//	mvnorm/       — squared Mahalanobis distances & (log-)density per row
//	mvnrand/      — deterministic random covariances, means & MVN samples
//	cmd/mvnbench/ — timing harness comparing worker counts
//
// Quick sketch:
//
//	d[i]      = (X[i] − μ)ᵀ Σ⁻¹ (X[i] − μ)
//	logf[i]   = −(D·ln(2π) + ln det Σ + d[i]) / 2
//
// Dive into each package's doc.go for contracts, complexity and examples.
//
//	go get github.com/katalvlaran/mvn/mvnorm
package mvn
