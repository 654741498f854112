// Package mvnrand - deterministic generation of means, positive-definite
// covariances and multivariate normal samples.
package mvnrand

import (
	"errors"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/mvn/mvnorm"
)

// ErrSampleCount indicates that a non-positive number of samples was
// requested from Sample.
var ErrSampleCount = errors.New("mvnrand: sample count must be positive")

// defaultSeed is the fixed "zero" seed used when callers pass seed == 0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed uint64 = 1

// covRidge is the diagonal shift added to the Gram matrix in Cov. It
// keeps the smallest eigenvalue bounded away from zero so the generated
// covariance stays invertible in float64 for any draw of A.
const covRidge = 1e-2

// New returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ defaultSeed; otherwise the seed is used verbatim.
// Same seed ⇒ identical streams across platforms.
//
// Complexity: O(1).
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Vec returns a length-dim vector with independent standard normal
// entries. dim must be ≥ 1.
//
// Complexity: O(dim).
func Vec(dim int, rng *rand.Rand) *mat.VecDense {
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}
	data := make([]float64, dim)
	for i := range data {
		data[i] = norm.Rand()
	}

	return mat.NewVecDense(dim, data)
}

// Cov returns a random dim×dim positive-definite covariance matrix,
// built as AᵀA/dim + covRidge·I with A a dim×dim standard normal draw.
// The Gram form guarantees symmetry and non-negative eigenvalues; the
// ridge makes them strictly positive. dim must be ≥ 1.
//
// Complexity: O(dim³).
func Cov(dim int, rng *rand.Rand) *mat.SymDense {
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}
	a := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			a.Set(i, j, norm.Rand())
		}
	}

	var gram mat.Dense
	gram.Mul(a.T(), a)

	cov := mat.NewSymDense(dim, nil)
	scale := 1 / float64(dim)
	for i := 0; i < dim; i++ {
		for j := i; j < dim; j++ {
			v := gram.At(i, j) * scale
			if i == j {
				v += covRidge
			}
			cov.SetSym(i, j, v)
		}
	}

	return cov
}

// Sample draws n observations from N(mean, cov) and returns them as the
// rows of an n×D matrix. Draws go through the lower Cholesky factor L of
// cov: x = mean + L·z with z a vector of independent standard normals.
//
// Contracts:
//   - n ≥ 1; mean length and cov order must agree.
//   - cov must be positive definite (it is factorized here, so a bad
//     covariance is reported, not sampled from).
//
// Errors: ErrSampleCount, mvnorm.ErrDimensionMismatch,
// mvnorm.ErrNotPositiveDefinite.
//
// Complexity: O(D³) for the factorization + O(n·D²) for the draws.
func Sample(n int, mean mat.Vector, cov mat.Symmetric, rng *rand.Rand) (*mat.Dense, error) {
	if n < 1 {
		return nil, ErrSampleCount
	}
	d := cov.SymmetricDim()
	if mean.Len() != d {
		return nil, mvnorm.ErrDimensionMismatch
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(cov); !ok {
		return nil, mvnorm.ErrNotPositiveDefinite
	}
	var l mat.TriDense
	chol.LTo(&l)

	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}
	z := mat.NewVecDense(d, nil)
	var x mat.VecDense

	out := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			z.SetVec(j, norm.Rand())
		}
		x.MulVec(&l, z)
		for j := 0; j < d; j++ {
			out.Set(i, j, mean.AtVec(j)+x.AtVec(j))
		}
	}

	return out, nil
}
