package mvnorm_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mvn/mvnorm"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDistances
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three 2-D points measured against the center (1,2) under the identity
//	covariance, where the Mahalanobis distance is just the squared
//	Euclidean distance.
//
// Use case:
//
//	Quick sanity checks and any situation where features are already
//	decorrelated and unit-scaled.
//
// Complexity: O(D³) setup + O(N·D²) for the rows.
func ExampleDistances() {
	obs := mat.NewDense(3, 2, []float64{
		3, 3,
		1, 2,
		-1, 0,
	})
	center := mat.NewVecDense(2, []float64{1, 2})
	eye := mat.NewSymDense(2, []float64{1, 0, 0, 1})

	opts := mvnorm.DefaultOptions()
	dist, err := mvnorm.Distances(obs, center, eye, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.0f %.0f %.0f\n", dist[0], dist[1], dist[2])
	// Output:
	// 5 0 8
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDensity
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The standard normal density (D=1, mean 1, unit variance) evaluated at
//	0, 1 and 2 - i.e. one standard deviation below the mean, at the mean,
//	and one above.
//
// Use case:
//
//	Scoring a batch of scalar observations under a fitted Gaussian.
//
// Complexity: O(D³) setup + O(N·D²) for the rows.
func ExampleDensity() {
	obs := mat.NewDense(3, 1, []float64{0, 1, 2})
	mean := mat.NewVecDense(1, []float64{1})
	cov := mat.NewSymDense(1, []float64{1})

	opts := mvnorm.DefaultOptions()
	res, err := mvnorm.Density(obs, mean, cov, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.4f %.4f %.4f\n", res[0], res[1], res[2])
	// Output:
	// 0.2420 0.3989 0.2420
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDensity_logScale
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Same standard normal batch, but asking for log-densities and a
//	4-worker fan-out. The numbers are identical to the sequential run;
//	only the wall time changes.
func ExampleDensity_logScale() {
	obs := mat.NewDense(3, 1, []float64{0, 1, 2})
	mean := mat.NewVecDense(1, []float64{1})
	cov := mat.NewSymDense(1, []float64{1})

	opts := mvnorm.DefaultOptions()
	opts.LogScale = true
	opts.Workers = 4

	res, err := mvnorm.Density(obs, mean, cov, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.4f %.4f %.4f\n", res[0], res[1], res[2])
	// Output:
	// -1.4189 -0.9189 -1.4189
}
