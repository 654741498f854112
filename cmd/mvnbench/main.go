// Command mvnbench times the batched multivariate normal evaluator across
// worker counts on a synthetic, deterministically generated workload, and
// prints a comparison table.
//
// Usage:
//
//	mvnbench --rows 200000 --dim 16 --workers 1,2,4,8 --reps 7 --seed 42
//
// For every worker count the evaluator runs --reps times; the table
// reports mean/median/min wall time and the speedup of the mean relative
// to the first listed worker count. Before timing, each worker count is
// checked once against the sequential result so a scheduling bug cannot
// hide behind a good-looking number.
package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mvn/mvnorm"
	"github.com/katalvlaran/mvn/mvnrand"
)

// equalityTol bounds the per-row deviation allowed between a parallel run
// and the sequential reference.
const equalityTol = 1e-9

type benchConfig struct {
	rows     int
	dim      int
	reps     int
	seed     uint64
	logScale bool
	workers  []int
}

func main() {
	var cfg benchConfig

	cmd := &cobra.Command{
		Use:   "mvnbench",
		Short: "Benchmark the batched multivariate normal evaluator",
		Long: "mvnbench generates a deterministic random workload (mean, positive-definite\n" +
			"covariance and observation rows), evaluates the multivariate normal density\n" +
			"over it at each requested worker count, and prints timing statistics.",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runBench(cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.rows, "rows", 100_000, "number of observation rows")
	flags.IntVar(&cfg.dim, "dim", 16, "dimensionality of each observation")
	flags.IntVar(&cfg.reps, "reps", 5, "timed repetitions per worker count")
	flags.Uint64Var(&cfg.seed, "seed", 0, "RNG seed (0 = fixed default)")
	flags.BoolVar(&cfg.logScale, "log", false, "evaluate log-densities instead of densities")
	flags.IntSliceVar(&cfg.workers, "workers", []int{1, 2, 4, 8}, "worker counts to compare")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runBench(cfg benchConfig) error {
	if cfg.rows < 1 || cfg.dim < 1 || cfg.reps < 1 || len(cfg.workers) == 0 {
		return fmt.Errorf("mvnbench: rows, dim, reps and workers must all be positive")
	}

	rng := mvnrand.New(cfg.seed)
	mean := mvnrand.Vec(cfg.dim, rng)
	cov := mvnrand.Cov(cfg.dim, rng)
	obs, err := mvnrand.Sample(cfg.rows, mean, cov, rng)
	if err != nil {
		return fmt.Errorf("mvnbench: workload generation: %w", err)
	}

	fmt.Printf("rows=%d dim=%d reps=%d log=%v\n\n", cfg.rows, cfg.dim, cfg.reps, cfg.logScale)

	// Sequential reference: correctness anchor and speedup baseline.
	ref, err := evaluate(obs, mean, cov, 1, cfg.logScale)
	if err != nil {
		return err
	}

	var baselineMean float64
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"workers", "mean ms", "median ms", "min ms", "speedup"})

	for _, workers := range cfg.workers {
		res, err := evaluate(obs, mean, cov, workers, cfg.logScale)
		if err != nil {
			return err
		}
		if diff := maxAbsDiff(ref, res); diff > equalityTol {
			return fmt.Errorf("mvnbench: workers=%d deviates from sequential result by %g", workers, diff)
		}

		ms, err := timeReps(obs, mean, cov, workers, cfg.logScale, cfg.reps)
		if err != nil {
			return err
		}

		meanMs, _ := stats.Mean(ms)
		medianMs, _ := stats.Median(ms)
		minMs, _ := stats.Min(ms)
		if workers == cfg.workers[0] {
			baselineMean = meanMs
		}

		table.Append([]string{
			strconv.Itoa(workers),
			fmt.Sprintf("%.2f", meanMs),
			fmt.Sprintf("%.2f", medianMs),
			fmt.Sprintf("%.2f", minMs),
			fmt.Sprintf("%.2fx", baselineMean/meanMs),
		})
	}
	table.Render()

	return nil
}

// evaluate runs one Density pass with the given worker count.
func evaluate(obs *mat.Dense, mean *mat.VecDense, cov *mat.SymDense, workers int, logScale bool) ([]float64, error) {
	opts := mvnorm.DefaultOptions()
	opts.Workers = workers
	opts.LogScale = logScale

	res, err := mvnorm.Density(obs, mean, cov, &opts)
	if err != nil {
		return nil, fmt.Errorf("mvnbench: workers=%d: %w", workers, err)
	}

	return res, nil
}

// timeReps measures reps full evaluations and returns wall times in ms.
func timeReps(obs *mat.Dense, mean *mat.VecDense, cov *mat.SymDense, workers int, logScale bool, reps int) ([]float64, error) {
	ms := make([]float64, 0, reps)
	for i := 0; i < reps; i++ {
		start := time.Now()
		if _, err := evaluate(obs, mean, cov, workers, logScale); err != nil {
			return nil, err
		}
		ms = append(ms, float64(time.Since(start).Microseconds())/1000)
	}

	return ms, nil
}

// maxAbsDiff returns the largest per-row absolute deviation between two
// result vectors of equal length.
func maxAbsDiff(a, b []float64) float64 {
	worst := 0.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > worst {
			worst = d
		}
	}

	return worst
}
