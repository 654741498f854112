// Package mvnorm - row fan-out shared by the distance and density stages.
//
// Rows are embarrassingly parallel: every worker only reads shared
// immutable inputs and writes a disjoint range of the output slice, so the
// only synchronization needed is the final join before results are read.
package mvnorm

import "sync"

// forEachChunk partitions [0, n) into one contiguous chunk per worker and
// runs fn on each chunk. workers must already be normalized (≥ 1, ≤ n);
// workers == 1 runs fn(0, n) on the calling goroutine with no scheduling
// overhead, which keeps the sequential path trivially deterministic.
//
// fn must not fail: all failure modes (shapes, factorizations) are
// detected in the single-threaded setup stage before the fan-out begins.
//
// Complexity: O(n) total work split across workers; O(workers) goroutines.
func forEachChunk(n, workers int, fn func(start, end int)) {
	if workers <= 1 {
		fn(0, n)

		return
	}

	// Ceiling division so the last chunk absorbs the remainder.
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
