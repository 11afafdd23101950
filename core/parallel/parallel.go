// Package parallel provides chunked row parallelism for matrix construction.
package parallel

import (
	"runtime"
	"sync"
)

// Run splits items across the available CPU cores and calls fn with each
// half-open range [start, end).
func Run(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	workers := runtime.NumCPU()
	if workers > items {
		workers = items
	}
	chunk := (items + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < items; start += chunk {
		end := start + chunk
		if end > items {
			end = items
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// RunWithThreshold runs fn sequentially over the whole range when items is at
// or below threshold, and in parallel otherwise. Small inputs are not worth
// the goroutine overhead.
func RunWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Run(items, fn)
}
