package tgif

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// effectiveWorkers returns the number of workers to use.
// n <= 0 means runtime.GOMAXPROCS(0).
func effectiveWorkers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// forEachChunk runs fn(i) for i in [0, n) across at most workers
// goroutines. Work is partitioned into contiguous index ranges and callers
// store results into pre-sized indexed slots, so completion order never
// affects output order.
//
// The first error wins; once a worker fails, in-flight workers abandon
// their remaining items and forEachChunk returns that single error after
// all workers have stopped. Callers must not observe partial results when
// an error is returned.
func forEachChunk(n, workers int, fn func(i int) error) error {
	workers = effectiveWorkers(workers)

	// Not worth fanning out.
	if workers == 1 || n <= 1 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
		failed   atomic.Bool
	)

	grain := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * grain
		end := start + grain
		if end > n {
			end = n
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				if failed.Load() {
					return
				}
				if err := fn(i); err != nil {
					errOnce.Do(func() { firstErr = err })
					failed.Store(true)
					return
				}
			}
		}(start, end)
	}

	wg.Wait()
	return firstErr
}
