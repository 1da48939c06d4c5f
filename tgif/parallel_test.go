package tgif

import (
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"testing"
)

func TestEffectiveWorkers(t *testing.T) {
	if got := effectiveWorkers(4); got != 4 {
		t.Errorf("effectiveWorkers(4) = %d", got)
	}
	if got := effectiveWorkers(0); got != runtime.GOMAXPROCS(0) {
		t.Errorf("effectiveWorkers(0) = %d, want GOMAXPROCS", got)
	}
	if got := effectiveWorkers(-3); got != runtime.GOMAXPROCS(0) {
		t.Errorf("effectiveWorkers(-3) = %d, want GOMAXPROCS", got)
	}
}

func TestForEachChunkVisitsAllOnce(t *testing.T) {
	for _, workers := range []int{1, 2, 8, 100} {
		const n = 57
		var counts [n]int32
		err := forEachChunk(n, workers, func(i int) error {
			atomic.AddInt32(&counts[i], 1)
			return nil
		})
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		for i, c := range counts {
			if c != 1 {
				t.Errorf("workers=%d: item %d processed %d times", workers, i, c)
			}
		}
	}
}

func TestForEachChunkIndexedResults(t *testing.T) {
	const n = 64
	results := make([]int, n)
	err := forEachChunk(n, 8, func(i int) error {
		results[i] = i * i
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range results {
		if r != i*i {
			t.Errorf("slot %d holds %d, want %d", i, r, i*i)
		}
	}
}

func TestForEachChunkFirstError(t *testing.T) {
	boom := errors.New("boom")
	for _, workers := range []int{1, 4} {
		err := forEachChunk(32, workers, func(i int) error {
			if i == 17 {
				return fmt.Errorf("item %d: %w", i, boom)
			}
			return nil
		})
		if !errors.Is(err, boom) {
			t.Errorf("workers=%d: got %v, want wrapped boom", workers, err)
		}
	}
}

func TestForEachChunkAbandonsAfterFailure(t *testing.T) {
	// With a single worker the failure must stop all later items.
	var visited int32
	err := forEachChunk(100, 1, func(i int) error {
		atomic.AddInt32(&visited, 1)
		if i == 3 {
			return errors.New("stop")
		}
		return nil
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if visited != 4 {
		t.Errorf("visited %d items after failure at item 3, want 4", visited)
	}
}

func TestForEachChunkZeroItems(t *testing.T) {
	called := false
	if err := forEachChunk(0, 8, func(i int) error { called = true; return nil }); err != nil {
		t.Fatal(err)
	}
	if called {
		t.Error("fn called for zero items")
	}
}
