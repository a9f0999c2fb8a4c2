package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/practice-drill/backend/internal/worker"
)

func TestPool_RunsAllJobs(t *testing.T) {
	pool := worker.NewPool[int](3, 10)
	defer pool.Close()

	for i := 1; i <= 5; i++ {
		n := i
		pool.Submit(string(rune('a'+i-1)), func() int { return n * n })
	}

	got := make(map[string]int)
	for i := 0; i < 5; i++ {
		r := <-pool.Results()
		got[r.JobID] = r.Output
	}

	want := map[string]int{"a": 1, "b": 4, "c": 9, "d": 16, "e": 25}
	for id, v := range want {
		if got[id] != v {
			t.Errorf("job %s: expected %d, got %d", id, v, got[id])
		}
	}
}

func TestPool_Collect(t *testing.T) {
	pool := worker.NewPool[string](2, 3)
	defer pool.Close()

	pool.Submit("bank", func() string { return "loaded" })
	pool.Submit("perf", func() string { return "read" })

	got, err := pool.Collect(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got["bank"] != "loaded" || got["perf"] != "read" {
		t.Errorf("unexpected outputs: %v", got)
	}

	// Nothing left to wait for.
	again, err := pool.Collect(context.Background())
	if err != nil || len(again) != 0 {
		t.Errorf("expected an empty second collect, got %v, %v", again, err)
	}
}

func TestPool_CollectStopsOnCancel(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	pool := worker.NewPool[int](2, 2)
	defer pool.Close()

	pool.Submit("fast", func() int { return 1 })
	pool.Submit("slow", func() int { <-release; return 2 })

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	got, err := pool.Collect(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got %v", err)
	}
	if got["fast"] != 1 {
		t.Errorf("expected the fast job to be collected, got %v", got)
	}
	if _, ok := got["slow"]; ok {
		t.Error("expected the slow job to be missing")
	}
}
