package kernel

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestSerialExecutorRunsInline(t *testing.T) {
	exec := NewSerialExecutor()
	var ran atomic.Bool
	if err := exec.Post(func() error {
		ran.Store(true)
		return nil
	}); err != nil {
		t.Fatalf("Post: %v", err)
	}
	if !ran.Load() {
		t.Fatalf("Serial.Post should run the work unit before returning")
	}
	if err := exec.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}
}

func TestSerialExecutorSyncSurfacesError(t *testing.T) {
	exec := NewSerialExecutor()
	boom := errors.New("boom")
	exec.Post(func() error { return boom })
	if err := exec.Sync(); !errors.Is(err, boom) {
		t.Errorf("Sync() = %v, want %v", err, boom)
	}
	// Sync resets captured errors.
	if err := exec.Sync(); err != nil {
		t.Errorf("second Sync() should be clean, got %v", err)
	}
}

func TestPoolExecutorCompletesAllPostedWork(t *testing.T) {
	exec := NewPoolExecutor(WithWorkers(4))
	var n atomic.Int64
	const units = 200
	for i := 0; i < units; i++ {
		if err := exec.Post(func() error {
			n.Add(1)
			return nil
		}); err != nil {
			t.Fatalf("Post: %v", err)
		}
	}
	if err := exec.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if got := n.Load(); got != units {
		t.Errorf("completed %d units, want %d", got, units)
	}
}

func TestPoolExecutorAggregatesFirstError(t *testing.T) {
	exec := NewPoolExecutor(WithWorkers(4))
	first := errors.New("first")
	for i := 0; i < 8; i++ {
		i := i
		exec.Post(func() error {
			if i == 3 {
				return first
			}
			return nil
		})
	}
	err := exec.Sync()
	if err == nil {
		t.Fatalf("expected an aggregated error")
	}
	if !errors.Is(err, first) {
		t.Errorf("Sync() = %v, want %v", err, first)
	}
}

func TestPoolExecutorRejectsPostAfterClose(t *testing.T) {
	pool := NewPoolExecutor(WithWorkers(2))
	pool.Close()
	err := pool.Post(func() error { return nil })
	if !errors.Is(err, ErrPoolShutDown) {
		t.Errorf("Post after Close = %v, want %v", err, ErrPoolShutDown)
	}
}

func TestPoolExecutorSyncResetsCounters(t *testing.T) {
	exec := NewPoolExecutor(WithWorkers(2))
	exec.Post(func() error { return nil })
	if err := exec.Sync(); err != nil {
		t.Fatalf("first Sync: %v", err)
	}
	// A second round with no posted work should return immediately.
	if err := exec.Sync(); err != nil {
		t.Fatalf("second Sync: %v", err)
	}
}
