package engine

import (
	"context"
	"testing"
	"time"
)

func TestMonitorEvictsIdleHandle(t *testing.T) {
	loader := &FakeLoader{}
	h := NewHandle(loader, Config{}, 20*time.Millisecond)
	if _, err := h.Acquire(); err != nil {
		t.Fatal(err)
	}
	h.Release()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	mon := NewIdleMonitor(h, 10*time.Millisecond)
	go mon.Run(ctx)

	deadline := time.After(2 * time.Second)
	for h.Loaded() {
		select {
		case <-deadline:
			t.Fatal("monitor never evicted the idle handle")
		case <-time.After(5 * time.Millisecond):
		}
	}

	// Transparent reload after eviction.
	if _, err := h.Acquire(); err != nil {
		t.Fatal(err)
	}
	h.Release()
	if loader.Loads() != 2 {
		t.Errorf("loads = %d, want 2 (initial + reload)", loader.Loads())
	}
}

func TestMonitorStopsOnCancel(t *testing.T) {
	h := NewHandle(&FakeLoader{}, Config{}, time.Hour)
	mon := NewIdleMonitor(h, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		mon.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop on context cancel")
	}
}
