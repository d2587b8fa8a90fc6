package engine

import (
	"sync"
	"time"

	"chirp/log"
)

// Handle owns at most one loaded Recognizer plus its last-access timestamp.
// One mutex covers load, unload, and timestamp reads so the idle check and
// the unload are a single critical section.
type Handle struct {
	loader    Loader
	cfg       Config
	idleAfter time.Duration // <=0 disables eviction

	mu         sync.Mutex
	rec        Recognizer
	lastAccess time.Time
	busy       bool
}

func NewHandle(loader Loader, cfg Config, idleAfter time.Duration) *Handle {
	return &Handle{
		loader:     loader,
		cfg:        cfg,
		idleAfter:  idleAfter,
		lastAccess: time.Now(),
	}
}

// Acquire returns the live recognizer, loading it synchronously if it was
// evicted. It touches the last-access timestamp and marks the handle busy
// until Release, which keeps the idle monitor from unloading mid-inference.
func (h *Handle) Acquire() (Recognizer, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rec == nil {
		start := time.Now()
		rec, err := h.loader.Load(h.cfg)
		if err != nil {
			return nil, err
		}
		h.rec = rec
		log.ModelLoaded(h.cfg.ModelName, float64(time.Since(start).Milliseconds()))
	}

	h.lastAccess = time.Now()
	h.busy = true
	return h.rec, nil
}

// Release marks the job done and touches the timestamp again, so the idle
// clock starts after inference completes, not when it started.
func (h *Handle) Release() {
	h.mu.Lock()
	h.busy = false
	h.lastAccess = time.Now()
	h.mu.Unlock()
}

func (h *Handle) Loaded() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rec != nil
}

// EvictIfIdle unloads the recognizer if it has been idle past the threshold.
// The idle duration is re-checked under the lock immediately before
// unloading, so an acquire racing the monitor always wins.
func (h *Handle) EvictIfIdle(now time.Time) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rec == nil || h.idleAfter <= 0 || h.busy {
		return false
	}
	idle := now.Sub(h.lastAccess)
	if idle <= h.idleAfter {
		return false
	}

	h.rec.Close()
	h.rec = nil
	log.ModelUnloaded(idle.Seconds())
	return true
}

// EvictionEnabled reports whether the idle monitor has anything to do.
func (h *Handle) EvictionEnabled() bool {
	return h.idleAfter > 0
}

func (h *Handle) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rec != nil {
		h.rec.Close()
		h.rec = nil
	}
}
