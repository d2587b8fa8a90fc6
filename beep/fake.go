package beep

import "sync"

type MemPlayer struct {
	mu     sync.Mutex
	starts int
	stops  int
	errs   int
}

func NewMem() *MemPlayer { return &MemPlayer{} }

func (m *MemPlayer) PlayStart() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.starts++
}

func (m *MemPlayer) PlayStop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stops++
}

func (m *MemPlayer) PlayError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs++
}

func (m *MemPlayer) Starts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.starts
}

func (m *MemPlayer) Stops() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stops
}

func (m *MemPlayer) Errors() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errs
}
