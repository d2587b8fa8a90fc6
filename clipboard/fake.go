package clipboard

import "sync"

type Mem struct {
	mu      sync.Mutex
	content string
	copyErr error
}

func NewMem() *Mem { return &Mem{} }

// FailCopies makes subsequent Copy calls return err.
func (m *Mem) FailCopies(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.copyErr = err
}

func (m *Mem) Copy(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.copyErr != nil {
		return m.copyErr
	}
	m.content = text
	return nil
}

func (m *Mem) Read() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.content, nil
}

func (m *Mem) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content = ""
	return nil
}

// Set stores content directly, simulating a copy by another application.
func (m *Mem) Set(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content = text
}
