package inject

import "sync"

type FakePaster struct {
	mu    sync.Mutex
	modes []string
	err   error
}

func NewFakePaster() *FakePaster { return &FakePaster{} }

func (f *FakePaster) FailWith(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *FakePaster) Paste(mode string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.modes = append(f.modes, mode)
	return nil
}

// Pastes returns the modes of all successful paste calls in order.
func (f *FakePaster) Pastes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.modes...)
}
