package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// FakeLoader hands out a fresh FakeRecognizer per load so tests can tell
// reloads apart.
type FakeLoader struct {
	Text  string
	Err   error // returned by Load
	Delay time.Duration

	loads atomic.Int32
}

func (l *FakeLoader) Load(cfg Config) (Recognizer, error) {
	if l.Err != nil {
		return nil, l.Err
	}
	l.loads.Add(1)
	return &FakeRecognizer{Text: l.Text, Delay: l.Delay}, nil
}

func (l *FakeLoader) Loads() int { return int(l.loads.Load()) }

type FakeRecognizer struct {
	Text  string
	Err   error
	Delay time.Duration

	mu     sync.Mutex
	calls  int
	closed bool
}

func (f *FakeRecognizer) Name() string { return "fake" }

func (f *FakeRecognizer) Recognize(pcm []byte, sampleRate int, lang string) (string, error) {
	if f.Delay > 0 {
		time.Sleep(f.Delay)
	}
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.Err != nil {
		return "", f.Err
	}
	return f.Text, nil
}

func (f *FakeRecognizer) Close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
}

func (f *FakeRecognizer) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *FakeRecognizer) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}
