package audio

import (
	"errors"
	"sync"
)

// FakeContext drives the capture contract in tests: each capture session
// delivers the configured PCM to the callback synchronously on Start.
type FakeContext struct {
	pcm      []byte
	startErr error
}

func NewFakeContext(pcm []byte) *FakeContext {
	return &FakeContext{pcm: pcm}
}

// FailStarts makes every capture Start fail, simulating a busy device.
func (f *FakeContext) FailStarts() {
	f.startErr = errors.New("fake capture device busy")
}

func (f *FakeContext) Devices() ([]DeviceInfo, error) {
	return []DeviceInfo{{ID: "fake0", Name: "fake"}}, nil
}

func (f *FakeContext) Close() {}

func (f *FakeContext) NewCapture(_ *DeviceInfo, _ CaptureConfig) (CaptureDevice, error) {
	return &FakeCapture{pcm: f.pcm, startErr: f.startErr}, nil
}

const fakeFrameBytes = 1024 * BytesPerSample

type FakeCapture struct {
	pcm      []byte
	startErr error

	mu      sync.Mutex
	cb      DataCallback
	started int
	stopped int
}

func (f *FakeCapture) SetCallback(cb DataCallback) {
	f.mu.Lock()
	f.cb = cb
	f.mu.Unlock()
}

func (f *FakeCapture) ClearCallback() {
	f.mu.Lock()
	f.cb = nil
	f.mu.Unlock()
}

func (f *FakeCapture) Start() error {
	if f.startErr != nil {
		return f.startErr
	}
	f.mu.Lock()
	f.started++
	cb := f.cb
	f.mu.Unlock()

	if cb == nil {
		return nil
	}
	for pos := 0; pos < len(f.pcm); pos += fakeFrameBytes {
		end := min(pos+fakeFrameBytes, len(f.pcm))
		chunk := make([]byte, end-pos)
		copy(chunk, f.pcm[pos:end])
		cb(chunk, uint32(len(chunk)/BytesPerSample))
	}
	return nil
}

func (f *FakeCapture) Stop() {
	f.mu.Lock()
	f.stopped++
	f.mu.Unlock()
}

func (f *FakeCapture) Close() {}

func (f *FakeCapture) DeviceName() string { return "fake" }

// Feed injects extra frames mid-session, as if the device callback fired.
func (f *FakeCapture) Feed(pcm []byte) {
	f.mu.Lock()
	cb := f.cb
	f.mu.Unlock()
	if cb != nil {
		cb(pcm, uint32(len(pcm)/BytesPerSample))
	}
}

// Starts reports how many times Start succeeded.
func (f *FakeCapture) Starts() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.started
}

// Stops reports how many times Stop was called.
func (f *FakeCapture) Stops() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}
