package audio

import "sync"

// Buffer accumulates PCM16 frames for one recording session. The capture
// callback appends under the lock; TakeAll hands the whole recording to the
// caller and clears the buffer in the same critical section, so a frame
// arriving around stop time is either in the snapshot or dropped whole,
// never duplicated.
type Buffer struct {
	mu   sync.Mutex
	data []byte
}

func (b *Buffer) Append(p []byte) {
	if len(p) == 0 {
		return
	}
	b.mu.Lock()
	b.data = append(b.data, p...)
	b.mu.Unlock()
}

func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// TakeAll returns the captured PCM and resets the buffer. Snapshot and clear
// are one atomic step. An empty recording returns nil.
func (b *Buffer) TakeAll() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	data := b.data
	b.data = nil
	return data
}

// Reset discards any frames left over from an aborted session.
func (b *Buffer) Reset() {
	b.mu.Lock()
	b.data = nil
	b.mu.Unlock()
}
