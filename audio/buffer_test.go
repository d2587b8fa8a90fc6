package audio

import (
	"bytes"
	"sync"
	"testing"
)

func TestBufferAppendAndTakeAll(t *testing.T) {
	var b Buffer
	b.Append([]byte{1, 2})
	b.Append([]byte{3, 4})

	if got := b.Len(); got != 4 {
		t.Errorf("Len() = %d, want 4", got)
	}

	pcm := b.TakeAll()
	if !bytes.Equal(pcm, []byte{1, 2, 3, 4}) {
		t.Errorf("TakeAll() = %v, want [1 2 3 4]", pcm)
	}
	if b.Len() != 0 {
		t.Error("buffer not cleared after TakeAll")
	}
}

func TestBufferEmptyTakeAll(t *testing.T) {
	var b Buffer
	if pcm := b.TakeAll(); pcm != nil {
		t.Errorf("TakeAll() on empty buffer = %v, want nil", pcm)
	}
}

func TestBufferAppendEmpty(t *testing.T) {
	var b Buffer
	b.Append(nil)
	b.Append([]byte{})
	if b.Len() != 0 {
		t.Error("empty appends should not grow the buffer")
	}
}

func TestBufferReset(t *testing.T) {
	var b Buffer
	b.Append([]byte{9, 9})
	b.Reset()
	if b.Len() != 0 {
		t.Error("Reset did not clear buffer")
	}
}

// Concurrent appends against TakeAll must never tear a frame: every frame is
// either whole in some snapshot or not there at all.
func TestBufferConcurrentSnapshot(t *testing.T) {
	var b Buffer
	const writers = 4
	const frames = 200
	frame := []byte{0xAA, 0xBB}

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < frames; j++ {
				b.Append(frame)
			}
		}()
	}

	var total int
	done := make(chan struct{})
	go func() {
		defer close(done)
		wg.Wait()
	}()
	for {
		total += len(b.TakeAll())
		select {
		case <-done:
			total += len(b.TakeAll())
			if total != writers*frames*len(frame) {
				t.Errorf("lost or duplicated bytes: got %d, want %d", total, writers*frames*len(frame))
			}
			if total%len(frame) != 0 {
				t.Error("torn frame observed")
			}
			return
		default:
		}
	}
}

func TestDuration(t *testing.T) {
	// one second of 16kHz mono PCM16
	d := Duration(SampleRate * BytesPerSample)
	if d.Seconds() != 1.0 {
		t.Errorf("Duration = %v, want 1s", d)
	}
}
