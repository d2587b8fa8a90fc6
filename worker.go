package main

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"chirp/audio"
	"chirp/beep"
	"chirp/engine"
	"chirp/log"
)

const defaultQueueSize = 8

// transcriptionWorker drains recordings one at a time on a single goroutine,
// so inference never runs concurrently with itself and completion order
// matches submission order.
type transcriptionWorker struct {
	handle   *engine.Handle
	language string
	injectFn func(text string) error
	player   beep.Player
	sink     EventSink

	mu     sync.Mutex
	closed bool
	queue  chan []byte
	wg     sync.WaitGroup
	jobs   atomic.Int64
}

// Jobs returns the number of recordings processed so far.
func (w *transcriptionWorker) Jobs() int {
	return int(w.jobs.Load())
}

func newTranscriptionWorker(handle *engine.Handle, language string, injectFn func(string) error, player beep.Player, sink EventSink) *transcriptionWorker {
	return &transcriptionWorker{
		handle:   handle,
		language: language,
		injectFn: injectFn,
		player:   player,
		sink:     sink,
		queue:    make(chan []byte, defaultQueueSize),
	}
}

func (w *transcriptionWorker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for pcm := range w.queue {
			w.process(pcm)
			w.sink.QueueDepth(len(w.queue))
		}
	}()
}

// Submit never blocks. It reports false when the queue is full or the worker
// is closed; the caller decides how to surface the drop.
func (w *transcriptionWorker) Submit(pcm []byte) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return false
	}
	select {
	case w.queue <- pcm:
		w.sink.QueueDepth(len(w.queue))
		return true
	default:
		return false
	}
}

// Close drains the queue and waits for the in-flight job. Submits racing
// with shutdown are rejected rather than sent on the closed channel.
func (w *transcriptionWorker) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	close(w.queue)
	w.mu.Unlock()
	w.wg.Wait()
}

// process handles one recording. Errors are job-scoped: logged and surfaced,
// never fatal to the worker.
func (w *transcriptionWorker) process(pcm []byte) {
	if len(pcm) == 0 {
		log.Debugf("empty recording, skipping inference")
		return
	}
	w.jobs.Add(1)

	rec, err := w.handle.Acquire()
	if err != nil {
		log.Errorf("model load error: %v", err)
		w.player.PlayError()
		w.sink.Error("model load failed")
		return
	}
	defer w.handle.Release()

	audioDur := audio.Duration(len(pcm))
	start := time.Now()
	text, err := rec.Recognize(pcm, audio.SampleRate, w.language)
	inferMs := float64(time.Since(start).Milliseconds())
	if err != nil {
		log.Errorf("transcription error: %v", err)
		w.player.PlayError()
		w.sink.Error("transcription failed")
		return
	}

	log.TranscriptionStats(audioDur.Seconds(), inferMs, len(text))

	text = strings.TrimSpace(text)
	if text == "" {
		log.Info("no_speech")
		return
	}

	log.TranscriptionText(text)
	w.sink.Transcription(text)

	if err := w.injectFn(text); err != nil {
		log.Errorf("injection error: %v", err)
		w.player.PlayError()
		w.sink.Error("injection failed")
	}
}
