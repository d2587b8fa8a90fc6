package main

import (
	"encoding/binary"
	"math"
	"sync"
	"time"

	"chirp/audio"
	"chirp/beep"
	"chirp/log"
)

type recState int

const (
	stateIdle recState = iota
	stateRecording
)

// orchestrator is the toggle state machine. One mutex serializes all
// transitions; it is held only for the fast start/stop work, never across
// inference.
type orchestrator struct {
	capture audio.CaptureDevice
	buffer  *audio.Buffer
	worker  *transcriptionWorker
	player  beep.Player
	sink    EventSink
	maxDur  time.Duration // <=0 disables the safety timer

	mu       sync.Mutex
	state    recState
	session  int
	maxTimer *time.Timer
}

func newOrchestrator(capture audio.CaptureDevice, worker *transcriptionWorker, player beep.Player, sink EventSink, maxDur time.Duration) *orchestrator {
	return &orchestrator{
		capture: capture,
		buffer:  &audio.Buffer{},
		worker:  worker,
		player:  player,
		sink:    sink,
		maxDur:  maxDur,
	}
}

// Toggle flips between Idle and Recording. Safe from any goroutine.
func (o *orchestrator) Toggle() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state == stateIdle {
		o.startLocked()
	} else {
		o.stopLocked(false)
	}
}

func (o *orchestrator) startLocked() {
	o.buffer.Reset()
	o.capture.SetCallback(func(data []byte, frameCount uint32) {
		o.buffer.Append(data)
		o.sink.AudioLevel(rmsLevel(data))
	})

	if err := o.capture.Start(); err != nil {
		o.capture.ClearCallback()
		log.Errorf("capture start error: %v", err)
		o.player.PlayError()
		o.sink.Error("could not start recording")
		return
	}

	o.state = stateRecording
	o.session++
	o.player.PlayStart()
	o.sink.RecordingStart()

	if o.maxDur > 0 {
		session := o.session
		o.maxTimer = time.AfterFunc(o.maxDur, func() { o.autoStop(session) })
	}
}

func (o *orchestrator) stopLocked(auto bool) {
	if o.maxTimer != nil {
		o.maxTimer.Stop()
		o.maxTimer = nil
	}

	o.capture.Stop()
	o.capture.ClearCallback()
	pcm := o.buffer.TakeAll()
	o.state = stateIdle

	o.player.PlayStop()
	o.sink.RecordingStop(auto)

	// An empty capture is still submitted; the worker resolves it without
	// touching the model.
	if !o.worker.Submit(pcm) {
		log.Errorf("transcription queue full, dropping %.1fs of audio", audio.Duration(len(pcm)).Seconds())
		o.player.PlayError()
		o.sink.Error("transcription queue full, recording dropped")
	}
}

// autoStop is the max-duration timer callback. The session snapshot makes a
// stale timer a no-op: if the recording it was armed for already stopped,
// the ids differ.
func (o *orchestrator) autoStop(session int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state != stateRecording || o.session != session {
		return
	}
	log.Info("max_recording_duration reached")
	o.stopLocked(true)
}

// Close stops an active recording, submitting whatever was captured.
func (o *orchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state == stateRecording {
		o.stopLocked(false)
	}
}

func rmsLevel(data []byte) float64 {
	if len(data) < 2 {
		return 0
	}
	var sumSquares float64
	for i := 0; i+1 < len(data); i += 2 {
		sample := int16(binary.LittleEndian.Uint16(data[i:]))
		normalized := float64(sample) / 32768.0
		sumSquares += normalized * normalized
	}
	return math.Sqrt(sumSquares / float64(len(data)/2))
}
