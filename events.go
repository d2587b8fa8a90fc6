package main

import "chirp/log"

// EventSink abstracts the display layer so the Bubble Tea TUI and the
// headless log sink receive the same recording/transcription events.
type EventSink interface {
	RecordingStart()
	RecordingStop(auto bool)
	AudioLevel(level float64)
	Transcription(text string)
	QueueDepth(n int)
	Status(text string)
	Error(text string)
}

// logSink is the headless sink used without -tui.
type logSink struct{}

func (logSink) RecordingStart() { log.Info("recording_start") }

func (logSink) RecordingStop(auto bool) {
	if auto {
		log.Info("recording_stop_max_duration")
	} else {
		log.Info("recording_stop")
	}
}

func (logSink) AudioLevel(float64) {}

// The worker already writes transcripts to the transcript log; headless
// mode has nothing else to show.
func (logSink) Transcription(string) {}

func (logSink) QueueDepth(int) {}

func (logSink) Status(text string) { log.Info(text) }

func (logSink) Error(text string) { log.Error(text) }
