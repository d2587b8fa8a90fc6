// Package beep plays short audio cues for recording start, stop, and error.
package beep

import (
	"math"

	"chirp/log"
)

const (
	defaultRate = 44100

	// Start beep: high pitch, short
	startFreq   = 1200
	startVolume = 0.5
	startDecay  = 60

	// Stop beep: medium pitch, slightly longer
	stopFreq   = 900
	stopVolume = 0.5
	stopDecay  = 40

	// Error beep: low pitch double-beep
	errorFreq   = 350
	errorVolume = 0.6
	errorDecay  = 30
)

type Player interface {
	PlayStart()
	PlayStop()
	PlayError()
}

// Options overrides the generated cues with user-supplied WAV files.
// Empty paths keep the built-in tones.
type Options struct {
	StartPath string
	StopPath  string
	ErrorPath string
}

type nop struct{}

func (nop) PlayStart() {}
func (nop) PlayStop()  {}
func (nop) PlayError() {}

// Nop returns a player that stays silent. Used when audio_feedback is off.
func Nop() Player { return nop{} }

// sound is mono 16-bit PCM at its own sample rate.
type sound struct {
	samples []int16
	rate    int
}

func defaultSounds() (start, stop, errCue sound) {
	start = sound{generateTick(defaultRate, startFreq, 0.2, startVolume, startDecay), defaultRate}
	stop = sound{generateTick(defaultRate, stopFreq, 0.2, stopVolume, stopDecay), defaultRate}
	errCue = sound{generateDoubleBeep(defaultRate, errorFreq, 0.08, 0.05, errorVolume, errorDecay), defaultRate}
	return
}

func resolveSounds(opts Options) (start, stop, errCue sound) {
	start, stop, errCue = defaultSounds()
	for _, o := range []struct {
		path string
		dst  *sound
	}{
		{opts.StartPath, &start},
		{opts.StopPath, &stop},
		{opts.ErrorPath, &errCue},
	} {
		if o.path == "" {
			continue
		}
		s, err := loadWAV(o.path)
		if err != nil {
			log.Warnf("ignoring sound override %s: %v", o.path, err)
			continue
		}
		*o.dst = s
	}
	return
}

func generateTick(rate int, freq, duration, volume, decay float64) []int16 {
	n := int(float64(rate) * duration)
	samples := make([]int16, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(rate)
		envelope := math.Exp(-t * decay)
		samples[i] = int16(math.Sin(2*math.Pi*freq*t) * 32767 * volume * envelope)
	}
	return samples
}

func generateDoubleBeep(rate int, freq, beepDur, gapDur, volume, decay float64) []int16 {
	beep := generateTick(rate, freq, beepDur, volume, decay)
	gap := make([]int16, int(float64(rate)*gapDur))
	result := make([]int16, 0, len(beep)*2+len(gap))
	result = append(result, beep...)
	result = append(result, gap...)
	result = append(result, beep...)
	return result
}
