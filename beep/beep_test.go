package beep

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateTickLengthAndDecay(t *testing.T) {
	samples := generateTick(defaultRate, 1000, 0.1, 0.5, 60)
	if want := defaultRate / 10; len(samples) != want {
		t.Fatalf("len = %d, want %d", len(samples), want)
	}

	head := maxAbs(samples[:len(samples)/4])
	tail := maxAbs(samples[3*len(samples)/4:])
	if tail >= head {
		t.Errorf("envelope not decaying: head %d, tail %d", head, tail)
	}
}

func TestGenerateDoubleBeepHasGap(t *testing.T) {
	samples := generateDoubleBeep(defaultRate, 350, 0.08, 0.05, 0.6, 30)
	beepLen := int(float64(defaultRate) * 0.08)
	gapLen := int(float64(defaultRate) * 0.05)
	if want := beepLen*2 + gapLen; len(samples) != want {
		t.Fatalf("len = %d, want %d", len(samples), want)
	}
	if got := maxAbs(samples[beepLen : beepLen+gapLen]); got != 0 {
		t.Errorf("gap not silent: max amplitude %d", got)
	}
}

func TestLoadWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cue.wav")
	pcm := []int16{100, -100, 32000, -32000}
	writeWAV(t, path, pcm, 22050, 1)

	s, err := loadWAV(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.rate != 22050 {
		t.Errorf("rate = %d", s.rate)
	}
	if len(s.samples) != len(pcm) {
		t.Fatalf("samples = %d, want %d", len(s.samples), len(pcm))
	}
	for i := range pcm {
		if s.samples[i] != pcm[i] {
			t.Errorf("sample %d = %d, want %d", i, s.samples[i], pcm[i])
		}
	}
}

func TestLoadWAVStereoDownmix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cue.wav")
	writeWAV(t, path, []int16{100, 200, -100, -300}, 44100, 2)

	s, err := loadWAV(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.samples) != 2 {
		t.Fatalf("samples = %d, want 2", len(s.samples))
	}
	if s.samples[0] != 150 || s.samples[1] != -200 {
		t.Errorf("downmix = %v, want [150 -200]", s.samples)
	}
}

func TestLoadWAVRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cue.wav")
	if err := os.WriteFile(path, []byte("not audio at all"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadWAV(path); err == nil {
		t.Error("expected error for non-WAV data")
	}
}

func TestResolveSoundsFallsBackOnBadOverride(t *testing.T) {
	start, _, _ := resolveSounds(Options{StartPath: "/does/not/exist.wav"})
	if len(start.samples) == 0 {
		t.Error("bad override should keep the built-in tone")
	}
}

func maxAbs(samples []int16) int16 {
	var m int16
	for _, s := range samples {
		if s < 0 {
			s = -s
		}
		if s > m {
			m = s
		}
	}
	return m
}

func writeWAV(t *testing.T, path string, pcm []int16, rate, channels int) {
	t.Helper()
	data := make([]byte, len(pcm)*2)
	for i, v := range pcm {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(v))
	}

	var buf []byte
	buf = append(buf, "RIFF"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(36+len(data)))
	buf = append(buf, "WAVE"...)
	buf = append(buf, "fmt "...)
	buf = binary.LittleEndian.AppendUint32(buf, 16)
	buf = binary.LittleEndian.AppendUint16(buf, 1)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(channels))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(rate))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(rate*channels*2))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(channels*2))
	buf = binary.LittleEndian.AppendUint16(buf, 16)
	buf = append(buf, "data"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(data)))
	buf = append(buf, data...)

	if err := os.WriteFile(path, buf, 0644); err != nil {
		t.Fatal(err)
	}
}
