package beep

import (
	"encoding/binary"
	"fmt"
	"os"
)

// loadWAV reads a 16-bit PCM WAV file and downmixes it to mono.
func loadWAV(path string) (sound, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sound{}, err
	}
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return sound{}, fmt.Errorf("not a WAV file")
	}

	var rate, channels, bits int
	var pcm []byte

	for pos := 12; pos+8 <= len(data); {
		id := string(data[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		body := pos + 8
		if body+size > len(data) {
			return sound{}, fmt.Errorf("truncated %q chunk", id)
		}
		switch id {
		case "fmt ":
			if size < 16 {
				return sound{}, fmt.Errorf("short fmt chunk")
			}
			format := int(binary.LittleEndian.Uint16(data[body:]))
			channels = int(binary.LittleEndian.Uint16(data[body+2:]))
			rate = int(binary.LittleEndian.Uint32(data[body+4:]))
			bits = int(binary.LittleEndian.Uint16(data[body+14:]))
			if format != 1 {
				return sound{}, fmt.Errorf("unsupported WAV format %d (want PCM)", format)
			}
		case "data":
			pcm = data[body : body+size]
		}
		// Chunks are word-aligned.
		pos = body + size + size%2
	}

	if rate == 0 || pcm == nil {
		return sound{}, fmt.Errorf("missing fmt or data chunk")
	}
	if bits != 16 {
		return sound{}, fmt.Errorf("unsupported bit depth %d (want 16)", bits)
	}
	if channels < 1 || channels > 2 {
		return sound{}, fmt.Errorf("unsupported channel count %d", channels)
	}

	frames := len(pcm) / (2 * channels)
	samples := make([]int16, frames)
	for i := 0; i < frames; i++ {
		if channels == 1 {
			samples[i] = int16(binary.LittleEndian.Uint16(pcm[i*2:]))
		} else {
			l := int16(binary.LittleEndian.Uint16(pcm[i*4:]))
			r := int16(binary.LittleEndian.Uint16(pcm[i*4+2:]))
			samples[i] = int16((int32(l) + int32(r)) / 2)
		}
	}
	return sound{samples: samples, rate: rate}, nil
}
