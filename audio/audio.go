package audio

import (
	"strings"
	"time"
)

const (
	// SampleRate is the capture rate the speech engine expects.
	SampleRate = 16000
	Channels   = 1
	// BytesPerSample for signed 16-bit PCM.
	BytesPerSample = 2

	WAVHeaderSize = 44
)

var btKeywords = []string{
	"airpods", "beats", "bose", "wh-1000", "wf-1000",
	"sony wh-", "sony wf-",
	"jabra", "galaxy buds", "pixel buds", "powerbeats",
	"jbl ", "sennheiser momentum", "plantronics",
	"tozo", "anker soundcore", "skullcandy",
	"bluetooth", " bt ", " bt)", " bt]",
}

// IsBluetooth guesses from the device name; BT mics resample to 8/16kHz
// telephony profiles while recording, which hurts recognition quality.
func IsBluetooth(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range btKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Duration converts a PCM16 mono byte length to wall time at SampleRate.
func Duration(pcmBytes int) time.Duration {
	samples := pcmBytes / BytesPerSample
	return time.Duration(float64(samples) / float64(SampleRate) * float64(time.Second))
}

type DataCallback func(data []byte, frameCount uint32)

type CaptureConfig struct {
	SampleRate uint32
	Channels   uint32
}

type DeviceInfo struct {
	ID   string // opaque platform-specific identifier
	Name string
}

type Context interface {
	Devices() ([]DeviceInfo, error)
	NewCapture(device *DeviceInfo, config CaptureConfig) (CaptureDevice, error)
	Close()
}

type CaptureDevice interface {
	Start() error
	Stop()
	Close()
	SetCallback(cb DataCallback)
	ClearCallback()
	DeviceName() string
}
