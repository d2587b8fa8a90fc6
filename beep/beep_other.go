//go:build !linux

package beep

import (
	"sync"
	"time"

	"github.com/gen2brain/malgo"
)

type malgoPlayer struct {
	ctx    *malgo.AllocatedContext
	mu     sync.Mutex
	start  sound
	stop   sound
	errCue sound
}

func New(opts Options) Player {
	p := &malgoPlayer{}
	p.start, p.stop, p.errCue = resolveSounds(opts)

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return Nop()
	}
	p.ctx = ctx
	return p
}

func (p *malgoPlayer) PlayStart() { go p.play(p.start) }
func (p *malgoPlayer) PlayStop()  { go p.play(p.stop) }
func (p *malgoPlayer) PlayError() { go p.play(p.errCue) }

// play opens a short-lived device per cue so overrides with differing sample
// rates do not need a shared device config.
func (p *malgoPlayer) play(s sound) {
	if len(s.samples) == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	buf := make([]byte, len(s.samples)*2)
	for i, v := range s.samples {
		buf[i*2] = byte(v)
		buf[i*2+1] = byte(v >> 8)
	}

	pos := 0
	done := make(chan struct{})
	var once sync.Once

	config := malgo.DefaultDeviceConfig(malgo.Playback)
	config.Playback.Format = malgo.FormatS16
	config.Playback.Channels = 1
	config.SampleRate = uint32(s.rate)

	dev, err := malgo.InitDevice(p.ctx.Context, config, malgo.DeviceCallbacks{
		Data: func(out, _ []byte, frameCount uint32) {
			n := copy(out, buf[pos:])
			pos += n
			for i := n; i < len(out); i++ {
				out[i] = 0
			}
			if pos >= len(buf) {
				once.Do(func() { close(done) })
			}
		},
	})
	if err != nil {
		return
	}
	defer dev.Uninit()

	if err := dev.Start(); err != nil {
		return
	}

	cueLen := time.Duration(len(s.samples)) * time.Second / time.Duration(s.rate)
	select {
	case <-done:
		// Let the tail of the buffer reach the speaker.
		time.Sleep(50 * time.Millisecond)
	case <-time.After(cueLen + time.Second):
	}
	dev.Stop()
}
