//go:build linux

package beep

import (
	"github.com/jfreymuth/pulse"
	"github.com/jfreymuth/pulse/proto"
)

type pulsePlayer struct {
	start  sound
	stop   sound
	errCue sound
}

func New(opts Options) Player {
	p := &pulsePlayer{}
	p.start, p.stop, p.errCue = resolveSounds(opts)
	return p
}

func (p *pulsePlayer) PlayStart() { go play(p.start) }
func (p *pulsePlayer) PlayStop()  { go play(p.stop) }
func (p *pulsePlayer) PlayError() { go play(p.errCue) }

func play(s sound) {
	if len(s.samples) == 0 {
		return
	}
	c, err := pulse.NewClient()
	if err != nil {
		return
	}
	defer c.Close()

	pos := 0
	reader := pulse.Int16Reader(func(buf []int16) (int, error) {
		if pos >= len(s.samples) {
			return 0, pulse.EndOfData
		}
		n := copy(buf, s.samples[pos:])
		pos += n
		return n, nil
	})
	stream, err := c.NewPlayback(reader,
		pulse.PlaybackMono,
		pulse.PlaybackSampleRate(s.rate),
		pulse.PlaybackLatency(0.1),
		pulse.PlaybackRawOption(func(p *proto.CreatePlaybackStream) {
			p.ChannelVolumes = proto.ChannelVolumes{uint32(proto.VolumeNorm)}
		}),
	)
	if err != nil {
		return
	}
	stream.Start()
	stream.Drain()
	stream.Stop()
	stream.Close()
}
