package inject

import (
	"runtime"
	"sync"
	"time"

	"github.com/micmonay/keybd_event"
)

type kbPaster struct {
	once sync.Once
	kb   keybd_event.KeyBonding
	err  error
}

// NewPaster returns a Paster that synthesizes the paste chord with a virtual
// keyboard. On darwin the chord is Cmd+V regardless of mode.
func NewPaster() Paster {
	return &kbPaster{}
}

func (p *kbPaster) init() error {
	p.once.Do(func() {
		p.kb, p.err = keybd_event.NewKeyBonding()
		if p.err == nil && runtime.GOOS == "linux" {
			// The uinput device needs time to be picked up by the session.
			time.Sleep(2 * time.Second)
		}
	})
	return p.err
}

func (p *kbPaster) Paste(mode string) error {
	if err := p.init(); err != nil {
		return err
	}
	p.kb.Clear()
	p.kb.SetKeys(keybd_event.VK_V)
	if runtime.GOOS == "darwin" {
		p.kb.HasSuper(true)
	} else {
		p.kb.HasCTRL(true)
	}
	if mode == "ctrl+shift" {
		p.kb.HasSHIFT(true)
	}
	return p.kb.Launching()
}
