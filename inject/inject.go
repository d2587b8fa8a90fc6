package inject

import (
	"sync"
	"time"

	"chirp/clipboard"
	"chirp/log"
)

// Paster sends the paste chord to the focused application.
type Paster interface {
	Paste(mode string) error
}

type Options struct {
	PasteMode           string // "ctrl" or "ctrl+shift"
	ClipboardClear      bool
	ClipboardClearDelay time.Duration
}

// Injector copies text to the clipboard, pastes it, and optionally clears
// the clipboard afterwards.
type Injector struct {
	clip   clipboard.Clipboard
	paster Paster
	opts   Options

	mu  sync.Mutex
	gen int
}

func New(clip clipboard.Clipboard, paster Paster, opts Options) *Injector {
	return &Injector{clip: clip, paster: paster, opts: opts}
}

func (in *Injector) Inject(text string) error {
	if text == "" {
		return nil
	}
	if err := in.clip.Copy(text); err != nil {
		return err
	}
	if err := in.paster.Paste(in.opts.PasteMode); err != nil {
		return err
	}
	if in.opts.ClipboardClear {
		in.armClear(text)
	}
	return nil
}

// armClear schedules a clipboard wipe. Each injection bumps the generation
// so an older timer firing after a newer paste is a no-op. The clipboard is
// only cleared while it still holds our text.
func (in *Injector) armClear(text string) {
	in.mu.Lock()
	in.gen++
	gen := in.gen
	in.mu.Unlock()

	time.AfterFunc(in.opts.ClipboardClearDelay, func() {
		in.mu.Lock()
		stale := gen != in.gen
		in.mu.Unlock()
		if stale {
			return
		}
		current, err := in.clip.Read()
		if err != nil || current != text {
			return
		}
		if err := in.clip.Clear(); err != nil {
			log.Warnf("clipboard clear failed: %v", err)
		}
	})
}
