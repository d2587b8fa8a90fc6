package inject

import (
	"errors"
	"testing"
	"time"

	"chirp/clipboard"
)

func TestInjectCopiesThenPastes(t *testing.T) {
	clip := clipboard.NewMem()
	paster := NewFakePaster()
	in := New(clip, paster, Options{PasteMode: "ctrl"})

	if err := in.Inject("hello"); err != nil {
		t.Fatal(err)
	}
	if got, _ := clip.Read(); got != "hello" {
		t.Errorf("clipboard = %q", got)
	}
	if modes := paster.Pastes(); len(modes) != 1 || modes[0] != "ctrl" {
		t.Errorf("pastes = %v", modes)
	}
}

func TestInjectEmptyIsNoOp(t *testing.T) {
	clip := clipboard.NewMem()
	paster := NewFakePaster()
	in := New(clip, paster, Options{PasteMode: "ctrl"})

	if err := in.Inject(""); err != nil {
		t.Fatal(err)
	}
	if len(paster.Pastes()) != 0 {
		t.Error("empty text must not paste")
	}
}

func TestInjectCopyFailureSkipsPaste(t *testing.T) {
	clip := clipboard.NewMem()
	clip.FailCopies(errors.New("no clipboard"))
	paster := NewFakePaster()
	in := New(clip, paster, Options{PasteMode: "ctrl"})

	if err := in.Inject("hello"); err == nil {
		t.Fatal("expected error")
	}
	if len(paster.Pastes()) != 0 {
		t.Error("paste must not run after a failed copy")
	}
}

func TestClipboardClearFires(t *testing.T) {
	clip := clipboard.NewMem()
	in := New(clip, NewFakePaster(), Options{
		PasteMode:           "ctrl",
		ClipboardClear:      true,
		ClipboardClearDelay: 10 * time.Millisecond,
	})

	if err := in.Inject("secret"); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(time.Second)
	for {
		if got, _ := clip.Read(); got == "" {
			return
		}
		select {
		case <-deadline:
			t.Fatal("clipboard never cleared")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestClipboardClearSkippedWhenUserCopied(t *testing.T) {
	clip := clipboard.NewMem()
	in := New(clip, NewFakePaster(), Options{
		PasteMode:           "ctrl",
		ClipboardClear:      true,
		ClipboardClearDelay: 20 * time.Millisecond,
	})

	if err := in.Inject("secret"); err != nil {
		t.Fatal(err)
	}
	clip.Set("user content")

	time.Sleep(80 * time.Millisecond)
	if got, _ := clip.Read(); got != "user content" {
		t.Errorf("user clipboard content wiped: %q", got)
	}
}

func TestClipboardClearSupersededByNewerInjection(t *testing.T) {
	clip := clipboard.NewMem()
	in := New(clip, NewFakePaster(), Options{
		PasteMode:           "ctrl",
		ClipboardClear:      true,
		ClipboardClearDelay: 30 * time.Millisecond,
	})

	if err := in.Inject("first"); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)
	if err := in.Inject("second"); err != nil {
		t.Fatal(err)
	}

	// The first timer fires here; it must not clear the second paste early.
	time.Sleep(15 * time.Millisecond)
	if got, _ := clip.Read(); got != "second" {
		t.Errorf("stale timer cleared newer paste: %q", got)
	}

	// The second timer clears it.
	time.Sleep(60 * time.Millisecond)
	if got, _ := clip.Read(); got != "" {
		t.Errorf("clipboard not cleared: %q", got)
	}
}
