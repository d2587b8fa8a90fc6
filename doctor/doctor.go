// Package doctor runs interactive environment diagnostics.
package doctor

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"chirp/audio"
	"chirp/clipboard"
	"chirp/config"
	"chirp/engine"
	"chirp/hotkey"
	"chirp/inject"
)

// Run executes interactive diagnostic checks and returns an exit code
// (0=all pass, 1=any fail).
func Run(cfg config.Config) int {
	resetTerminal()
	setupInterruptHandler()

	fmt.Println("chirp doctor - interactive system diagnostics")
	fmt.Println("=============================================")

	allPass := true

	if !checkModel(cfg) {
		allPass = false
	}
	if allPass && !checkHotkey(cfg) {
		allPass = false
	}
	if allPass && !checkMicAndTranscription(cfg) {
		allPass = false
	}
	if allPass && !checkClipboard(cfg) {
		allPass = false
	}

	fmt.Println()
	if allPass {
		fmt.Println("All checks passed!")
		return 0
	}
	fmt.Println("Some checks failed. See details above.")
	return 1
}

func checkModel(cfg config.Config) bool {
	fmt.Println()
	fmt.Println("[1/4] Speech model")

	path, err := cfg.ResolvedModelPath()
	if err != nil {
		fmt.Printf("  FAIL: cannot resolve model path: %v\n", err)
		return false
	}
	fmt.Printf("Model path: %s\n", path)

	if err := engine.VerifyModel(path); err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		return false
	}

	start := time.Now()
	rec, err := engine.VoskLoader{}.Load(engine.Config{
		ModelPath: path,
		ModelName: cfg.ModelName,
		Provider:  cfg.Provider,
		Threads:   cfg.Threads,
	})
	if err != nil {
		fmt.Printf("  FAIL: model load error: %v\n", err)
		return false
	}
	rec.Close()
	fmt.Printf("  PASS: model loaded in %dms\n", time.Since(start).Milliseconds())
	return true
}

func checkHotkey(cfg config.Config) bool {
	fmt.Println()
	fmt.Println("[2/4] Hotkey detection")

	combo, err := hotkey.ParseCombo(cfg.Shortcut)
	if err != nil {
		fmt.Printf("  FAIL: bad shortcut in config: %v\n", err)
		return false
	}
	fmt.Printf("Press %s...\n", combo)

	hk := hotkey.New(combo)
	if err := hk.Register(); err != nil {
		fmt.Printf("  FAIL: could not register hotkey: %v\n", err)
		return false
	}
	defer hk.Unregister()

	select {
	case <-hk.Toggles():
		fmt.Println("  PASS: hotkey detected")
		// Hotkey capture may leave the terminal in raw mode
		resetTerminal()
		return true
	case <-time.After(10 * time.Second):
		fmt.Println("  FAIL: timeout waiting for hotkey")
		return false
	}
}

func checkMicAndTranscription(cfg config.Config) bool {
	fmt.Println()
	fmt.Println("[3/4] Microphone and transcription")

	reader := bufio.NewReader(os.Stdin)

	ctx, err := audio.NewContext()
	if err != nil {
		fmt.Printf("  FAIL: cannot connect to audio: %v\n", err)
		return false
	}
	defer ctx.Close()

	devices, err := ctx.Devices()
	if err != nil {
		fmt.Printf("  FAIL: cannot list devices: %v\n", err)
		return false
	}
	if len(devices) == 0 {
		fmt.Println("  FAIL: no capture devices found")
		return false
	}

	var device *audio.DeviceInfo
	if len(devices) == 1 {
		device = &devices[0]
		fmt.Printf("Using device: %s\n", device.Name)
	} else {
		fmt.Println()
		fmt.Println("Select input device:")
		for i, d := range devices {
			fmt.Printf("  %d. %s\n", i+1, d.Name)
		}
		fmt.Printf("Choice [1-%d]: ", len(devices))

		devChoice, _ := reader.ReadString('\n')
		devChoice = strings.TrimSpace(devChoice)
		idx := 0
		if devChoice != "" {
			fmt.Sscanf(devChoice, "%d", &idx)
			idx--
		}
		if idx < 0 || idx >= len(devices) {
			fmt.Println("  FAIL: invalid choice")
			return false
		}
		device = &devices[idx]
		fmt.Printf("Selected: %s\n", device.Name)
	}

	fmt.Println()
	fmt.Print("Press Enter and speak for 3 seconds...")
	reader.ReadString('\n')

	pcm, err := recordAudio(ctx, device, 3*time.Second)
	if err != nil {
		fmt.Printf("  FAIL: recording error: %v\n", err)
		return false
	}
	if len(pcm) == 0 {
		fmt.Println("  FAIL: no audio captured")
		return false
	}
	fmt.Printf("  Recorded %.1f KB, transcribing...\n", float64(len(pcm))/1024)

	path, err := cfg.ResolvedModelPath()
	if err != nil {
		fmt.Printf("  FAIL: cannot resolve model path: %v\n", err)
		return false
	}
	rec, err := engine.VoskLoader{}.Load(engine.Config{
		ModelPath: path,
		ModelName: cfg.ModelName,
		Provider:  cfg.Provider,
		Threads:   cfg.Threads,
	})
	if err != nil {
		fmt.Printf("  FAIL: model load error: %v\n", err)
		return false
	}
	defer rec.Close()

	text, err := rec.Recognize(pcm, audio.SampleRate, cfg.Language)
	if err != nil {
		fmt.Printf("  FAIL: transcription error: %v\n", err)
		return false
	}
	if text == "" {
		text = "(no speech detected)"
	}
	fmt.Printf("\n  Transcribed text: %s\n\n", text)

	confirmReader := bufio.NewReader(os.Stdin)
	fmt.Print("Is this correct? [y/n]: ")
	confirm, _ := confirmReader.ReadString('\n')
	confirm = strings.TrimSpace(strings.ToLower(confirm))

	if confirm == "y" || confirm == "yes" {
		fmt.Println("  PASS: transcription verified by user")
		return true
	}
	fmt.Println("  FAIL: transcription not confirmed")
	return false
}

func recordAudio(ctx audio.Context, device *audio.DeviceInfo, d time.Duration) ([]byte, error) {
	buf := &audio.Buffer{}

	captureDevice, err := ctx.NewCapture(device, audio.CaptureConfig{
		SampleRate: audio.SampleRate,
		Channels:   audio.Channels,
	})
	if err != nil {
		return nil, err
	}
	defer captureDevice.Close()

	captureDevice.SetCallback(func(data []byte, frameCount uint32) {
		buf.Append(data)
	})

	if err := captureDevice.Start(); err != nil {
		captureDevice.ClearCallback()
		return nil, err
	}

	fmt.Print("  Recording")
	done := make(chan struct{})
	ticker := time.NewTicker(500 * time.Millisecond)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fmt.Print(".")
			}
		}
	}()

	time.Sleep(d)
	close(done)

	captureDevice.Stop()
	captureDevice.ClearCallback()
	fmt.Println(" done")

	return buf.TakeAll(), nil
}

func checkClipboard(cfg config.Config) bool {
	fmt.Println()
	fmt.Println("[4/4] Clipboard and paste")

	clip := clipboard.System()
	paster := inject.NewPaster()

	fmt.Println("Focus on a text editor window...")
	for i := 5; i > 0; i-- {
		fmt.Printf("  %d...\n", i)
		time.Sleep(1 * time.Second)
	}

	testStr := "chirp-doctor-test"
	if err := clip.Copy(testStr); err != nil {
		fmt.Printf("  FAIL: clipboard copy failed: %v\n", err)
		return false
	}
	if err := paster.Paste(cfg.PasteMode); err != nil {
		fmt.Printf("  FAIL: paste failed: %v\n", err)
		return false
	}

	resetTerminal()
	confirmReader := bufio.NewReader(os.Stdin)
	fmt.Println()
	fmt.Printf("Did the text %q appear? [y/n]: ", testStr)
	confirm, _ := confirmReader.ReadString('\n')
	confirm = strings.TrimSpace(strings.ToLower(confirm))

	if confirm != "y" && confirm != "yes" {
		fmt.Println("  FAIL: clipboard/paste not confirmed")
		return false
	}
	fmt.Println("  PASS: clipboard and paste verified by user")
	return true
}
