package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"chirp/audio"
	"chirp/beep"
	"chirp/clipboard"
	"chirp/config"
	"chirp/doctor"
	"chirp/engine"
	"chirp/hotkey"
	"chirp/inject"
	"chirp/log"
	"chirp/shutdown"
)

var version = "dev"

func initCrashLog() {
	dir, err := log.ResolveDir("")
	if err != nil {
		return
	}
	log.SetDir(dir)
	if err := log.EnsureDir(); err != nil {
		return
	}
	crashPath := filepath.Join(log.Dir(), "crash_log.txt")
	f, err := os.OpenFile(crashPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		fmt.Fprintf(f, "\n=== Session %s [pid=%d] ===\n", time.Now().Format("2006-01-02 15:04:05"), os.Getpid())
		debug.SetCrashOutput(f, debug.CrashOptions{})
	}
}

func fatal(format string, args ...any) {
	log.Errorf(format, args...)
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func run() {
	configFlag := flag.String("config", "", "Config file path (default: OS-specific location)")
	verboseFlag := flag.Bool("verbose", false, "Enable debug logging")
	checkFlag := flag.Bool("check", false, "Run pipeline smoke test and exit")
	tuiFlag := flag.Bool("tui", true, "Run with terminal UI")
	logPathFlag := flag.String("logpath", "", "Log directory path (default: OS-specific location, use ./ for current dir)")
	setupFlag := flag.Bool("setup", false, "Select microphone device (otherwise uses system default)")
	deviceFlag := flag.String("device", "", "Use named microphone device")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	doctorFlag := flag.Bool("doctor", false, "Run interactive diagnostics and exit")
	flag.Parse()

	logPath, err := log.ResolveDir(*logPathFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
		os.Exit(1)
	}
	log.SetDir(logPath)
	if err := log.EnsureDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
	}
	log.SetVerbose(*verboseFlag)

	if *versionFlag {
		fmt.Printf("chirp %s\n", version)
		os.Exit(0)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config: %v\n", err)
		os.Exit(1)
	}

	if *doctorFlag {
		os.Exit(doctor.Run(cfg))
	}
	if *checkFlag {
		os.Exit(runCheck(cfg))
	}

	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	} else {
		log.SessionStart(cfg.ModelName, cfg.Provider, cfg.Language)
	}

	// Model preflight: fail before registering the hotkey, not on the first
	// recording.
	modelPath, err := cfg.ResolvedModelPath()
	if err != nil {
		fatal("resolving model path: %v", err)
	}
	if err := engine.VerifyModel(modelPath); err != nil {
		fatal("%v", err)
	}

	handle := engine.NewHandle(engine.VoskLoader{}, engine.Config{
		ModelPath:    modelPath,
		ModelName:    cfg.ModelName,
		Quantization: cfg.Quantization,
		Provider:     cfg.Provider,
		Threads:      cfg.Threads,
	}, time.Duration(cfg.IdleUnloadTimeout*float64(time.Second)))
	defer handle.Close()

	if handle.EvictionEnabled() {
		monCtx, monCancel := context.WithCancel(context.Background())
		defer monCancel()
		go engine.NewIdleMonitor(handle, engine.DefaultPollInterval).Run(monCtx)
	}

	actx, err := audio.NewContext()
	if err != nil {
		fatal("initializing audio context: %v", err)
	}
	defer actx.Close()

	var selectedDevice *audio.DeviceInfo
	if *deviceFlag != "" {
		if devices, err := actx.Devices(); err == nil {
			for i := range devices {
				if devices[i].Name == *deviceFlag {
					selectedDevice = &devices[i]
					break
				}
			}
		}
		if selectedDevice == nil {
			log.Warnf("device not found, using default: %s", *deviceFlag)
		}
	} else if *setupFlag {
		selectedDevice, err = audio.SelectDevice(actx)
		if err != nil {
			log.Warnf("device selection failed: %v", err)
			fmt.Printf("Warning: device selection failed: %v\nFalling back to default device\n", err)
			selectedDevice = nil
		}
	}

	capture, err := actx.NewCapture(selectedDevice, audio.CaptureConfig{
		SampleRate: audio.SampleRate,
		Channels:   audio.Channels,
	})
	if err != nil {
		fatal("initializing capture device: %v", err)
	}
	defer capture.Close()

	var player beep.Player
	if cfg.AudioFeedback {
		player = beep.New(beep.Options{
			StartPath: cfg.StartSoundPath,
			StopPath:  cfg.StopSoundPath,
			ErrorPath: cfg.ErrorSoundPath,
		})
	} else {
		player = beep.Nop()
	}

	style := inject.ParseStyle(cfg.PostProcessing)
	injector := inject.New(clipboard.System(), inject.NewPaster(), inject.Options{
		PasteMode:           cfg.PasteMode,
		ClipboardClear:      cfg.ClipboardClear,
		ClipboardClearDelay: time.Duration(cfg.ClipboardClearDelay * float64(time.Second)),
	})
	injectFn := func(text string) error {
		processed := inject.Process(text, cfg.WordOverrides, style)
		if processed == "" {
			return nil
		}
		return injector.Inject(processed)
	}

	var sink EventSink = logSink{}
	var program *tea.Program
	if *tuiFlag {
		program = NewTUIProgram(cfg.Shortcut)
		sink = &tuiSink{p: program}
	}

	worker := newTranscriptionWorker(handle, cfg.Language, injectFn, player, sink)
	worker.Start()

	orch := newOrchestrator(capture, worker, player, sink,
		time.Duration(cfg.MaxRecordingDuration*float64(time.Second)))

	combo, err := hotkey.ParseCombo(cfg.Shortcut)
	if err != nil {
		fatal("shortcut: %v", err) // validated earlier, kept for safety
	}
	hk := hotkey.New(combo)
	if err := hk.Register(); err != nil {
		fatal("registering hotkey: %v", err)
	}
	defer hk.Unregister()

	log.Infof("ready, press %s to record", combo)

	sigChan := shutdown.Listen()

	// quit is closed once, by whichever exit path fires first (signal or the
	// user quitting the TUI). The forwarding goroutine must be gone before
	// the worker closes, or a hotkey press could submit to a closed queue.
	quit := make(chan struct{})
	var quitOnce sync.Once
	requestQuit := func() { quitOnce.Do(func() { close(quit) }) }

	hkDone := make(chan struct{})
	go func() {
		defer close(hkDone)
		for {
			select {
			case <-hk.Toggles():
				orch.Toggle()
			case <-sigChan:
				requestQuit()
				return
			case <-quit:
				return
			}
		}
	}()

	if program != nil {
		modeLine := fmt.Sprintf("[%s | %s]", cfg.ModelName, languageLabel(cfg.Language))
		deviceLine := "mic: " + capture.DeviceName()
		if selectedDevice != nil && audio.IsBluetooth(selectedDevice.Name) {
			deviceLine += " (BT!)"
		}
		program.Send(ModeLineMsg{Text: modeLine})
		program.Send(DeviceLineMsg{Text: deviceLine})

		go func() {
			<-quit
			program.Quit()
		}()
		if _, err := program.Run(); err != nil {
			log.Errorf("TUI error: %v", err)
		}
		requestQuit()
	} else {
		<-quit
	}
	<-hkDone

	orch.Close()
	worker.Close()
	log.SessionEnd(worker.Jobs())
	log.Close()
}

func languageLabel(lang string) string {
	if lang == "" {
		return "auto"
	}
	return lang
}
