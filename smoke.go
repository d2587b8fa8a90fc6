package main

import (
	"fmt"
	"time"

	"chirp/audio"
	"chirp/config"
	"chirp/engine"
	"chirp/inject"
)

// runCheck exercises the transcription pipeline end to end without touching
// the hotkey or the microphone: load the model, run inference over a second
// of silence, and push the result through text post-processing.
func runCheck(cfg config.Config) int {
	fmt.Println("chirp -check: pipeline smoke test")

	modelPath, err := cfg.ResolvedModelPath()
	if err != nil {
		fmt.Printf("  FAIL: resolving model path: %v\n", err)
		return 1
	}
	if err := engine.VerifyModel(modelPath); err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		return 1
	}

	handle := engine.NewHandle(engine.VoskLoader{}, engine.Config{
		ModelPath:    modelPath,
		ModelName:    cfg.ModelName,
		Quantization: cfg.Quantization,
		Provider:     cfg.Provider,
		Threads:      cfg.Threads,
	}, 0)
	defer handle.Close()

	start := time.Now()
	rec, err := handle.Acquire()
	if err != nil {
		fmt.Printf("  FAIL: model load: %v\n", err)
		return 1
	}
	fmt.Printf("  model load: %dms (%s)\n", time.Since(start).Milliseconds(), cfg.ModelName)

	silence := make([]byte, audio.SampleRate*audio.BytesPerSample)
	start = time.Now()
	text, err := rec.Recognize(silence, audio.SampleRate, cfg.Language)
	handle.Release()
	if err != nil {
		fmt.Printf("  FAIL: inference: %v\n", err)
		return 1
	}
	fmt.Printf("  inference over 1.0s of silence: %dms, text %q\n", time.Since(start).Milliseconds(), text)

	style := inject.ParseStyle(cfg.PostProcessing)
	processed := inject.Process("smoke test. all good", cfg.WordOverrides, style)
	fmt.Printf("  post-processing: %q\n", processed)

	fmt.Println("OK")
	return 0
}
