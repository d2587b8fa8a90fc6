package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	vosk "github.com/alphacep/vosk-api/go"

	"chirp/log"
)

// VoskLoader loads a Vosk model directory from disk.
type VoskLoader struct{}

// VerifyModel checks that the model directory exists without loading it.
func VerifyModel(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s (download a model from https://alphacephei.com/vosk/models and unpack it there)", ErrModelNotPrepared, path)
	}
	return nil
}

func (VoskLoader) Load(cfg Config) (Recognizer, error) {
	if err := VerifyModel(cfg.ModelPath); err != nil {
		return nil, err
	}

	if p := strings.ToLower(cfg.Provider); p != "" && p != "cpu" {
		log.Warnf("provider %q not supported, forcing cpu", cfg.Provider)
	}
	if cfg.Quantization != "" {
		log.Debugf("quantization %q requested; vosk models are pre-quantized, tag ignored", cfg.Quantization)
	}

	model, err := vosk.NewModel(cfg.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("loading vosk model %s: %w", cfg.ModelPath, err)
	}

	return &voskRecognizer{model: model, name: cfg.ModelName}, nil
}

type voskRecognizer struct {
	model *vosk.VoskModel
	name  string
}

type voskResult struct {
	Text string `json:"text"`
}

func (v *voskRecognizer) Name() string {
	if v.name != "" {
		return v.name
	}
	return "vosk"
}

func (v *voskRecognizer) Recognize(pcm []byte, sampleRate int, lang string) (string, error) {
	// Vosk models are single-language; the hint only matters for engines
	// that do detection, so it is accepted and ignored here.
	_ = lang

	rec, err := vosk.NewRecognizer(v.model, float64(sampleRate))
	if err != nil {
		return "", fmt.Errorf("vosk recognizer: %w", err)
	}
	defer rec.Free()

	rec.AcceptWaveform(pcm)

	var result voskResult
	if err := json.Unmarshal([]byte(rec.FinalResult()), &result); err != nil {
		return "", fmt.Errorf("vosk result: %w", err)
	}
	return strings.TrimSpace(result.Text), nil
}

func (v *voskRecognizer) Close() {
	if v.model != nil {
		v.model.Free()
		v.model = nil
	}
}
