// Package config loads and validates the on-disk TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"chirp/hotkey"
)

// MaxRecordingCeiling bounds max_recording_duration so a typo cannot arm a
// multi-hour recording timer.
const MaxRecordingCeiling = 7200.0

type Config struct {
	Shortcut string `toml:"shortcut"`

	ModelName    string `toml:"model_name"`
	ModelPath    string `toml:"model_path"` // empty: <config dir>/models/<model_name>
	Quantization string `toml:"quantization"`
	Provider     string `toml:"provider"`
	Threads      int    `toml:"threads"`
	Language     string `toml:"language"`

	IdleUnloadTimeout    float64 `toml:"idle_unload_timeout"`    // seconds, <=0 disables
	MaxRecordingDuration float64 `toml:"max_recording_duration"` // seconds, <=0 disables

	PasteMode           string  `toml:"paste_mode"` // "ctrl" | "ctrl+shift"
	ClipboardClear      bool    `toml:"clipboard_clear"`
	ClipboardClearDelay float64 `toml:"clipboard_clear_delay"` // seconds

	AudioFeedback  bool   `toml:"audio_feedback"`
	StartSoundPath string `toml:"start_sound_path"`
	StopSoundPath  string `toml:"stop_sound_path"`
	ErrorSoundPath string `toml:"error_sound_path"`

	WordOverrides  map[string]string `toml:"word_overrides"`
	PostProcessing string            `toml:"post_processing"`
}

func Default() Config {
	return Config{
		Shortcut:             "ctrl+shift+space",
		ModelName:            "vosk-model-small-en-us-0.15",
		Provider:             "cpu",
		Threads:              0,
		IdleUnloadTimeout:    300,
		MaxRecordingDuration: 45,
		PasteMode:            "ctrl",
		ClipboardClear:       true,
		ClipboardClearDelay:  0.75,
		AudioFeedback:        true,
		WordOverrides:        map[string]string{},
	}
}

// Dir returns the chirp config directory.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "chirp"), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config at path, creating it with defaults on first run.
// An empty path resolves to DefaultPath.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(path, cfg); err != nil {
			return cfg, fmt.Errorf("writing default config: %w", err)
		}
		return cfg.normalized(), nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg.normalized(), nil
}

func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

func (c Config) normalized() Config {
	c.Shortcut = strings.ToLower(c.Shortcut)
	c.PasteMode = strings.ToLower(c.PasteMode)
	c.Provider = strings.ToLower(c.Provider)
	c.Quantization = strings.ToLower(c.Quantization)
	overrides := make(map[string]string, len(c.WordOverrides))
	for k, v := range c.WordOverrides {
		overrides[strings.ToLower(k)] = v
	}
	c.WordOverrides = overrides
	return c
}

// ResolvedModelPath applies the default model location when model_path is
// unset.
func (c Config) ResolvedModelPath() (string, error) {
	if c.ModelPath != "" {
		return c.ModelPath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "models", c.ModelName), nil
}

// Validate rejects out-of-range values with field-specific errors before the
// orchestrator starts.
func (c Config) Validate() error {
	if c.Threads < 0 {
		return fmt.Errorf("threads must be non-negative, got %d", c.Threads)
	}
	if c.ClipboardClearDelay <= 0 {
		return fmt.Errorf("clipboard_clear_delay must be positive, got %g", c.ClipboardClearDelay)
	}
	switch c.PasteMode {
	case "ctrl", "ctrl+shift":
	default:
		return fmt.Errorf("paste_mode must be %q or %q, got %q", "ctrl", "ctrl+shift", c.PasteMode)
	}
	if c.MaxRecordingDuration > MaxRecordingCeiling {
		return fmt.Errorf("max_recording_duration must be <= %g seconds, got %g", MaxRecordingCeiling, c.MaxRecordingDuration)
	}
	if c.ModelName == "" {
		return fmt.Errorf("model_name must not be empty")
	}
	if _, err := hotkey.ParseCombo(c.Shortcut); err != nil {
		return fmt.Errorf("shortcut: %w", err)
	}
	for field, path := range map[string]string{
		"start_sound_path": c.StartSoundPath,
		"stop_sound_path":  c.StopSoundPath,
		"error_sound_path": c.ErrorSoundPath,
	} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("%s does not exist: %s", field, path)
		}
	}
	return nil
}
