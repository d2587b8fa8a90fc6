package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestZeroTimeoutsValid(t *testing.T) {
	cfg := Default()
	cfg.IdleUnloadTimeout = 0
	cfg.MaxRecordingDuration = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero timeouts (disabled) should pass validation: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "negative threads",
			mutate:  func(c *Config) { c.Threads = -1 },
			wantErr: "threads must be non-negative",
		},
		{
			name:    "zero clipboard delay",
			mutate:  func(c *Config) { c.ClipboardClearDelay = 0 },
			wantErr: "clipboard_clear_delay must be positive",
		},
		{
			name:    "negative clipboard delay",
			mutate:  func(c *Config) { c.ClipboardClearDelay = -1 },
			wantErr: "clipboard_clear_delay must be positive",
		},
		{
			name:    "unknown paste mode",
			mutate:  func(c *Config) { c.PasteMode = "hacking" },
			wantErr: "paste_mode must be",
		},
		{
			name:    "excessive max recording duration",
			mutate:  func(c *Config) { c.MaxRecordingDuration = 7201 },
			wantErr: "max_recording_duration must be <=",
		},
		{
			name:    "missing start sound",
			mutate:  func(c *Config) { c.StartSoundPath = "/this/path/should/not/exist.wav" },
			wantErr: "start_sound_path does not exist",
		},
		{
			name:    "missing stop sound",
			mutate:  func(c *Config) { c.StopSoundPath = "/this/path/should/not/exist.wav" },
			wantErr: "stop_sound_path does not exist",
		},
		{
			name:    "empty model name",
			mutate:  func(c *Config) { c.ModelName = "" },
			wantErr: "model_name",
		},
		{
			name:    "unparseable shortcut",
			mutate:  func(c *Config) { c.Shortcut = "ctrl+banana" },
			wantErr: "shortcut",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not name the field: want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Shortcut != "ctrl+shift+space" {
		t.Errorf("Shortcut = %q, want default", cfg.Shortcut)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config file not written: %v", err)
	}
}

func TestLoadNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
shortcut = "Ctrl+Shift+Space"
paste_mode = "CTRL"
provider = "CPU"

[word_overrides]
Golang = "Go"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PasteMode != "ctrl" {
		t.Errorf("PasteMode = %q, want ctrl", cfg.PasteMode)
	}
	if cfg.Shortcut != "ctrl+shift+space" {
		t.Errorf("Shortcut = %q, want lowercase", cfg.Shortcut)
	}
	if _, ok := cfg.WordOverrides["golang"]; !ok {
		t.Error("word override keys not lowercased")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := Default()
	cfg.Language = "en"
	cfg.MaxRecordingDuration = 120

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Language != "en" || got.MaxRecordingDuration != 120 {
		t.Errorf("round trip lost values: %+v", got)
	}
}

func TestResolvedModelPathExplicit(t *testing.T) {
	cfg := Default()
	cfg.ModelPath = "/opt/models/foo"
	got, err := cfg.ResolvedModelPath()
	if err != nil {
		t.Fatal(err)
	}
	if got != "/opt/models/foo" {
		t.Errorf("got %q", got)
	}
}

func TestResolvedModelPathDefault(t *testing.T) {
	cfg := Default()
	got, err := cfg.ResolvedModelPath()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(got, filepath.Join("chirp", "models", cfg.ModelName)) {
		t.Errorf("got %q, want path under the chirp config dir", got)
	}
}
