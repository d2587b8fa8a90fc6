package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	diagLog        zerolog.Logger
	diagFile       *os.File
	transcribeFile *os.File
	logMu          sync.Mutex
	logReady       bool
	verbose        bool
	pid            int
	dir            string
)

func ResolveDir(flagPath string) (string, error) {
	// Priority 1: -logpath flag
	if flagPath != "" {
		if !filepath.IsAbs(flagPath) {
			wd, err := os.Getwd()
			if err != nil {
				return "", err
			}
			return filepath.Join(wd, flagPath), nil
		}
		return flagPath, nil
	}

	// Priority 2: CHIRP_LOG_PATH environment variable
	envPath := os.Getenv("CHIRP_LOG_PATH")
	if envPath != "" {
		if !filepath.IsAbs(envPath) {
			wd, err := os.Getwd()
			if err != nil {
				return "", err
			}
			return filepath.Join(wd, envPath), nil
		}
		return envPath, nil
	}

	// Priority 3: Default OS-specific location
	return getDefaultDir()
}

func SetDir(d string) {
	dir = d
}

func Dir() string {
	return dir
}

// SetVerbose enables debug-level events. Transcribed text only ever reaches
// the diagnostics log through Debugf, so it stays out of default output.
func SetVerbose(v bool) {
	verbose = v
}

func EnsureDir() error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

func Init() error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := EnsureDir(); err != nil {
		return err
	}

	pid = os.Getpid()

	var err error

	diagPath := filepath.Join(dir, "diagnostics_log.txt")
	diagFile, err = os.OpenFile(diagPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	transcribePath := filepath.Join(dir, "transcribe_log.txt")
	transcribeFile, err = os.OpenFile(transcribePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		diagFile.Close()
		return err
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        diagFile,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", pid).Logger()

	logReady = true
	return nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	if transcribeFile != nil {
		transcribeFile.Close()
		transcribeFile = nil
	}
	logReady = false
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Infof(format string, args ...any) {
	if logReady {
		diagLog.Info().Msg(fmt.Sprintf(format, args...))
	}
}

func Error(msg string) {
	if logReady {
		diagLog.Error().Msg(msg)
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

func Warn(msg string) {
	if logReady {
		diagLog.Warn().Msg(msg)
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

// Debugf is dropped unless verbose mode is on.
func Debugf(format string, args ...any) {
	if logReady && verbose {
		diagLog.Debug().Msg(fmt.Sprintf(format, args...))
	}
}

func SessionStart(model, provider, language string) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("model", model).
		Str("provider", provider).
		Str("language", language).
		Msg("session_start")
}

func SessionEnd(jobs int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int("jobs", jobs).
		Msg("session_end")
}

func ModelLoaded(model string, loadMs float64) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("model", model).
		Float64("load_ms", loadMs).
		Msg("model_loaded")
}

func ModelUnloaded(idleS float64) {
	if !logReady {
		return
	}
	diagLog.Info().
		Float64("idle_s", idleS).
		Msg("model_unloaded")
}

// TranscriptionStats logs timing facts about one job. The text itself is
// excluded on purpose; see TranscriptionText.
func TranscriptionStats(audioS, inferMs float64, chars int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Float64("audio_s", audioS).
		Float64("infer_ms", inferMs).
		Int("chars", chars).
		Msg("transcription")
}

// TranscriptionText appends the transcribed text to the transcript file.
// It never touches the diagnostics log.
func TranscriptionText(text string) {
	if !logReady {
		return
	}
	logMu.Lock()
	defer logMu.Unlock()
	if transcribeFile == nil {
		return
	}
	line := fmt.Sprintf("%s\t[%d]\t%s\n", time.Now().Format("2006-01-02 15:04:05"), pid, text)
	transcribeFile.WriteString(line)
}
