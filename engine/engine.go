// Package engine manages the speech-recognition model: the recognizer
// contract, lazy loading, and idle-triggered unloading.
package engine

import "errors"

// ErrModelNotPrepared means the model assets are missing on disk. At startup
// this is fatal; on a reload after idle eviction it fails only the job that
// triggered the reload.
var ErrModelNotPrepared = errors.New("model not prepared")

// Recognizer transcribes one finished waveform. Implementations are not
// required to be safe for concurrent calls; the worker serializes access.
type Recognizer interface {
	// Recognize transcribes PCM16 little-endian mono audio.
	Recognize(pcm []byte, sampleRate int, lang string) (string, error)
	Close()
	Name() string
}

// Config carries the load-time knobs from the user config.
type Config struct {
	// ModelPath is the directory holding the model assets.
	ModelPath string
	// ModelName identifies the model for logging.
	ModelName string
	// Quantization tag, empty for full precision.
	Quantization string
	// Provider selects the compute backend; only "cpu" is supported.
	Provider string
	// Threads bounds inference threads; 0 means the engine default.
	Threads int
}

// Loader creates a Recognizer from config. Called under the handle lock, so
// it must not call back into the handle.
type Loader interface {
	Load(cfg Config) (Recognizer, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(cfg Config) (Recognizer, error)

func (f LoaderFunc) Load(cfg Config) (Recognizer, error) { return f(cfg) }
