// Package clipboard wraps the system clipboard.
package clipboard

import cb "github.com/atotto/clipboard"

type Clipboard interface {
	Copy(text string) error
	Read() (string, error)
	Clear() error
}

type system struct{}

// System returns the real clipboard.
func System() Clipboard { return system{} }

func (system) Copy(text string) error { return cb.WriteAll(text) }
func (system) Read() (string, error)  { return cb.ReadAll() }
func (system) Clear() error           { return cb.WriteAll("") }
